package ordmap

// iterState is the state of an Iterator, per the state machine:
//
//	default-construct                  -> singular
//	Begin()/End()/Find()/Insert()       -> atNode or atEnd
//	Next() from atNode                  -> atNode or atEnd
//	Next() from atEnd                   -> error, state unchanged
//	Prev() from atEnd (map non-empty)   -> atNode(max)
//	Prev() from atNode(min)             -> error, state unchanged
type iterState int8

const (
	singular iterState = iota
	atNode
	atEnd
)

// Iterator is a bidirectional (not random-access) cursor over a Map's entries in ascending
// key order. The zero value is a singular iterator: it refers to no map and every operation
// on it fails with ErrInvalidIterator.
//
// Two iterators compare equal iff they refer to the same node of the same map, or both refer
// to that map's past-the-end position. Using an iterator with a Map other than the one it was
// obtained from is an error.
type Iterator[K comparable, V any] struct {
	node  *Node[K, V]
	owner *Map[K, V]
	state iterState
}

// Next advances the iterator to the next entry in ascending key order. It fails with
// ErrInvalidIterator if the iterator is already past the end or singular.
func (it *Iterator[K, V]) Next() error {
	if it.state != atNode {
		return ErrInvalidIterator
	}
	n := it.owner.tree.next(it.node)
	if n == it.owner.tree.nilNode {
		it.node = nil
		it.state = atEnd
		return nil
	}
	it.node = n
	return nil
}

// Prev moves the iterator to the previous entry in ascending key order. Calling Prev on the
// past-the-end iterator of a non-empty map yields the maximum entry. It fails with
// ErrInvalidIterator if the iterator is already at the first entry, past-the-end of an empty
// map, or singular.
func (it *Iterator[K, V]) Prev() error {
	switch it.state {
	case atEnd:
		m := it.owner.tree.Max()
		if m == nil {
			return ErrInvalidIterator
		}
		it.node = m
		it.state = atNode
		return nil
	case atNode:
		p := it.owner.tree.prev(it.node)
		if p == it.owner.tree.nilNode {
			return ErrInvalidIterator
		}
		it.node = p
		return nil
	default:
		return ErrInvalidIterator
	}
}

// Key returns the key the iterator refers to. It fails with ErrInvalidIterator if the
// iterator does not refer to an entry.
func (it Iterator[K, V]) Key() (K, error) {
	var zero K
	if it.state != atNode {
		return zero, ErrInvalidIterator
	}
	return it.node.key, nil
}

// Value returns a pointer to the value the iterator refers to; writes through it mutate the
// map in place. It fails with ErrInvalidIterator if the iterator does not refer to an entry.
func (it Iterator[K, V]) Value() (*V, error) {
	if it.state != atNode {
		return nil, ErrInvalidIterator
	}
	return &it.node.Value, nil
}

// Valid reports whether the iterator currently refers to an entry (as opposed to
// past-the-end or singular).
func (it Iterator[K, V]) Valid() bool {
	return it.state == atNode
}

// Equal reports whether it and other refer to the same position. It fails with
// ErrInvalidIterator if either iterator is singular or they belong to different maps.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) (bool, error) {
	if it.state == singular || other.state == singular {
		return false, ErrInvalidIterator
	}
	if it.owner != other.owner {
		return false, ErrInvalidIterator
	}
	if it.state != other.state {
		return false, nil
	}
	if it.state == atNode {
		return it.node == other.node, nil
	}
	return true, nil
}

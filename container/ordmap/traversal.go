package ordmap

// next returns the in-order successor of x, or the tree's sentinel if x is the maximum node.
func (t *Tree[K, V]) next(x *Node[K, V]) *Node[K, V] {
	if x.right != nil {
		return x.right.Min()
	}
	p := x.parent
	for p != nil && x == p.right {
		x = p
		p = x.parent
	}
	if p == nil {
		return t.nilNode
	}
	return p
}

// prev returns the in-order predecessor of x, or the tree's sentinel if x is the minimum node.
func (t *Tree[K, V]) prev(x *Node[K, V]) *Node[K, V] {
	if x.left != nil {
		return x.left.Max()
	}
	p := x.parent
	for p != nil && x == p.left {
		x = p
		p = x.parent
	}
	if p == nil {
		return t.nilNode
	}
	return p
}

// Next returns the next node (in in-order traversal order) of the given node x, or nil if no
// such node found.
func (t *Tree[K, V]) Next(x *Node[K, V]) *Node[K, V] {
	if x == nil {
		return nil
	}
	n := t.next(x)
	if n == t.nilNode {
		return nil
	}
	return n
}

// Prev returns the previous node (in in-order traversal order) of the given node x, or nil if
// no such node found.
func (t *Tree[K, V]) Prev(x *Node[K, V]) *Node[K, V] {
	if x == nil {
		return nil
	}
	p := t.prev(x)
	if p == t.nilNode {
		return nil
	}
	return p
}

// Keys returns all keys in tree (in in-order traversal order).
func (t *Tree[K, V]) Keys() []K {
	keys, _ := t.InOrder()
	return keys
}

// Values returns all values in tree (in in-order traversal order).
func (t *Tree[K, V]) Values() []V {
	_, values := t.InOrder()
	return values
}

// InOrder performs in-order traversal for tree, and returns a pair of slices (keys, values) as
// the result.
func (t *Tree[K, V]) InOrder() ([]K, []V) {
	keys := make([]K, 0, t.size)
	values := make([]V, 0, t.size)
	var s []*Node[K, V]
	x := t.root
	for x != nil || len(s) != 0 {
		for x != nil {
			s = append(s, x)
			x = x.left
		}
		x = s[len(s)-1]
		s = s[:len(s)-1]
		keys = append(keys, x.key)
		values = append(values, x.Value)
		x = x.right
	}
	return keys, values
}

// Range calls f sequentially for each key-value pair (k, v) present in tree in in-order
// traversal order. If f returns false, Range stops the iteration.
func (t *Tree[K, V]) Range(f func(k K, v V) bool) {
	if f == nil {
		return
	}
	var s []*Node[K, V]
	x := t.root
	for x != nil || len(s) != 0 {
		for x != nil {
			s = append(s, x)
			x = x.left
		}
		x = s[len(s)-1]
		s = s[:len(s)-1]
		if !f(x.key, x.Value) {
			break
		}
		x = x.right
	}
}

package ordmap

import (
	"cmp"
	"strings"
	"sync"

	"github.com/docodex/ordmap/container"
	"github.com/docodex/ordmap/jsonx"
	"github.com/docodex/ordmap/stringx"
)

// Map is an in-memory ordered associative container mapping keys of type K to values of type
// V under a user-supplied strict weak ordering, backed by a red-black [Tree].
//
// A Map instance is a single exclusive resource: any number of concurrent readers, or one
// writer, may use it safely; mixed access requires external synchronization unless WithLock
// has been called. The map itself takes no lock by default.
type Map[K comparable, V any] struct {
	tree *Tree[K, V]
	mu   *sync.RWMutex // nil unless WithLock was called
}

// New returns an initialized map with [cmp.Compare] as the comparator.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: NewTree[K, V]()}
}

// NewFunc returns an initialized map with the given function cmp as the comparator.
func NewFunc[K comparable, V any](cmp container.Compare[K]) *Map[K, V] {
	return &Map[K, V]{tree: NewTreeFunc[K, V](cmp)}
}

// WithLock adds a sync.RWMutex to support concurrent use by multiple goroutines without
// additional locking or coordination.
func (m *Map[K, V]) WithLock() *Map[K, V] {
	m.mu = &sync.RWMutex{}
	return m
}

// Size returns the number of entries in map m.
// The complexity is O(1).
func (m *Map[K, V]) Size() int {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return m.tree.Len()
}

// Len returns the number of entries in map m.
// The complexity is O(1).
func (m *Map[K, V]) Len() int {
	return m.Size()
}

// Empty reports whether map m has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Keys returns all keys in map (in ascending order).
func (m *Map[K, V]) Keys() []K {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return m.tree.Keys()
}

// Values returns all values in map (in ascending key order).
func (m *Map[K, V]) Values() []V {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return m.tree.Values()
}

// String returns the string representation of map.
// Ref: std fmt.Stringer.
func (m *Map[K, V]) String() string {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	entries, _ := jsonx.MarshalToString(snapshot(m.tree))
	var b strings.Builder
	b.Write(stringx.StringToBytes("OrderedMap: "))
	b.WriteString(entries)
	return b.String()
}

// Debug returns an ASCII drawing of the backing tree's shape, one line per node with its
// color and children, top to bottom. Unlike String, this exposes the tree structure itself
// rather than a JSON snapshot; it is meant for interactive inspection, not for parsing.
func (m *Map[K, V]) Debug() string {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return m.tree.String()
}

// snapshot builds the plain map[K]V view of tree used for JSON/debug rendering.
func snapshot[K comparable, V any](t *Tree[K, V]) map[K]V {
	m := make(map[K]V, t.Len())
	t.Range(func(k K, v V) bool {
		m[k] = v
		return true
	})
	return m
}

// MarshalJSON marshals map into valid JSON.
// Ref: std json.Marshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return m.tree.MarshalJSON()
}

// UnmarshalJSON unmarshals a JSON description of map.
// Ref: std json.Unmarshaler.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	return m.tree.UnmarshalJSON(data)
}

// Patch sets the JSON value at the given dot-syntax path within map's JSON snapshot, then
// reloads map from the patched snapshot. value is a pre-encoded JSON fragment (e.g. `"7"` or
// `{"a":1}`), set as a raw block rather than re-escaped.
func (m *Map[K, V]) Patch(path, value string) error {
	buf, err := m.MarshalJSON()
	if err != nil {
		return err
	}
	patched, err := jsonx.SetRaw(string(buf), path, value)
	if err != nil {
		return err
	}
	return m.UnmarshalJSON(stringx.StringToBytes(patched))
}

// Get returns a pointer to the value mapped to key k.
// It returns ErrKeyNotFound if k is absent from map.
func (m *Map[K, V]) Get(k K) (*V, error) {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Search(k)
	if n == nil {
		return nil, ErrKeyNotFound
	}
	return &n.Value, nil
}

// GetOrInsert returns a mutable pointer to the value mapped to key k, inserting a
// default-constructed value first if k is not already present.
func (m *Map[K, V]) GetOrInsert(k K) *V {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	var zero V
	n, _ := m.tree.Insert(k, zero)
	return &n.Value
}

// Insert adds the key-value pair (k, v) to map. If k already exists, the existing entry is
// left untouched (v is not written) and the returned inserted is false; the returned iterator
// always refers to the entry for k, new or pre-existing.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	n, inserted := m.tree.Insert(k, v)
	return Iterator[K, V]{owner: m, node: n, state: atNode}, inserted
}

// Remove removes the entry it refers to from map. It fails with ErrInvalidIterator if it is
// past-the-end, singular, or belongs to a different Map; on success it marks it singular.
func (m *Map[K, V]) Remove(it *Iterator[K, V]) error {
	if it.state != atNode || it.owner != m {
		return ErrInvalidIterator
	}
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	m.tree.RemoveNode(it.node)
	it.node = nil
	it.state = singular
	return nil
}

// RemoveKey removes the given key k and its value if present in map. If no such key is
// found, it does nothing.
func (m *Map[K, V]) RemoveKey(k K) {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	m.tree.Remove(k)
}

// Find returns an iterator to the entry for key k, or End() if k is absent.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Search(k)
	if n == nil {
		return Iterator[K, V]{owner: m, state: atEnd}
	}
	return Iterator[K, V]{owner: m, node: n, state: atNode}
}

// Floor returns an iterator to the largest entry whose key is <= k, or End() if none exists.
func (m *Map[K, V]) Floor(k K) Iterator[K, V] {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Floor(k)
	if n == nil {
		return Iterator[K, V]{owner: m, state: atEnd}
	}
	return Iterator[K, V]{owner: m, node: n, state: atNode}
}

// Ceiling returns an iterator to the smallest entry whose key is >= k, or End() if none
// exists.
func (m *Map[K, V]) Ceiling(k K) Iterator[K, V] {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Ceiling(k)
	if n == nil {
		return Iterator[K, V]{owner: m, state: atEnd}
	}
	return Iterator[K, V]{owner: m, node: n, state: atNode}
}

// Count returns 1 if key k is present in map, or 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	if m.tree.Search(k) != nil {
		return 1
	}
	return 0
}

// Contains returns true if map contains all of the given keys k.
func (m *Map[K, V]) Contains(k ...K) bool {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	for i := range k {
		if m.tree.Search(k[i]) == nil {
			return false
		}
	}
	return true
}

// ContainsAny returns true if map contains any of the given keys k.
func (m *Map[K, V]) ContainsAny(k ...K) bool {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	for i := range k {
		if m.tree.Search(k[i]) != nil {
			return true
		}
	}
	return false
}

// Clear removes all entries in map.
func (m *Map[K, V]) Clear() {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	m.tree.Clear()
}

// Clone returns a deep copy of map. The clone iterates identically and supports independent
// mutation; it does not carry over the original's WithLock setting.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Range calls f sequentially for each key-value pair present in map in ascending key order.
// If f returns false, Range stops the iteration.
func (m *Map[K, V]) Range(f func(k K, v V) bool) {
	if f == nil {
		return
	}
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	m.tree.Range(f)
}

// Begin returns an iterator to the entry with the minimum key, or End() if map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Min()
	if n == nil {
		return Iterator[K, V]{owner: m, state: atEnd}
	}
	return Iterator[K, V]{owner: m, node: n, state: atNode}
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{owner: m, state: atEnd}
}

// Last returns an iterator to the entry with the maximum key. It fails with
// ErrInvalidIterator if map is empty (decrementing End() on an empty map is illegal).
func (m *Map[K, V]) Last() (Iterator[K, V], error) {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	n := m.tree.Max()
	if n == nil {
		return Iterator[K, V]{owner: m, state: singular}, ErrInvalidIterator
	}
	return Iterator[K, V]{owner: m, node: n, state: atNode}, nil
}

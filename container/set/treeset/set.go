// Package treeset implements a set backed by an ordered map (see container/ordmap).
package treeset

import (
	"cmp"
	"encoding/json"
	"sync"

	"github.com/docodex/ordmap/container"
	"github.com/docodex/ordmap/container/ordmap"
	"github.com/docodex/ordmap/jsonx"
)

// Set represents a treeset which holds its values as keys in an ordered map.
type Set[T comparable] struct {
	values *ordmap.Map[T, struct{}] // current set values
	mu     *sync.RWMutex            // for concurrent use
}

// New returns an initialized set with [cmp.Compare] as the cmp function for the backing
// ordered map, containing the given values v.
func New[T cmp.Ordered](v ...T) *Set[T] {
	s := &Set[T]{values: ordmap.New[T, struct{}]()}
	for i := range v {
		s.values.Insert(v[i], struct{}{})
	}
	return s
}

// NewFunc returns an initialized set with the given function cmp as the cmp function for the
// backing ordered map.
func NewFunc[T comparable](cmp container.Compare[T]) *Set[T] {
	return &Set[T]{values: ordmap.NewFunc[T, struct{}](cmp)}
}

// WithLock adds a sync.RWMutex to support concurrent use by multiple goroutines without
// additional locking or coordination.
func (s *Set[T]) WithLock() *Set[T] {
	s.mu = &sync.RWMutex{}
	return s
}

// Len returns the number of values of set s.
func (s *Set[T]) Len() int {
	if s.mu != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return s.values.Len()
}

// Values returns all values in set (in ascending order).
func (s *Set[T]) Values() []T {
	if s.mu != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return s.values.Keys()
}

// String returns the string representation of set.
// Ref: std fmt.Stringer.
func (s *Set[T]) String() string {
	values, _ := jsonx.MarshalToString(s.Values())
	return "TreeSet: " + values
}

// MarshalJSON marshals set into valid JSON.
// Ref: std json.Marshaler.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON unmarshals a JSON description of set.
// The input can be assumed to be a valid encoding of a JSON value.
// UnmarshalJSON must copy the JSON data if it wishes to retain the data after returning.
// Ref: std json.Unmarshaler.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	s.values.Clear()
	for i := range v {
		s.values.Insert(v[i], struct{}{})
	}
	return nil
}

// Add adds the given values v to set.
func (s *Set[T]) Add(v ...T) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	for i := range v {
		s.values.Insert(v[i], struct{}{})
	}
}

// Remove removes the given values v if exists in set.
// If there is no such values found in set, do nothing.
func (s *Set[T]) Remove(v ...T) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	for i := range v {
		s.values.RemoveKey(v[i])
	}
}

// Contains returns true if set contains all of the given values v.
func (s *Set[T]) Contains(v ...T) bool {
	if s.mu != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return s.values.Contains(v...)
}

// ContainsAny returns true if set contains any of the given values v.
func (s *Set[T]) ContainsAny(v ...T) bool {
	if s.mu != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return s.values.ContainsAny(v...)
}

// Clear removes all values in set.
func (s *Set[T]) Clear() {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	s.values.Clear()
}

// Range calls f sequentially for each value v present in the set, in ascending order.
func (s *Set[T]) Range(f func(v T)) {
	if f == nil {
		return
	}
	if s.mu != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	s.values.Range(func(k T, _ struct{}) bool {
		f(k)
		return true
	})
}

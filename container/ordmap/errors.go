package ordmap

import "errors"

var (
	// ErrKeyNotFound is returned by Get when the requested key is absent from the map.
	ErrKeyNotFound = errors.New("ordmap: key not found")

	// ErrInvalidIterator is returned on iterator misuse: stepping past End, stepping before
	// Begin, dereferencing a past-the-end or singular iterator, or passing an iterator that
	// belongs to a different Map to Remove or a comparison.
	ErrInvalidIterator = errors.New("ordmap: invalid iterator")
)

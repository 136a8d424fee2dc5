// Package index provides key-to-row maps for the columnar map.
//
// Every Index has insert-if-absent semantics and never creates entries on
// lookup: a missing key is reported as missing.
package index

import "iter"

// Index maps keys to dense row numbers.
type Index[K comparable] interface {
	// Insert maps key to row unless key is already present. It returns the
	// row key maps to after the call and whether a new mapping was made.
	Insert(key K, row int) (int, bool)

	// Get returns the row for key.
	Get(key K) (int, bool)

	// Len returns the number of keys.
	Len() int

	// All iterates over every key and its row in the index's own order.
	All() iter.Seq2[K, int]
}

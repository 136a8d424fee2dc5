// Package column provides the append-only arrays that hold one field of
// every row in a columnar map.
//
// A Column never removes or reorders elements: the element appended as
// the n-th value keeps index n for the column's lifetime.
package column

import (
	"fmt"
	"iter"
)

// Column is an append-only array of T.
type Column[T any] interface {
	// Append adds v at index Len().
	Append(v T)

	// At returns a pointer to the element at i. It panics if i is out of
	// range. Whether the pointer survives later appends depends on the
	// implementation.
	At(i int) *T

	// Len returns the number of elements.
	Len() int
}

// Kind selects a Column implementation.
type Kind int

const (
	// KindDense stores a column in one contiguous slice. Appending may
	// move the slice, so pointers from At are only good until the next
	// Append.
	KindDense Kind = iota

	// KindPaged stores a column in fixed-size pages. Pointers from At
	// stay valid for the column's lifetime.
	KindPaged
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindPaged:
		return "paged"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns an empty column of the given kind. capacity is a hint for
// the expected number of rows.
func New[T any](kind Kind, capacity int) Column[T] {
	switch kind {
	case KindPaged:
		return NewPaged[T](capacity)
	default:
		return NewDense[T](capacity)
	}
}

// All returns an iterator over the index and element pointer of every
// element in c, in index order.
func All[T any](c Column[T]) iter.Seq2[int, *T] {
	if d, ok := c.(*Dense[T]); ok {
		return func(yield func(int, *T) bool) {
			for i := range d.data {
				if !yield(i, &d.data[i]) {
					return
				}
			}
		}
	}
	return func(yield func(int, *T) bool) {
		n := c.Len()
		for i := 0; i < n; i++ {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

func outOfRange(i, n int) string {
	return fmt.Sprintf("column: index %d out of range [0:%d]", i, n)
}

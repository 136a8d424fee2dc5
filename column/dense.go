package column

import "slices"

// Dense is a Column backed by a single contiguous slice.
//
// It gives the best scan locality. Growing the slice copies it, so a
// pointer obtained from At before an Append may refer to the old backing
// array and must not be used afterwards.
type Dense[T any] struct {
	data []T
}

// NewDense returns an empty Dense column with room for capacity elements.
func NewDense[T any](capacity int) *Dense[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Dense[T]{data: make([]T, 0, capacity)}
}

func (d *Dense[T]) Append(v T) {
	d.data = append(d.data, v)
}

func (d *Dense[T]) At(i int) *T {
	if uint(i) >= uint(len(d.data)) {
		panic(outOfRange(i, len(d.data)))
	}
	return &d.data[i]
}

func (d *Dense[T]) Len() int { return len(d.data) }

// Cap returns the number of elements the column can hold before the next
// reallocation.
func (d *Dense[T]) Cap() int { return cap(d.data) }

// Grow makes room for at least n more elements without reallocating.
func (d *Dense[T]) Grow(n int) {
	d.data = slices.Grow(d.data, n)
}

// Slice returns the column's elements. The slice aliases the column and
// is only valid until the next Append.
func (d *Dense[T]) Slice() []T { return d.data }

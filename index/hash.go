package index

import "iter"

// Hash is an Index backed by a Go map. Iteration order is unspecified.
type Hash[K comparable] struct {
	m map[K]int
}

// NewHash returns an empty Hash sized for capacity keys.
func NewHash[K comparable](capacity int) *Hash[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Hash[K]{m: make(map[K]int, capacity)}
}

func (h *Hash[K]) Insert(key K, row int) (int, bool) {
	if existing, ok := h.m[key]; ok {
		return existing, false
	}
	h.m[key] = row
	return row, true
}

func (h *Hash[K]) Get(key K) (int, bool) {
	row, ok := h.m[key]
	return row, ok
}

func (h *Hash[K]) Len() int { return len(h.m) }

func (h *Hash[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for k, row := range h.m {
			if !yield(k, row) {
				return
			}
		}
	}
}

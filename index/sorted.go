package index

import (
	"cmp"
	"iter"

	"github.com/benbjohnson/immutable"
)

// Sorted is an Index that iterates keys in ascending order.
//
// It is backed by a persistent sorted map, so Clone is O(1) and the clone
// is unaffected by later inserts into the original.
type Sorted[K cmp.Ordered] struct {
	m *immutable.SortedMap[K, int]
}

// NewSorted returns an empty Sorted index.
func NewSorted[K cmp.Ordered]() *Sorted[K] {
	return &Sorted[K]{m: immutable.NewSortedMap[K, int](orderedComparer[K]{})}
}

func (s *Sorted[K]) Insert(key K, row int) (int, bool) {
	if existing, ok := s.m.Get(key); ok {
		return existing, false
	}
	s.m = s.m.Set(key, row)
	return row, true
}

func (s *Sorted[K]) Get(key K) (int, bool) {
	return s.m.Get(key)
}

func (s *Sorted[K]) Len() int { return s.m.Len() }

func (s *Sorted[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		itr := s.m.Iterator()
		for !itr.Done() {
			k, row, ok := itr.Next()
			if !ok || !yield(k, row) {
				return
			}
		}
	}
}

// Clone returns an independent copy of s.
func (s *Sorted[K]) Clone() *Sorted[K] {
	return &Sorted[K]{m: s.m}
}

// orderedComparer implements immutable.Comparer for ordered keys.
type orderedComparer[K cmp.Ordered] struct{}

func (orderedComparer[K]) Compare(a, b K) int {
	return cmp.Compare(a, b)
}

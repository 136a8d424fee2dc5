package index

import "iter"

// Ordered is an Index that iterates keys in the order they were first
// inserted. Since rows are handed out in increasing order, this is also
// ascending row order.
type Ordered[K comparable] struct {
	m    map[K]int
	keys []K
}

// NewOrdered returns an empty Ordered sized for capacity keys.
func NewOrdered[K comparable](capacity int) *Ordered[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ordered[K]{
		m:    make(map[K]int, capacity),
		keys: make([]K, 0, capacity),
	}
}

func (o *Ordered[K]) Insert(key K, row int) (int, bool) {
	if existing, ok := o.m[key]; ok {
		return existing, false
	}
	o.m[key] = row
	o.keys = append(o.keys, key)
	return row, true
}

func (o *Ordered[K]) Get(key K) (int, bool) {
	row, ok := o.m[key]
	return row, ok
}

func (o *Ordered[K]) Len() int { return len(o.keys) }

func (o *Ordered[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for _, k := range o.keys {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}

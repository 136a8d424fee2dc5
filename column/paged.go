package column

const (
	pageBits = 12
	pageSize = 1 << pageBits // 4096
	pageMask = pageSize - 1
)

// Paged is a Column stored in fixed-size pages.
//
// Pages are never moved once allocated, so pointers returned by At remain
// valid across appends. Only the page table grows.
type Paged[T any] struct {
	pages []*[pageSize]T
	count int
}

// NewPaged returns an empty Paged column whose page table has room for
// capacity elements.
func NewPaged[T any](capacity int) *Paged[T] {
	n := 16
	if capacity > 0 {
		n = (capacity + pageSize - 1) >> pageBits
	}
	return &Paged[T]{pages: make([]*[pageSize]T, 0, n)}
}

func (p *Paged[T]) Append(v T) {
	pageIdx := p.count >> pageBits
	if pageIdx >= len(p.pages) {
		p.pages = append(p.pages, new([pageSize]T))
	}
	p.pages[pageIdx][p.count&pageMask] = v
	p.count++
}

func (p *Paged[T]) At(i int) *T {
	if uint(i) >= uint(p.count) {
		panic(outOfRange(i, p.count))
	}
	return &p.pages[i>>pageBits][i&pageMask]
}

func (p *Paged[T]) Len() int { return p.count }

// Pages returns the number of allocated pages.
func (p *Paged[T]) Pages() int { return len(p.pages) }

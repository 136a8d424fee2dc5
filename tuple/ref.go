package tuple

// Pair is one element of a zipped record.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns a Pair holding a and b.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Const is a read-only reference to a value owned elsewhere.
//
// It is the immutable counterpart of *T in a row view: it does not copy
// the referenced value until Get is called, and it offers no way to write
// through it.
type Const[T any] struct {
	p *T
}

// ConstOf returns a read-only reference to *p.
func ConstOf[T any](p *T) Const[T] {
	return Const[T]{p: p}
}

// Get returns the referenced value.
func (c Const[T]) Get() T {
	return *c.p
}

// IsNil reports whether c refers to nothing.
func (c Const[T]) IsNil() bool {
	return c.p == nil
}

// Package tuple provides fixed-arity heterogeneous records and the small
// algebra the columnar map is built from.
//
// Go has no variadic type parameters, so every record arity gets its own
// product type (T1 through T4) and its own set of operations. Each
// operation takes one function per field, which keeps per-field dispatch
// static and lets the compiler reject arity mismatches.
//
// # Operations
//
//	ForEach2(t, f0, f1)  // apply to each field, in order
//	All2(t, p0, p1)      // short-circuit AND over fields
//	Map2(t, f0, f1)      // new record of per-field results
//	Zip2(a, b)           // record of Pair{a.Vi, b.Vi}
//
// # Reference category
//
// A record's element types decide whether it holds values or references.
// Map keeps whatever each field function returns: a function returning *T
// yields a pointer element, so
//
//	refs := tuple.Map2(cols, func(c []int) *int { return &c[i] }, ...)
//
// produces a mutable view into existing storage without copying. Const is
// the read-only counterpart of a pointer.
//
// None of the operations allocate or retain state.
package tuple

//go:generate go run ../internal/cmd/gentuple -kind tuple -o tuple_gen.go

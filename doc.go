// Package tuplemap provides a columnar associative container: a map from
// keys to fixed-arity records in which every record field lives in its own
// densely packed column.
//
// Storing fields apart means a scan that touches one or two fields never
// pulls the others into cache, and fields of different sizes pack without
// per-record padding.
//
// # Quick Start
//
//	m := tuplemap.New2[string, int, float64]()
//	m.Emplace("a", 1, 0.5)
//
//	row, ok := m.Lookup("a")   // tuplemap.Ref2[int, float64]
//	*row.V1 = 0.75             // writes straight into the float64 column
//
//	for i, row := range m.Values().All() {
//	    _ = i
//	    sum += *row.V0         // sequential access, no key lookups
//	}
//
// # Rows and Keys
//
// Each Emplace appends exactly one element to every column, so all columns
// always share one length, reported by Len. A key is mapped to the row
// number it was first emplaced at and keeps it for the map's lifetime.
//
// Emplacing a key that is already mapped still appends a row, but the key
// keeps pointing at its original row. The new row is an orphan: Values
// visits it, All and Lookup never do. Use Insert to refuse duplicate keys
// instead, and Orphans or Stats to inspect them.
//
// Lookup of a missing key never creates an entry; it reports false (At
// returns ErrKeyNotFound).
//
// # Views
//
// Row, Lookup, At, All and Values return views holding one pointer per
// field into the columns (Ref1..Ref4). ReadOnly returns a view of the map
// whose rows hold tuple.Const references instead (ConstRef1..ConstRef4).
//
// With the default dense columns, appending may move a column, so no view,
// Rows value or iterator may be used after a later Emplace. Paged columns
// (WithColumnKind(column.KindPaged)) keep element addresses stable.
//
// # Custom Storage
//
// NewIndexed1..NewIndexed4 take the key index, and NewColumns1..NewColumns4
// additionally take one column.Column per field, so any append-only array
// type can back a field.
//
// # Arity
//
// Go has no variadic type parameters. Map1 through Map4 are generated from
// one template by internal/cmd/gentuple.
//
// # Concurrency
//
// A map is not safe for concurrent mutation. Concurrent readers are safe
// as long as nothing writes and the chosen index allows concurrent reads;
// note that metrics collectors are called on every lookup.
package tuplemap

//go:generate go run ./internal/cmd/gentuple -kind map -o map_gen.go

package main

const mapTemplate = `{{define "map"}}// Code generated by gentuple; DO NOT EDIT.

package {{.Package}}

import (
	"iter"

	"github.com/hupe1980/tuplemap/column"
	"github.com/hupe1980/tuplemap/index"
	"github.com/hupe1980/tuplemap/tuple"
)
{{range .Arities}}{{$n := .N}}{{$a := join "A%[1]d" $n ", "}}{{$m := printf "Map%d[K, %s]" $n $a}}{{$v := printf "View%d[K, %s]" $n $a}}
// Ref{{$n}} is a mutable row view of {{.Words}}.
type Ref{{$n}}[{{$a}} any] = tuple.T{{$n}}[{{join "*A%[1]d" $n ", "}}]

// ConstRef{{$n}} is a read-only row view of {{.Words}}.
type ConstRef{{$n}}[{{$a}} any] = tuple.T{{$n}}[{{join "tuple.Const[A%[1]d]" $n ", "}}]

// Map{{$n}} is a columnar map from K to records of {{.Words}}. Each field is
// stored in its own column; keys resolve to a row number shared by all
// columns.
type Map{{$n}}[K comparable, {{$a}} any] struct {
	keyed[K]
	cols tuple.T{{$n}}[{{join "column.Column[A%[1]d]" $n ", "}}]
}

// New{{$n}} returns an empty Map{{$n}} indexed by a hash map.
func New{{$n}}[K comparable, {{$a}} any](opts ...Option) *{{$m}} {
	m, _ := NewIndexed{{$n}}[K, {{$a}}](nil, opts...)
	return m
}

// NewIndexed{{$n}} returns an empty Map{{$n}} that resolves keys through idx.
// idx must be empty; nil selects a hash index.
func NewIndexed{{$n}}[K comparable, {{$a}} any](idx index.Index[K], opts ...Option) (*{{$m}}, error) {
	k, err := newKeyed(idx, opts)
	if err != nil {
		return nil, err
	}
	cols := tuple.Of{{$n}}(
{{- range .Idx}}
		column.New[A{{.}}](k.opts.columnKind, k.opts.capacity),
{{- end}}
	)
	return &{{$m}}{keyed: k, cols: cols}, nil
}

// NewColumns{{$n}} returns an empty Map{{$n}} that stores field i in ci and
// resolves keys through idx (nil selects a hash index). Every column must
// be non-nil and empty, otherwise ErrInvalidColumns is returned.
// WithColumnKind has no effect.
func NewColumns{{$n}}[K comparable, {{$a}} any](idx index.Index[K], {{join "c%[1]d column.Column[A%[1]d]" $n ", "}}, opts ...Option) (*{{$m}}, error) {
	cols := tuple.Of{{$n}}({{join "c%[1]d" $n ", "}})
	if !tuple.All{{$n}}(cols, {{join "isEmpty[A%[1]d]" $n ", "}}) {
		return nil, ErrInvalidColumns
	}
	k, err := newKeyed(idx, opts)
	if err != nil {
		return nil, err
	}
	return &{{$m}}{keyed: k, cols: cols}, nil
}

// From{{$n}} returns a Map{{$n}} holding entries, each emplaced in order.
func From{{$n}}[K comparable, {{$a}} any](entries []Entry[K, tuple.T{{$n}}[{{$a}}]], opts ...Option) *{{$m}} {
	m := New{{$n}}[K, {{$a}}](opts...)
	m.EmplaceAll(entries...)
	return m
}

// Collect{{$n}} returns a Map{{$n}} holding every pair yielded by seq, each
// emplaced in order.
func Collect{{$n}}[K comparable, {{$a}} any](seq iter.Seq2[K, tuple.T{{$n}}[{{$a}}]], opts ...Option) *{{$m}} {
	m := New{{$n}}[K, {{$a}}](opts...)
	m.Extend(seq)
	return m
}

// Emplace appends a row holding the given values and maps key to it unless
// key already has a row. It reports whether key was newly mapped.
//
// The row is appended either way. If key was already mapped, the new row
// is an orphan: it is visited by Values but no key resolves to it.
func (m *{{$m}}) Emplace(key K, {{join "v%[1]d A%[1]d" $n ", "}}) bool {
	inserted := m.register(key)
	tuple.ForEach{{$n}}(tuple.Zip{{$n}}(m.cols, tuple.Of{{$n}}({{join "v%[1]d" $n ", "}})), {{join "appendTo[A%[1]d]" $n ", "}})
	m.rows++
	return inserted
}

// EmplaceRecord is Emplace with the values taken from r.
func (m *{{$m}}) EmplaceRecord(key K, r tuple.T{{$n}}[{{$a}}]) bool {
	return m.Emplace(key, {{join "r.V%[1]d" $n ", "}})
}

// Insert is like Emplace but refuses a key that already has a row. It
// returns a *KeyError wrapping ErrDuplicateKey and leaves m unchanged.
func (m *{{$m}}) Insert(key K, {{join "v%[1]d A%[1]d" $n ", "}}) error {
	if err := m.reject(key); err != nil {
		return err
	}
	m.Emplace(key, {{join "v%[1]d" $n ", "}})
	return nil
}

// EmplaceAll emplaces entries in order.
func (m *{{$m}}) EmplaceAll(entries ...Entry[K, tuple.T{{$n}}[{{$a}}]]) {
	b := m.beginBatch()
	for _, e := range entries {
		b.add(m.EmplaceRecord(e.Key, e.Value))
	}
	b.end()
}

// Extend emplaces every pair yielded by seq, in order.
func (m *{{$m}}) Extend(seq iter.Seq2[K, tuple.T{{$n}}[{{$a}}]]) {
	b := m.beginBatch()
	for key, r := range seq {
		b.add(m.EmplaceRecord(key, r))
	}
	b.end()
}

// Row returns a mutable view of row i. It panics if i is out of range.
func (m *{{$m}}) Row(i int) Ref{{$n}}[{{$a}}] {
	return tuple.Map{{$n}}(m.cols, {{join "refAt[A%[1]d](i)" $n ", "}})
}

// Lookup returns a mutable view of the row key maps to.
func (m *{{$m}}) Lookup(key K) (Ref{{$n}}[{{$a}}], bool) {
	i, ok := m.lookup(key)
	if !ok {
		return Ref{{$n}}[{{$a}}]{}, false
	}
	return m.Row(i), true
}

// At is like Lookup but returns a *KeyError wrapping ErrKeyNotFound if key
// has no row.
func (m *{{$m}}) At(key K) (Ref{{$n}}[{{$a}}], error) {
	r, ok := m.Lookup(key)
	if !ok {
		return r, keyNotFound(key)
	}
	return r, nil
}

// Get returns a copy of the record key maps to.
func (m *{{$m}}) Get(key K) (tuple.T{{$n}}[{{$a}}], bool) {
	r, ok := m.Lookup(key)
	if !ok {
		return tuple.T{{$n}}[{{$a}}]{}, false
	}
	return tuple.Map{{$n}}(r, {{join "deref[A%[1]d]" $n ", "}}), true
}

// All iterates over every key and a mutable view of its row, in the order
// of the key index. Orphan rows are not visited.
func (m *{{$m}}) All() iter.Seq2[K, Ref{{$n}}[{{$a}}]] {
	return keyedRows(&m.keyed, m.Row)
}

// Values returns all rows, orphans included, in row order. It reads the
// columns directly and never consults the key index.
func (m *{{$m}}) Values() Rows[Ref{{$n}}[{{$a}}]] {
	m.verify()
	return Rows[Ref{{$n}}[{{$a}}]]{n: m.rows, at: m.Row}
}

// Columns returns the columns backing m, in field order.
func (m *{{$m}}) Columns() tuple.T{{$n}}[{{join "column.Column[A%[1]d]" $n ", "}}] {
	return m.cols
}

// ReadOnly returns a read-only view of m.
func (m *{{$m}}) ReadOnly() {{$v}} {
	return {{$v}}{m: m}
}

func (m *{{$m}}) verify() {
	if !tuple.All{{$n}}(m.cols, {{join "hasLen[A%[1]d](m.rows)" $n ", "}}) {
		panic(columnsDiverged(m.rows))
	}
}

// View{{$n}} is a read-only view of a Map{{$n}}. Rows are returned as
// ConstRef{{$n}}, which reference the columns without copying.
type View{{$n}}[K comparable, {{$a}} any] struct {
	m *{{$m}}
}

// Len returns the number of rows, including orphan rows.
func (v {{$v}}) Len() int { return v.m.rows }

// KeyCount returns the number of keys mapped to a row.
func (v {{$v}}) KeyCount() int { return v.m.KeyCount() }

// Row returns a read-only view of row i. It panics if i is out of range.
func (v {{$v}}) Row(i int) ConstRef{{$n}}[{{$a}}] {
	return tuple.Map{{$n}}(v.m.cols, {{join "constAt[A%[1]d](i)" $n ", "}})
}

// Lookup returns a read-only view of the row key maps to.
func (v {{$v}}) Lookup(key K) (ConstRef{{$n}}[{{$a}}], bool) {
	i, ok := v.m.lookup(key)
	if !ok {
		return ConstRef{{$n}}[{{$a}}]{}, false
	}
	return v.Row(i), true
}

// At is like Lookup but returns a *KeyError wrapping ErrKeyNotFound if key
// has no row.
func (v {{$v}}) At(key K) (ConstRef{{$n}}[{{$a}}], error) {
	r, ok := v.Lookup(key)
	if !ok {
		return r, keyNotFound(key)
	}
	return r, nil
}

// Get returns a copy of the record key maps to.
func (v {{$v}}) Get(key K) (tuple.T{{$n}}[{{$a}}], bool) {
	return v.m.Get(key)
}

// All iterates over every key and a read-only view of its row, in the
// order of the key index.
func (v {{$v}}) All() iter.Seq2[K, ConstRef{{$n}}[{{$a}}]] {
	return keyedRows(&v.m.keyed, v.Row)
}

// Values returns all rows, orphans included, in row order.
func (v {{$v}}) Values() Rows[ConstRef{{$n}}[{{$a}}]] {
	v.m.verify()
	return Rows[ConstRef{{$n}}[{{$a}}]]{n: v.m.rows, at: v.Row}
}
{{end}}{{end}}`

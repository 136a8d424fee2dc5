package tuplemap

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/tuplemap/column"
	"github.com/hupe1980/tuplemap/index"
	"github.com/hupe1980/tuplemap/tuple"
)

// Entry is one key and record, the unit of batch construction.
type Entry[K comparable, R any] struct {
	Key   K
	Value R
}

// Stats describes the size of a map.
type Stats struct {
	// Rows is the number of rows in every column.
	Rows int
	// Keys is the number of keys mapped to a row.
	Keys int
	// Orphans is the number of rows no key maps to.
	Orphans int
}

// keyed is the key -> row indirection shared by every arity.
type keyed[K comparable] struct {
	idx  index.Index[K]
	live *roaring.Bitmap // rows some key maps to
	rows int
	opts options
}

func newKeyed[K comparable](idx index.Index[K], optFns []Option) (keyed[K], error) {
	o := applyOptions(optFns)
	if idx == nil {
		idx = index.NewHash[K](o.capacity)
	} else if idx.Len() != 0 {
		return keyed[K]{}, ErrIndexNotEmpty
	}
	return keyed[K]{
		idx:  idx,
		live: roaring.New(),
		opts: o,
	}, nil
}

// Len returns the number of rows, including orphan rows. Every column has
// exactly this many elements.
func (k *keyed[K]) Len() int { return k.rows }

// KeyCount returns the number of keys mapped to a row.
func (k *keyed[K]) KeyCount() int { return k.idx.Len() }

// RowOf returns the row number key maps to.
func (k *keyed[K]) RowOf(key K) (int, bool) { return k.lookup(key) }

// Orphans returns the rows that no key maps to. They were appended by
// Emplace under a key that already had a row.
func (k *keyed[K]) Orphans() *roaring.Bitmap {
	return roaring.Flip(k.live, 0, uint64(k.rows))
}

// Stats returns row, key and orphan counts.
func (k *keyed[K]) Stats() Stats {
	return Stats{
		Rows:    k.rows,
		Keys:    k.idx.Len(),
		Orphans: k.rows - int(k.live.GetCardinality()),
	}
}

// register maps key to the next row unless key is already mapped. The
// caller must append one value to every column and then advance rows.
func (k *keyed[K]) register(key K) bool {
	row := k.rows
	id := rowID(row)
	mapped, inserted := k.idx.Insert(key, row)
	if inserted {
		k.live.Add(id)
	} else {
		k.opts.logger.LogOrphan(key, row, mapped)
	}
	k.opts.metricsCollector.RecordEmplace(!inserted)
	return inserted
}

// reject returns a *KeyError if key already has a row.
func (k *keyed[K]) reject(key K) error {
	if row, ok := k.idx.Get(key); ok {
		k.opts.logger.LogDuplicateRejected(key, row)
		return duplicateKey(key)
	}
	return nil
}

func (k *keyed[K]) lookup(key K) (int, bool) {
	row, ok := k.idx.Get(key)
	k.opts.metricsCollector.RecordLookup(ok)
	return row, ok
}

func (k *keyed[K]) beginBatch() batch {
	return batch{opts: &k.opts, start: time.Now()}
}

// batch accounts for one EmplaceAll or Extend call.
type batch struct {
	opts    *options
	start   time.Time
	count   int
	orphans int
}

func (b *batch) add(inserted bool) {
	b.count++
	if !inserted {
		b.orphans++
	}
}

func (b *batch) end() {
	d := time.Since(b.start)
	b.opts.metricsCollector.RecordBatch(b.count, b.orphans, d)
	b.opts.logger.LogBatch(b.count, b.orphans, d)
}

// keyedRows iterates k's index, resolving each row through row.
func keyedRows[K comparable, R any](k *keyed[K], row func(int) R) iter.Seq2[K, R] {
	return func(yield func(K, R) bool) {
		for key, i := range k.idx.All() {
			if !yield(key, row(i)) {
				return
			}
		}
	}
}

// Rows is a sized range over row numbers [0, Len()). It is obtained from
// Values and does not consult the key index.
//
// Like any row view, Rows must not be used after the map it came from is
// appended to.
type Rows[R any] struct {
	n  int
	at func(int) R
}

// Len returns the number of rows in the range.
func (r Rows[R]) Len() int { return r.n }

// At returns row i. It panics if i is out of range.
func (r Rows[R]) At(i int) R {
	if uint(i) >= uint(r.n) {
		panic(fmt.Sprintf("tuplemap: row %d out of range [0:%d]", i, r.n))
	}
	return r.at(i)
}

// All iterates over every row in row order.
func (r Rows[R]) All() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(i, r.at(i)) {
				return
			}
		}
	}
}

// Cursor returns a forward cursor positioned before the first row.
func (r Rows[R]) Cursor() *Cursor[R] {
	return &Cursor[R]{rows: r, i: -1}
}

// Cursor steps through Rows one row at a time.
//
//	c := m.Values().Cursor()
//	for c.Next() {
//	    row := c.Row()
//	    ...
//	}
type Cursor[R any] struct {
	rows Rows[R]
	i    int
}

// Next advances to the next row and reports whether there is one.
func (c *Cursor[R]) Next() bool {
	if c.i+1 >= c.rows.n {
		c.i = c.rows.n
		return false
	}
	c.i++
	return true
}

// Index returns the current row number.
func (c *Cursor[R]) Index() int { return c.i }

// Row returns the current row.
func (c *Cursor[R]) Row() R { return c.rows.At(c.i) }

// rowID converts a row number for the live-row bitmap, which holds uint32
// ids. It panics rather than truncate.
func rowID(row int) uint32 {
	if uint64(row) > math.MaxUint32 {
		panic(fmt.Sprintf("tuplemap: row %d exceeds the uint32 row space", row))
	}
	return uint32(row)
}

func isEmpty[T any](c column.Column[T]) bool {
	return c != nil && c.Len() == 0
}

func appendTo[T any](p tuple.Pair[column.Column[T], T]) {
	p.First.Append(p.Second)
}

func refAt[T any](row int) func(column.Column[T]) *T {
	return func(c column.Column[T]) *T { return c.At(row) }
}

func constAt[T any](row int) func(column.Column[T]) tuple.Const[T] {
	return func(c column.Column[T]) tuple.Const[T] { return tuple.ConstOf(c.At(row)) }
}

func hasLen[T any](n int) func(column.Column[T]) bool {
	return func(c column.Column[T]) bool { return c.Len() == n }
}

func deref[T any](p *T) T { return *p }

func columnsDiverged(rows int) string {
	return fmt.Sprintf("tuplemap: column length differs from row count %d", rows)
}

package tuplemap

import (
	"errors"
	"iter"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tuplemap/column"
	"github.com/hupe1980/tuplemap/index"
	"github.com/hupe1980/tuplemap/testutil"
	"github.com/hupe1980/tuplemap/tuple"
)

func TestEmplace(t *testing.T) {
	m := New2[int, int, int]()

	inserted := m.Emplace(2, 1, 3)
	assert.True(t, inserted)

	got, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, tuple.Of2(1, 3), got)

	row, ok := m.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 1, *row.V0)
	assert.Equal(t, 3, *row.V1)
}

func TestFrom(t *testing.T) {
	type record = tuple.T3[[]int, tuple.T2[int, float64], int]

	m := From3([]Entry[int, record]{
		{Key: 2, Value: tuple.Of3([]int{}, tuple.Of2(1, 2.0), 1)},
		{Key: 1, Value: tuple.Of3([]int{}, tuple.Of2(3, 5.0), 100)},
	})

	tests := []struct {
		key  int
		want record
	}{
		{2, tuple.Of3([]int(nil), tuple.Of2(1, 2.0), 1)},
		{1, tuple.Of3([]int(nil), tuple.Of2(3, 5.0), 100)},
	}

	for _, tt := range tests {
		got, ok := m.Get(tt.key)
		require.True(t, ok)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Get(%d) mismatch (-want +got):\n%s", tt.key, diff)
		}
	}
	assert.Equal(t, 2, m.Len())
}

func TestColumnLengthInvariant(t *testing.T) {
	rng := testutil.NewRNG(7)
	m := New3[int, int32, float64, []byte]()

	for n := 1; n <= 500; n++ {
		// Small key space so duplicates (and orphans) are common.
		m.Emplace(rng.Intn(100), rng.Int31(), rng.Float64(), nil)

		cols := m.Columns()
		lengths := []int{cols.V0.Len(), cols.V1.Len(), cols.V2.Len()}
		require.Equal(t, []int{n, n, n}, lengths, "after %d emplaces", n)
		require.Equal(t, n, m.Len())
	}

	stats := m.Stats()
	assert.Equal(t, 500, stats.Rows)
	assert.Equal(t, stats.Rows, stats.Keys+stats.Orphans)
}

func TestIndexStability(t *testing.T) {
	rng := testutil.NewRNG(11)
	keys := rng.UniqueKeys(200)
	m := New1[int, int]()

	rows := make(map[int]int, len(keys))
	for i, k := range keys {
		m.Emplace(k, i)
		row, ok := m.RowOf(k)
		require.True(t, ok)
		rows[k] = row
	}

	// More rows, including duplicates of existing keys.
	for i := 0; i < 100; i++ {
		m.Emplace(keys[rng.Intn(len(keys))], -1)
	}

	for _, k := range keys {
		row, ok := m.RowOf(k)
		require.True(t, ok)
		assert.Equal(t, rows[k], row, "key %d moved", k)
	}
}

func TestRowView(t *testing.T) {
	m := New3[string, int, string, float64]()
	m.Emplace("a", 1, "one", 1.5)
	m.Emplace("b", 2, "two", 2.5)

	r := m.Row(1)
	assert.Equal(t, 2, *r.V0)
	assert.Equal(t, "two", *r.V1)
	assert.Equal(t, 2.5, *r.V2)

	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Row(-1) })
}

func TestMutationThroughView(t *testing.T) {
	m := New2[string, int, string]()
	m.Emplace("a", 1, "x")
	m.Emplace("b", 2, "y")

	r, err := m.At("a")
	require.NoError(t, err)
	*r.V0 = 10
	*r.V1 = "changed"

	got, _ := m.Get("a")
	assert.Equal(t, tuple.Of2(10, "changed"), got)

	other, _ := m.Get("b")
	assert.Equal(t, tuple.Of2(2, "y"), other, "other rows must be untouched")
}

func TestDuplicateKeyOrphansRow(t *testing.T) {
	m := New2[string, int, int]()

	assert.True(t, m.Emplace("k", 1, 1))
	before := m.Len()
	assert.False(t, m.Emplace("k", 2, 2))
	assert.Equal(t, before+1, m.Len())

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, tuple.Of2(1, 1), got, "key must keep its first row")

	var rowValues []int
	for _, r := range m.Values().All() {
		rowValues = append(rowValues, *r.V0)
	}
	assert.Equal(t, []int{1, 2}, rowValues)

	visits := 0
	for k, r := range m.All() {
		visits++
		assert.Equal(t, "k", k)
		assert.Equal(t, 1, *r.V0)
	}
	assert.Equal(t, 1, visits)

	assert.Equal(t, []uint32{1}, m.Orphans().ToArray())
	assert.Equal(t, Stats{Rows: 2, Keys: 1, Orphans: 1}, m.Stats())
}

func TestIterationsAgree(t *testing.T) {
	const n = 1000
	rng := testutil.NewRNG(42)
	keys := rng.UniqueKeys(n)
	records := rng.Pairs(n)

	entries := make([]Entry[int, tuple.T2[int32, float64]], n)
	for i, k := range keys {
		entries[i] = Entry[int, tuple.T2[int32, float64]]{Key: k, Value: tuple.Of2(records[i].A, records[i].B)}
	}
	m := From2(entries)

	require.Equal(t, n, m.Len())

	byKey := make(map[int]tuple.T2[int32, float64], n)
	for k, r := range m.All() {
		byKey[k] = tuple.Of2(*r.V0, *r.V1)
	}
	require.Len(t, byKey, n)

	values := m.Values()
	require.Equal(t, n, values.Len())

	visited := 0
	for i, r := range values.All() {
		visited++
		k := keys[i]
		assert.Equal(t, byKey[k], tuple.Of2(*r.V0, *r.V1), "row %d", i)
	}
	assert.Equal(t, n, visited)
}

func TestInsert_RejectsDuplicate(t *testing.T) {
	m := New2[string, int, int]()
	require.NoError(t, m.Insert("k", 1, 1))

	err := m.Insert("k", 2, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "k", ke.Key)

	assert.Equal(t, 1, m.Len(), "rejected insert must not append")
	assert.True(t, m.Orphans().IsEmpty())
}

func TestMissingKey(t *testing.T) {
	m := New2[int, int, int]()
	m.Emplace(1, 1, 1)

	_, ok := m.Lookup(99)
	assert.False(t, ok)

	_, err := m.At(99)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.EqualError(t, err, "key not found: 99")

	_, ok = m.Get(99)
	assert.False(t, ok)

	assert.Equal(t, 1, m.KeyCount(), "lookup must not create keys")
	assert.Equal(t, 1, m.Len())
}

func TestCollect(t *testing.T) {
	var seq iter.Seq2[string, tuple.T2[int, bool]] = func(yield func(string, tuple.T2[int, bool]) bool) {
		for i, k := range []string{"x", "y", "x"} {
			if !yield(k, tuple.Of2(i, i%2 == 0)) {
				return
			}
		}
	}

	m := Collect2(seq)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, m.KeyCount())

	got, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, tuple.Of2(0, true), got)
}

func TestNewIndexed_SortedOrder(t *testing.T) {
	m, err := NewIndexed2[int, string, int](index.NewSorted[int]())
	require.NoError(t, err)

	for _, k := range []int{5, 3, 9, 1} {
		m.Emplace(k, "v", k*10)
	}

	var keys []int
	for k, r := range m.All() {
		keys = append(keys, k)
		assert.Equal(t, k*10, *r.V1)
	}
	assert.Equal(t, []int{1, 3, 5, 9}, keys)

	// Row order is still insertion order.
	var rows []int
	for _, r := range m.Values().All() {
		rows = append(rows, *r.V1/10)
	}
	assert.Equal(t, []int{5, 3, 9, 1}, rows)
}

func TestNewIndexed_RejectsNonEmptyIndex(t *testing.T) {
	idx := index.NewOrdered[string](0)
	idx.Insert("stale", 0)

	m, err := NewIndexed1[string, int](idx)
	assert.ErrorIs(t, err, ErrIndexNotEmpty)
	assert.Nil(t, m)
}

func TestPagedColumns_ViewsSurviveEmplace(t *testing.T) {
	m := New2[int, int, string](WithColumnKind(column.KindPaged))
	m.Emplace(0, 0, "first")
	r, _ := m.Lookup(0)

	for i := 1; i < 10000; i++ {
		m.Emplace(i, i, "")
	}

	*r.V1 = "still valid"
	got, _ := m.Get(0)
	assert.Equal(t, "still valid", got.V1)
	assert.IsType(t, &column.Paged[int]{}, m.Columns().V0)
}

func TestWithCapacity(t *testing.T) {
	m := New1[int, int64](WithCapacity(64), WithCapacity(-1), WithCapacity(128))
	d, ok := m.Columns().V0.(*column.Dense[int64])
	require.True(t, ok)
	assert.GreaterOrEqual(t, d.Cap(), 128)
}

func TestValues_Cursor(t *testing.T) {
	m := New1[string, int]()
	m.Emplace("a", 1)
	m.Emplace("b", 2)
	m.Emplace("a", 3)

	c := m.Values().Cursor()
	var got []int
	for c.Next() {
		assert.Equal(t, len(got), c.Index())
		got = append(got, *c.Row().V0)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, c.Next())

	rows := m.Values()
	assert.Equal(t, 3, *rows.At(2).V0)
	assert.Panics(t, func() { rows.At(3) })
}

func TestValues_DetectsDivergedColumns(t *testing.T) {
	m := New2[int, int, int]()
	m.Emplace(1, 1, 1)

	// Appending behind the map's back breaks the column invariant.
	m.Columns().V1.Append(2)

	assert.Panics(t, func() { m.Values() })
}

func TestMap4(t *testing.T) {
	m := New4[int, int8, int16, int32, int64]()
	m.Emplace(1, 1, 2, 3, 4)
	require.NoError(t, m.Insert(2, 5, 6, 7, 8))

	got, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, tuple.Of4[int8, int16, int32, int64](5, 6, 7, 8), got)
	assert.Equal(t, 4, got.Arity())
}

func TestEarlyBreak(t *testing.T) {
	m := New1[int, int](WithCapacity(10))
	for i := 0; i < 10; i++ {
		m.Emplace(i, i)
	}

	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	n = 0
	for range m.Values().All() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

// boxedColumn stores every element in its own allocation.
type boxedColumn[T any] struct {
	elems []*T
}

func (c *boxedColumn[T]) Append(v T) { c.elems = append(c.elems, &v) }

func (c *boxedColumn[T]) At(i int) *T { return c.elems[i] }

func (c *boxedColumn[T]) Len() int { return len(c.elems) }

func TestNewColumns(t *testing.T) {
	ids := &boxedColumn[int]{}
	names := column.NewDense[string](0)

	m, err := NewColumns2[string, int, string](nil, ids, names)
	require.NoError(t, err)

	m.Emplace("a", 1, "one")
	m.Emplace("b", 2, "two")
	m.Emplace("a", 3, "orphan")

	assert.Equal(t, 3, ids.Len())
	assert.Equal(t, 3, names.Len())
	assert.Same(t, ids, m.Columns().V0)

	r := m.Row(1)
	assert.Same(t, ids.At(1), r.V0)
	assert.Equal(t, "two", *r.V1)

	*r.V0 = 20
	got, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, tuple.Of2(20, "two"), got)

	var values []int
	for _, r := range m.Values().All() {
		values = append(values, *r.V0)
	}
	assert.Equal(t, []int{1, 20, 3}, values)
	assert.Equal(t, Stats{Rows: 3, Keys: 2, Orphans: 1}, m.Stats())
}

func TestNewColumns_WithIndex(t *testing.T) {
	m, err := NewColumns1[int, string](index.NewSorted[int](), &boxedColumn[string]{}, WithColumnKind(column.KindPaged))
	require.NoError(t, err)
	m.Emplace(2, "b")
	m.Emplace(1, "a")

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2}, keys)
	assert.IsType(t, &boxedColumn[string]{}, m.Columns().V0)
}

func TestNewColumns_Rejects(t *testing.T) {
	full := column.NewDense[int](0)
	full.Append(1)

	stale := index.NewHash[int](0)
	stale.Insert(1, 0)

	tests := []struct {
		name string
		idx  index.Index[int]
		col  column.Column[int]
		want error
	}{
		{"non-empty column", nil, full, ErrInvalidColumns},
		{"nil column", nil, nil, ErrInvalidColumns},
		{"non-empty index", stale, column.NewDense[int](0), ErrIndexNotEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewColumns1[int, int](tt.idx, tt.col)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, m)
		})
	}
}

func TestRowID(t *testing.T) {
	assert.Equal(t, uint32(7), rowID(7))

	if strconv.IntSize < 64 {
		t.Skip("int cannot exceed the uint32 row space")
	}
	var last uint64 = math.MaxUint32
	assert.Equal(t, uint32(math.MaxUint32), rowID(int(last)))
	assert.Panics(t, func() { rowID(int(last + 1)) })
}

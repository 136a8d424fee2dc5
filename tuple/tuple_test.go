package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	x := Of2(1, 2.3)

	var order []string
	ForEach2(x,
		func(v int) {
			assert.Equal(t, 1, v)
			order = append(order, "int")
		},
		func(v float64) {
			assert.Equal(t, 2.3, v)
			order = append(order, "float64")
		},
	)

	assert.Equal(t, []string{"int", "float64"}, order)
}

func TestForEach_MutatesThroughPointers(t *testing.T) {
	x := Of3(1, "a", false)

	ForEach3(Fields3(&x),
		func(v *int) { *v = 10 },
		func(v *string) { *v += "b" },
		func(v *bool) { *v = true },
	)

	assert.Equal(t, Of3(10, "ab", true), x)
}

func TestAll_ShortCircuits(t *testing.T) {
	x := Of2(1, 2)

	seen := map[int]bool{}
	pred := func(v int) bool {
		seen[v] = true
		return v == 2
	}

	assert.False(t, All2(x, pred, pred))
	assert.Len(t, seen, 1, "second predicate must not run after the first fails")
	assert.True(t, seen[1])
}

func TestAll(t *testing.T) {
	positive := func(v int) bool { return v > 0 }
	nonEmpty := func(s string) bool { return s != "" }

	tests := []struct {
		name string
		in   T3[int, string, int]
		want bool
	}{
		{"all hold", Of3(1, "x", 2), true},
		{"first fails", Of3(0, "x", 2), false},
		{"middle fails", Of3(1, "", 2), false},
		{"last fails", Of3(1, "x", -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			count := func(v int) bool { calls++; return positive(v) }
			got := All3(tt.in, count, nonEmpty, count)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, calls, 2)
		})
	}
}

func TestMap(t *testing.T) {
	a := Of2(1, 2)

	doubled := Map2(a,
		func(v int) int { return 2 * v },
		func(v int) int { return 2 * v },
	)
	assert.Equal(t, Of2(2, 4), doubled)
	assert.Equal(t, Of2(1, 2), a, "input must be untouched")
}

func TestMap_PreservesReferences(t *testing.T) {
	a := Of2(1, 2)

	refs := Map2(Fields2(&a),
		func(p *int) *int { return p },
		func(p *int) *int { return p },
	)
	require.Same(t, &a.V0, refs.V0)
	require.Same(t, &a.V1, refs.V1)

	*refs.V1 = 7
	assert.Equal(t, 7, a.V1)
}

func TestMap_MixedCategories(t *testing.T) {
	a := Of2(3, "x")

	// Field 0 becomes a copy, field 1 stays a reference.
	out := Map2(Fields2(&a),
		func(p *int) int { return *p },
		func(p *string) *string { return p },
	)
	out.V0 = 100
	*out.V1 = "y"

	assert.Equal(t, 3, a.V0)
	assert.Equal(t, "y", a.V1)
}

func TestMap_Order(t *testing.T) {
	var order []int
	record := func(i int) func(int) int {
		return func(v int) int {
			order = append(order, i)
			return v
		}
	}

	Map4(Of4(0, 0, 0, 0), record(0), record(1), record(2), record(3))
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestZip(t *testing.T) {
	a := Of2(1, 2.2)
	b := Of2(3.3, 5)

	x := Zip2(a, b)
	assert.Equal(t, PairOf(1, 3.3), x.V0)
	assert.Equal(t, PairOf(2.2, 5), x.V1)
}

func TestZip_PreservesReferences(t *testing.T) {
	a := Of2(1, 2.2)
	b := Of2(3.3, 5)

	x := Zip2(Fields2(&a), b)
	*x.V0.First = 9
	assert.Equal(t, 9, a.V0)
	assert.Equal(t, 3.3, x.V0.Second)
}

func TestConst(t *testing.T) {
	v := 42
	c := ConstOf(&v)
	assert.False(t, c.IsNil())
	assert.Equal(t, 42, c.Get())

	v = 43
	assert.Equal(t, 43, c.Get(), "Const must observe the referenced value, not a copy")

	var zero Const[int]
	assert.True(t, zero.IsNil())
}

func TestArity(t *testing.T) {
	assert.Equal(t, 1, Of1(1).Arity())
	assert.Equal(t, 2, Of2(1, "a").Arity())
	assert.Equal(t, 3, Of3(1, "a", 2.0).Arity())
	assert.Equal(t, 4, Of4(1, "a", 2.0, true).Arity())
}

func TestPrimitivesDoNotAllocate(t *testing.T) {
	x := Of4(1, 2, 3, 4)
	id := func(v int) int { return v }
	yes := func(int) bool { return true }
	sink := 0
	add := func(v int) { sink += v }

	allocs := testing.AllocsPerRun(100, func() {
		ForEach4(x, add, add, add, add)
		_ = All4(x, yes, yes, yes, yes)
		_ = Map4(x, id, id, id, id)
		_ = Zip4(x, x)
	})
	assert.Zero(t, allocs)
}

package mergesort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkas/structo/mergesort"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// TestSort_NilCompare verifies the comparator is required.
func TestSort_NilCompare(t *testing.T) {
	err := mergesort.Sort([]int{3, 1, 2}, nil)
	require.ErrorIs(t, err, mergesort.ErrNilCompare)
}

// TestSort_BadBase verifies eager option validation.
func TestSort_BadBase(t *testing.T) {
	assert.PanicsWithValue(t, mergesort.ErrBadBase.Error(), func() {
		mergesort.WithSortBase(0)(nil)
	})
	assert.PanicsWithValue(t, mergesort.ErrBadBase.Error(), func() {
		mergesort.WithMergeBase(-1)(nil)
	})
}

// TestSort_Small covers the trivial lengths that skip the merge machinery.
func TestSort_Small(t *testing.T) {
	require.NoError(t, mergesort.Sort(nil, intCmp))

	s := []int{42}
	require.NoError(t, mergesort.Sort(s, intCmp))
	assert.Equal(t, []int{42}, s)

	s = []int{2, 1}
	require.NoError(t, mergesort.Sort(s, intCmp))
	assert.Equal(t, []int{1, 2}, s)
}

// TestSort_MatchesReference cross-checks random inputs against sort.Ints
// for several base cutoffs, including cutoffs small enough to force deep
// concurrent splitting of both the sorts and the merges.
func TestSort_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	cases := []struct {
		name string
		n    int
		opts []mergesort.Option
	}{
		{name: "defaults", n: 10_000},
		{name: "tiny_bases", n: 5_000, opts: []mergesort.Option{
			mergesort.WithSortBase(4),
			mergesort.WithMergeBase(4),
		}},
		{name: "sort_base_only", n: 3_000, opts: []mergesort.Option{
			mergesort.WithSortBase(16),
		}},
		{name: "duplicates", n: 4_000, opts: []mergesort.Option{
			mergesort.WithSortBase(8),
			mergesort.WithMergeBase(8),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := make([]int, tc.n)
			for i := range s {
				if tc.name == "duplicates" {
					s[i] = rng.Intn(10)
				} else {
					s[i] = rng.Int()
				}
			}
			want := append([]int(nil), s...)
			sort.Ints(want)

			require.NoError(t, mergesort.Sort(s, intCmp, tc.opts...))
			assert.Equal(t, want, s)
		})
	}
}

// TestSort_PresortedAndReversed exercises the already-ordered fast paths of
// the split-point search.
func TestSort_PresortedAndReversed(t *testing.T) {
	n := 2_000
	opts := []mergesort.Option{
		mergesort.WithSortBase(8),
		mergesort.WithMergeBase(8),
	}

	asc := make([]int, n)
	for i := range asc {
		asc[i] = i
	}
	require.NoError(t, mergesort.Sort(asc, intCmp, opts...))
	assert.True(t, sort.IntsAreSorted(asc))

	desc := make([]int, n)
	for i := range desc {
		desc[i] = n - i
	}
	require.NoError(t, mergesort.Sort(desc, intCmp, opts...))
	assert.True(t, sort.IntsAreSorted(desc))
}

// TestSort_CustomType sorts by a struct field through the comparator.
func TestSort_CustomType(t *testing.T) {
	type job struct {
		name string
		cost int
	}
	s := []job{{"c", 3}, {"a", 1}, {"b", 2}}

	err := mergesort.Sort(s, func(a, b job) int { return intCmp(a.cost, b.cost) })
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string{s[0].name, s[1].name, s[2].name})
}

package infra

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLessFuncCompare(t *testing.T) {
	testcases := []struct {
		name     string
		i, j     int
		expected CmpResult
	}{
		{"less", 1, 2, LessThan},
		{"equal", 2, 2, EqualTo},
		{"greater", 3, 2, GreaterThan},
		{"negative", -7, 0, LessThan},
	}
	less := LessFunc[int](OrderedLess[int])
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, less.Compare(tc.i, tc.j))
		})
	}
}

func TestLessFuncCompare_Reverse(t *testing.T) {
	less := LessFunc[uint64](OrderedLess[uint64]).Reverse()
	require.Equal(t, GreaterThan, less.Compare(1, 2))
	require.Equal(t, LessThan, less.Compare(2, 1))
	require.Equal(t, EqualTo, less.Compare(2, 2))
}

func TestLessFuncCompare_EquivalenceByOrdering(t *testing.T) {
	type student struct {
		name string
		gpa  float64
	}
	// Only gpa takes part in the ordering, so different names compare equal.
	less := LessFunc[student](func(i, j student) bool {
		return i.gpa < j.gpa
	})
	require.Equal(t, EqualTo, less.Compare(student{"a", 3.5}, student{"b", 3.5}))
	require.Equal(t, LessThan, less.Compare(student{"a", 3.4}, student{"b", 3.5}))

	caseless := LessFunc[string](func(i, j string) bool {
		return strings.ToLower(i) < strings.ToLower(j)
	})
	require.Equal(t, EqualTo, caseless.Compare("Key", "kEY"))
}

func TestLessFuncCompare_NaN(t *testing.T) {
	less := LessFunc[float64](OrderedLess[float64])
	// NaN is unordered against everything, the trichotomy reports equal.
	require.Equal(t, EqualTo, less.Compare(math.NaN(), 1.0))
	require.Equal(t, LessThan, less.Compare(math.Inf(-1), 1.0))
}

func TestCmpResultString(t *testing.T) {
	require.Equal(t, "LessThan", LessThan.String())
	require.Equal(t, "EqualTo", EqualTo.String())
	require.Equal(t, "GreaterThan", GreaterThan.String())
	require.Equal(t, "Unknown", CmpResult(5).String())
}

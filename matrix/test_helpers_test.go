// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over the test algebras.
//   • Keep random inputs seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/internal/semirings"
	"github.com/katalvlaran/semiring/matrix"
)

// inf is the tropical "no path".
const inf = semirings.TropicalInf

var (
	trop  = semirings.Tropical{}
	prob  = semirings.Probability{Eps: 1e-9}
	boole = semirings.Boolean{}
	lang  = semirings.Language{MaxLen: 3}
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix[T] to forward all methods.
//   - Use hide[T]{X} in tests to force the generic (non-*Dense) kernel paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide[T any] struct{ matrix.Matrix[T] }

// MustDense builds a matrix from rows of elements or fails the test.
func MustDense[T any](t *testing.T, sr core.Semiring[T], rows ...[]T) *matrix.Dense[T] {
	t.Helper()
	var flat []T
	for _, r := range rows {
		flat = append(flat, r...)
	}
	m, err := matrix.NewDense[T](sr, len(rows), flat)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireMatrixEqual compares two matrices cell by cell under the algebra's
// Equal and reports the first differing cell with both renderings.
func RequireMatrixEqual[T any](t *testing.T, want, got *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	sr := want.Algebra()
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt[T](t, want, i, j), MustAt[T](t, got, i, j)
			require.Truef(t, sr.Equal(w, g), "cell (%d,%d): want %s, got %s\nwant:\n%s\ngot:\n%s",
				i, j, sr.Format(w), sr.Format(g), want, got)
		}
	}
}

// randomTropical returns an n×n tropical matrix with non-negative weights;
// roughly half the cells are "no edge".
func randomTropical(rng *rand.Rand, n int) *matrix.Dense[int64] {
	elems := make([]int64, n*n)
	for i := range elems {
		if rng.Intn(2) == 0 {
			elems[i] = inf
		} else {
			elems[i] = int64(rng.Intn(20))
		}
	}
	m, _ := matrix.NewDense[int64](trop, n, elems)

	return m
}

// randomProbability returns an n×n substochastic matrix (row sums < 1), so
// every closure in both kernels stays finite.
func randomProbability(rng *rand.Rand, n int) *matrix.Dense[float64] {
	elems := make([]float64, n*n)
	for i := range elems {
		if rng.Intn(3) > 0 {
			elems[i] = rng.Float64() * 0.9 / float64(n)
		}
	}
	m, _ := matrix.NewDense[float64](prob, n, elems)

	return m
}

// randomLanguage returns an n×n matrix of small word sets over {a, b}.
func randomLanguage(rng *rand.Rand, n int) *matrix.Dense[[]string] {
	choices := [][]string{lang.Zero(), lang.Zero(), lang.Words("a"), lang.Words("b"), lang.Words("a", "b"), lang.Words("ab")}
	elems := make([][]string, n*n)
	for i := range elems {
		elems[i] = choices[rng.Intn(len(choices))]
	}
	m, _ := matrix.NewDense[[]string](lang, n, elems)

	return m
}

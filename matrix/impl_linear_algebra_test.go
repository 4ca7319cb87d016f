// SPDX-License-Identifier: MIT
// Package matrix_test verifies the semiring matrix algebra kernels.
//
// Purpose:
//   - Lock in the identities A·I == A, I·A == A, A + 0 == A.
//   - Check associativity of Mul on random compatible shapes.
//   - Prove fast path (*Dense) and generic path (hidden type) agree.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/matrix"
)

// TestMul_Identity checks A·I == A == I·A for tropical and language matrices.
func TestMul_Identity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		a := randomTropical(rng, n)
		id, err := matrix.NewIdentity[int64](trop, n)
		require.NoError(t, err)

		right, err := matrix.Mul[int64](a, id)
		require.NoError(t, err)
		RequireMatrixEqual(t, a, right)
		left, err := matrix.Mul[int64](id, a)
		require.NoError(t, err)
		RequireMatrixEqual(t, a, left)

		l := randomLanguage(rng, n)
		lid, err := matrix.IdentityLike[[]string](l)
		require.NoError(t, err)
		lr, err := matrix.Mul[[]string](l, lid)
		require.NoError(t, err)
		RequireMatrixEqual(t, l, lr)
	}
}

// TestAdd_NullIsIdentity checks A + null(n) == A.
func TestAdd_NullIsIdentity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	a := randomTropical(rng, 5)
	null, err := matrix.NewNull[int64](trop, 5)
	require.NoError(t, err)
	sum, err := matrix.Add[int64](a, null)
	require.NoError(t, err)
	RequireMatrixEqual(t, a, sum)
}

// TestMul_Associative checks (A·B)·C == A·(B·C) on rectangular shapes, with
// a non-commutative algebra so operand order is exercised.
func TestMul_Associative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		r, k, l, c := 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4)
		a := randomLanguageRect(rng, r, k)
		b := randomLanguageRect(rng, k, l)
		cc := randomLanguageRect(rng, l, c)

		ab, err := matrix.Mul[[]string](a, b)
		require.NoError(t, err)
		abc1, err := matrix.Mul[[]string](ab, cc)
		require.NoError(t, err)

		bc, err := matrix.Mul[[]string](b, cc)
		require.NoError(t, err)
		abc2, err := matrix.Mul[[]string](a, bc)
		require.NoError(t, err)

		RequireMatrixEqual(t, abc1, abc2)
	}
}

// TestMul_NonCommutativeOrder verifies that cell products keep a-then-b order.
func TestMul_NonCommutativeOrder(t *testing.T) {
	t.Parallel()

	a := MustDense[[]string](t, lang, [][]string{lang.Words("a"), lang.Words("b")})
	b := MustDense[[]string](t, lang, [][]string{lang.Words("c")}, [][]string{lang.Words("d")})
	ab, err := matrix.Mul[[]string](a, b)
	require.NoError(t, err)
	require.Equal(t, 1, ab.Rows())
	require.Equal(t, lang.Words("ac", "bd"), MustAt[[]string](t, ab, 0, 0))
}

// TestKernels_FastPathMatchesGeneric runs Add and Mul with one operand
// hidden behind the interface and compares with the *Dense fast path.
func TestKernels_FastPathMatchesGeneric(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	a := randomTropical(rng, 4)
	b := randomTropical(rng, 4)

	fast, err := matrix.Mul[int64](a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul[int64](hide[int64]{a}, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, fast, slow)

	fastSum, err := matrix.Add[int64](a, b)
	require.NoError(t, err)
	slowSum, err := matrix.Add[int64](a, hide[int64]{b})
	require.NoError(t, err)
	RequireMatrixEqual(t, fastSum, slowSum)
}

// TestKernels_DimensionErrors covers the validator sentinels.
func TestKernels_DimensionErrors(t *testing.T) {
	t.Parallel()

	a := MustDense[int64](t, trop, []int64{1, 2})
	b := MustDense[int64](t, trop, []int64{1, 2, 3})

	_, err := matrix.Add[int64](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[int64](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add[int64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense[int64]
	_, err = matrix.Mul[int64](nilDense, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale_Transpose_Map covers the remaining cell-wise kernels.
func TestScale_Transpose_Map(t *testing.T) {
	t.Parallel()

	m := MustDense[[]string](t, lang, [][]string{lang.Words("a"), lang.Words("b")})
	left, err := matrix.ScaleLeft[[]string](lang.Words("x"), m)
	require.NoError(t, err)
	require.Equal(t, lang.Words("xa"), MustAt[[]string](t, left, 0, 0))
	right, err := matrix.ScaleRight[[]string](m, lang.Words("x"))
	require.NoError(t, err)
	require.Equal(t, lang.Words("bx"), MustAt[[]string](t, right, 0, 1))

	tr, err := matrix.Transpose[[]string](m)
	require.NoError(t, err)
	require.Equal(t, 2, tr.Rows())
	require.Equal(t, lang.Words("b"), MustAt[[]string](t, tr, 1, 0))

	reach, err := matrix.Map[[]string, bool](m, boole, func(ws []string) bool { return len(ws) > 0 })
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, reach.Elements())

	_, err = matrix.Map[[]string, bool](m, nil, func([]string) bool { return false })
	require.ErrorIs(t, err, matrix.ErrNilAlgebra)
}

// randomLanguageRect returns an r×c language matrix.
func randomLanguageRect(rng *rand.Rand, r, c int) *matrix.Dense[[]string] {
	sq := randomLanguage(rng, r*c)
	m, _ := matrix.NewDense[[]string](lang, r, sq.Elements()[:r*c])

	return m
}

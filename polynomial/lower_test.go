// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
	"github.com/katalvlaran/semiring/matrix"
	"github.com/katalvlaran/semiring/polynomial"
)

// TestMakeFree_RoundTrip lowers a tropical polynomial, evaluates the graph
// back through the interner's inverse valuation and compares with direct
// evaluation.
func TestMakeFree_RoundTrip(t *testing.T) {
	reg, v := registry("x", "y")
	x, y := v[0], v[1]

	p := polynomial.FromTerms[int64](trop, term[int64](3, x, x), term[int64](5, x, y), term[int64](0, y))
	in := polynomial.NewInterner[int64](trop, reg)
	f := free.NewFactory()
	h := p.MakeFree(f, in)

	require.Equal(t, 2, in.Len(), "3 and 5 interned; the one coefficient 0 is not")
	val := in.Valuation()
	_, clash := val[x]
	require.False(t, clash, "fresh variables never reuse registered ones")

	val[x], val[y] = 1, 10
	want := p.Eval(core.Valuation[int64]{x: 1, y: 10})
	require.EqualValues(t, 5, want)
	require.Equal(t, want, free.Eval[int64](f, h, trop, val))

	require.True(t, polynomial.Zero[int64](trop).MakeFree(f, in) == free.Empty)
}

func TestInterner(t *testing.T) {
	reg := core.NewRegistry()

	hashed := polynomial.NewInterner[int64](trop, reg)
	a := hashed.Intern(3)
	require.Equal(t, a, hashed.Intern(3))
	require.NotEqual(t, a, hashed.Intern(4))
	require.Equal(t, 2, hashed.Len())

	// Probability has no Hasher: lookups scan with its tolerant Equal.
	scanned := polynomial.NewInterner[float64](prob, reg)
	h := scanned.Intern(0.5)
	require.Equal(t, h, scanned.Intern(0.5+1e-12))
	require.NotEqual(t, h, scanned.Intern(0.25))
	require.Equal(t, 2, scanned.Len())
	require.InDelta(t, 0.5, scanned.Valuation()[h], 1e-12)

	c := scanned.Valuation()
	delete(c, h)
	require.Equal(t, 2, scanned.Len(), "Valuation returns a copy")
}

func TestMakeFreeMatrix_SharesInterner(t *testing.T) {
	reg, v := registry("x", "y")
	x, y := v[0], v[1]

	p := polynomial.FromTerms[int64](trop, term[int64](3, x, x), term[int64](5, x, y))
	cells := []*polynomial.Polynomial[int64]{p, polynomial.Constant[int64](trop, 3)}
	m, err := matrix.NewDense[*polynomial.Polynomial[int64]](polynomial.NewRing[int64](trop), 1, cells)
	require.NoError(t, err)

	f := free.NewFactory()
	in := polynomial.NewInterner[int64](trop, reg)
	fm, err := polynomial.MakeFreeMatrix[int64](m, f, in)
	require.NoError(t, err)
	require.Equal(t, 2, in.Len())

	val := in.Valuation()
	val[x], val[y] = 1, 0
	got, err := free.EvalMatrix[int64](f, fm, trop, val)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 3}, got.Elements())

	_, err = polynomial.MakeFreeMatrix[int64](nil, f, in)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
package free_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
	"github.com/katalvlaran/semiring/internal/semirings"
	"github.com/katalvlaran/semiring/matrix"
)

// TestEval_SharedNodeEvaluatedOnce builds e = x·x with x = a+b and checks
// that x is computed once although e references it twice.
func TestEval_SharedNodeEvaluatedOnce(t *testing.T) {
	v := vars("a", "b")
	f := free.NewFactory()
	x := f.Add(f.Element(v[0]), f.Element(v[1]))
	e := f.Mul(x, x)

	sr := &tally[uint64]{Semiring: count}
	ev := free.NewEvaluator[uint64](f, sr, core.Valuation[uint64]{v[0]: 2, v[1]: 3})
	require.Equal(t, uint64(25), ev.Eval(e))
	require.Equal(t, 1, sr.adds)
	require.Equal(t, 1, sr.muls)
	require.Equal(t, 4, ev.Evaluations(), "a, b, a+b, (a+b)·(a+b)")

	require.Equal(t, uint64(25), ev.Eval(e))
	require.Equal(t, 4, ev.Evaluations(), "memoized root")

	// A second root sharing x reuses its memo.
	e2 := f.Add(x, f.Element(v[0]))
	require.Equal(t, uint64(7), ev.Eval(e2))
	require.Equal(t, 5, ev.Evaluations())
	require.Equal(t, 2, sr.adds)
}

// TestEval_DeepChain evaluates a left-deep product far deeper than a
// recursive walk could handle comfortably.
func TestEval_DeepChain(t *testing.T) {
	const depth = 100_000
	v := vars("x")
	f := free.NewFactory(free.WithCapacity(depth))
	x := f.Element(v[0])
	e := x
	for i := 0; i < depth; i++ {
		e = f.Mul(e, x)
	}
	got := free.Eval[int64](f, e, trop, core.Valuation[int64]{v[0]: 1})
	require.Equal(t, int64(depth+1), got)
}

func TestEval_Star(t *testing.T) {
	v := vars("x")
	f := free.NewFactory()
	s := f.Star(f.Element(v[0]))

	require.Equal(t, int64(0), free.Eval[int64](f, s, trop, core.Valuation[int64]{v[0]: 3}))
	require.Equal(t, semirings.TropicalNegInf, free.Eval[int64](f, s, trop, core.Valuation[int64]{v[0]: -1}))

	words := free.Eval[[]string](f, s, lang, core.Valuation[[]string]{v[0]: lang.Words("a")})
	require.Equal(t, lang.Words("", "a", "aa", "aaa", "aaaa"), words)
}

func TestEval_Preconditions(t *testing.T) {
	v := vars("x", "y")
	f := free.NewFactory()
	x, y := f.Element(v[0]), f.Element(v[1])

	RequirePanicsIs(t, core.ErrUnmappedVariable, func() {
		free.Eval[int64](f, f.Add(x, y), trop, core.Valuation[int64]{v[0]: 1})
	})
	RequirePanicsIs(t, free.ErrNotStarable, func() {
		free.Eval[uint64](f, f.Star(x), count, core.Valuation[uint64]{v[0]: 1})
	})
	RequirePanicsIs(t, free.ErrInvalidHandle, func() {
		free.Eval[int64](f, 4096, trop, nil)
	})

	// Star-free graphs evaluate over non-starable algebras.
	require.Equal(t, uint64(6), free.Eval[uint64](f, f.Mul(x, y), count, core.Valuation[uint64]{v[0]: 2, v[1]: 3}))
}

// TestEval_NodesCreatedAfterEvaluator checks that an evaluator picks up
// nodes built after its snapshot.
func TestEval_NodesCreatedAfterEvaluator(t *testing.T) {
	v := vars("x")
	f := free.NewFactory()
	x := f.Element(v[0])
	ev := free.NewEvaluator[uint64](f, count, core.Valuation[uint64]{v[0]: 4})
	require.Equal(t, uint64(4), ev.Eval(x))

	later := f.Add(x, x)
	require.Equal(t, uint64(8), ev.Eval(later))
}

// TestEvalMatrix_ClosureCommutesWithEvaluation closes a symbolic matrix with
// both kernels, evaluates it into the tropical algebra and compares with the
// closure of the evaluated matrix.
func TestEvalMatrix_ClosureCommutesWithEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for n := 1; n <= 5; n++ {
		reg := core.NewRegistry()
		f := free.NewFactory()
		alg := free.NewAlgebra(f)
		val := core.Valuation[int64]{}

		sym := make([]free.Handle, n*n)
		conc := make([]int64, n*n)
		for i := range sym {
			conc[i] = semirings.TropicalInf
			if rng.Intn(3) == 0 {
				continue // structural zero
			}
			v := reg.Fresh()
			w := int64(rng.Intn(10))
			val[v] = w
			sym[i] = alg.Var(v)
			conc[i] = w
		}
		symM, err := matrix.NewDense[free.Handle](alg, n, sym)
		require.NoError(t, err)
		concM, err := matrix.NewDense[int64](trop, n, conc)
		require.NoError(t, err)

		want, err := matrix.FloydWarshall[int64](trop, concM)
		require.NoError(t, err)

		for _, opt := range []matrix.Option{matrix.WithFloydWarshall(), matrix.WithRecursive()} {
			symStar, err := matrix.Star[free.Handle](alg, symM, opt)
			require.NoError(t, err)
			got, err := free.EvalMatrix[int64](f, symStar, trop, val)
			require.NoError(t, err)
			require.Equal(t, want.Elements(), got.Elements(), "n=%d %s", n, matrix.NewMatrixOptions(opt).Algorithm())
		}
	}
}

// TestEvalMatrix_SharesEvaluator checks that identical cells cost one
// evaluation in total.
func TestEvalMatrix_SharesEvaluator(t *testing.T) {
	v := vars("a", "b")
	f := free.NewFactory()
	alg := free.NewAlgebra(f)
	x := f.Add(f.Element(v[0]), f.Element(v[1]))
	e := f.Mul(x, x)

	m, err := matrix.NewFilled[free.Handle](alg, 2, 2, e)
	require.NoError(t, err)
	sr := &tally[uint64]{Semiring: count}
	got, err := free.EvalMatrix[uint64](f, m, sr, core.Valuation[uint64]{v[0]: 1, v[1]: 1})
	require.NoError(t, err)
	require.Equal(t, []uint64{4, 4, 4, 4}, got.Elements())
	require.Equal(t, 1, sr.adds)
	require.Equal(t, 1, sr.muls)

	_, err = free.EvalMatrix[uint64](f, nil, count, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

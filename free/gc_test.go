// SPDX-License-Identifier: MIT
package free_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
)

func TestGC_ReclaimsUnreachable(t *testing.T) {
	v := vars("x", "y")
	f := free.NewFactory()
	x, y := f.Element(v[0]), f.Element(v[1])
	keep := f.Add(x, y)
	drop := f.Mul(f.Star(x), y)
	require.Equal(t, 7, f.Len())

	reclaimed := f.GC(keep)
	require.Equal(t, 2, reclaimed, "x* and x*·y")
	require.Equal(t, 5, f.Len())
	require.Equal(t, uint64(1), f.Epoch())
	RequirePanicsIs(t, free.ErrInvalidHandle, func() { f.Kind(drop) })

	st := f.Stats()
	require.Equal(t, 2, st.Free)
	require.Equal(t, 5, st.Live)
	require.Equal(t, 2, st.ByKind[free.KindElement])
	require.Equal(t, 1, st.ByKind[free.KindAddition])
	require.Zero(t, st.ByKind[free.KindStar])

	// Survivors still evaluate with a fresh evaluator.
	require.Equal(t, uint64(5), free.Eval[uint64](f, keep, count, core.Valuation[uint64]{v[0]: 2, v[1]: 3}))
}

// TestGC_ReusesSlots checks that reclaimed slots are handed out again and
// that dropped structures can be rebuilt.
func TestGC_ReusesSlots(t *testing.T) {
	v := vars("x", "y")
	f := free.NewFactory()
	x, y := f.Element(v[0]), f.Element(v[1])
	s := f.Star(x)
	drop := f.Mul(s, y)
	size := f.Len()

	f.GC(x, y)
	require.Equal(t, size-2, f.Len())

	again := f.Star(x)
	require.Equal(t, s, again, "lowest reclaimed slot is reused first")
	rebuilt := f.Mul(again, y)
	require.Equal(t, drop, rebuilt)
	require.Equal(t, free.KindMultiplication, f.Kind(rebuilt))
	require.Equal(t, size, f.Len())
	require.Zero(t, f.Stats().Free)
}

func TestGC_StaleEvaluator(t *testing.T) {
	v := vars("x")
	f := free.NewFactory()
	x := f.Element(v[0])
	ev := free.NewEvaluator[uint64](f, count, core.Valuation[uint64]{v[0]: 1})
	require.Equal(t, uint64(1), ev.Eval(x))

	f.GC(x)
	RequirePanicsIs(t, free.ErrStaleEvaluator, func() { ev.Eval(x) })
}

func TestGC_InvalidRoot(t *testing.T) {
	f := free.NewFactory()
	RequirePanicsIs(t, free.ErrInvalidHandle, func() { f.GC(42) })
	require.Zero(t, f.GC())
	require.Equal(t, 2, f.Len(), "identities always survive")
}

// SPDX-License-Identifier: MIT
// Package core_test verifies the semiring contract helpers and the law
// checker against the concrete algebras used throughout the test suite.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/internal/semirings"
)

// TestCheckLaws_ConcreteAlgebras runs the sample-based law checker over every
// test algebra. Each algebra must satisfy the axioms and its declared tags.
func TestCheckLaws_ConcreteAlgebras(t *testing.T) {
	t.Parallel()

	t.Run("Boolean", func(t *testing.T) {
		require.NoError(t, core.CheckLaws[bool](semirings.Boolean{}, []bool{false, true}))
	})
	t.Run("Tropical", func(t *testing.T) {
		samples := []int64{semirings.TropicalInf, 0, 1, 3, 7, 42}
		require.NoError(t, core.CheckLaws[int64](semirings.Tropical{}, samples))
	})
	t.Run("Counting", func(t *testing.T) {
		require.NoError(t, core.CheckLaws[uint64](semirings.Counting{}, []uint64{0, 1, 2, 5, 11}))
	})
	t.Run("Probability", func(t *testing.T) {
		samples := []float64{0, 0.125, 0.25, 0.5, 1}
		require.NoError(t, core.CheckLaws[float64](semirings.Probability{}, samples))
	})
	t.Run("LetterSet", func(t *testing.T) {
		samples := []uint64{0, 1, semirings.Letter(0), semirings.Letter(1), semirings.Letter(0) | semirings.Letter(2)}
		require.NoError(t, core.CheckLaws[uint64](semirings.LetterSet{}, samples))
	})
	t.Run("Language", func(t *testing.T) {
		l := semirings.Language{MaxLen: 4}
		samples := [][]string{l.Zero(), l.One(), l.Words("a"), l.Words("b", "ab"), l.Words("", "ba")}
		require.NoError(t, core.CheckLaws[[]string](l, samples))
	})
}

// lyingAlgebra claims idempotence over the counting numbers.
type lyingAlgebra struct{ semirings.Counting }

func (lyingAlgebra) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.Idempotent}
}

// TestCheckLaws_DetectsFalseTag verifies that a wrongly declared tag is reported.
func TestCheckLaws_DetectsFalseTag(t *testing.T) {
	t.Parallel()

	err := core.CheckLaws[uint64](lyingAlgebra{}, []uint64{0, 1, 2})
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrLawViolation)
	assert.Contains(t, err.Error(), "idempotence")

	// The non-commutative language algebra must not pass as commutative.
	l := semirings.Language{MaxLen: 3}
	lying := commutativeLanguage{l}
	err = core.CheckLaws[[]string](lying, [][]string{l.Words("a"), l.Words("b")})
	require.ErrorIs(t, err, core.ErrLawViolation)
	assert.Contains(t, err.Error(), "multiplicative commutativity")
}

type commutativeLanguage struct{ semirings.Language }

func (commutativeLanguage) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.Idempotent}
}

// TestIdempotenceBoundary checks a+a == a on idempotent algebras and finds a
// counterexample on a non-idempotent one.
func TestIdempotenceBoundary(t *testing.T) {
	t.Parallel()

	trop := semirings.Tropical{}
	require.True(t, trop.Laws().IsIdempotent())
	for _, a := range []int64{0, 1, 9, semirings.TropicalInf} {
		assert.True(t, trop.Equal(trop.Add(a, a), a), "tropical %d", a)
	}

	ls := semirings.LetterSet{}
	for _, a := range []uint64{0, 1, semirings.Letter(3)} {
		assert.True(t, ls.Equal(ls.Add(a, a), a), "letters %s", ls.Format(a))
	}

	cnt := semirings.Counting{}
	require.False(t, cnt.Laws().IsIdempotent())
	found := false
	for _, a := range []uint64{1, 2, 3} {
		if !cnt.Equal(cnt.Add(a, a), a) {
			found = true
		}
	}
	assert.True(t, found, "counting semiring must have a non-idempotent element")
}

// TestReplicate covers the zero count, doubling and the idempotent shortcut.
func TestReplicate(t *testing.T) {
	t.Parallel()

	cnt := semirings.Counting{}
	for n := uint64(0); n <= 17; n++ {
		require.Equal(t, 3*n, core.Replicate[uint64](cnt, 3, n), "n=%d", n)
	}

	trop := semirings.Tropical{}
	require.Equal(t, trop.Zero(), core.Replicate[int64](trop, 5, 0))
	require.Equal(t, int64(5), core.Replicate[int64](trop, 5, 1000))
}

// TestFolds covers Sum, Product and Power including their empty cases.
func TestFolds(t *testing.T) {
	t.Parallel()

	cnt := semirings.Counting{}
	assert.Equal(t, uint64(0), core.Sum[uint64](cnt))
	assert.Equal(t, uint64(1), core.Product[uint64](cnt))
	assert.Equal(t, uint64(10), core.Sum[uint64](cnt, 1, 2, 3, 4))
	assert.Equal(t, uint64(24), core.Product[uint64](cnt, 1, 2, 3, 4))
	assert.Equal(t, uint64(1), core.Power[uint64](cnt, 7, 0))
	assert.Equal(t, uint64(343), core.Power[uint64](cnt, 7, 3))

	// Power keeps left-to-right order for non-commutative algebras.
	l := semirings.Language{MaxLen: 6}
	assert.Equal(t, l.Words("abab"), core.Power[[]string](l, l.Words("ab"), 2))
	assert.Equal(t, l.Words("ab", "ba"), core.Sum[[]string](l, l.Words("ba"), l.Words("ab")))
}

// TestRequireCommutative verifies the runtime guard on declared tags.
func TestRequireCommutative(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { core.RequireCommutative[int64]("op", semirings.Tropical{}) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, core.ErrLawViolation))
		require.Contains(t, err.Error(), "NewThing")
	}()
	core.RequireCommutative[[]string]("NewThing", semirings.Language{MaxLen: 2})
}

// TestLaws_String documents the tag rendering.
func TestLaws_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "commutative, idempotent", semirings.Boolean{}.Laws().String())
	assert.Equal(t, "non-commutative, idempotent", semirings.Language{}.Laws().String())
	assert.Equal(t, "commutative, non-idempotent", semirings.Counting{}.Laws().String())
}

// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/internal/semirings"
	"github.com/katalvlaran/semiring/polynomial"
)

var (
	trop  = semirings.Tropical{}
	count = semirings.Counting{}
	prob  = semirings.Probability{Eps: 1e-9}
	lang  = semirings.Language{MaxLen: 4}
)

// RequirePanicsIs runs fn and requires it to panic with an error matching target.
func RequirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic matching %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// registry allocates named variables and returns the registry for later
// fresh allocations.
func registry(names ...string) (*core.Registry, []core.VarID) {
	reg := core.NewRegistry()
	out := make([]core.VarID, len(names))
	for i, n := range names {
		out[i] = reg.MustVar(n)
	}

	return reg, out
}

// term is shorthand for a coefficient times the product of vars.
func term[T any](c T, vars ...core.VarID) polynomial.Term[T] {
	return polynomial.Term[T]{Coeff: c, Monomial: polynomial.NewMonomial(vars...)}
}

// mono builds a canonical non-commutative monomial or fails the test.
func mono[T any](t *testing.T, sr core.Semiring[T], fs ...polynomial.Factor[T]) polynomial.NCMonomial[T] {
	t.Helper()
	m, ok := polynomial.NewNCMonomial(sr, fs...)
	require.True(t, ok, "monomial vanished")

	return m
}

// words is a constant factor of the language algebra.
func words(ws ...string) polynomial.Factor[[]string] {
	return polynomial.ConstFactor(lang.Words(ws...))
}

// nonCommutative wears the commutativity marker while declaring
// non-commutative laws, so the runtime law check has something to reject.
type nonCommutative struct{ semirings.Counting }

func (nonCommutative) Laws() core.Laws {
	return core.Laws{Commutativity: core.NonCommutative, Idempotence: core.NonIdempotent}
}

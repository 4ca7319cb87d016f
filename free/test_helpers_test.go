// SPDX-License-Identifier: MIT
package free_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/internal/semirings"
)

var (
	trop  = semirings.Tropical{}
	count = semirings.Counting{}
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

// vars allocates named variables from a fresh registry.
func vars(names ...string) []core.VarID {
	reg := core.NewRegistry()
	out := make([]core.VarID, len(names))
	for i, n := range names {
		out[i] = reg.MustVar(n)
	}

	return out
}

// tally wraps an algebra and counts Add and Mul calls.
type tally[T any] struct {
	core.Semiring[T]
	adds, muls int
}

func (c *tally[T]) Add(a, b T) T { c.adds++; return c.Semiring.Add(a, b) }
func (c *tally[T]) Mul(a, b T) T { c.muls++; return c.Semiring.Mul(a, b) }

// SPDX-License-Identifier: MIT

package free

import "github.com/katalvlaran/semiring/core"

// Algebra is the free semiring over the variables of one factory. Elements
// are handles; equality is handle identity, which hash-consing makes
// structural equality.
//
// The free semiring satisfies no law beyond the semiring axioms, so it is
// tagged non-commutative and non-idempotent.
type Algebra struct {
	f *Factory
}

var (
	_ core.Starable[Handle] = Algebra{}
	_ core.Hasher[Handle]   = Algebra{}
)

// NewAlgebra returns the algebra whose elements live in f.
func NewAlgebra(f *Factory) Algebra { return Algebra{f: f} }

// Factory returns the backing arena.
func (a Algebra) Factory() *Factory { return a.f }

// Var returns the leaf for v.
func (a Algebra) Var(v core.VarID) Handle { return a.f.Element(v) }

func (a Algebra) Zero() Handle           { return Empty }
func (a Algebra) One() Handle            { return Epsilon }
func (a Algebra) Add(x, y Handle) Handle { return a.f.Add(x, y) }
func (a Algebra) Mul(x, y Handle) Handle { return a.f.Mul(x, y) }
func (a Algebra) Star(x Handle) Handle   { return a.f.Star(x) }
func (a Algebra) Equal(x, y Handle) bool { return x == y }
func (a Algebra) Format(x Handle) string { return a.f.String(x) }
func (a Algebra) Hash(x Handle) uint64   { return uint64(x) }
func (a Algebra) Laws() core.Laws {
	return core.Laws{Commutativity: core.NonCommutative, Idempotence: core.NonIdempotent}
}

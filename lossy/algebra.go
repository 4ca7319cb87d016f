// SPDX-License-Identifier: MIT

package lossy

import (
	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
)

// Elem is an element of the lossy algebra: a node of the backing factory.
// The zero value is the algebra's zero.
type Elem struct {
	h free.Handle
}

// Handle returns the free-semiring node of e.
func (e Elem) Handle() free.Handle { return e.h }

// Algebra is the idempotent, non-commutative starable algebra the fixpoint
// solver works in. Elements are kept symbolic in a free.Factory and only
// take concrete values when evaluated with Eval.
//
// Idempotence is applied syntactically: x + x returns x without creating a
// node. Other idempotent identities hold only after evaluation.
type Algebra struct {
	f *free.Factory
}

var (
	_ core.Starable[Elem] = Algebra{}
	_ core.Hasher[Elem]   = Algebra{}
)

// NewAlgebra returns the lossy algebra over f.
func NewAlgebra(f *free.Factory) Algebra { return Algebra{f: f} }

// Factory returns the backing arena.
func (a Algebra) Factory() *free.Factory { return a.f }

// Var returns the element standing for v.
func (a Algebra) Var(v core.VarID) Elem { return Elem{h: a.f.Element(v)} }

func (a Algebra) Zero() Elem { return Elem{h: free.Empty} }
func (a Algebra) One() Elem  { return Elem{h: free.Epsilon} }

// Add returns x + y; x + x is x.
func (a Algebra) Add(x, y Elem) Elem {
	if x == y {
		return x
	}

	return Elem{h: a.f.Add(x.h, y.h)}
}

func (a Algebra) Mul(x, y Elem) Elem   { return Elem{h: a.f.Mul(x.h, y.h)} }
func (a Algebra) Star(x Elem) Elem     { return Elem{h: a.f.Star(x.h)} }
func (a Algebra) Equal(x, y Elem) bool { return x == y }
func (a Algebra) Format(x Elem) string { return a.f.String(x.h) }
func (a Algebra) Hash(x Elem) uint64   { return uint64(x.h) }
func (a Algebra) Laws() core.Laws {
	return core.Laws{Commutativity: core.NonCommutative, Idempotence: core.Idempotent}
}

// GC reclaims every node of the factory not reachable from keep and
// returns how many were freed. Elements not reachable from keep must not
// be used afterwards.
func (a Algebra) GC(keep ...Elem) int {
	roots := make([]free.Handle, len(keep))
	for i, e := range keep {
		roots[i] = e.h
	}

	return a.f.GC(roots...)
}

// Eval maps e into sr under val.
func Eval[T any](a Algebra, e Elem, sr core.Semiring[T], val core.Valuation[T]) T {
	return free.Eval(a.f, e.h, sr, val)
}

// EvalValuation maps every element of vals into sr with one shared
// evaluator, so subexpressions common to several values are computed once.
func EvalValuation[T any](a Algebra, vals core.Valuation[Elem], sr core.Semiring[T], val core.Valuation[T]) core.Valuation[T] {
	ev := free.NewEvaluator(a.f, sr, val)
	out := make(core.Valuation[T], len(vals))
	for v, e := range vals {
		out[v] = ev.Eval(e.h)
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package polynomial — lowering into the free semiring.
//
// Purpose:
//   - Replace every distinct coefficient by a fresh variable so a polynomial
//     built over one algebra becomes a DAG evaluable over any other.
//   - Keep the inverse mapping (variable → coefficient) so the DAG can be
//     evaluated back over the source algebra.
//
// Determinism & Policy:
//   - Terms are lowered in monomial order, so fresh variables are allocated
//     in a reproducible order for a given polynomial and interner state.
//   - Zero() and One() coefficients are never interned.

package polynomial

import (
	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
	"github.com/katalvlaran/semiring/matrix"
)

type internEntry[T any] struct {
	c T
	v core.VarID
}

// Interner maps coefficients to variables. Equal coefficients (under the
// algebra's Equal) always map to the same variable. When the algebra
// implements core.Hasher the lookup is bucketed by hash, otherwise it
// scans every interned value.
//
// An Interner is not safe for concurrent use.
type Interner[T any] struct {
	sr      core.Semiring[T]
	alloc   core.Allocator
	hash    func(T) uint64
	buckets map[uint64][]internEntry[T]
	inverse core.Valuation[T]
}

// NewInterner returns an empty interner drawing fresh variables from alloc.
func NewInterner[T any](sr core.Semiring[T], alloc core.Allocator) *Interner[T] {
	in := &Interner[T]{
		sr:      sr,
		alloc:   alloc,
		buckets: make(map[uint64][]internEntry[T]),
		inverse: make(core.Valuation[T]),
	}
	if h, ok := sr.(core.Hasher[T]); ok {
		in.hash = h.Hash
	}

	return in
}

// Intern returns the variable standing for c, allocating one on first sight.
func (in *Interner[T]) Intern(c T) core.VarID {
	var key uint64
	if in.hash != nil {
		key = in.hash(c)
	}
	for _, e := range in.buckets[key] {
		if in.sr.Equal(e.c, c) {
			return e.v
		}
	}
	v := in.alloc.Fresh()
	in.buckets[key] = append(in.buckets[key], internEntry[T]{c: c, v: v})
	in.inverse[v] = c

	return v
}

// Len returns the number of interned coefficients.
func (in *Interner[T]) Len() int { return len(in.inverse) }

// Valuation returns a copy of the inverse mapping variable → coefficient.
func (in *Interner[T]) Valuation() core.Valuation[T] { return in.inverse.Clone() }

// coeffNode lowers a non-zero coefficient: One() becomes Epsilon, anything
// else the element of its interned variable.
func coeffNode[T any](sr core.Semiring[T], f *free.Factory, in *Interner[T], c T) free.Handle {
	if sr.Equal(c, sr.One()) {
		return free.Epsilon
	}

	return f.Element(in.Intern(c))
}

// MakeFree lowers p into f as Σ coeff·monomial over its terms in monomial
// order. Coefficients are interned through in, whose allocator must not
// hand out variables that occur in p.
func (p *Polynomial[T]) MakeFree(f *free.Factory, in *Interner[T]) free.Handle {
	acc := free.Empty
	for _, t := range p.Terms() {
		acc = f.Add(acc, f.Mul(coeffNode[T](p.sr, f, in, t.Coeff), t.Monomial.MakeFree(f)))
	}

	return acc
}

// MakeFreeMatrix lowers every cell of a polynomial matrix with one shared
// interner, so a coefficient used in several cells maps to one variable.
//
// Errors:
//   - matrix.ErrNilMatrix (wrapped with "polynomial.MakeFreeMatrix").
func MakeFreeMatrix[T any](m matrix.Matrix[*Polynomial[T]], f *free.Factory, in *Interner[T]) (*matrix.Dense[free.Handle], error) {
	res, err := matrix.Map(m, free.NewAlgebra(f), func(p *Polynomial[T]) free.Handle { return p.MakeFree(f, in) })
	if err != nil {
		return nil, polyErrorf(opMakeFreeM, err)
	}

	return res, nil
}

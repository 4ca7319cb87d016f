// SPDX-License-Identifier: MIT
// Package polynomial — commutative polynomials.
//
// Purpose:
//   - Map each Monomial to a non-zero coefficient of a commutative algebra.
//   - Maintain the per-variable maximum degree table alongside the terms.
//
// Contract:
//   - A Zero() coefficient is never stored; the zero polynomial has no terms.
//   - The degree table always equals a recomputation from the terms
//     (checked by Validate).
//   - Operations return fresh polynomials and never mutate their operands.

package polynomial

import (
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/semiring/core"
)

// Term is one coefficient·monomial pair.
type Term[T any] struct {
	Coeff    T
	Monomial Monomial
}

// Polynomial is a polynomial over a commutative algebra.
type Polynomial[T any] struct {
	sr      core.CommutativeSemiring[T]
	terms   map[string]Term[T]
	degrees map[core.VarID]uint32 // max degree of each variable over all terms
}

// newPolynomial returns an empty polynomial after checking the declared laws.
func newPolynomial[T any](op string, sr core.CommutativeSemiring[T], hint int) *Polynomial[T] {
	core.RequireCommutative[T](op, sr)

	return &Polynomial[T]{
		sr:      sr,
		terms:   make(map[string]Term[T], hint),
		degrees: make(map[core.VarID]uint32),
	}
}

// Zero returns the zero polynomial (no terms).
func Zero[T any](sr core.CommutativeSemiring[T]) *Polynomial[T] {
	return newPolynomial(opZero, sr, 0)
}

// One returns the polynomial {1: One()}.
func One[T any](sr core.CommutativeSemiring[T]) *Polynomial[T] {
	p := newPolynomial(opOne, sr, 1)
	p.insert(Term[T]{Coeff: sr.One()})

	return p
}

// Constant returns the polynomial with the single term c·1. A Zero()
// constant gives the zero polynomial.
func Constant[T any](sr core.CommutativeSemiring[T], c T) *Polynomial[T] {
	p := newPolynomial(opConstant, sr, 1)
	p.insert(Term[T]{Coeff: c})

	return p
}

// Var returns the polynomial 1·v.
func Var[T any](sr core.CommutativeSemiring[T], v core.VarID) *Polynomial[T] {
	p := newPolynomial(opVar, sr, 1)
	p.insert(Term[T]{Coeff: sr.One(), Monomial: NewMonomial(v)})

	return p
}

// FromTerms builds a polynomial from coefficient/monomial pairs.
// Coefficients of equal monomials are summed.
func FromTerms[T any](sr core.CommutativeSemiring[T], terms ...Term[T]) *Polynomial[T] {
	p := newPolynomial(opFromTerms, sr, len(terms))
	for _, t := range terms {
		p.accumulate(t)
	}
	p.settle()

	return p
}

// empty returns a polynomial over the same algebra without re-checking laws.
func (p *Polynomial[T]) empty(hint int) *Polynomial[T] {
	return &Polynomial[T]{
		sr:      p.sr,
		terms:   make(map[string]Term[T], hint),
		degrees: make(map[core.VarID]uint32),
	}
}

// mergeDegrees raises the degree table to cover m.
func (p *Polynomial[T]) mergeDegrees(m Monomial) {
	for _, f := range m.factors {
		if f.d > p.degrees[f.v] {
			p.degrees[f.v] = f.d
		}
	}
}

// insert stores a term for a monomial not yet present. Zero coefficients
// are dropped.
func (p *Polynomial[T]) insert(t Term[T]) {
	if p.sr.Equal(t.Coeff, p.sr.Zero()) {
		return
	}
	p.terms[t.Monomial.key()] = t
	p.mergeDegrees(t.Monomial)
}

// accumulate adds t into p, summing with an existing term. A sum that
// becomes Zero() is kept until settle removes it.
func (p *Polynomial[T]) accumulate(t Term[T]) {
	k := t.Monomial.key()
	if old, ok := p.terms[k]; ok {
		old.Coeff = p.sr.Add(old.Coeff, t.Coeff)
		p.terms[k] = old

		return
	}
	p.terms[k] = t
	p.mergeDegrees(t.Monomial)
}

// settle drops Zero() coefficients left by accumulate and, if any were
// dropped, rebuilds the degree table.
func (p *Polynomial[T]) settle() {
	zero := p.sr.Zero()
	dropped := false
	for k, t := range p.terms {
		if p.sr.Equal(t.Coeff, zero) {
			delete(p.terms, k)
			dropped = true
		}
	}
	if dropped {
		p.degrees = p.recomputeDegrees()
	}
}

func (p *Polynomial[T]) recomputeDegrees() map[core.VarID]uint32 {
	out := make(map[core.VarID]uint32)
	for _, t := range p.terms {
		for _, f := range t.Monomial.factors {
			if f.d > out[f.v] {
				out[f.v] = f.d
			}
		}
	}

	return out
}

// Algebra returns the coefficient algebra.
func (p *Polynomial[T]) Algebra() core.CommutativeSemiring[T] { return p.sr }

// IsZero reports whether p has no terms.
func (p *Polynomial[T]) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of terms.
func (p *Polynomial[T]) Len() int { return len(p.terms) }

// Terms returns the terms sorted by monomial.
func (p *Polynomial[T]) Terms() []Term[T] {
	out := slices.Collect(maps.Values(p.terms))
	slices.SortFunc(out, func(a, b Term[T]) int { return a.Monomial.Compare(b.Monomial) })

	return out
}

// Coeff returns the coefficient of m (Zero() when absent).
func (p *Polynomial[T]) Coeff(m Monomial) T {
	if t, ok := p.terms[m.key()]; ok {
		return t.Coeff
	}

	return p.sr.Zero()
}

// Add returns p + q.
// Complexity: O(|p| + |q|).
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	out := p.Clone()
	for _, t := range q.terms {
		out.accumulate(t)
	}
	out.settle()

	return out
}

// Mul returns p · q. Products that land on the same monomial have their
// coefficients summed. An empty operand yields the zero polynomial without
// visiting the other one.
// Complexity: O(|p|·|q|) monomial products.
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		return p.empty(0)
	}
	out := p.empty(len(p.terms) * len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			out.accumulate(Term[T]{
				Coeff:    p.sr.Mul(a.Coeff, b.Coeff),
				Monomial: a.Monomial.Mul(b.Monomial),
			})
		}
	}
	out.settle()

	return out
}

// MulVar returns p · v.
func (p *Polynomial[T]) MulVar(v core.VarID) *Polynomial[T] {
	out := p.empty(len(p.terms))
	for _, t := range p.terms {
		out.insert(Term[T]{Coeff: t.Coeff, Monomial: t.Monomial.MulVar(v)})
	}

	return out
}

// Scale returns c · p.
func (p *Polynomial[T]) Scale(c T) *Polynomial[T] {
	out := p.empty(len(p.terms))
	for _, t := range p.terms {
		out.insert(Term[T]{Coeff: p.sr.Mul(c, t.Coeff), Monomial: t.Monomial})
	}

	return out
}

// Clone returns an independent copy of p.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	return &Polynomial[T]{sr: p.sr, terms: maps.Clone(p.terms), degrees: maps.Clone(p.degrees)}
}

// Equal reports whether p and q have the same monomials with equal
// coefficients (under the algebra's Equal) and the same degree table.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.terms) != len(q.terms) || !maps.Equal(p.degrees, q.degrees) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || !p.sr.Equal(t.Coeff, u.Coeff) {
			return false
		}
	}

	return true
}

// Degree returns the largest total degree of any term (0 for constants
// and for the zero polynomial).
func (p *Polynomial[T]) Degree() uint32 {
	var d uint32
	for _, t := range p.terms {
		d = max(d, t.Monomial.Degree())
	}

	return d
}

// MaxDegreeOf returns the largest degree of v in any term.
func (p *Polynomial[T]) MaxDegreeOf(v core.VarID) uint32 { return p.degrees[v] }

// Variables returns the set of variables occurring in p.
func (p *Polynomial[T]) Variables() *set.Set[core.VarID] {
	s := set.New[core.VarID](len(p.degrees))
	for v := range p.degrees {
		s.Insert(v)
	}

	return s
}

// Validate recomputes the degree table from the terms and compares it
// with the maintained one.
//
// Errors:
//   - ErrDegreeCache (wrapped with "Polynomial.Validate").
func (p *Polynomial[T]) Validate() error {
	if !maps.Equal(p.degrees, p.recomputeDegrees()) {
		return polyErrorf(opValidate, ErrDegreeCache)
	}

	return nil
}

// String renders p as "c1·m1 + c2·m2" in monomial order; a coefficient of
// One() is omitted and the zero polynomial renders as "0".
func (p *Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}
	one := p.sr.One()
	terms := p.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		switch {
		case t.Monomial.IsOne():
			parts[i] = p.sr.Format(t.Coeff)
		case p.sr.Equal(t.Coeff, one):
			parts[i] = t.Monomial.String()
		default:
			parts[i] = p.sr.Format(t.Coeff) + "·" + t.Monomial.String()
		}
	}

	return strings.Join(parts, " + ")
}

// Map converts every coefficient with f into the algebra dst. Monomials are
// kept; coefficients mapped to dst's Zero() are dropped.
func Map[T, U any](p *Polynomial[T], dst core.CommutativeSemiring[U], f func(T) U) *Polynomial[U] {
	out := newPolynomial(opMap, dst, len(p.terms))
	for _, t := range p.terms {
		out.insert(Term[U]{Coeff: f(t.Coeff), Monomial: t.Monomial})
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package polynomial — non-commutative polynomials.
//
// Purpose:
//   - Map each NCMonomial to the number of times it occurs (its count).
//   - Linearize a polynomial around a valuation (DifferentialAt) and sum
//     the factors around the linearization hole, as the fixpoint solver needs.
//
// Contract:
//   - Counts are always >= 1; vanishing monomials are never stored.
//   - Operations return fresh polynomials and never mutate their operands.

package polynomial

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
)

// NCTerm is a monomial with its occurrence count.
type NCTerm[T any] struct {
	Monomial NCMonomial[T]
	Count    uint64
}

// NCPolynomial is a polynomial with non-commuting variables over any algebra.
type NCPolynomial[T any] struct {
	sr      core.Semiring[T]
	buckets map[string][]NCTerm[T] // by NCMonomial.key
	n       int
}

// NCZero returns the zero polynomial.
func NCZero[T any](sr core.Semiring[T]) *NCPolynomial[T] {
	return &NCPolynomial[T]{sr: sr, buckets: make(map[string][]NCTerm[T])}
}

// NCOne returns the polynomial consisting of the empty monomial once.
func NCOne[T any](sr core.Semiring[T]) *NCPolynomial[T] {
	p := NCZero(sr)
	p.add(NCMonomial[T]{sr: sr}, 1)

	return p
}

// NCConstant returns the polynomial c. A Zero() constant gives the zero polynomial.
func NCConstant[T any](sr core.Semiring[T], c T) *NCPolynomial[T] {
	p := NCZero(sr)
	if m, ok := canonical(sr, []Factor[T]{ConstFactor(c)}); ok {
		p.add(m, 1)
	}

	return p
}

// NCVar returns the polynomial v.
func NCVar[T any](sr core.Semiring[T], v core.VarID) *NCPolynomial[T] {
	p := NCZero(sr)
	p.add(NCMonomial[T]{sr: sr, factors: []Factor[T]{VarFactor[T](v)}}, 1)

	return p
}

// NCFromMonomials returns the sum of the canonical products of each factor
// list. Vanishing products are skipped.
func NCFromMonomials[T any](sr core.Semiring[T], monomials ...[]Factor[T]) *NCPolynomial[T] {
	p := NCZero(sr)
	for _, fs := range monomials {
		if m, ok := canonical(sr, fs); ok {
			p.add(m, 1)
		}
	}

	return p
}

// add accumulates count occurrences of m.
func (p *NCPolynomial[T]) add(m NCMonomial[T], count uint64) {
	k := m.key()
	b := p.buckets[k]
	for i := range b {
		if b[i].Monomial.Equal(m) {
			b[i].Count += count
			return
		}
	}
	p.buckets[k] = append(b, NCTerm[T]{Monomial: m, Count: count})
	p.n++
}

func (p *NCPolynomial[T]) each(fn func(NCTerm[T])) {
	for _, b := range p.buckets {
		for _, t := range b {
			fn(t)
		}
	}
}

// Algebra returns the coefficient algebra.
func (p *NCPolynomial[T]) Algebra() core.Semiring[T] { return p.sr }

// IsZero reports whether p has no monomials.
func (p *NCPolynomial[T]) IsZero() bool { return p.n == 0 }

// Len returns the number of distinct monomials.
func (p *NCPolynomial[T]) Len() int { return p.n }

// Terms returns the monomials with their counts in NCMonomial.Compare order.
func (p *NCPolynomial[T]) Terms() []NCTerm[T] {
	out := make([]NCTerm[T], 0, p.n)
	p.each(func(t NCTerm[T]) { out = append(out, t) })
	slices.SortFunc(out, func(a, b NCTerm[T]) int { return a.Monomial.Compare(b.Monomial) })

	return out
}

// CountOf returns how often m occurs in p.
func (p *NCPolynomial[T]) CountOf(m NCMonomial[T]) uint64 {
	for _, t := range p.buckets[m.key()] {
		if t.Monomial.Equal(m) {
			return t.Count
		}
	}

	return 0
}

// Add returns p + q; counts of equal monomials add.
func (p *NCPolynomial[T]) Add(q *NCPolynomial[T]) *NCPolynomial[T] {
	out := NCZero(p.sr)
	p.each(func(t NCTerm[T]) { out.add(t.Monomial, t.Count) })
	q.each(func(t NCTerm[T]) { out.add(t.Monomial, t.Count) })

	return out
}

// Mul returns p · q by concatenating every pair of monomials, left operand
// first. Counts multiply and equal products accumulate. An empty operand
// yields the zero polynomial without visiting the other one.
func (p *NCPolynomial[T]) Mul(q *NCPolynomial[T]) *NCPolynomial[T] {
	out := NCZero(p.sr)
	if p.IsZero() || q.IsZero() {
		return out
	}
	p.each(func(a NCTerm[T]) {
		q.each(func(b NCTerm[T]) {
			if m, ok := a.Monomial.Mul(b.Monomial); ok {
				out.add(m, a.Count*b.Count)
			}
		})
	})

	return out
}

// MulVar returns p · v.
func (p *NCPolynomial[T]) MulVar(v core.VarID) *NCPolynomial[T] {
	out := NCZero(p.sr)
	p.each(func(t NCTerm[T]) { out.add(t.Monomial.MulVar(v), t.Count) })

	return out
}

func (p *NCPolynomial[T]) scale(c T, left bool) *NCPolynomial[T] {
	out := NCZero(p.sr)
	k := ConstFactor(c)
	p.each(func(t NCTerm[T]) {
		fs := make([]Factor[T], 0, len(t.Monomial.factors)+1)
		if left {
			fs = append(append(fs, k), t.Monomial.factors...)
		} else {
			fs = append(append(fs, t.Monomial.factors...), k)
		}
		if m, ok := canonical(p.sr, fs); ok {
			out.add(m, t.Count)
		}
	})

	return out
}

// ScaleLeft returns c · p.
func (p *NCPolynomial[T]) ScaleLeft(c T) *NCPolynomial[T] { return p.scale(c, true) }

// ScaleRight returns p · c.
func (p *NCPolynomial[T]) ScaleRight(c T) *NCPolynomial[T] { return p.scale(c, false) }

// Equal reports whether p and q contain the same monomials with the same counts.
func (p *NCPolynomial[T]) Equal(q *NCPolynomial[T]) bool {
	if p.n != q.n {
		return false
	}
	eq := true
	p.each(func(t NCTerm[T]) {
		if eq && q.CountOf(t.Monomial) != t.Count {
			eq = false
		}
	})

	return eq
}

// Eval returns Σ count·eval(monomial) in Terms order. The count is applied
// by repeated addition, so idempotent algebras add each monomial once.
func (p *NCPolynomial[T]) Eval(val core.Valuation[T]) T {
	acc := p.sr.Zero()
	for _, t := range p.Terms() {
		acc = p.sr.Add(acc, core.Replicate(p.sr, t.Monomial.Eval(val), t.Count))
	}

	return acc
}

// PartialEval substitutes the variables val maps and keeps the rest.
func (p *NCPolynomial[T]) PartialEval(val core.Valuation[T]) *NCPolynomial[T] {
	out := NCZero(p.sr)
	p.each(func(t NCTerm[T]) {
		if m, ok := t.Monomial.PartialEval(val); ok {
			out.add(m, t.Count)
		}
	})

	return out
}

// Subst renames variables per mapping.
func (p *NCPolynomial[T]) Subst(mapping map[core.VarID]core.VarID) *NCPolynomial[T] {
	out := NCZero(p.sr)
	p.each(func(t NCTerm[T]) { out.add(t.Monomial.Subst(mapping), t.Count) })

	return out
}

// MakeFree lowers p into f as Σ count·monomial in Terms order, interning
// constants through in.
func (p *NCPolynomial[T]) MakeFree(f *free.Factory, in *Interner[T]) free.Handle {
	alg := free.NewAlgebra(f)
	acc := free.Empty
	for _, t := range p.Terms() {
		acc = f.Add(acc, core.Replicate[free.Handle](alg, t.Monomial.MakeFree(f, in), t.Count))
	}

	return acc
}

// Degree returns the largest number of variable occurrences in a monomial.
func (p *NCPolynomial[T]) Degree() int {
	d := 0
	p.each(func(t NCTerm[T]) { d = max(d, t.Monomial.Degree()) })

	return d
}

// MaxDegreeOf returns the largest number of occurrences of v in a monomial.
func (p *NCPolynomial[T]) MaxDegreeOf(v core.VarID) int {
	d := 0
	p.each(func(t NCTerm[T]) { d = max(d, t.Monomial.CountOf(v)) })

	return d
}

// Variables returns the set of variables occurring in p.
func (p *NCPolynomial[T]) Variables() *set.Set[core.VarID] {
	s := set.New[core.VarID](0)
	p.each(func(t NCTerm[T]) {
		for _, f := range t.Monomial.factors {
			if f.isVar {
				s.Insert(f.v)
			}
		}
	})

	return s
}

// DifferentialAt linearizes p around val. Every monomial
// c0·X1·c1·X2·…·Xk·ck contributes, for each variable occurrence Xi, the
// monomial eval(prefix)·Xi·eval(suffix), where prefix and suffix are the
// factors before and after that occurrence evaluated under val. Counts
// carry over. Variable-free monomials contribute nothing.
//
// Every variable of p must be mapped by val.
func (p *NCPolynomial[T]) DifferentialAt(val core.Valuation[T]) *NCPolynomial[T] {
	out := NCZero(p.sr)
	for _, t := range p.Terms() {
		fs := t.Monomial.factors
		for i, f := range fs {
			if !f.isVar {
				continue
			}
			pre := evalFactors(p.sr, fs[:i], val)
			post := evalFactors(p.sr, fs[i+1:], val)
			if m, ok := canonical(p.sr, []Factor[T]{ConstFactor(pre), f, ConstFactor(post)}); ok {
				out.add(m, t.Count)
			}
		}
	}

	return out
}

func (p *NCPolynomial[T]) sumFactors(pick func(NCMonomial[T]) (T, bool)) T {
	acc := p.sr.Zero()
	for _, t := range p.Terms() {
		if c, ok := pick(t.Monomial); ok {
			acc = p.sr.Add(acc, core.Replicate(p.sr, c, t.Count))
		}
	}

	return acc
}

// SumOfLeadingFactors returns Σ count·LeadingFactor over monomials that
// contain a variable.
func (p *NCPolynomial[T]) SumOfLeadingFactors() T {
	return p.sumFactors(NCMonomial[T].LeadingFactor)
}

// SumOfTrailingFactors returns Σ count·TrailingFactor over monomials that
// contain a variable.
func (p *NCPolynomial[T]) SumOfTrailingFactors() T {
	return p.sumFactors(NCMonomial[T].TrailingFactor)
}

// String renders p as "m1 + 2×m2" in Terms order; the zero polynomial is "0".
func (p *NCPolynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := p.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Monomial.String()
		if t.Count > 1 {
			parts[i] = strconv.FormatUint(t.Count, 10) + "×" + parts[i]
		}
	}

	return strings.Join(parts, " + ")
}

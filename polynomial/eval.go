// SPDX-License-Identifier: MIT

package polynomial

import (
	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/matrix"
)

// Eval substitutes every variable with its value and folds the terms in
// monomial order. Unmapped variables abort with core.ErrUnmappedVariable.
func (p *Polynomial[T]) Eval(val core.Valuation[T]) T {
	acc := p.sr.Zero()
	for _, t := range p.Terms() {
		acc = p.sr.Add(acc, p.sr.Mul(t.Coeff, EvalMonomial[T](t.Monomial, p.sr, val)))
	}

	return acc
}

// PartialEval substitutes only the variables val maps and returns the
// residual polynomial over the remaining ones.
func (p *Polynomial[T]) PartialEval(val core.Valuation[T]) *Polynomial[T] {
	out := p.empty(len(p.terms))
	for _, t := range p.terms {
		c, rest := PartialEvalMonomial[T](t.Monomial, p.sr, val)
		out.accumulate(Term[T]{Coeff: p.sr.Mul(t.Coeff, c), Monomial: rest})
	}
	out.settle()

	return out
}

// Subst renames variables; coefficients are untouched. Terms that become
// equal are summed.
func (p *Polynomial[T]) Subst(mapping map[core.VarID]core.VarID) *Polynomial[T] {
	out := p.empty(len(p.terms))
	for _, t := range p.terms {
		out.accumulate(Term[T]{Coeff: t.Coeff, Monomial: t.Monomial.Subst(mapping)})
	}
	out.settle()

	return out
}

// EvalMatrix evaluates every cell of a polynomial matrix under val.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNilAlgebra (wrapped with "polynomial.EvalMatrix").
func EvalMatrix[T any](m matrix.Matrix[*Polynomial[T]], sr core.Semiring[T], val core.Valuation[T]) (*matrix.Dense[T], error) {
	res, err := matrix.Map(m, sr, func(p *Polynomial[T]) T { return p.Eval(val) })
	if err != nil {
		return nil, polyErrorf(opEvalMatrix, err)
	}

	return res, nil
}

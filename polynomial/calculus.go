// SPDX-License-Identifier: MIT

package polynomial

import (
	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/matrix"
)

// Derivative returns ∂p/∂v. Each term c·m contributes (c added to itself
// k times)·m', where k is the degree of v in m and m' is m with that degree
// lowered by one. The count is applied by repeated addition, never by
// multiplying with an integer element, so any algebra qualifies.
//
// Example: ∂(x·x)/∂x = (1+1)·x.
func (p *Polynomial[T]) Derivative(v core.VarID) *Polynomial[T] {
	out := p.empty(len(p.terms))
	for _, t := range p.terms {
		count, m := t.Monomial.Derivative(v)
		if count == 0 {
			continue
		}
		out.accumulate(Term[T]{Coeff: core.Replicate[T](p.sr, t.Coeff, uint64(count)), Monomial: m})
	}
	out.settle()

	return out
}

// DerivativeMany differentiates by each variable of vars in turn.
func (p *Polynomial[T]) DerivativeMany(vars []core.VarID) *Polynomial[T] {
	out := p
	for _, v := range vars {
		out = out.Derivative(v)
	}

	return out
}

// Jacobian returns the len(polys)×len(vars) matrix whose cell (i, j) is
// ∂polys[i]/∂vars[j], over the polynomial ring of sr.
//
// Errors:
//   - matrix.ErrBadShape when polys or vars is empty (wrapped with "polynomial.Jacobian").
func Jacobian[T any](sr core.CommutativeSemiring[T], polys []*Polynomial[T], vars []core.VarID) (*matrix.Dense[*Polynomial[T]], error) {
	cells := make([]*Polynomial[T], 0, len(polys)*len(vars))
	for _, p := range polys {
		for _, v := range vars {
			cells = append(cells, p.Derivative(v))
		}
	}
	m, err := matrix.NewDense[*Polynomial[T]](NewRing(sr), len(polys), cells)
	if err != nil {
		return nil, polyErrorf(opJacobian, err)
	}

	return m, nil
}

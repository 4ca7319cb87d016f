// SPDX-License-Identifier: MIT
// Package lossy — closed-form solution of polynomial systems.
//
// Purpose:
//   - Solve X_i = f_i(X) over the lossy algebra without iterating to
//     convergence, using the derivation-tree decomposition
//     star(left) · middle · star(right).
//
// Implementation:
//   - Stage 1: validate the system (non-empty, one equation per unknown).
//   - Stage 2: f(0) and f^n(0) by fixed n-fold substitution, n = #equations.
//   - Stage 3: middle = Σ f(0); differential = Σ DifferentialAt(f(0)).
//   - Stage 4: left/right = sums of leading/trailing factors of the differential.
//   - Stage 5: every unknown maps to star(left) · middle · star(right).

package lossy

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/polynomial"
)

// Equation defines the unknown Var as the value of Poly.
type Equation struct {
	Var  core.VarID
	Poly *polynomial.NCPolynomial[Elem]
}

// Solution is the result of Solve together with its intermediate values.
type Solution struct {
	// Values maps every unknown to the fixpoint. All unknowns share it.
	Values core.Valuation[Elem]
	// Iterate is f^n(0), n the number of equations.
	Iterate core.Valuation[Elem]
	// Middle is the sum of f(0) over all unknowns.
	Middle Elem
	// Left and Right are the summed leading and trailing factors of Differential.
	Left, Right Elem
	// Differential is the sum of the differentials of all equations at f(0).
	Differential *polynomial.NCPolynomial[Elem]
}

// Solve computes the closed-form solution of eqs over a.
//
// Every polynomial may only use the unknowns of eqs as variables; constants
// are elements of a. The returned fixpoint is shared by all unknowns.
//
// Panics (wrapped with "lossy.Solve"):
//   - ErrEmptySystem, ErrDuplicateEquation, ErrNilPolynomial.
//   - core.ErrUnmappedVariable if a polynomial uses a variable that is not an unknown.
//
// Complexity: n substitution rounds of the whole system plus one
// differential per equation, all building nodes in a's factory.
func Solve(a Algebra, eqs []Equation, opts ...Option) *Solution {
	o := gatherOptions(opts...)
	validate(eqs)

	zero := make(core.Valuation[Elem], len(eqs))
	for _, eq := range eqs {
		zero[eq.Var] = a.Zero()
	}
	f0 := iterate(eqs, zero, 1)
	fn := iterate(eqs, zero, len(eqs))
	o.tracef("lossy: f(0) = %s", lazy(func() string { return f0.Format(a) }))
	o.tracef("lossy: f^%d(0) = %s", len(eqs), lazy(func() string { return fn.Format(a) }))

	middle := a.Zero()
	for _, v := range f0.Vars() {
		middle = a.Add(middle, f0[v])
	}

	diff := polynomial.NCZero[Elem](a)
	for _, eq := range eqs {
		diff = diff.Add(eq.Poly.DifferentialAt(f0))
	}
	o.tracef("lossy: differential sum = %s", diff)

	left := diff.SumOfLeadingFactors()
	right := diff.SumOfTrailingFactors()
	fix := a.Mul(a.Mul(a.Star(left), middle), a.Star(right))
	o.tracef("lossy: fixpoint = %s", lazy(func() string { return a.Format(fix) }))

	values := make(core.Valuation[Elem], len(eqs))
	for _, eq := range eqs {
		values[eq.Var] = fix
	}

	return &Solution{
		Values:       values,
		Iterate:      fn,
		Middle:       middle,
		Left:         left,
		Right:        right,
		Differential: diff,
	}
}

// SolvePolynomialSystem returns only the valuation of Solve.
func SolvePolynomialSystem(a Algebra, eqs []Equation, opts ...Option) core.Valuation[Elem] {
	return Solve(a, eqs, opts...).Values
}

func validate(eqs []Equation) {
	if len(eqs) == 0 {
		core.Abort(opSolve, ErrEmptySystem)
	}
	seen := set.New[core.VarID](len(eqs))
	for _, eq := range eqs {
		if eq.Poly == nil {
			core.Abort(opSolve, fmt.Errorf("%s: %w", eq.Var, ErrNilPolynomial))
		}
		if !seen.Insert(eq.Var) {
			core.Abort(opSolve, fmt.Errorf("%s: %w", eq.Var, ErrDuplicateEquation))
		}
	}
}

// iterate substitutes the system into itself times times, starting at init.
// Each round evaluates every equation against the previous round only.
func iterate(eqs []Equation, init core.Valuation[Elem], times int) core.Valuation[Elem] {
	cur := init
	for i := 0; i < times; i++ {
		next := make(core.Valuation[Elem], len(eqs))
		for _, eq := range eqs {
			next[eq.Var] = eq.Poly.Eval(cur)
		}
		cur = next
	}

	return cur
}

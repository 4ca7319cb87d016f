// SPDX-License-Identifier: MIT

// Package lossy solves systems of non-commutative polynomial equations over
// the lossy algebra in closed form.
//
// The lossy algebra is idempotent and non-commutative. Its elements are
// symbolic nodes of a free.Factory, so a solution can be evaluated later into
// any starable algebra that is a homomorphic image of it, such as
// downward-closed languages abstracted by their alphabet:
//
//	a := lossy.NewAlgebra(free.NewFactory())
//	X := polynomial.VarFactor[lossy.Elem](x)
//	p := polynomial.NCFromMonomials[lossy.Elem](a,
//		[]polynomial.Factor[lossy.Elem]{polynomial.ConstFactor(a.Var(va)), X, X},
//		[]polynomial.Factor[lossy.Elem]{polynomial.ConstFactor(a.Var(vb))})
//	sol := lossy.Solve(a, []lossy.Equation{{Var: x, Poly: p}})
//	lossy.Eval(a, sol.Values[x], semirings.LetterSet{}, val)
//
// Solve does not iterate to convergence. It sums f(0) into a middle term,
// linearizes every equation at f(0), and returns
// star(left) · middle · star(right) for every unknown, where left and right
// are the sums of the factors before and after the linearized variable.
// The same value is returned for all unknowns.
package lossy

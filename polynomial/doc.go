// SPDX-License-Identifier: MIT

// Package polynomial implements commutative and non-commutative polynomials
// with coefficients in any core.Semiring.
//
// Polynomial[T] requires a core.CommutativeSemiring[T]: monomials are sorted
// (variable, degree) lists and each maps to one non-zero coefficient. It
// supports ring arithmetic, formal derivatives, Jacobians as matrix.Dense
// values over Ring[T], full and partial evaluation, and renaming.
//
// NCPolynomial[T] accepts any algebra. Its monomials are ordered words of
// variables and constants kept in canonical form, and each maps to an
// occurrence count. DifferentialAt linearizes a polynomial around a
// valuation; SumOfLeadingFactors and SumOfTrailingFactors collect the
// constants left and right of each linearized variable.
//
// Both kinds lower into the free semiring with MakeFree. Every distinct
// coefficient is replaced by a fresh variable through an Interner, whose
// Valuation evaluates the resulting graph back over the source algebra:
//
//	reg := core.NewRegistry()
//	x := reg.MustVar("x")
//	p := polynomial.Var(semirings.Tropical{}, x).Scale(3)
//	in := polynomial.NewInterner[int64](semirings.Tropical{}, reg)
//	h := p.MakeFree(f, in)
//	val := in.Valuation()
//	val[x] = 2
//	free.Eval(f, h, semirings.Tropical{}, val) // 5
//
// Preconditions (unmapped variables, non-commutative coefficients for
// Polynomial) abort with wrapped sentinels from package core; shape errors
// from the matrix helpers are returned.
package polynomial

// SPDX-License-Identifier: MIT

// Sentinel errors of the lossy package. Solve aborts with these wrapped in
// an operation tag; match them with errors.Is after recover.
//
// Errors:
//
//	ErrEmptySystem       - Solve was given no equations.
//	ErrDuplicateEquation - two equations define the same unknown.
//	ErrNilPolynomial     - an equation has no right-hand side.

package lossy

import "errors"

var (
	// ErrEmptySystem indicates an equation system without equations.
	ErrEmptySystem = errors.New("lossy: empty equation system")

	// ErrDuplicateEquation indicates that an unknown has more than one defining equation.
	ErrDuplicateEquation = errors.New("lossy: duplicate equation for variable")

	// ErrNilPolynomial indicates an equation with a nil right-hand side.
	ErrNilPolynomial = errors.New("lossy: nil polynomial")
)

const (
	opSolve = "lossy.Solve"
)

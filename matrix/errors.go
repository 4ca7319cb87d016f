// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels with their operation tag via matrixErrorf; callers match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> squareness.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0,
	// or an element list whose length is not a multiple of the row count).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilAlgebra indicates a constructor was given a nil semiring.
	ErrNilAlgebra = errors.New("matrix: nil algebra")
)

// Operation tags for uniform error wrapping.
const (
	opAdd           = "Add"
	opMul           = "Mul"
	opScale         = "Scale"
	opMap           = "Map"
	opTranspose     = "Transpose"
	opFloydWarshall = "FloydWarshall"
	opRecursiveStar = "RecursiveStar"
	opStar          = "Star"
	opNewDense      = "NewDense"
	opNewFilled     = "NewFilled"
	opNewIdentity   = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
// The sentinel stays reachable through errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

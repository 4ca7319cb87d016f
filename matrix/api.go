// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/semiring/core"

// NewIdentity returns the n×n identity (One on the diagonal, Zero elsewhere).
//
// Errors:
//   - ErrNilAlgebra, ErrBadShape (n<=0).
//
// Complexity: O(n²).
func NewIdentity[T any](sr core.Semiring[T], n int) (*Dense[T], error) {
	m, err := NewZeros(sr, n, n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	one := sr.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// NewNull returns the n×n matrix of Zero, the additive identity for n×n matrices.
// Complexity: O(n²).
func NewNull[T any](sr core.Semiring[T], n int) (*Dense[T], error) {
	return NewZeros(sr, n, n)
}

// IdentityLike returns the identity with m's order and algebra.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func IdentityLike[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}

	return NewIdentity(m.Algebra(), m.Rows())
}

// Star returns the closure A* of a square matrix with the kernel chosen by
// opts (DefaultAlgorithm when none).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with the kernel tag and "Star").
//
// AI-Hints:
//   - Both kernels agree; pick WithFloydWarshall for small dense inputs.
func Star[T any](sr core.Starable[T], m Matrix[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)

	var (
		res *Dense[T]
		err error
	)
	switch o.algorithm {
	case AlgorithmFloydWarshall:
		res, err = FloydWarshall(sr, m)
	default:
		res, err = RecursiveStar(sr, m)
	}
	if err != nil {
		return nil, matrixErrorf(opStar, err)
	}

	return res, nil
}

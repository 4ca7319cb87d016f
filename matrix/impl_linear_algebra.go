// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Semiring matrix algebra: Add, Mul, ScaleLeft/ScaleRight, Transpose, Map.
//   - Every kernel validates through validators.go and wraps errors with its op tag.
//
// Determinism:
//   - Fixed loop orders (i → k → j for Mul) so non-commutative algebras see
//     the products a[i][k]·b[k][j] accumulated in ascending k.
//
// AI-Hints:
//   - *Dense operands take the flat-buffer fast path; views and other
//     Matrix implementations go through At/Set.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/semiring/core"
)

// Add returns a + b cell by cell, using a's algebra.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: fast path on two *Dense (single flat loop), else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T any](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	sr := a.Algebra()
	r, c := a.Rows(), a.Cols()
	res := newDense(sr, r, c)

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for i := range res.data {
				res.data[i] = sr.Add(da.data[i], db.data[i])
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv T
		err    error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*c+j] = sr.Add(av, bv)
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b, using a's algebra:
//
//	res[i][j] = Σ_k a[i][k]·b[k][j]
//
// This is the only cubic kernel and dominates the cost of the block closure.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: initialize the result with Zero.
//   - Stage 3: fast path on two *Dense (i→k→j, zero rows of a skipped since
//     zero annihilates), else generic i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c) algebra operations, Space O(r*c).
func Mul[T any](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	sr := a.Algebra()
	zero := sr.Zero()
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(sr, aRows, bCols)
	for i := range res.data {
		res.data[i] = zero
	}

	var (
		i, j, k int
		av, bv  T
		err     error
	)
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if sr.Equal(av, zero) {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] = sr.Add(res.data[rowOffsetR+j], sr.Mul(av, db.data[rowOffsetB+j]))
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc := zero
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if sr.Equal(av, zero) {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc = sr.Add(acc, sr.Mul(av, bv))
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// scale is the shared kernel of ScaleLeft and ScaleRight.
func scale[T any](m Matrix[T], x T, left bool) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	sr := m.Algebra()
	r, c := m.Rows(), m.Cols()
	res := newDense(sr, r, c)

	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if left {
				res.data[i*c+j] = sr.Mul(x, v)
			} else {
				res.data[i*c+j] = sr.Mul(v, x)
			}
		}
	}

	return res, nil
}

// ScaleLeft returns x·m cell by cell (scalar on the left).
// Complexity: O(r*c).
func ScaleLeft[T any](x T, m Matrix[T]) (*Dense[T], error) { return scale(m, x, true) }

// ScaleRight returns m·x cell by cell (scalar on the right).
// Complexity: O(r*c).
func ScaleRight[T any](m Matrix[T], x T) (*Dense[T], error) { return scale(m, x, false) }

// Transpose returns mᵀ. Note that for non-commutative algebras (A·B)ᵀ is not
// Bᵀ·Aᵀ; Transpose only moves cells.
// Complexity: O(r*c).
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res := newDense(m.Algebra(), c, r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Map converts every cell of m with f into a matrix over the algebra dst.
// It is how symbolic matrices are evaluated into concrete algebras and how
// polynomial matrices are lowered.
//
// Errors:
//   - ErrNilMatrix, ErrNilAlgebra (wrapped with "Map").
//
// Determinism:
//   - f is called in row-major order exactly once per cell.
//
// Complexity:
//   - Time O(r*c) calls of f.
func Map[T, U any](m Matrix[T], dst core.Semiring[U], f func(T) U) (*Dense[U], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if dst == nil {
		return nil, matrixErrorf(opMap, ErrNilAlgebra)
	}
	r, c := m.Rows(), m.Cols()
	res := newDense(dst, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMap, err)
			}
			res.data[i*c+j] = f(v)
		}
	}

	return res, nil
}

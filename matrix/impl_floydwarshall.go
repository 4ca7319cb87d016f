// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Iterative semiring closure (Floyd–Warshall / Kleene elimination) with
//     deterministic loop order.
//
// Contract:
//   - Square matrix over a Starable algebra; the input is never mutated.
//   - Result is A* = 1 + A + A·A + …, i.e. the least X with X = 1 + A·X = 1 + X·A.

package matrix

import "github.com/katalvlaran/semiring/core"

// floydWarshallInPlace eliminates pivots 0..n-1 on a square *Dense, leaving
// the strict closure A+ in d. For pivot k every cell is updated as
//
//	d[i][j] += d[i][k] · star(d[k][k]) · d[k][j]
//
// where the right-hand side reads the values from before pivot k. Row k and
// column k change during the pivot, so they are snapshotted first; without
// the snapshot the update is only correct for idempotent algebras.
//
// Loop order is fixed (k → i → j). Time O(n³); extra space O(n).
func floydWarshallInPlace[T any](sr core.Starable[T], d *Dense[T]) {
	n := d.r
	data := d.data
	zero := sr.Zero()

	var (
		k, i, j int
		colK    = make([]T, n) // d[i][k] before pivot k
		rowK    = make([]T, n) // d[k][j] before pivot k
		left    T              // d[i][k]·star(d[k][k])
		starKK  T
	)

	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			colK[i] = data[i*n+k]
		}
		copy(rowK, data[k*n:(k+1)*n])
		starKK = sr.Star(data[k*n+k])

		for i = 0; i < n; i++ {
			if sr.Equal(colK[i], zero) {
				continue // i cannot reach k
			}
			left = sr.Mul(colK[i], starKK)
			for j = 0; j < n; j++ {
				if sr.Equal(rowK[j], zero) {
					continue // k cannot reach j
				}
				data[i*n+j] = sr.Add(data[i*n+j], sr.Mul(left, rowK[j]))
			}
		}
	}
}

// FloydWarshall returns the closure A* of a square matrix by pivot
// elimination followed by adding One to every diagonal cell (the elimination
// yields A+, and 1 + A+ = A*).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: copy m into a fresh Dense over sr.
//   - Stage 3: floydWarshallInPlace, then diagonal += One.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "FloydWarshall").
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity:
//   - Time O(n³) algebra operations, Space O(n²).
//
// AI-Hints:
//   - Star with WithFloydWarshall() routes here; RecursiveStar must agree cell by cell.
func FloydWarshall[T any](sr core.Starable[T], m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	res, err := copyInto[T](sr, m)
	if err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	floydWarshallInPlace(sr, res)
	n, one := res.r, sr.One()
	for i := 0; i < n; i++ {
		res.data[i*n+i] = sr.Add(res.data[i*n+i], one)
	}

	return res, nil
}

// copyInto materializes any Matrix into a fresh Dense over sr.
func copyInto[T any](sr core.Semiring[T], m Matrix[T]) (*Dense[T], error) {
	r, c := m.Rows(), m.Cols()
	res := newDense(sr, r, c)
	if d, ok := m.(*Dense[T]); ok {
		copy(res.data, d.data)

		return res, nil
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}

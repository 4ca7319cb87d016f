// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Divide-and-conquer semiring closure over quadrant views.
//
// Contract:
//   - Square matrix over a Starable algebra; the input is never mutated.
//   - Must agree with FloydWarshall cell by cell under the algebra's Equal.

package matrix

import "github.com/katalvlaran/semiring/core"

// viewer is implemented by *Dense and *MatrixView.
type viewer[T any] interface {
	Matrix[T]
	View(r0, c0, rows, cols int) (*MatrixView[T], error)
}

// splitPoint returns where an n×n matrix is cut: the middle for even n,
// n-1 for odd n (peel the last row and column).
func splitPoint(n int) int {
	if n%2 == 0 {
		return n / 2
	}

	return n - 1
}

// RecursiveStar returns the closure A* by block decomposition.
//
// For the split
//
//	A = | a11 a12 |
//	    | a21 a22 |
//
// with as11 = a11*, as22 = a22*:
//
//	A11 = (a11 + a12·as22·a21)*
//	A22 = (a22 + a21·as11·a12)*
//	A12 = A11·a12·as22
//	A21 = A22·a21·as11
//
// and the 1×1 base case is the scalar star.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m once into a Dense over sr.
//   - Stage 2: recurse on quadrant views of that buffer (no quadrant copies).
//   - Stage 3: assemble the four closed blocks into a fresh n×n Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "RecursiveStar").
//
// Determinism:
//   - Fixed split points and product order.
//
// Complexity:
//   - Time O(n³) algebra operations (dominated by Mul), Space O(n² log n) temporaries.
func RecursiveStar[T any](sr core.Starable[T], m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opRecursiveStar, err)
	}
	src, err := copyInto[T](sr, m)
	if err != nil {
		return nil, matrixErrorf(opRecursiveStar, err)
	}
	res, err := recursiveStar[T](sr, src)
	if err != nil {
		return nil, matrixErrorf(opRecursiveStar, err)
	}

	return res, nil
}

// recursiveStar is the recursion body over any viewable square matrix.
func recursiveStar[T any](sr core.Starable[T], m viewer[T]) (*Dense[T], error) {
	n := m.Rows()
	if n == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return nil, err
		}
		res := newDense[T](sr, 1, 1)
		res.data[0] = sr.Star(v)

		return res, nil
	}

	s := splitPoint(n)
	a11, err := m.View(0, 0, s, s)
	if err != nil {
		return nil, err
	}
	a12, err := m.View(0, s, s, n-s)
	if err != nil {
		return nil, err
	}
	a21, err := m.View(s, 0, n-s, s)
	if err != nil {
		return nil, err
	}
	a22, err := m.View(s, s, n-s, n-s)
	if err != nil {
		return nil, err
	}

	as11, err := recursiveStar[T](sr, a11)
	if err != nil {
		return nil, err
	}
	as22, err := recursiveStar[T](sr, a22)
	if err != nil {
		return nil, err
	}

	// A11 = (a11 + a12·as22·a21)*
	A11, err := closeSchur(sr, a11, a12, as22, a21)
	if err != nil {
		return nil, err
	}
	// A22 = (a22 + a21·as11·a12)*
	A22, err := closeSchur(sr, a22, a21, as11, a12)
	if err != nil {
		return nil, err
	}
	// A12 = A11·a12·as22
	A12, err := mul3[T](A11, a12, as22)
	if err != nil {
		return nil, err
	}
	// A21 = A22·a21·as11
	A21, err := mul3[T](A22, a21, as11)
	if err != nil {
		return nil, err
	}

	return assembleBlocks[T](sr, A11, A12, A21, A22), nil
}

// closeSchur returns (a + b·c·d)*.
func closeSchur[T any](sr core.Starable[T], a, b Matrix[T], c *Dense[T], d Matrix[T]) (*Dense[T], error) {
	bcd, err := mul3[T](b, c, d)
	if err != nil {
		return nil, err
	}
	sum, err := Add[T](a, bcd)
	if err != nil {
		return nil, err
	}

	return recursiveStar[T](sr, sum)
}

// mul3 returns a·b·c, associated left to right.
func mul3[T any](a, b, c Matrix[T]) (*Dense[T], error) {
	ab, err := Mul(a, b)
	if err != nil {
		return nil, err
	}

	return Mul[T](ab, c)
}

// assembleBlocks lays out | a11 a12 ; a21 a22 | into one Dense.
// Shapes are guaranteed by the caller.
func assembleBlocks[T any](sr core.Semiring[T], a11, a12, a21, a22 *Dense[T]) *Dense[T] {
	top, left := a11.r, a11.c
	n := top + a21.r
	res := newDense(sr, n, left+a12.c)

	var i int
	for i = 0; i < top; i++ {
		row := res.data[i*res.c : (i+1)*res.c]
		copy(row[:left], a11.data[i*left:(i+1)*left])
		copy(row[left:], a12.data[i*a12.c:(i+1)*a12.c])
	}
	for i = 0; i < a21.r; i++ {
		row := res.data[(top+i)*res.c : (top+i+1)*res.c]
		copy(row[:left], a21.data[i*left:(i+1)*left])
		copy(row[left:], a22.data[i*a22.c:(i+1)*a22.c])
	}

	return res
}

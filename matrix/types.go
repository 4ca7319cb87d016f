// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by Dense and MatrixView.
package matrix

import "github.com/katalvlaran/semiring/core"

// Matrix is a two-dimensional mutable array of semiring elements.
// Kernels accept Matrix so that no-copy views can be fed to them directly;
// *Dense operands take a flat-buffer fast path.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T any] interface {
	// Algebra returns the semiring the elements belong to.
	Algebra() core.Semiring[T]

	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

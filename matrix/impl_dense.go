// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of semiring elements with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (MatrixView) and copy-based submatrix extraction (Induced).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use View(r0,c0,h,w) to avoid copies for windows; mutations reflect in the base matrix.
//   - Use Induced(rows, cols) to materialize a submatrix (copy) for independent lifetime/shape.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); View: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/semiring/core"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxView   = "View"    // ctor tag for Dense.View
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = " ]\n"
	_fmtSep      = " | "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over a semiring.
//   - sr is the algebra every element belongs to.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// All kernels return fresh matrices; a Dense is never aliased by a result.
type Dense[T any] struct {
	sr   core.Semiring[T] // element algebra
	r, c int              // row and column counts
	data []T              // contiguous row-major storage (len == r*c)
}

// newDense allocates an r×c matrix without filling it. Callers own the fill.
func newDense[T any](sr core.Semiring[T], rows, cols int) *Dense[T] {
	return &Dense[T]{sr: sr, r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewDense builds a matrix from a flat row-major element list. The column
// count is inferred as len(elems)/rows; elems is copied.
//
// Implementation:
//   - Stage 1: validate algebra, rows>0, len(elems)>0 and len(elems)%rows==0.
//   - Stage 2: copy the elements into an owned buffer.
//
// Errors:
//   - ErrNilAlgebra, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](sr core.Semiring[T], rows int, elems []T) (*Dense[T], error) {
	if sr == nil {
		return nil, matrixErrorf(opNewDense, ErrNilAlgebra)
	}
	if rows <= 0 || len(elems) == 0 || len(elems)%rows != 0 {
		return nil, fmt.Errorf("%s: %d rows, %d elements: %w", opNewDense, rows, len(elems), ErrBadShape)
	}
	m := newDense(sr, rows, len(elems)/rows)
	copy(m.data, elems)

	return m, nil
}

// NewFilled creates an r×c matrix with every cell set to x.
//
// Errors:
//   - ErrNilAlgebra, ErrBadShape (r<=0 or c<=0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T any](sr core.Semiring[T], rows, cols int, x T) (*Dense[T], error) {
	if sr == nil {
		return nil, matrixErrorf(opNewFilled, ErrNilAlgebra)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewFilled, rows, cols, ErrBadShape)
	}
	m := newDense(sr, rows, cols)
	for i := range m.data {
		m.data[i] = x
	}

	return m, nil
}

// NewZeros creates an r×c matrix filled with the algebra's zero.
func NewZeros[T any](sr core.Semiring[T], rows, cols int) (*Dense[T], error) {
	if sr == nil {
		return nil, matrixErrorf(opNewFilled, ErrNilAlgebra)
	}

	return NewFilled(sr, rows, cols, sr.Zero())
}

// Algebra returns the semiring of the elements.
func (m *Dense[T]) Algebra() core.Semiring[T] { return m.sr }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when out of bounds (the zero value of T is returned).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Elements returns a copy of the row-major element list.
// Complexity: O(r*c).
func (m *Dense[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the buffer. Elements themselves are copied by
// value; for handle-like element types both matrices refer to the same nodes.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDense(m.sr, m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// Equal reports whether other has the same shape and every cell is equal
// under the algebra's Equal.
//
// Determinism:
//   - Fixed i→j scan; stops at the first differing cell.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if other == nil || m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || !m.sr.Equal(m.data[i*m.c+j], v) {
				return false
			}
		}
	}

	return true
}

// String renders rows with columns aligned by display width, so cells that
// contain multi-byte symbols (∅, ε, ·, ∞) line up in a terminal.
//
// Implementation:
//   - Stage 1: format every cell with the algebra and record the widest cell per column.
//   - Stage 2: pad each cell to its column width and join with separators.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	var i, j, w int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			s := m.sr.Format(m.data[i*m.c+j])
			cells[i*m.c+j] = s
			if w = runewidth.StringWidth(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(runewidth.FillRight(cells[i*m.c+j], widths[j]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Behavior highlights:
//   - Writes via the view reflect in the base.
//   - The view implements Matrix, so kernels accept it directly.
//
// Errors:
//   - ErrBadShape when the window is empty or exceeds the base.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*MatrixView[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy submatrix using explicit index sets.
// Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrBadShape for empty index sets, ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %dx%d: %w", ctxInduce, rp, cp, ErrBadShape)
	}
	res := newDense(m.sr, rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// MatrixView is a non-owning window into a Dense (shared storage).
type MatrixView[T any] struct {
	base *Dense[T] // underlying storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // view height
	c    int       // view width
}

// Algebra returns the base matrix's semiring.
func (v *MatrixView[T]) Algebra() core.Semiring[T] { return v.base.sr }

// Rows returns the number of rows in the view.
func (v *MatrixView[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView[T]) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *MatrixView[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		var zero T

		return zero, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base buffer.
// Complexity: O(1).
func (v *MatrixView[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// View narrows the window further; offsets are relative to this view.
//
// Errors:
//   - ErrBadShape when the sub-window is empty or exceeds the view.
func (v *MatrixView[T]) View(r0, c0, rows, cols int) (*MatrixView[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > v.r || c0+cols > v.c {
		return nil, fmt.Errorf("MatrixView.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView[T]{base: v.base, r0: v.r0 + r0, c0: v.c0 + c0, r: rows, c: cols}, nil
}

// Materialize copies the window into an independent Dense.
// Complexity: O(r*c).
func (v *MatrixView[T]) Materialize() *Dense[T] {
	out := newDense(v.base.sr, v.r, v.c)
	var i int
	for i = 0; i < v.r; i++ {
		src := (v.r0+i)*v.base.c + v.c0
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[src:src+v.c])
	}

	return out
}

// Package matrix provides dense matrices over an arbitrary semiring.
//
// A Dense[T] stores rows×columns elements of a core.Semiring[T] in row-major
// order and carries the algebra with it, so kernels need no extra arguments
// for Zero, One, Add or Mul:
//
//   - Construction: NewDense (column count inferred), NewZeros, NewFilled,
//     NewIdentity and NewNull.
//   - Algebra: Add (same shape), Mul (a.Cols == b.Rows), ScaleLeft/ScaleRight,
//     Transpose and Map into another algebra.
//   - Closure of square matrices over a core.Starable[T]: FloydWarshall
//     (pivot elimination) and RecursiveStar (block decomposition). Both return
//     A* = 1 + A + A·A + …; Star picks one through options.
//
// Every kernel returns a fresh matrix and never mutates its inputs. Views
// (Dense.View) share storage and implement Matrix, so the block closure
// recurses on quadrants without copying them.
//
// Errors are sentinels (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrNilMatrix, ErrNilAlgebra) wrapped with the operation name;
// match them with errors.Is.
package matrix

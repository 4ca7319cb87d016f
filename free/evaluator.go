// SPDX-License-Identifier: MIT
// Package free — evaluation of expression graphs into a concrete algebra.
//
// Purpose:
//   - Fold a DAG into any core.Semiring[T] given a variable valuation.
//   - Evaluate every distinct node at most once per Evaluator, so shared
//     subexpressions (within one root or across many roots) cost once.
//
// Determinism & Policy:
//   - Iterative post-order traversal (no recursion depth limit), left operand first.
//   - Preconditions (unmapped variable, star without Star, stale evaluator)
//     abort with a wrapped sentinel.

package free

import (
	"fmt"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/matrix"
)

const (
	opEval       = "Evaluator.Eval"
	opEvalMatrix = "EvalMatrix"
)

// Evaluator folds nodes of one factory into T. It is not safe for
// concurrent use; give each goroutine its own.
type Evaluator[T any] struct {
	f     *Factory
	sr    core.Semiring[T]
	star  func(T) T // nil when sr is not Starable
	val   core.Valuation[T]
	nodes []node
	epoch uint64
	memo  []T
	done  []bool
	stack []Handle
	evals int
}

// NewEvaluator binds f, the target algebra and a valuation. The valuation
// must map every variable reached by later Eval calls.
//
// sr needs Star only if a star node is reached; it is detected by asserting
// core.Starable[T] once here.
func NewEvaluator[T any](f *Factory, sr core.Semiring[T], val core.Valuation[T]) *Evaluator[T] {
	e := &Evaluator[T]{f: f, sr: sr, val: val}
	if s, ok := sr.(core.Starable[T]); ok {
		e.star = s.Star
	}
	e.nodes, e.epoch = f.snapshot()
	e.memo = make([]T, len(e.nodes))
	e.done = make([]bool, len(e.nodes))

	return e
}

// Evaluations returns how many distinct nodes this evaluator has computed.
func (e *Evaluator[T]) Evaluations() int { return e.evals }

// refresh extends the snapshot with nodes created after it was taken.
func (e *Evaluator[T]) refresh() {
	nodes, epoch := e.f.snapshot()
	if epoch != e.epoch {
		core.Abort(opEval, ErrStaleEvaluator)
	}
	grow := len(nodes) - len(e.nodes)
	e.nodes = nodes
	e.memo = append(e.memo, make([]T, grow)...)
	e.done = append(e.done, make([]bool, grow)...)
}

// Eval returns the value of h.
//
// Implementation:
//   - Stage 1: reject stale evaluators; extend the snapshot if h is newer.
//   - Stage 2: post-order walk with an explicit stack; a node is computed
//     once both operands are memoized, then memoized itself.
//
// Complexity: O(number of not-yet-memoized nodes reachable from h).
func (e *Evaluator[T]) Eval(h Handle) T {
	if e.f.epoch.Load() != e.epoch {
		core.Abort(opEval, ErrStaleEvaluator)
	}
	if int(h) >= len(e.nodes) {
		e.refresh()
		if int(h) >= len(e.nodes) {
			core.Abort(opEval, ErrInvalidHandle)
		}
	}
	if e.done[h] {
		return e.memo[h]
	}

	e.stack = append(e.stack[:0], h)
	for len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]
		if e.done[top] {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		n := e.nodes[top]
		switch n.kind {
		case KindAddition, KindMultiplication:
			if !e.done[n.lhs] {
				e.stack = append(e.stack, n.lhs)
				continue
			}
			if !e.done[n.rhs] {
				e.stack = append(e.stack, n.rhs)
				continue
			}
		case KindStar:
			if !e.done[n.lhs] {
				e.stack = append(e.stack, n.lhs)
				continue
			}
		}
		e.stack = e.stack[:len(e.stack)-1]
		e.memo[top] = e.compute(n)
		e.done[top] = true
		e.evals++
	}

	return e.memo[h]
}

// compute applies the target algebra to a node whose operands are memoized.
func (e *Evaluator[T]) compute(n node) T {
	switch n.kind {
	case KindEmpty:
		return e.sr.Zero()
	case KindEpsilon:
		return e.sr.One()
	case KindElement:
		return e.val.Get(n.v)
	case KindAddition:
		return e.sr.Add(e.memo[n.lhs], e.memo[n.rhs])
	case KindMultiplication:
		return e.sr.Mul(e.memo[n.lhs], e.memo[n.rhs])
	case KindStar:
		if e.star == nil {
			core.Abort(opEval, ErrNotStarable)
		}
		return e.star(e.memo[n.lhs])
	default:
		core.Abort(opEval, ErrInvalidHandle)
		panic("unreachable")
	}
}

// Eval evaluates a single root with a throwaway evaluator.
func Eval[T any](f *Factory, h Handle, sr core.Semiring[T], val core.Valuation[T]) T {
	return NewEvaluator(f, sr, val).Eval(h)
}

// EvalMatrix evaluates every cell of m into sr with one shared evaluator,
// so subexpressions common to several cells are computed once.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNilAlgebra (wrapped with "EvalMatrix").
func EvalMatrix[T any](f *Factory, m matrix.Matrix[Handle], sr core.Semiring[T], val core.Valuation[T]) (*matrix.Dense[T], error) {
	ev := NewEvaluator(f, sr, val)
	res, err := matrix.Map(m, sr, ev.Eval)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvalMatrix, err)
	}

	return res, nil
}

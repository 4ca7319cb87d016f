// SPDX-License-Identifier: MIT

// Package free implements the free semiring as a hash-consed expression DAG.
//
// A Factory is an arena of immutable nodes addressed by Handle. Every factory
// holds Empty (handle 0, the zero) and Epsilon (handle 1, the one); Element,
// Add, Mul and Star return the handle of a structurally identical node when
// one exists and allocate a new slot otherwise. Operand order is part of the
// structure, since the algebras the graph is later evaluated in may be
// non-commutative. Unless WithoutSimplification is given, the rewrites
// 0+x=x, x+0=x, 0·x=x·0=0, 1·x=x·1=x and star(0)=1 are applied first; they
// hold in every semiring, so evaluation results do not change.
//
// Algebra exposes the factory as a core.Starable[Handle], which lets matrix
// closures and polynomials run symbolically and be evaluated later into any
// concrete algebra:
//
//	f := free.NewFactory()
//	x := f.Element(vx)
//	e := f.Mul(f.Add(x, f.Epsilon()), f.Add(x, f.Epsilon()))
//	n := free.Eval(f, e, semirings.Tropical{}, core.Valuation[int64]{vx: 3})
//
// An Evaluator memoizes by handle, so each distinct node is computed at most
// once however many parents or roots share it. Evaluators read a snapshot of
// the arena without locking; construction is serialized by the factory.
//
// Nodes are reclaimed only by an explicit GC(roots...). GC bumps the
// factory epoch and evaluators from an older epoch abort with
// ErrStaleEvaluator instead of reading reused slots.
package free

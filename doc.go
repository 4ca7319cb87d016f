// Package semiring is a generic algebraic engine for systems of polynomial
// equations over semirings.
//
// One polynomial-system abstraction covers shortest and longest paths,
// weighted grammars and lossy reachability: the equations are built once and
// evaluated over whichever algebra the question needs.
//
// Under the hood, everything is organized in five subpackages:
//
//	core/       — the Semiring contract, law tags, variables and valuations
//	matrix/     — dense matrices over any semiring, closure (Floyd–Warshall, recursive block)
//	free/       — the free semiring as a hash-consed DAG, evaluation into any algebra, GC
//	polynomial/ — commutative and non-commutative polynomials, derivatives, lowering
//	lossy/      — the closed-form fixpoint solver over the lossy algebra
//
// Concrete algebras used by the tests and examples (Boolean, tropical,
// counting, probability, letter sets, truncated languages) live in
// internal/semirings.
//
// Quick example: the all-pairs shortest paths of a 3-node graph are the
// closure of its tropical adjacency matrix.
//
//	m, _ := matrix.NewDense[int64](semirings.Tropical{}, 3, []int64{
//		inf, 3, inf,
//		inf, inf, 1,
//		2, inf, inf,
//	})
//	d, _ := matrix.Star[int64](semirings.Tropical{}, m)
package semiring

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for closure computation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// Algorithm selects the closure kernel used by Star.
type Algorithm uint8

const (
	// AlgorithmRecursive is the divide-and-conquer block closure (RecursiveStar).
	AlgorithmRecursive Algorithm = iota
	// AlgorithmFloydWarshall is the iterative pivot elimination (FloydWarshall).
	AlgorithmFloydWarshall
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmRecursive:
		return "recursive"
	case AlgorithmFloydWarshall:
		return "floyd-warshall"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultAlgorithm is the closure kernel used when no option is given.
const DefaultAlgorithm = AlgorithmRecursive

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	algorithm Algorithm // DefaultAlgorithm
}

// Algorithm reports the resolved closure kernel.
func (o Options) Algorithm() Algorithm { return o.algorithm }

// WithFloydWarshall selects the iterative closure.
func WithFloydWarshall() Option {
	return func(o *Options) { o.algorithm = AlgorithmFloydWarshall }
}

// WithRecursive selects the block closure (the default).
func WithRecursive() Option {
	return func(o *Options) { o.algorithm = AlgorithmRecursive }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins. Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{algorithm: DefaultAlgorithm}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT
//
// File: laws.go
// Role: Sample-based verification of the semiring laws.
//
// Determinism:
//   - Samples are visited in index order (i → j → k); the first violation wins.

package core

import "fmt"

// lawErrorf reports a violated law with the offending operands.
func lawErrorf[T any](sr Semiring[T], law string, xs ...T) error {
	parts := make([]any, 0, len(xs))
	for _, x := range xs {
		parts = append(parts, sr.Format(x))
	}

	return fmt.Errorf("%s %v: %w", law, parts, ErrLawViolation)
}

// CheckLaws verifies the semiring laws over every combination of samples,
// including the declared Laws tags and, when sr is Starable, the star
// unfolding law. It returns nil or the first violation wrapped around
// ErrLawViolation.
//
// Complexity: O(s³) algebra operations for s samples.
func CheckLaws[T any](sr Semiring[T], samples []T) error {
	zero, one := sr.Zero(), sr.One()
	laws := sr.Laws()
	star, starable := any(sr).(Starable[T])

	for _, a := range samples {
		if !sr.Equal(sr.Add(a, zero), a) || !sr.Equal(sr.Add(zero, a), a) {
			return lawErrorf(sr, "additive identity", a)
		}
		if !sr.Equal(sr.Mul(a, one), a) || !sr.Equal(sr.Mul(one, a), a) {
			return lawErrorf(sr, "multiplicative identity", a)
		}
		if !sr.Equal(sr.Mul(a, zero), zero) || !sr.Equal(sr.Mul(zero, a), zero) {
			return lawErrorf(sr, "annihilation", a)
		}
		if laws.IsIdempotent() && !sr.Equal(sr.Add(a, a), a) {
			return lawErrorf(sr, "idempotence", a)
		}
		if starable {
			s := star.Star(a)
			if !sr.Equal(s, sr.Add(one, sr.Mul(a, s))) || !sr.Equal(s, sr.Add(one, sr.Mul(s, a))) {
				return lawErrorf(sr, "star unfolding", a)
			}
		}
		for _, b := range samples {
			if !sr.Equal(sr.Add(a, b), sr.Add(b, a)) {
				return lawErrorf(sr, "additive commutativity", a, b)
			}
			if laws.IsCommutative() && !sr.Equal(sr.Mul(a, b), sr.Mul(b, a)) {
				return lawErrorf(sr, "multiplicative commutativity", a, b)
			}
			for _, c := range samples {
				if !sr.Equal(sr.Add(sr.Add(a, b), c), sr.Add(a, sr.Add(b, c))) {
					return lawErrorf(sr, "additive associativity", a, b, c)
				}
				if !sr.Equal(sr.Mul(sr.Mul(a, b), c), sr.Mul(a, sr.Mul(b, c))) {
					return lawErrorf(sr, "multiplicative associativity", a, b, c)
				}
				if !sr.Equal(sr.Mul(a, sr.Add(b, c)), sr.Add(sr.Mul(a, b), sr.Mul(a, c))) {
					return lawErrorf(sr, "left distributivity", a, b, c)
				}
				if !sr.Equal(sr.Mul(sr.Add(a, b), c), sr.Add(sr.Mul(a, c), sr.Mul(b, c))) {
					return lawErrorf(sr, "right distributivity", a, b, c)
				}
			}
		}
	}

	return nil
}

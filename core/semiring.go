// SPDX-License-Identifier: MIT
//
// File: semiring.go
// Role: The algebra contract and generic folds over it.
//
// An algebra is a descriptor value that operates on an element type T. This
// keeps element types free to be plain values (bool, int64, handles into an
// arena) while the descriptor carries whatever context the algebra needs.
//
// Contract (every implementation):
//   - Zero() is the additive identity, One() the multiplicative identity.
//   - Add and Mul are associative, Add is commutative, Mul distributes over Add.
//   - Arithmetic is referentially transparent: evaluators memoize by node and
//     assume the same inputs always give the same output.
//   - Star (Starable only) satisfies star(x) = one + x*star(x) = one + star(x)*x.

package core

// Semiring is the capability every algebra must provide.
type Semiring[T any] interface {
	// Zero returns the additive identity (null()).
	Zero() T

	// One returns the multiplicative identity (one()).
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Mul returns a * b. Operand order matters for non-commutative algebras.
	Mul(a, b T) T

	// Equal reports whether a and b denote the same element.
	Equal(a, b T) bool

	// Format renders a for diagnostics.
	Format(a T) string

	// Laws reports the commutativity/idempotence tags of the algebra.
	Laws() Laws
}

// Starable is a Semiring with a closure operation.
// Code that needs star takes a Starable, so calling star on an algebra
// without one is a compile error rather than a runtime abort.
type Starable[T any] interface {
	Semiring[T]

	// Star returns the closure a* = one + a + a*a + ...
	Star(a T) T
}

// CommutativeSemiring marks algebras whose multiplication commutes. The marker method
// lets generic code demand commutativity in its type constraints.
type CommutativeSemiring[T any] interface {
	Semiring[T]

	// CommutativeMul is a marker; it has no behavior.
	CommutativeMul()
}

// Hasher is an optional capability: algebras that can hash their elements
// let interners bucket values instead of scanning them with Equal.
// Equal elements must hash equally.
type Hasher[T any] interface {
	Hash(a T) uint64
}

// RequireCommutative aborts with ErrLawViolation unless sr declares
// commutative multiplication. It backs the compile-time CommutativeSemiring marker
// with a runtime check on the declared tags.
func RequireCommutative[T any](op string, sr Semiring[T]) {
	if !sr.Laws().IsCommutative() {
		abortf(op, ErrLawViolation)
	}
}

// Sum folds xs with Add starting from Zero.
// Complexity: O(len(xs)) additions.
func Sum[T any](sr Semiring[T], xs ...T) T {
	acc := sr.Zero()
	for _, x := range xs {
		acc = sr.Add(acc, x)
	}

	return acc
}

// Product folds xs with Mul starting from One, left to right.
// Complexity: O(len(xs)) multiplications.
func Product[T any](sr Semiring[T], xs ...T) T {
	acc := sr.One()
	for _, x := range xs {
		acc = sr.Mul(acc, x)
	}

	return acc
}

// Replicate returns x added to itself n times (n·x) using only Add, so it
// works for algebras without integer elements. Replicate(sr, x, 0) is Zero.
// For idempotent algebras any n >= 1 yields x directly.
//
// Complexity: O(log n) additions via doubling.
func Replicate[T any](sr Semiring[T], x T, n uint64) T {
	if n == 0 {
		return sr.Zero()
	}
	if sr.Laws().IsIdempotent() {
		return x
	}

	// Binary doubling: acc accumulates the set bits of n.
	acc := sr.Zero()
	pow := x
	for n > 0 {
		if n&1 == 1 {
			acc = sr.Add(acc, pow)
		}
		n >>= 1
		if n > 0 {
			pow = sr.Add(pow, pow)
		}
	}

	return acc
}

// Power returns x multiplied with itself n times; Power(sr, x, 0) is One.
// Complexity: O(n) multiplications (kept linear so non-commutative
// algebras see the plain left-to-right product).
func Power[T any](sr Semiring[T], x T, n uint64) T {
	acc := sr.One()
	for i := uint64(0); i < n; i++ {
		acc = sr.Mul(acc, x)
	}

	return acc
}

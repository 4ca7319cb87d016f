// SPDX-License-Identifier: MIT

// Package core is the foundation of the semiring engine. Every other package
// (matrix, free, polynomial, lossy) is written against the contract defined
// here and never against a concrete algebra.
//
// An algebra is a descriptor value: it does not live inside the elements, it
// operates on them. A Boolean algebra works on bool, a tropical one on int64,
// the free semiring on handles into an arena. The descriptor carries whatever
// context the algebra needs (for the free semiring, the arena itself).
//
// Capabilities:
//
//	Semiring[T]            Zero, One, Add, Mul, Equal, Format, Laws
//	Starable[T]            Semiring + Star (closure a* = 1 + a + a·a + …)
//	CommutativeSemiring[T] Semiring + CommutativeMul marker
//	Hasher[T]              optional Hash(T) for bucketing in interners
//
// Star lives on its own interface. Generic code that needs a closure takes a
// Starable parameter, so passing an algebra without one (polynomials, the
// counting semiring) does not compile.
//
// Law tags:
//
//	Laws{Commutativity, Idempotence}
//
// Each algebra declares its tags. Generic code consults them at composition
// boundaries: the commutative polynomial refuses a non-commutative algebra
// (RequireCommutative), repeated addition short-circuits for idempotent ones
// (Replicate). CheckLaws verifies the declared tags and the semiring axioms
// over a finite sample and is intended for property tests.
//
// Variables:
//
//	VarID        uint32 identifier, totally ordered, hashable
//	Allocator    Fresh() VarID, consumed by lowering to the free semiring
//	Registry     thread-safe Allocator with optional names
//	Valuation[T] map[VarID]T with an aborting Get
//
// Error policy:
//
// Arithmetic never fails. Precondition violations (an unmapped variable, a
// non-commutative algebra where commutativity is required) are programmer
// errors and panic with a wrapped sentinel error (see Abort), so tests and
// callers that recover can still match them with errors.Is. Operations that
// validate user data (Registry.NewVar, Registry.Name) return errors.
package core

// SPDX-License-Identifier: MIT

// This file declares the sentinel errors, variable identifiers and law tags.
//
// Errors:
//
//	ErrUnmappedVariable - a valuation has no entry for a variable being evaluated.
//	ErrLawViolation     - an algebra was composed where its declared laws forbid it,
//	                      or a sampled algebra violated a semiring law.
//	ErrUnknownVariable  - a registry lookup referenced an id it never allocated.
//	ErrEmptyVarName     - a registry was asked to name a variable with "".

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrUnmappedVariable indicates that a valuation was asked for a variable it does not map.
	ErrUnmappedVariable = errors.New("core: variable not mapped by valuation")

	// ErrLawViolation indicates that an algebra does not satisfy a required law.
	ErrLawViolation = errors.New("core: semiring law violated")

	// ErrUnknownVariable indicates that a variable id was never allocated by the registry.
	ErrUnknownVariable = errors.New("core: unknown variable")

	// ErrEmptyVarName indicates that a named variable was requested with an empty name.
	ErrEmptyVarName = errors.New("core: variable name is empty")
)

// VarID identifies a variable. Ids are totally ordered and hashable; the
// zero value is never handed out by a Registry.
type VarID uint32

// String renders the id as "v<n>"; use Registry.Name for user-facing names.
func (v VarID) String() string { return fmt.Sprintf("v%d", uint32(v)) }

// Commutativity tags whether an algebra's multiplication commutes.
type Commutativity uint8

const (
	// NonCommutative multiplication: a*b and b*a may differ.
	NonCommutative Commutativity = iota
	// Commutative multiplication: a*b == b*a for all a, b.
	Commutative
)

// String implements fmt.Stringer.
func (c Commutativity) String() string {
	if c == Commutative {
		return "commutative"
	}

	return "non-commutative"
}

// Idempotence tags whether an algebra's addition is idempotent.
type Idempotence uint8

const (
	// NonIdempotent addition: a+a may differ from a.
	NonIdempotent Idempotence = iota
	// Idempotent addition: a+a == a for all a.
	Idempotent
)

// String implements fmt.Stringer.
func (i Idempotence) String() string {
	if i == Idempotent {
		return "idempotent"
	}

	return "non-idempotent"
}

// Laws bundles the law tags an algebra declares about itself.
type Laws struct {
	Commutativity Commutativity
	Idempotence   Idempotence
}

// IsCommutative reports whether multiplication is declared commutative.
func (l Laws) IsCommutative() bool { return l.Commutativity == Commutative }

// IsIdempotent reports whether addition is declared idempotent.
func (l Laws) IsIdempotent() bool { return l.Idempotence == Idempotent }

// String implements fmt.Stringer.
func (l Laws) String() string {
	return l.Commutativity.String() + ", " + l.Idempotence.String()
}

// abortf panics with err wrapped under the operation tag. It is the single
// exit used for precondition violations, so callers recovering the panic
// can still match the sentinel with errors.Is.
func abortf(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

// Abort is the exported form of abortf for sibling packages.
// It never returns.
func Abort(op string, err error) {
	abortf(op, err)
}

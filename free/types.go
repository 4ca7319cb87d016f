// SPDX-License-Identifier: MIT

// This file declares node kinds, handles, the Factory arena and the
// sentinel errors of the package.
//
// Errors:
//
//	ErrInvalidHandle  - a handle is out of range or addresses a reclaimed slot.
//	ErrStaleEvaluator - an evaluator outlived a GC of its factory.
//	ErrNotStarable    - a star node was evaluated over an algebra without Star.

package free

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/semiring/core"
)

// Sentinel errors for factory and evaluator operations.
var (
	// ErrInvalidHandle indicates a handle that does not address a live node.
	ErrInvalidHandle = errors.New("free: invalid handle")

	// ErrStaleEvaluator indicates an evaluator created before the last GC.
	ErrStaleEvaluator = errors.New("free: evaluator is stale after GC")

	// ErrNotStarable indicates a star node met an algebra lacking Star.
	ErrNotStarable = errors.New("free: algebra is not starable")
)

// Handle addresses a node inside one Factory. Handles from different
// factories must not be mixed.
type Handle uint32

// Handles present in every factory.
const (
	// Empty is the zero of the free semiring.
	Empty Handle = 0
	// Epsilon is the one of the free semiring.
	Epsilon Handle = 1
)

// Kind is the tag of a node.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindEpsilon
	KindElement
	KindAddition
	KindMultiplication
	KindStar

	// kindFreed marks a slot reclaimed by GC and waiting on the free list.
	kindFreed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEpsilon:
		return "epsilon"
	case KindElement:
		return "element"
	case KindAddition:
		return "addition"
	case KindMultiplication:
		return "multiplication"
	case KindStar:
		return "star"
	default:
		return "freed"
	}
}

// node is one slot of the arena. It doubles as the hash-consing key: two
// nodes are structurally equal iff their values are equal, and operand
// order is part of the value.
type node struct {
	kind     Kind
	lhs, rhs Handle // operands; rhs unused for star
	v        core.VarID
}

// Factory is an arena of hash-consed expression nodes.
//
// Nodes are immutable once created. Construction is serialized by mu, and
// evaluators read a snapshot of the node slice without locking. Nodes are
// only reclaimed by an explicit GC, which bumps epoch so that evaluators
// built earlier refuse to run.
type Factory struct {
	mu       sync.RWMutex
	id       uuid.UUID
	nodes    []node
	index    map[node]Handle
	free     []Handle // reclaimed slots, lowest handle last
	epoch    atomic.Uint64
	simplify bool
}

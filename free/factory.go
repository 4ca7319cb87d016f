// SPDX-License-Identifier: MIT

package free

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/semiring/core"
)

const (
	opElement  = "Factory.Element"
	opAdd      = "Factory.Add"
	opMul      = "Factory.Mul"
	opStar     = "Factory.Star"
	opKind     = "Factory.Kind"
	opOperands = "Factory.Operands"
	opGC       = "Factory.GC"
)

// NewFactory returns an arena holding only Empty and Epsilon.
func NewFactory(opts ...Option) *Factory {
	o := gatherOptions(opts...)
	f := &Factory{
		id:       uuid.New(),
		nodes:    make([]node, 2, o.capacity+2),
		index:    make(map[node]Handle, o.capacity),
		simplify: o.simplify,
	}
	f.nodes[Empty] = node{kind: KindEmpty}
	f.nodes[Epsilon] = node{kind: KindEpsilon}

	return f
}

// ID returns the random identity of the factory, used to name exports.
func (f *Factory) ID() uuid.UUID { return f.id }

// Empty returns the zero handle.
func (f *Factory) Empty() Handle { return Empty }

// Epsilon returns the one handle.
func (f *Factory) Epsilon() Handle { return Epsilon }

// Element returns the leaf for variable v.
func (f *Factory) Element(v core.VarID) Handle {
	return f.intern(opElement, node{kind: KindElement, v: v})
}

// Add returns the handle of l + r. Operand order is kept.
func (f *Factory) Add(l, r Handle) Handle {
	if f.simplify {
		switch {
		case l == Empty:
			return f.live(opAdd, r)
		case r == Empty:
			return f.live(opAdd, l)
		}
	}

	return f.intern(opAdd, node{kind: KindAddition, lhs: l, rhs: r})
}

// Mul returns the handle of l · r. Operand order is kept.
func (f *Factory) Mul(l, r Handle) Handle {
	if f.simplify {
		switch {
		case l == Empty || r == Empty:
			f.live(opMul, l)
			f.live(opMul, r)

			return Empty
		case l == Epsilon:
			return f.live(opMul, r)
		case r == Epsilon:
			return f.live(opMul, l)
		}
	}

	return f.intern(opMul, node{kind: KindMultiplication, lhs: l, rhs: r})
}

// Star returns the handle of x*.
func (f *Factory) Star(x Handle) Handle {
	if f.simplify && x == Empty {
		return Epsilon
	}

	return f.intern(opStar, node{kind: KindStar, lhs: x})
}

// intern returns the existing handle for n or allocates one, reusing a
// reclaimed slot when the free list is not empty.
func (f *Factory) intern(op string, n node) Handle {
	f.mu.RLock()
	h, ok := f.index[n]
	f.mu.RUnlock()
	if ok {
		return h
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if h, ok = f.index[n]; ok {
		return h
	}
	switch n.kind {
	case KindAddition, KindMultiplication:
		f.checkLocked(op, n.lhs)
		f.checkLocked(op, n.rhs)
	case KindStar:
		f.checkLocked(op, n.lhs)
	}

	if k := len(f.free); k > 0 {
		h = f.free[k-1]
		f.free = f.free[:k-1]
		f.nodes[h] = n
	} else {
		h = Handle(len(f.nodes))
		f.nodes = append(f.nodes, n)
	}
	f.index[n] = h

	return h
}

// live aborts unless h addresses a live node, then returns h.
func (f *Factory) live(op string, h Handle) Handle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	f.checkLocked(op, h)

	return h
}

// checkLocked aborts with ErrInvalidHandle for out-of-range or freed handles.
// The caller holds mu.
func (f *Factory) checkLocked(op string, h Handle) {
	if int(h) >= len(f.nodes) || f.nodes[h].kind == kindFreed {
		core.Abort(op, ErrInvalidHandle)
	}
}

// Kind returns the tag of h.
func (f *Factory) Kind(h Handle) Kind {
	f.mu.RLock()
	defer f.mu.RUnlock()
	f.checkLocked(opKind, h)

	return f.nodes[h].kind
}

// Operands returns the children of h: (lhs, rhs) for additions and
// multiplications, (operand, Empty) for stars, (Empty, Empty) otherwise.
func (f *Factory) Operands(h Handle) (lhs, rhs Handle) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	f.checkLocked(opOperands, h)

	n := f.nodes[h]
	switch n.kind {
	case KindAddition, KindMultiplication:
		return n.lhs, n.rhs
	case KindStar:
		return n.lhs, Empty
	default:
		return Empty, Empty
	}
}

// Var returns the variable of an element node.
func (f *Factory) Var(h Handle) (core.VarID, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(h) >= len(f.nodes) || f.nodes[h].kind != KindElement {
		return 0, false
	}

	return f.nodes[h].v, true
}

// Len returns the number of live nodes, Empty and Epsilon included.
func (f *Factory) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.nodes) - len(f.free)
}

// Epoch returns the number of GC passes run so far.
func (f *Factory) Epoch() uint64 { return f.epoch.Load() }

// snapshot returns the node slice capped at its current length together
// with the epoch it belongs to. Slots inside the snapshot are never written
// again until the next GC.
func (f *Factory) snapshot() ([]node, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := len(f.nodes)

	return f.nodes[:n:n], f.epoch.Load()
}

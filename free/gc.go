// SPDX-License-Identifier: MIT

package free

import (
	"cmp"
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// GC reclaims every node not reachable from roots and returns how many
// slots were freed. Empty and Epsilon always survive.
//
// Contract:
//   - Handles not reachable from roots are invalid afterwards; their slots
//     are reused by later constructions.
//   - The epoch is bumped, so evaluators created before the call abort
//     with ErrStaleEvaluator.
//   - Must not run concurrently with evaluation. It takes the write lock,
//     so it is serialized with node construction.
//
// Complexity: O(total slots) time, O(live nodes) extra space.
func (f *Factory) GC(roots ...Handle) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, h := range roots {
		f.checkLocked(opGC, h)
	}

	live := set.New[Handle](len(f.nodes))
	live.Insert(Empty)
	live.Insert(Epsilon)
	stack := append([]Handle(nil), roots...)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !live.Insert(h) {
			continue
		}
		n := f.nodes[h]
		switch n.kind {
		case KindAddition, KindMultiplication:
			stack = append(stack, n.lhs, n.rhs)
		case KindStar:
			stack = append(stack, n.lhs)
		}
	}

	reclaimed := 0
	for i := 2; i < len(f.nodes); i++ {
		h := Handle(i)
		if f.nodes[h].kind == kindFreed || live.Contains(h) {
			continue
		}
		delete(f.index, f.nodes[h])
		f.nodes[h] = node{kind: kindFreed}
		f.free = append(f.free, h)
		reclaimed++
	}
	// Pop order is ascending, so the arena refills from the front.
	slices.SortFunc(f.free, func(a, b Handle) int { return cmp.Compare(b, a) })
	f.epoch.Add(1)

	return reclaimed
}

// SPDX-License-Identifier: MIT
// Package free — diagnostics: infix rendering, Graphviz export and stats.
//
// All functions here only read the arena and hold the read lock for their
// whole duration.

package free

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

// String renders h in infix form: ∅, ε, v3, (a + b), (a · b), (a)*.
// Shared subexpressions are printed at every occurrence.
func (f *Factory) String(h Handle) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(h) >= len(f.nodes) || f.nodes[h].kind == kindFreed {
		return fmt.Sprintf("<invalid %d>", h)
	}

	memo := make(map[Handle]string)
	var render func(Handle) string
	render = func(h Handle) string {
		if s, ok := memo[h]; ok {
			return s
		}
		n := f.nodes[h]
		var s string
		switch n.kind {
		case KindEmpty:
			s = "∅"
		case KindEpsilon:
			s = "ε"
		case KindElement:
			s = n.v.String()
		case KindAddition:
			s = "(" + render(n.lhs) + " + " + render(n.rhs) + ")"
		case KindMultiplication:
			s = "(" + render(n.lhs) + " · " + render(n.rhs) + ")"
		case KindStar:
			s = "(" + render(n.lhs) + ")*"
		}
		memo[h] = s

		return s
	}

	return render(h)
}

// WriteDot writes the graph reachable from roots in Graphviz format. With
// no roots every live node is written. The digraph is named after the
// factory ID; nodes appear in ascending handle order.
func (f *Factory) WriteDot(w io.Writer, roots ...Handle) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keep := make([]bool, len(f.nodes))
	if len(roots) == 0 {
		for i, n := range f.nodes {
			keep[i] = n.kind != kindFreed
		}
	} else {
		stack := make([]Handle, 0, len(roots))
		for _, h := range roots {
			f.checkLocked("Factory.WriteDot", h)
			stack = append(stack, h)
		}
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if keep[h] {
				continue
			}
			keep[h] = true
			n := f.nodes[h]
			switch n.kind {
			case KindAddition, KindMultiplication:
				stack = append(stack, n.lhs, n.rhs)
			case KindStar:
				stack = append(stack, n.lhs)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", "free_"+f.id.String())
	for i, ok := range keep {
		if !ok {
			continue
		}
		n := f.nodes[i]
		fmt.Fprintf(&b, "  n%d [label=%q];\n", i, dotLabel(n))
		switch n.kind {
		case KindAddition, KindMultiplication:
			fmt.Fprintf(&b, "  n%d -> n%d [label=\"l\"];\n", i, n.lhs)
			fmt.Fprintf(&b, "  n%d -> n%d [label=\"r\"];\n", i, n.rhs)
		case KindStar:
			fmt.Fprintf(&b, "  n%d -> n%d;\n", i, n.lhs)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("Factory.WriteDot: %w", err)
	}

	return nil
}

func dotLabel(n node) string {
	switch n.kind {
	case KindEmpty:
		return "∅"
	case KindEpsilon:
		return "ε"
	case KindElement:
		return n.v.String()
	case KindAddition:
		return "+"
	case KindMultiplication:
		return "·"
	default:
		return "*"
	}
}

// Stats is a point-in-time summary of a factory.
type Stats struct {
	ID     uuid.UUID
	Live   int          // live nodes, Empty and Epsilon included
	ByKind map[Kind]int // live nodes per kind
	Free   int          // reclaimed slots awaiting reuse
	Epoch  uint64       // completed GC passes
}

// Stats counts live nodes per kind.
func (f *Factory) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	s := Stats{ID: f.id, ByKind: make(map[Kind]int, 6), Free: len(f.free), Epoch: f.epoch.Load()}
	for _, n := range f.nodes {
		if n.kind == kindFreed {
			continue
		}
		s.ByKind[n.kind]++
		s.Live++
	}

	return s
}

// String renders the stats as an aligned table, one kind per line.
func (s Stats) String() string {
	rows := [][2]string{
		{"∅ " + KindEmpty.String(), fmt.Sprint(s.ByKind[KindEmpty])},
		{"ε " + KindEpsilon.String(), fmt.Sprint(s.ByKind[KindEpsilon])},
		{"v " + KindElement.String(), fmt.Sprint(s.ByKind[KindElement])},
		{"+ " + KindAddition.String(), fmt.Sprint(s.ByKind[KindAddition])},
		{"· " + KindMultiplication.String(), fmt.Sprint(s.ByKind[KindMultiplication])},
		{"* " + KindStar.String(), fmt.Sprint(s.ByKind[KindStar])},
		{"live", fmt.Sprint(s.Live)},
		{"free", fmt.Sprint(s.Free)},
		{"epoch", fmt.Sprint(s.Epoch)},
	}
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}

	var b strings.Builder
	b.WriteString("factory " + s.ID.String() + "\n")
	for _, r := range rows {
		b.WriteString("  " + runewidth.FillRight(r[0], width) + "  " + r[1] + "\n")
	}

	return b.String()
}

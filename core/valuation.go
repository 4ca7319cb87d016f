// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
	"strings"
)

// Valuation assigns algebra elements to variables.
type Valuation[T any] map[VarID]T

// Get returns the value of v. A missing entry is a programmer error: the
// caller promised a valuation total over the expression's free variables,
// so Get aborts with ErrUnmappedVariable.
func (val Valuation[T]) Get(v VarID) T {
	x, ok := val[v]
	if !ok {
		abortf(fmt.Sprintf("Valuation.Get(%s)", v), ErrUnmappedVariable)
	}

	return x
}

// Vars returns the mapped variables in ascending order.
func (val Valuation[T]) Vars() []VarID {
	out := make([]VarID, 0, len(val))
	for v := range val {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Clone returns a shallow copy (elements are shared, the map is not).
func (val Valuation[T]) Clone() Valuation[T] {
	out := make(Valuation[T], len(val))
	for v, x := range val {
		out[v] = x
	}

	return out
}

// Format renders the valuation as "v1→x; v2→y" in variable order.
func (val Valuation[T]) Format(sr Semiring[T]) string {
	var b strings.Builder
	for i, v := range val.Vars() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.String())
		b.WriteString("→")
		b.WriteString(sr.Format(val[v]))
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

package polynomial

import (
	"cmp"
	"encoding/binary"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
)

// varDeg is one factor v^d of a commutative monomial, d >= 1.
type varDeg struct {
	v core.VarID
	d uint32
}

// Monomial is a commutative product of variables, kept as a list of
// (variable, degree) pairs sorted by variable with every degree >= 1. The
// zero value is the empty product.
//
// Monomials are values: every method returns a new monomial and never
// modifies its receiver.
type Monomial struct {
	factors []varDeg
}

// NewMonomial returns the product of vars; repeated variables raise the degree.
func NewMonomial(vars ...core.VarID) Monomial {
	var m Monomial
	for _, v := range vars {
		m = m.MulVar(v)
	}

	return m
}

// MonomialOf builds a monomial from a degree table. Zero degrees are ignored.
func MonomialOf(degrees map[core.VarID]uint32) Monomial {
	fs := make([]varDeg, 0, len(degrees))
	for v, d := range degrees {
		if d > 0 {
			fs = append(fs, varDeg{v: v, d: d})
		}
	}
	slices.SortFunc(fs, func(a, b varDeg) int { return cmp.Compare(a.v, b.v) })

	return Monomial{factors: fs}
}

// find returns the position of v, or where it would be inserted.
func (m Monomial) find(v core.VarID) (int, bool) {
	return slices.BinarySearchFunc(m.factors, v, func(f varDeg, v core.VarID) int { return cmp.Compare(f.v, v) })
}

// IsOne reports whether m is the empty product.
func (m Monomial) IsOne() bool { return len(m.factors) == 0 }

// Degree returns the total degree.
func (m Monomial) Degree() uint32 {
	var d uint32
	for _, f := range m.factors {
		d += f.d
	}

	return d
}

// DegreeOf returns the degree of v in m.
func (m Monomial) DegreeOf(v core.VarID) uint32 {
	if i, ok := m.find(v); ok {
		return m.factors[i].d
	}

	return 0
}

// Vars returns the variables of m in ascending order.
func (m Monomial) Vars() []core.VarID {
	out := make([]core.VarID, len(m.factors))
	for i, f := range m.factors {
		out[i] = f.v
	}

	return out
}

// Mul returns m·o. Degrees of shared variables add.
func (m Monomial) Mul(o Monomial) Monomial {
	out := make([]varDeg, 0, len(m.factors)+len(o.factors))
	i, j := 0, 0
	for i < len(m.factors) && j < len(o.factors) {
		a, b := m.factors[i], o.factors[j]
		switch {
		case a.v < b.v:
			out = append(out, a)
			i++
		case a.v > b.v:
			out = append(out, b)
			j++
		default:
			out = append(out, varDeg{v: a.v, d: a.d + b.d})
			i++
			j++
		}
	}
	out = append(out, m.factors[i:]...)
	out = append(out, o.factors[j:]...)

	return Monomial{factors: out}
}

// MulVar returns m·v.
func (m Monomial) MulVar(v core.VarID) Monomial {
	return m.Mul(Monomial{factors: []varDeg{{v: v, d: 1}}})
}

// Derivative differentiates m by v. It returns the degree of v in m (the
// number of times the reduced monomial is produced by the product rule)
// and m with that degree lowered by one. A count of zero means the
// derivative vanishes; the returned monomial is then m itself.
func (m Monomial) Derivative(v core.VarID) (uint32, Monomial) {
	i, ok := m.find(v)
	if !ok {
		return 0, m
	}
	count := m.factors[i].d
	out := slices.Clone(m.factors)
	if count == 1 {
		out = slices.Delete(out, i, i+1)
	} else {
		out[i].d--
	}

	return count, Monomial{factors: out}
}

// Subst renames variables per mapping; unmapped variables are kept.
// Two variables renamed to the same target merge their degrees.
func (m Monomial) Subst(mapping map[core.VarID]core.VarID) Monomial {
	var out Monomial
	for _, f := range m.factors {
		v := f.v
		if to, ok := mapping[v]; ok {
			v = to
		}
		out = out.Mul(Monomial{factors: []varDeg{{v: v, d: f.d}}})
	}

	return out
}

// MakeFree returns the product of the variables of m as a node of f, each
// variable repeated by its degree, in ascending variable order. The empty
// product is free.Epsilon.
func (m Monomial) MakeFree(f *free.Factory) free.Handle {
	h := free.Epsilon
	for _, fd := range m.factors {
		x := f.Element(fd.v)
		for k := uint32(0); k < fd.d; k++ {
			h = f.Mul(h, x)
		}
	}

	return h
}

// Compare orders monomials lexicographically by their (variable, degree)
// lists; a proper prefix sorts first. It is a total order consistent with Equal.
func (m Monomial) Compare(o Monomial) int {
	n := min(len(m.factors), len(o.factors))
	for i := 0; i < n; i++ {
		a, b := m.factors[i], o.factors[i]
		if c := cmp.Compare(a.v, b.v); c != 0 {
			return c
		}
		switch {
		case a.d < b.d:
			return -1
		case a.d > b.d:
			return 1
		}
	}
	switch {
	case len(m.factors) < len(o.factors):
		return -1
	case len(m.factors) > len(o.factors):
		return 1
	}

	return 0
}

// Equal reports whether m and o have the same degree table.
func (m Monomial) Equal(o Monomial) bool { return slices.Equal(m.factors, o.factors) }

// key is a compact map key for m.
func (m Monomial) key() string {
	buf := make([]byte, 0, 8*len(m.factors))
	for _, f := range m.factors {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f.v))
		buf = binary.LittleEndian.AppendUint32(buf, f.d)
	}

	return string(buf)
}

// String renders m as "v1^2·v3", or "1" for the empty product.
func (m Monomial) String() string {
	if m.IsOne() {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.v.String()
		if f.d > 1 {
			parts[i] += "^" + strconv.FormatUint(uint64(f.d), 10)
		}
	}

	return strings.Join(parts, "·")
}

// EvalMonomial returns the value of m under val, folding factors in
// ascending variable order. Unmapped variables abort with core.ErrUnmappedVariable.
func EvalMonomial[T any](m Monomial, sr core.Semiring[T], val core.Valuation[T]) T {
	acc := sr.One()
	for _, f := range m.factors {
		acc = sr.Mul(acc, core.Power(sr, val.Get(f.v), uint64(f.d)))
	}

	return acc
}

// PartialEvalMonomial evaluates the variables of m that val maps and
// returns their product together with the residual monomial.
func PartialEvalMonomial[T any](m Monomial, sr core.Semiring[T], val core.Valuation[T]) (T, Monomial) {
	acc := sr.One()
	rest := make([]varDeg, 0, len(m.factors))
	for _, f := range m.factors {
		x, ok := val[f.v]
		if !ok {
			rest = append(rest, f)
			continue
		}
		acc = sr.Mul(acc, core.Power(sr, x, uint64(f.d)))
	}

	return acc, Monomial{factors: rest}
}

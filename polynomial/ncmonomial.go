// SPDX-License-Identifier: MIT

package polynomial

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
)

// Factor is one factor of a non-commutative monomial: a variable or a
// constant of the algebra.
type Factor[T any] struct {
	isVar bool
	v     core.VarID
	c     T
}

// VarFactor returns the factor v.
func VarFactor[T any](v core.VarID) Factor[T] { return Factor[T]{isVar: true, v: v} }

// ConstFactor returns the constant factor c.
func ConstFactor[T any](c T) Factor[T] { return Factor[T]{c: c} }

// Var returns the variable of a variable factor.
func (f Factor[T]) Var() (core.VarID, bool) { return f.v, f.isVar }

// Const returns the value of a constant factor.
func (f Factor[T]) Const() (T, bool) { return f.c, !f.isVar }

// NCMonomial is an ordered product of variables and constants.
//
// Canonical form: adjacent constants are multiplied together and constants
// equal to One() are dropped. A monomial with a Zero() factor vanishes and
// is never represented; constructors report it with ok == false.
type NCMonomial[T any] struct {
	sr      core.Semiring[T]
	factors []Factor[T]
}

// NewNCMonomial returns the canonical product of factors, or ok == false
// if it is zero.
func NewNCMonomial[T any](sr core.Semiring[T], factors ...Factor[T]) (NCMonomial[T], bool) {
	return canonical(sr, factors)
}

// canonical merges constant runs and drops ones. It never aliases in.
func canonical[T any](sr core.Semiring[T], in []Factor[T]) (NCMonomial[T], bool) {
	var (
		zero, one = sr.Zero(), sr.One()
		out       = make([]Factor[T], 0, len(in))
		acc       T
		pending   bool
	)
	flush := func() {
		if pending && !sr.Equal(acc, one) {
			out = append(out, Factor[T]{c: acc})
		}
		pending = false
	}
	for _, f := range in {
		if f.isVar {
			flush()
			out = append(out, f)
			continue
		}
		if pending {
			acc = sr.Mul(acc, f.c)
		} else {
			acc, pending = f.c, true
		}
		if sr.Equal(acc, zero) {
			return NCMonomial[T]{}, false
		}
	}
	flush()

	return NCMonomial[T]{sr: sr, factors: out}, true
}

// Factors returns a copy of the canonical factor list.
func (m NCMonomial[T]) Factors() []Factor[T] { return append([]Factor[T](nil), m.factors...) }

// IsOne reports whether m is the empty product.
func (m NCMonomial[T]) IsOne() bool { return len(m.factors) == 0 }

// Mul returns m·o, or ok == false if the product vanishes.
func (m NCMonomial[T]) Mul(o NCMonomial[T]) (NCMonomial[T], bool) {
	fs := make([]Factor[T], 0, len(m.factors)+len(o.factors))
	fs = append(fs, m.factors...)
	fs = append(fs, o.factors...)

	return canonical(m.sr, fs)
}

// MulVar returns m·v.
func (m NCMonomial[T]) MulVar(v core.VarID) NCMonomial[T] {
	fs := make([]Factor[T], 0, len(m.factors)+1)
	fs = append(fs, m.factors...)

	return NCMonomial[T]{sr: m.sr, factors: append(fs, VarFactor[T](v))}
}

// Degree returns the number of variable occurrences.
func (m NCMonomial[T]) Degree() int {
	n := 0
	for _, f := range m.factors {
		if f.isVar {
			n++
		}
	}

	return n
}

// CountOf returns how often v occurs in m.
func (m NCMonomial[T]) CountOf(v core.VarID) int {
	n := 0
	for _, f := range m.factors {
		if f.isVar && f.v == v {
			n++
		}
	}

	return n
}

// evalFactors folds fs left to right under val.
func evalFactors[T any](sr core.Semiring[T], fs []Factor[T], val core.Valuation[T]) T {
	acc := sr.One()
	for _, f := range fs {
		if f.isVar {
			acc = sr.Mul(acc, val.Get(f.v))
		} else {
			acc = sr.Mul(acc, f.c)
		}
	}

	return acc
}

// Eval folds m in order under val.
func (m NCMonomial[T]) Eval(val core.Valuation[T]) T { return evalFactors(m.sr, m.factors, val) }

// PartialEval replaces the variables val maps by their values, or returns
// ok == false if the result vanishes.
func (m NCMonomial[T]) PartialEval(val core.Valuation[T]) (NCMonomial[T], bool) {
	fs := make([]Factor[T], len(m.factors))
	for i, f := range m.factors {
		if x, ok := val[f.v]; f.isVar && ok {
			f = ConstFactor(x)
		}
		fs[i] = f
	}

	return canonical(m.sr, fs)
}

// Subst renames variables per mapping.
func (m NCMonomial[T]) Subst(mapping map[core.VarID]core.VarID) NCMonomial[T] {
	fs := m.Factors()
	for i := range fs {
		if to, ok := mapping[fs[i].v]; fs[i].isVar && ok {
			fs[i].v = to
		}
	}

	return NCMonomial[T]{sr: m.sr, factors: fs}
}

// MakeFree lowers m into f as the ordered product of its factors, interning
// constants through in.
func (m NCMonomial[T]) MakeFree(f *free.Factory, in *Interner[T]) free.Handle {
	h := free.Epsilon
	for _, x := range m.factors {
		if x.isVar {
			h = f.Mul(h, f.Element(x.v))
		} else {
			h = f.Mul(h, coeffNode(m.sr, f, in, x.c))
		}
	}

	return h
}

// LeadingFactor returns the product of the constants before the first
// variable. ok is false for variable-free monomials.
func (m NCMonomial[T]) LeadingFactor() (T, bool) {
	acc := m.sr.One()
	for _, f := range m.factors {
		if f.isVar {
			return acc, true
		}
		acc = m.sr.Mul(acc, f.c)
	}

	return acc, false
}

// TrailingFactor returns the product of the constants after the last
// variable. ok is false for variable-free monomials.
func (m NCMonomial[T]) TrailingFactor() (T, bool) {
	for i := len(m.factors) - 1; i >= 0; i-- {
		if m.factors[i].isVar {
			return evalFactors(m.sr, m.factors[i+1:], nil), true
		}
	}

	return m.sr.One(), false
}

// Equal reports whether m and o have the same factor sequence.
func (m NCMonomial[T]) Equal(o NCMonomial[T]) bool {
	if len(m.factors) != len(o.factors) {
		return false
	}
	for i, f := range m.factors {
		g := o.factors[i]
		if f.isVar != g.isVar {
			return false
		}
		if f.isVar && f.v != g.v {
			return false
		}
		if !f.isVar && !m.sr.Equal(f.c, g.c) {
			return false
		}
	}

	return true
}

// constKey renders a constant for ordering: its hash when the algebra is a
// core.Hasher, its Format otherwise.
func constKey[T any](sr core.Semiring[T], c T) string {
	if h, ok := sr.(core.Hasher[T]); ok {
		return "#" + strconv.FormatUint(h.Hash(c), 16)
	}

	return sr.Format(c)
}

// constBucket is the part of a bucket key contributed by a constant. Without
// a core.Hasher every constant shares one token; Equal tells them apart.
func constBucket[T any](sr core.Semiring[T], c T) string {
	if h, ok := sr.(core.Hasher[T]); ok {
		return strconv.FormatUint(h.Hash(c), 16)
	}

	return ""
}

// key is the bucket key of m. Equal monomials have equal keys; monomials
// with equal keys are told apart with Equal.
func (m NCMonomial[T]) key() string {
	var b strings.Builder
	for _, f := range m.factors {
		if f.isVar {
			b.WriteString("v")
			b.WriteString(strconv.FormatUint(uint64(f.v), 10))
		} else {
			b.WriteString("c")
			b.WriteString(constBucket(m.sr, f.c))
		}
		b.WriteByte(0)
	}

	return b.String()
}

// Compare orders monomials factor by factor: variables before constants,
// variables by id, constants by their key; a proper prefix sorts first.
func (m NCMonomial[T]) Compare(o NCMonomial[T]) int {
	n := min(len(m.factors), len(o.factors))
	for i := 0; i < n; i++ {
		f, g := m.factors[i], o.factors[i]
		switch {
		case f.isVar && !g.isVar:
			return -1
		case !f.isVar && g.isVar:
			return 1
		case f.isVar:
			if c := cmp.Compare(f.v, g.v); c != 0 {
				return c
			}
		default:
			if c := cmp.Compare(constKey(m.sr, f.c), constKey(m.sr, g.c)); c != 0 {
				return c
			}
		}
	}

	return cmp.Compare(len(m.factors), len(o.factors))
}

// String renders m as "c·v1·v2", or the algebra's one for the empty product.
func (m NCMonomial[T]) String() string {
	if m.IsOne() {
		return m.sr.Format(m.sr.One())
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if f.isVar {
			parts[i] = f.v.String()
		} else {
			parts[i] = m.sr.Format(f.c)
		}
	}

	return strings.Join(parts, "·")
}

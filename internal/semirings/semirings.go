// SPDX-License-Identifier: MIT

// Package semirings provides small concrete algebras used by the package
// tests: Boolean, Tropical (min-plus), Counting (natural numbers),
// Probability (float closure 1/(1-x)), LetterSet (the alphabet abstraction of
// the lossy algebra) and Language (word sets truncated at a length bound).
package semirings

import (
	"fmt"
	"hash/fnv"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/semiring/core"
)

// ---------- Boolean ----------

// Boolean is ({false,true}, or, and); commutative, idempotent, star = true.
type Boolean struct{}

var (
	_ core.Starable[bool]            = Boolean{}
	_ core.CommutativeSemiring[bool] = Boolean{}
	_ core.Hasher[bool]              = Boolean{}
)

func (Boolean) Zero() bool           { return false }
func (Boolean) One() bool            { return true }
func (Boolean) Add(a, b bool) bool   { return a || b }
func (Boolean) Mul(a, b bool) bool   { return a && b }
func (Boolean) Star(bool) bool       { return true }
func (Boolean) Equal(a, b bool) bool { return a == b }
func (Boolean) Format(a bool) string { return fmt.Sprintf("%t", a) }
func (Boolean) CommutativeMul()      {}
func (Boolean) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.Idempotent}
}
func (Boolean) Hash(a bool) uint64 {
	if a {
		return 1
	}
	return 0
}

// ---------- Tropical ----------

// TropicalInf is the tropical zero (no path).
const TropicalInf int64 = math.MaxInt64

// TropicalNegInf results from closing a negative weight.
const TropicalNegInf int64 = math.MinInt64

// Tropical is (ℤ∪{±∞}, min, +); commutative, idempotent.
type Tropical struct{}

var (
	_ core.Starable[int64]            = Tropical{}
	_ core.CommutativeSemiring[int64] = Tropical{}
	_ core.Hasher[int64]              = Tropical{}
)

func (Tropical) Zero() int64 { return TropicalInf }
func (Tropical) One() int64  { return 0 }
func (Tropical) Add(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
func (Tropical) Mul(a, b int64) int64 {
	switch {
	case a == TropicalInf || b == TropicalInf:
		return TropicalInf
	case a == TropicalNegInf || b == TropicalNegInf:
		return TropicalNegInf
	}
	return a + b
}
func (Tropical) Star(a int64) int64 {
	if a < 0 {
		return TropicalNegInf
	}
	return 0
}
func (Tropical) Equal(a, b int64) bool { return a == b }
func (Tropical) Format(a int64) string {
	switch a {
	case TropicalInf:
		return "∞"
	case TropicalNegInf:
		return "-∞"
	}
	return fmt.Sprintf("%d", a)
}
func (Tropical) CommutativeMul()     {}
func (Tropical) Hash(a int64) uint64 { return uint64(a) }
func (Tropical) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.Idempotent}
}

// ---------- Counting ----------

// Counting is (ℕ, +, ·); commutative, not idempotent, no star.
type Counting struct{}

var (
	_ core.Semiring[uint64]            = Counting{}
	_ core.CommutativeSemiring[uint64] = Counting{}
	_ core.Hasher[uint64]              = Counting{}
)

func (Counting) Zero() uint64           { return 0 }
func (Counting) One() uint64            { return 1 }
func (Counting) Add(a, b uint64) uint64 { return a + b }
func (Counting) Mul(a, b uint64) uint64 { return a * b }
func (Counting) Equal(a, b uint64) bool { return a == b }
func (Counting) Format(a uint64) string { return fmt.Sprintf("%d", a) }
func (Counting) CommutativeMul()        {}
func (Counting) Hash(a uint64) uint64   { return a }
func (Counting) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.NonIdempotent}
}

// ---------- Probability ----------

// Probability is (ℝ≥0∪{∞}, +, ·) with star(x) = 1/(1-x) for x < 1 and ∞
// otherwise. Equality is relative within Eps, so closure algorithms that
// associate differently still compare equal.
type Probability struct{ Eps float64 }

var (
	_ core.Starable[float64]            = Probability{}
	_ core.CommutativeSemiring[float64] = Probability{}
)

func (Probability) Zero() float64            { return 0 }
func (Probability) One() float64             { return 1 }
func (Probability) Add(a, b float64) float64 { return a + b }
func (Probability) Mul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}
func (Probability) Star(a float64) float64 {
	if a >= 1 {
		return math.Inf(1)
	}
	return 1 / (1 - a)
}
func (p Probability) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	eps := p.Eps
	if eps == 0 {
		eps = 1e-9
	}
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
func (Probability) Format(a float64) string { return fmt.Sprintf("%g", a) }
func (Probability) CommutativeMul()         {}
func (Probability) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.NonIdempotent}
}

// ---------- LetterSet ----------

// LetterSet abstracts a downward-closed language by its alphabet. Element 0
// is the empty language; otherwise bit 0 marks "non-empty" and bit i+1
// marks letter i. It is the image of the lossy algebra under the alphabet
// homomorphism: idempotent, and star(x) = x for non-zero x.
type LetterSet struct{}

var (
	_ core.Starable[uint64]            = LetterSet{}
	_ core.CommutativeSemiring[uint64] = LetterSet{}
	_ core.Hasher[uint64]              = LetterSet{}
)

// Letter returns the element for the single-letter language {l}↓.
func Letter(i int) uint64 { return 1 | 1<<(uint(i)+1) }

func (LetterSet) Zero() uint64 { return 0 }
func (LetterSet) One() uint64  { return 1 }
func (LetterSet) Add(a, b uint64) uint64 {
	return a | b
}
func (LetterSet) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a | b
}
func (LetterSet) Star(a uint64) uint64   { return a | 1 }
func (LetterSet) Equal(a, b uint64) bool { return a == b }
func (LetterSet) Hash(a uint64) uint64   { return a }
func (LetterSet) CommutativeMul()        {}
func (LetterSet) Format(a uint64) string {
	if a == 0 {
		return "∅"
	}
	var letters []string
	for i := 0; i < 63; i++ {
		if a&(1<<(uint(i)+1)) != 0 {
			letters = append(letters, string(rune('a'+i)))
		}
	}
	return "{" + strings.Join(letters, ",") + "}*"
}
func (LetterSet) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: core.Idempotent}
}

// ---------- Language ----------

// Language is the algebra of finite word sets truncated at MaxLen: union,
// concatenation (words longer than MaxLen dropped), and star as the union of
// all powers. Non-commutative, idempotent. Elements are sorted, deduplicated
// slices of words; nil is the empty language and {""} is one.
type Language struct{ MaxLen int }

var (
	_ core.Starable[[]string] = Language{}
	_ core.Hasher[[]string]   = Language{}
)

// Words builds a language element from the given words.
func (l Language) Words(ws ...string) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if len(w) <= l.MaxLen {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (Language) Zero() []string { return nil }
func (Language) One() []string  { return []string{""} }
func (l Language) Add(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}
func (l Language) Mul(a, b []string) []string {
	out := make([]string, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			if len(x)+len(y) <= l.MaxLen {
				out = append(out, x+y)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
func (l Language) Star(a []string) []string {
	acc := l.One()
	for {
		next := l.Add(acc, l.Mul(acc, a))
		if l.Equal(next, acc) {
			return acc
		}
		acc = next
	}
}
func (Language) Equal(a, b []string) bool { return slices.Equal(a, b) }
func (Language) Format(a []string) string {
	if len(a) == 0 {
		return "∅"
	}
	ws := make([]string, len(a))
	for i, w := range a {
		if w == "" {
			w = "ε"
		}
		ws[i] = w
	}
	return "{" + strings.Join(ws, ",") + "}"
}
func (Language) Hash(a []string) uint64 {
	h := fnv.New64a()
	for _, w := range a {
		_, _ = h.Write([]byte(w))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
func (Language) Laws() core.Laws {
	return core.Laws{Commutativity: core.NonCommutative, Idempotence: core.Idempotent}
}

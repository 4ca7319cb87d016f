// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/semiring/core"

// Ring is the algebra of commutative polynomials over sr. It lets
// polynomials be matrix cells (see Jacobian). It is never starable.
type Ring[T any] struct {
	sr core.CommutativeSemiring[T]
}

var _ core.CommutativeSemiring[*Polynomial[int]] = Ring[int]{}

// NewRing returns the polynomial ring over sr. It aborts with
// core.ErrLawViolation unless sr declares commutative multiplication.
func NewRing[T any](sr core.CommutativeSemiring[T]) Ring[T] {
	core.RequireCommutative[T](opNewRing, sr)

	return Ring[T]{sr: sr}
}

func (r Ring[T]) Zero() *Polynomial[T]                   { return r.empty() }
func (r Ring[T]) One() *Polynomial[T]                    { return One(r.sr) }
func (r Ring[T]) Add(a, b *Polynomial[T]) *Polynomial[T] { return a.Add(b) }
func (r Ring[T]) Mul(a, b *Polynomial[T]) *Polynomial[T] { return a.Mul(b) }
func (r Ring[T]) Equal(a, b *Polynomial[T]) bool         { return a.Equal(b) }
func (r Ring[T]) Format(a *Polynomial[T]) string         { return a.String() }
func (r Ring[T]) CommutativeMul()                        {}

// Laws reports commutative multiplication and the idempotence of the
// coefficient algebra.
func (r Ring[T]) Laws() core.Laws {
	return core.Laws{Commutativity: core.Commutative, Idempotence: r.sr.Laws().Idempotence}
}

func (r Ring[T]) empty() *Polynomial[T] {
	return &Polynomial[T]{
		sr:      r.sr,
		terms:   make(map[string]Term[T]),
		degrees: make(map[core.VarID]uint32),
	}
}

// NCRing is the algebra of non-commutative polynomials over sr.
type NCRing[T any] struct {
	sr core.Semiring[T]
}

var _ core.Semiring[*NCPolynomial[int]] = NCRing[int]{}

// NewNCRing returns the non-commutative polynomial ring over sr.
func NewNCRing[T any](sr core.Semiring[T]) NCRing[T] { return NCRing[T]{sr: sr} }

func (r NCRing[T]) Zero() *NCPolynomial[T]                     { return NCZero(r.sr) }
func (r NCRing[T]) One() *NCPolynomial[T]                      { return NCOne(r.sr) }
func (r NCRing[T]) Add(a, b *NCPolynomial[T]) *NCPolynomial[T] { return a.Add(b) }
func (r NCRing[T]) Mul(a, b *NCPolynomial[T]) *NCPolynomial[T] { return a.Mul(b) }
func (r NCRing[T]) Equal(a, b *NCPolynomial[T]) bool           { return a.Equal(b) }
func (r NCRing[T]) Format(a *NCPolynomial[T]) string           { return a.String() }

// Laws reports non-commutative multiplication. Counts make addition
// non-idempotent regardless of the coefficients.
func (r NCRing[T]) Laws() core.Laws {
	return core.Laws{Commutativity: core.NonCommutative, Idempotence: core.NonIdempotent}
}

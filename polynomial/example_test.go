// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/internal/semirings"
	"github.com/katalvlaran/semiring/polynomial"
)

func ExamplePolynomial_Derivative() {
	reg := core.NewRegistry()
	x := reg.MustVar("x")
	cnt := semirings.Counting{}

	p := polynomial.Var[uint64](cnt, x)
	q := p.Mul(p).Add(p)
	fmt.Println(q)
	fmt.Println(q.Derivative(x))
	fmt.Println(q.Eval(core.Valuation[uint64]{x: 3}))
	// Output:
	// v1 + v1^2
	// 1 + 2·v1
	// 12
}

// ExampleNCPolynomial_DifferentialAt linearizes a·X·X + b at X = {b}.
func ExampleNCPolynomial_DifferentialAt() {
	reg := core.NewRegistry()
	x := reg.MustVar("X")
	lang := semirings.Language{MaxLen: 4}
	X := polynomial.VarFactor[[]string](x)
	a := polynomial.ConstFactor(lang.Words("a"))
	b := polynomial.ConstFactor(lang.Words("b"))

	p := polynomial.NCFromMonomials(lang, []polynomial.Factor[[]string]{a, X, X}, []polynomial.Factor[[]string]{b})
	val := core.Valuation[[]string]{x: lang.Words("b")}
	d := p.DifferentialAt(val)

	fmt.Println(lang.Format(p.Eval(val)))
	fmt.Println(d.Len())
	fmt.Println(lang.Format(d.SumOfLeadingFactors()), lang.Format(d.SumOfTrailingFactors()))
	// Output:
	// {abb,b}
	// 2
	// {a,ab} {ε,b}
}

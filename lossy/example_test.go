// SPDX-License-Identifier: MIT
package lossy_test

import (
	"fmt"

	"github.com/katalvlaran/semiring/core"
	"github.com/katalvlaran/semiring/free"
	"github.com/katalvlaran/semiring/internal/semirings"
	"github.com/katalvlaran/semiring/lossy"
	"github.com/katalvlaran/semiring/polynomial"
)

// ExampleSolve solves X = a·X·X + b and reads the solution as the set of
// letters its downward-closed language uses.
func ExampleSolve() {
	reg := core.NewRegistry()
	va, vb, x := reg.MustVar("a"), reg.MustVar("b"), reg.MustVar("X")

	alg := lossy.NewAlgebra(free.NewFactory())
	a := polynomial.ConstFactor(alg.Var(va))
	b := polynomial.ConstFactor(alg.Var(vb))
	X := polynomial.VarFactor[lossy.Elem](x)
	p := polynomial.NCFromMonomials[lossy.Elem](alg,
		[]polynomial.Factor[lossy.Elem]{a, X, X},
		[]polynomial.Factor[lossy.Elem]{b})

	sol := lossy.Solve(alg, []lossy.Equation{{Var: x, Poly: p}})
	ls := semirings.LetterSet{}
	val := core.Valuation[uint64]{va: semirings.Letter(0), vb: semirings.Letter(1)}

	fmt.Println(ls.Format(lossy.Eval[uint64](alg, sol.Middle, ls, val)))
	fmt.Println(ls.Format(lossy.Eval[uint64](alg, sol.Values[x], ls, val)))
	// Output:
	// {b}*
	// {a,b}*
}

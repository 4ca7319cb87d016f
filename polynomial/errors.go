// SPDX-License-Identifier: MIT

// Sentinel errors and operation tags of the polynomial package.
//
// Errors:
//
//	ErrDegreeCache - the per-variable maximum degree table disagrees with a
//	                 recomputation from the monomials (returned by Validate).

package polynomial

import (
	"errors"
	"fmt"
)

// ErrDegreeCache indicates that the incrementally maintained degree table is inconsistent.
var ErrDegreeCache = errors.New("polynomial: degree cache out of sync")

const (
	opConstant   = "polynomial.Constant"
	opVar        = "polynomial.Var"
	opFromTerms  = "polynomial.FromTerms"
	opZero       = "polynomial.Zero"
	opOne        = "polynomial.One"
	opMap        = "polynomial.Map"
	opValidate   = "Polynomial.Validate"
	opJacobian   = "polynomial.Jacobian"
	opEvalMatrix = "polynomial.EvalMatrix"
	opMakeFreeM  = "polynomial.MakeFreeMatrix"
	opNewRing    = "polynomial.NewRing"
)

func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

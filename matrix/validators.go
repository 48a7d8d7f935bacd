// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - One place for the structural checks a search wants before it starts.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs O(n²) over the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a *Adjacency) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| <= tol for all i < j.
//
// Errors: ErrNilMatrix, ErrNaNInf (bad tolerance), ErrAsymmetry.
// A negative tolerance is taken by absolute value.
// Complexity: O(n²).
func ValidateSymmetric(a *Adjacency, tol float64) error {
	if a == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := a.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a.data[i*n+j]-a.data[j*n+i]) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative ensures no entry is negative. Use it before reading
// entries as edge costs.
// Complexity: O(n²).
func ValidateNonNegative(a *Adjacency) error {
	if a == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}
	for idx, v := range a.data {
		if v < 0 {
			return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", idx/a.n, idx%a.n, v, ErrNegativeWeight)
		}
	}

	return nil
}

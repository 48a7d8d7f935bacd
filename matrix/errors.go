// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported function returns one of these sentinels, possibly wrapped
// with an operation tag via fmt.Errorf("%s: %w"). Callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is empty
	// (n <= 0, or no rows at all).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the rows
	// were ragged or their length differed from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that A[i,j] and A[j,i] differ by more than the
	// allowed tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNegativeWeight signals a negative entry where entries are used as
	// edge costs.
	ErrNegativeWeight = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil *Adjacency was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

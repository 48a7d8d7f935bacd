// SPDX-License-Identifier: MIT

// Package matrix offers the dense adjacency representation used by cavern
// searches.
//
// The matrix package provides:
//
//   - Adjacency: an n×n row-major matrix with O(1) bounds-checked access,
//     an allocation-free HasEdge test for the search loop, Connect for
//     undirected edges, Transpose and Clone.
//   - Validators (ValidateNotNil, ValidateSymmetric, ValidateNonNegative)
//     that return tagged sentinel errors.
//
// Matrices are best for dense or small graphs where O(V²) memory and an
// O(V²) scan per search are acceptable; that is the trade-off the cavern
// engine makes.
//
// Errors:
//
//   - ErrBadShape, ErrNonSquare: construction with an empty or ragged shape.
//   - ErrOutOfRange: At/Set with an index outside [0, n).
//   - ErrNaNInf: non-finite values at ingestion or Set.
//   - ErrAsymmetry, ErrNegativeWeight, ErrNilMatrix: validator failures.
package matrix

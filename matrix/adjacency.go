// SPDX-License-Identifier: MIT

// Package matrix: Adjacency is a square, row-major matrix of float64 values
// over node indices 0..n-1. A nonzero entry at (u,v) marks an edge u→v; the
// stored number may additionally be read as that edge's cost.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// adjacencyErrorf wraps an underlying error with Adjacency method context.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}

// Adjacency is an n×n matrix stored in a flat slice for cache friendliness.
// Once handed to a search it is treated as read-only.
type Adjacency struct {
	n    int       // rows == cols
	data []float64 // n*n values, row-major
}

// NewAdjacency creates an n×n matrix with no edges.
// Returns ErrBadShape if n <= 0.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadShape)
	}

	return &Adjacency{n: n, data: make([]float64, n*n)}, nil
}

// FromRows builds an Adjacency from a slice of equal-length rows.
//
// Errors (in order):
//   - ErrBadShape  if rows is empty.
//   - ErrNonSquare if any row length differs from len(rows).
//   - ErrNaNInf    if any value is NaN or ±Inf.
//
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Adjacency, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}

	a := &Adjacency{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, adjacencyErrorf("FromRows", i, j, ErrNaNInf)
			}
			a.data[i*n+j] = v
		}
	}

	return a, nil
}

// Size returns n, the number of rows (and columns).
func (a *Adjacency) Size() int { return a.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (a *Adjacency) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		return 0, adjacencyErrorf(method, row, col, ErrOutOfRange)
	}

	return row*a.n + col, nil
}

// At returns the value stored at (row, col).
// Complexity: O(1).
func (a *Adjacency) At(row, col int) (float64, error) {
	idx, err := a.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return a.data[idx], nil
}

// Set stores v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (a *Adjacency) Set(row, col int, v float64) error {
	idx, err := a.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return adjacencyErrorf("Set", row, col, ErrNaNInf)
	}
	a.data[idx] = v

	return nil
}

// Connect marks an undirected edge u-v by setting both (u,v) and (v,u) to 1.
func (a *Adjacency) Connect(u, v int) error {
	if err := a.Set(u, v, 1); err != nil {
		return err
	}

	return a.Set(v, u, 1)
}

// HasEdge reports whether (u,v) holds a nonzero value. Out-of-range indices
// report false. This is the hot path of a search, so it never allocates.
func (a *Adjacency) HasEdge(u, v int) bool {
	if u < 0 || u >= a.n || v < 0 || v >= a.n {
		return false
	}

	return a.data[u*a.n+v] != 0
}

// Weight returns the raw value at (u,v) without bounds errors; callers must
// have validated the indices.
func (a *Adjacency) Weight(u, v int) float64 {
	return a.data[u*a.n+v]
}

// Edges returns the number of nonzero entries.
func (a *Adjacency) Edges() int {
	count := 0
	for _, v := range a.data {
		if v != 0 {
			count++
		}
	}

	return count
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (a *Adjacency) Clone() *Adjacency {
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return &Adjacency{n: a.n, data: data}
}

// Transpose returns a new matrix with rows and columns swapped.
func (a *Adjacency) Transpose() *Adjacency {
	t := &Adjacency{n: a.n, data: make([]float64, len(a.data))}
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			t.data[j*a.n+i] = a.data[i*a.n+j]
		}
	}

	return t
}

// String implements fmt.Stringer for debugging.
func (a *Adjacency) String() string {
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", a.data[i*a.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

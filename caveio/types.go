// SPDX-License-Identifier: MIT

// Package caveio reads and writes cavern files.
//
// A cavern file is a single stream of comma-separated numbers. Whitespace and
// line breaks between values are ignored. The stream holds, in order:
//
//  1. n, the number of caverns (a positive integer);
//  2. n coordinate pairs x,y, one per cavern;
//  3. n*n integer connectivity flags, nonzero meaning a tunnel.
//
// With the default RowMajor order, flag k (0-based) describes the tunnel from
// cavern k/n to cavern k%n. ColumnMajor reads the same flags transposed: flag
// k describes the tunnel from cavern k%n to cavern k/n.
//
// Example, the unit square with a ring of tunnels:
//
//	4,
//	0,0, 1,0, 1,1, 0,1,
//	0,1,0,1, 1,0,1,0, 0,1,0,1, 1,0,1,0
package caveio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/caverns/cavern"
	"github.com/katalvlaran/caverns/matrix"
)

// Sentinel errors returned by Read and ReadFile.
var (
	ErrEmptyInput   = errors.New("caveio: input is empty")
	ErrBadCount     = errors.New("caveio: cavern count out of range")
	ErrTruncated    = errors.New("caveio: input ends early")
	ErrTrailingData = errors.New("caveio: unexpected data after connectivity flags")
	ErrBadNumber    = errors.New("caveio: malformed number")
)

// DefaultMaxCaverns bounds n unless WithMaxCaverns says otherwise. The flag
// section grows with n², so the bound also caps memory use.
const DefaultMaxCaverns = 10000

// Order says how the n*n flags map onto matrix cells.
type Order int

const (
	// RowMajor: flag k is cell (k/n, k%n).
	RowMajor Order = iota
	// ColumnMajor: flag k is cell (k%n, k/n).
	ColumnMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Graph is a loaded cavern file, ready for cavern.FindPath or
// cavern.NewPlanner.
type Graph struct {
	Caverns   []cavern.Cavern
	Adjacency *matrix.Adjacency
}

// Len returns the number of caverns.
func (g *Graph) Len() int { return len(g.Caverns) }

// Options configures Read and Write.
type Options struct {
	Order      Order
	MaxCaverns int
}

// Option represents a functional option for Read and Write.
type Option func(*Options)

// WithOrder selects the flag order. Panics on an unknown order.
func WithOrder(o Order) Option {
	if o != RowMajor && o != ColumnMajor {
		panic(fmt.Sprintf("caveio: WithOrder: unknown order %d", int(o)))
	}

	return func(opts *Options) {
		opts.Order = o
	}
}

// WithMaxCaverns caps the cavern count Read accepts. Panics if max <= 0.
func WithMaxCaverns(max int) Option {
	if max <= 0 {
		panic("caveio: WithMaxCaverns: max must be positive")
	}

	return func(opts *Options) {
		opts.MaxCaverns = max
	}
}

// DefaultOptions returns RowMajor order and DefaultMaxCaverns.
func DefaultOptions() Options {
	return Options{Order: RowMajor, MaxCaverns: DefaultMaxCaverns}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT

package cavern

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath and Planner.
var (
	// ErrEmptyGraph indicates that the cavern list is empty.
	ErrEmptyGraph = errors.New("cavern: graph has no caverns")

	// ErrNilAdjacency indicates that a nil adjacency matrix was passed.
	ErrNilAdjacency = errors.New("cavern: adjacency matrix is nil")

	// ErrDimensionMismatch indicates that the adjacency matrix is not n×n
	// for n caverns.
	ErrDimensionMismatch = errors.New("cavern: adjacency size does not match cavern count")

	// ErrBadCoordinate indicates a NaN or infinite cavern coordinate, or one
	// whose magnitude exceeds MaxCoordinate.
	ErrBadCoordinate = errors.New("cavern: coordinate is not finite or out of range")

	// ErrStartOutOfRange indicates a start index outside [0, n).
	ErrStartOutOfRange = errors.New("cavern: start index out of range")

	// ErrEndOutOfRange indicates an end index outside [0, n).
	ErrEndOutOfRange = errors.New("cavern: end index out of range")

	// ErrCavernOutOfRange indicates a cavern lookup outside [0, n).
	ErrCavernOutOfRange = errors.New("cavern: cavern index out of range")

	// ErrNegativeWeight indicates a negative matrix entry under EdgeCostMatrix.
	ErrNegativeWeight = errors.New("cavern: negative edge cost")

	// ErrCostOverflow indicates that a route cost grew past the largest
	// float64. Only huge EdgeCostMatrix entries can cause it.
	ErrCostOverflow = errors.New("cavern: route cost overflows float64")

	// ErrUnreachable indicates that the target has no predecessor chain back
	// to the start. It is distinct from any found path, including [start].
	ErrUnreachable = errors.New("cavern: target is unreachable")

	// ErrBadCacheSize indicates a negative Planner cache size.
	ErrBadCacheSize = errors.New("cavern: cache size must be non-negative")
)

// MaxCoordinate bounds the magnitude of a cavern coordinate. Within it the
// distance between any two caverns, and the sum of any realistic number of
// such distances, stays finite.
const MaxCoordinate = 1e150

// Cavern is a node of the search graph. Its index is its position in the
// slice handed to FindPath; coordinates never change after loading.
type Cavern struct {
	X, Y float64
}

// String implements fmt.Stringer.
func (c Cavern) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

// EdgeCost selects how the cost of an existing edge is computed.
type EdgeCost int

const (
	// EdgeCostGeometric uses the Euclidean distance between the endpoints.
	// The matrix entry only signals that the tunnel exists.
	EdgeCostGeometric EdgeCost = iota

	// EdgeCostMatrix uses the matrix entry itself as the cost.
	EdgeCostMatrix
)

// String implements fmt.Stringer.
func (c EdgeCost) String() string {
	switch c {
	case EdgeCostGeometric:
		return "geometric"
	case EdgeCostMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("EdgeCost(%d)", int(c))
	}
}

// ParseEdgeCost maps "geometric" or "matrix" to an EdgeCost.
func ParseEdgeCost(s string) (EdgeCost, error) {
	switch s {
	case "geometric", "":
		return EdgeCostGeometric, nil
	case "matrix":
		return EdgeCostMatrix, nil
	default:
		return 0, fmt.Errorf("cavern: unknown edge cost %q", s)
	}
}

// DefaultCacheSize is the number of results a Planner caches unless
// WithCacheSize says otherwise.
const DefaultCacheSize = 256

// Options configures a search.
//
// EdgeCost     – how edge costs are derived. Default EdgeCostGeometric.
// StopAtTarget – stop once end is extracted from the queue. Default false,
// which drains the queue and settles every reachable cavern.
// CacheSize    – Planner result cache capacity. Ignored by FindPath.
type Options struct {
	EdgeCost     EdgeCost
	StopAtTarget bool
	CacheSize    int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithEdgeCost sets how edge costs are computed.
// Panics on an unknown mode: that is a programmer error.
func WithEdgeCost(mode EdgeCost) Option {
	if mode != EdgeCostGeometric && mode != EdgeCostMatrix {
		panic(fmt.Sprintf("cavern: WithEdgeCost: unknown mode %d", int(mode)))
	}

	return func(o *Options) {
		o.EdgeCost = mode
	}
}

// WithStopAtTarget ends the search as soon as the target is settled.
// The returned path is identical; only fewer caverns are settled.
func WithStopAtTarget() Option {
	return func(o *Options) {
		o.StopAtTarget = true
	}
}

// WithCacheSize sets the Planner result cache capacity; 0 disables caching.
// Panics with ErrBadCacheSize on a negative value.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic(ErrBadCacheSize.Error())
	}

	return func(o *Options) {
		o.CacheSize = n
	}
}

// DefaultOptions returns the options used when none are given:
//
//   - EdgeCost:     EdgeCostGeometric.
//   - StopAtTarget: false.
//   - CacheSize:    DefaultCacheSize.
func DefaultOptions() Options {
	return Options{
		EdgeCost:     EdgeCostGeometric,
		StopAtTarget: false,
		CacheSize:    DefaultCacheSize,
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

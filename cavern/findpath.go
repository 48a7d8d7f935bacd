// SPDX-License-Identifier: MIT

package cavern

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/caverns/fibheap"
	"github.com/katalvlaran/caverns/matrix"
)

// noPredecessor marks a cavern whose predecessor is unset.
const noPredecessor = -1

// FindPath computes a shortest path from start to end.
//
// Returns:
//
//   - path: cavern indices in start→end order and the total cost. When
//     start == end the path is [start] with cost 0.
//   - err:  ErrUnreachable when end cannot be reached (no partial path is
//     returned), ErrCostOverflow when matrix costs add up past the largest
//     float64, or a precondition error.
//
// Preconditions and validation (in order):
//  1. len(caverns) > 0 (ErrEmptyGraph).
//  2. adj != nil (ErrNilAdjacency).
//  3. adj.Size() == len(caverns) (ErrDimensionMismatch).
//  4. Finite coordinates no larger than MaxCoordinate (ErrBadCoordinate).
//  5. Under EdgeCostMatrix, no negative entry (ErrNegativeWeight).
//  6. 0 <= start < n (ErrStartOutOfRange), 0 <= end < n (ErrEndOutOfRange).
//
// Complexity:
//
//   - Time:  O(V² + V log V): the dense matrix scan dominates; heap work is
//     V inserts, V extracts (O(log V) amortized) and up to E O(1) decreases.
//   - Space: O(V) besides the inputs.
func FindPath(caverns []Cavern, adj *matrix.Adjacency, start, end int, opts ...Option) (*Path, error) {
	// 1) Build options.
	cfg := gatherOptions(opts)

	// 2) Validate inputs.
	if err := validateGraph(caverns, adj, cfg); err != nil {
		return nil, err
	}
	if err := validateEndpoints(len(caverns), start, end); err != nil {
		return nil, err
	}

	// 3) Run the search.
	path, _, err := search(caverns, adj, cfg, start, end)

	return path, err
}

// search runs one query on already validated inputs and also reports how
// many caverns were settled.
func search(caverns []Cavern, adj *matrix.Adjacency, cfg Options, start, end int) (*Path, int, error) {
	r := newRunner(caverns, adj, cfg, start, end)
	r.init()
	if err := r.process(); err != nil {
		return nil, r.settled, err
	}
	path, err := r.path()

	return path, r.settled, err
}

// validateGraph checks everything about the graph that does not depend on
// the query endpoints.
func validateGraph(caverns []Cavern, adj *matrix.Adjacency, cfg Options) error {
	if len(caverns) == 0 {
		return ErrEmptyGraph
	}
	if adj == nil {
		return ErrNilAdjacency
	}
	if adj.Size() != len(caverns) {
		return fmt.Errorf("%w: %d caverns, %d×%d matrix", ErrDimensionMismatch, len(caverns), adj.Size(), adj.Size())
	}
	for i, c := range caverns {
		if !validCoordinate(c.X) || !validCoordinate(c.Y) {
			return fmt.Errorf("%w: cavern %d at %v", ErrBadCoordinate, i, c)
		}
	}
	if cfg.EdgeCost == EdgeCostMatrix {
		if err := matrix.ValidateNonNegative(adj); err != nil {
			return fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		}
	}

	return nil
}

// validCoordinate rejects NaN, ±Inf and magnitudes beyond MaxCoordinate.
// Past that bound math.Hypot can overflow to +Inf, and a tunnel of infinite
// length would never be relaxed.
func validCoordinate(f float64) bool {
	return !math.IsNaN(f) && math.Abs(f) <= MaxCoordinate
}

// validateEndpoints range-checks start and end against n caverns.
func validateEndpoints(n, start, end int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrEndOutOfRange, end, n)
	}

	return nil
}

// handleTable maps a cavern index to its entry in the search queue. It is
// filled once by runner.init and consulted by every decrease.
type handleTable []fibheap.Handle

// runner holds the mutable state for a single search.
type runner struct {
	caverns []Cavern          // read-only input
	adj     *matrix.Adjacency // read-only input
	options Options
	start   int
	end     int

	dist    []float64 // best known distance from start
	prev    []int     // predecessor on that route, or noPredecessor
	visited []bool    // distance is final

	queue   *fibheap.Heap[int, float64]
	handles handleTable

	settled int // number of caverns extracted with a finite distance
}

func newRunner(caverns []Cavern, adj *matrix.Adjacency, cfg Options, start, end int) *runner {
	n := len(caverns)

	return &runner{
		caverns: caverns,
		adj:     adj,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		queue:   fibheap.NewWithCapacity[int, float64](n),
		handles: make(handleTable, n),
	}
}

// init gives every cavern one queue entry: 0 for start, +Inf for the rest.
// Complexity: O(V), each Insert being O(1).
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.caverns {
		// 1) Start is at distance 0; everything else is not yet reached.
		d := inf
		if v == r.start {
			d = 0
		}
		r.dist[v] = d
		r.prev[v] = noPredecessor

		// 2) Remember the handle so relax can decrease v in place.
		r.handles[v] = r.queue.Insert(v, d)
	}
}

// process is the main loop: extract the closest unsettled cavern, settle it,
// relax its tunnels.
//
// Loop termination conditions:
//
//   - The queue becomes empty.
//   - The extracted distance is +Inf: every remaining cavern is unreachable.
//   - StopAtTarget is set and end was just settled.
//
// Returns: nil, or the first error from relax (ErrCostOverflow).
// Complexity: O(V log V) heap work plus O(V²) for the relax scans.
func (r *runner) process() error {
	for !r.queue.Empty() {
		// 1) Pop the closest cavern; its distance is now final.
		u, d, _ := r.queue.ExtractMin()
		r.visited[u] = true

		// 2) Only unreachable caverns remain once +Inf comes out.
		if math.IsInf(d, 1) {
			break
		}
		r.settled++

		// 3) Early exit when the caller only wants end.
		if r.options.StopAtTarget && u == r.end {
			break
		}

		// 4) Offer every tunnel out of u to its far end.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbor of u.
//
// Inputs: u, a cavern whose distance r.dist[u] is final.
// Returns: nil, ErrCostOverflow when dist[u] plus a tunnel cost is not a
// finite number, or a wrapped heap error (never expected: every handle in
// the table is live until its cavern is extracted).
// Complexity: O(V) for the matrix row, O(1) amortized per decrease.
func (r *runner) relax(u int) error {
	n := len(r.caverns)
	for v := 0; v < n; v++ {
		// 1) Skip self-loops, settled caverns and missing tunnels.
		if v == u || r.visited[v] || !r.adj.HasEdge(u, v) {
			continue
		}

		// 2) Price the route through u. An infinite sum would never pass
		// the "<" test below and v would be misreported as unreachable.
		candidate := r.dist[u] + r.cost(u, v)
		if math.IsInf(candidate, 1) {
			return fmt.Errorf("%w: %d→%d", ErrCostOverflow, u, v)
		}

		// 3) Strict "<": an equal route found later never replaces the first.
		if candidate >= r.dist[v] {
			continue
		}

		// 4) Move v up the queue, then record the improvement.
		if err := r.queue.DecreasePriority(r.handles[v], candidate); err != nil {
			return fmt.Errorf("cavern: relax %d→%d: %w", u, v, err)
		}
		r.dist[v] = candidate
		r.prev[v] = u
	}

	return nil
}

// cost returns the traversal cost of the existing edge u→v.
func (r *runner) cost(u, v int) float64 {
	if r.options.EdgeCost == EdgeCostMatrix {
		return r.adj.Weight(u, v)
	}

	return Distance(r.caverns[u], r.caverns[v])
}

// path walks predecessor links from end back to start and reverses them.
//
// Returns: the path with its cost, or ErrUnreachable when the walk from end
// never meets start. The walk is bounded by V steps.
func (r *runner) path() (*Path, error) {
	// 1) Collect end, prev[end], ... until start or a missing link.
	nodes := make([]int, 0, 8)
	at := r.end
	for at != noPredecessor && len(nodes) < len(r.caverns) {
		nodes = append(nodes, at)
		if at == r.start {
			break
		}
		at = r.prev[at]
	}

	// 2) A chain that stops short of start means end was never reached.
	if nodes[len(nodes)-1] != r.start {
		return nil, fmt.Errorf("%w: no route from %d to %d", ErrUnreachable, r.start, r.end)
	}

	// 3) Put the nodes in start→end order.
	slices.Reverse(nodes)

	return &Path{Nodes: nodes, Cost: r.dist[r.end]}, nil
}

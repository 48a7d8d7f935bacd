// SPDX-License-Identifier: MIT

// Package cavern finds shortest routes through a network of caverns joined by
// tunnels, using Dijkstra's algorithm driven by a Fibonacci heap.
//
// Overview:
//
//   - A cavern is a point in the plane; its index is its position in the
//     slice passed to FindPath or NewPlanner.
//   - A tunnel u→v exists when the adjacency matrix holds a nonzero value at
//     (u,v). Its cost is the Euclidean distance between the two caverns, or,
//     with WithEdgeCost(EdgeCostMatrix), the matrix value itself.
//   - FindPath answers one query. Planner validates and copies a graph once
//     and answers many queries, caching results in an LRU.
//
// Notes on implementation choices:
//
//   - Every cavern is inserted once up front (0 for start, +Inf otherwise) and
//     its heap Handle is kept in a handle table indexed by cavern, so an
//     improved distance is a DecreasePriority call rather than a duplicate push.
//   - Relaxation uses a strict "<", so among equal-cost routes the first one
//     discovered is kept and the result is identical across runs.
//   - The main loop stops when the queue is empty or the smallest remaining
//     distance is +Inf. WithStopAtTarget also stops once end is settled.
//
// Results:
//
//   - start == end yields the single-cavern path [start] with cost 0.
//   - An unreachable end yields ErrUnreachable and a nil *Path. A partial
//     route is never returned.
//
// Complexity:
//
//   - Time:  O(V² + V log V). The dense matrix scan dominates; heap work is V
//     inserts, V extracts at O(log V) amortized and up to E O(1) decreases.
//   - Space: O(V) per query besides the inputs.
//
// Observability:
//
// Planner exports Prometheus metrics through the default registry:
//
//	caverns_planner_queries_total{result="found|unreachable|invalid|canceled"}
//	caverns_planner_cache_hits_total
//	caverns_planner_search_seconds
//	caverns_planner_settled_caverns
//
// Errors (sentinel):
//
//	– ErrEmptyGraph        if no caverns are supplied.
//	– ErrNilAdjacency      if the adjacency matrix is nil.
//	– ErrDimensionMismatch if the matrix size differs from the number of caverns.
//	– ErrBadCoordinate     if a cavern coordinate is NaN, infinite or beyond MaxCoordinate.
//	– ErrCostOverflow      if matrix costs sum past the largest float64.
//	– ErrStartOutOfRange   if start is not a valid cavern index.
//	– ErrEndOutOfRange     if end is not a valid cavern index.
//	– ErrCavernOutOfRange  if Planner.Cavern is asked for a missing cavern.
//	– ErrNegativeWeight    if matrix costs are used and an entry is negative.
//	– ErrUnreachable       if no chain of tunnels leads from start to end.
//
// Example:
//
//	caves := []cavern.Cavern{{0, 0}, {1, 0}, {1, 1}}
//	adj, _ := matrix.NewAdjacency(3)
//	_ = adj.Connect(0, 1)
//	_ = adj.Connect(1, 2)
//	p, err := cavern.FindPath(caves, adj, 0, 2)
//	// p.Nodes == [0 1 2], p.Cost == 2
package cavern

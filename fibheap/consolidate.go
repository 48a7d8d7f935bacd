// SPDX-License-Identifier: MIT

package fibheap

import "math"

// logPhi is the natural log of the golden ratio. A tree of degree d in a
// Fibonacci heap holds at least F(d+2) >= phi^d entries, which bounds the
// largest possible degree.
var logPhi = math.Log((1 + math.Sqrt(5)) / 2)

// degreeBound returns a degree-table length sufficient for a heap of n
// entries: floor(log_phi n) + 2 slots (never fewer than log2(n) + 1).
func degreeBound(n int) int {
	if n < 2 {
		return 2
	}

	return int(math.Log(float64(n))/logPhi) + 2
}

// consolidate links roots of equal degree until every root degree is
// distinct, then rebuilds the root ring from the degree table and locates
// the new minimum with a single scan of the table.
//
// When two roots of the same degree meet, the one with the smaller priority
// becomes the parent; on a tie the root already stored in the table wins.
func (h *Heap[K, P]) consolidate() {
	// 1) Snapshot the root ring; linking rewires it while we iterate.
	roots := h.rootIndices()

	// 2) Link equal-degree roots.
	table := make([]int, degreeBound(h.n))
	for i := range table {
		table[i] = nilIndex
	}
	for _, w := range roots {
		x := w
		d := h.entries[x].degree
		for {
			for d >= len(table) {
				table = append(table, nilIndex)
			}
			y := table[d]
			if y == nilIndex {
				break
			}
			if h.entries[y].priority <= h.entries[x].priority {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nilIndex
			d++
		}
		table[d] = x
	}

	// 3) Rebuild the root ring and find the minimum.
	h.min = nilIndex
	for _, x := range table {
		if x == nilIndex {
			continue
		}
		h.entries[x].next, h.entries[x].prev = x, x
		h.min = h.meld(h.min, x)
	}
}

// rootIndices returns the arena indices of the current root ring, starting
// at the minimum.
func (h *Heap[K, P]) rootIndices() []int {
	if h.min == nilIndex {
		return nil
	}

	var roots []int
	x := h.min
	for {
		roots = append(roots, x)
		x = h.entries[x].next
		if x == h.min {
			break
		}
	}

	return roots
}

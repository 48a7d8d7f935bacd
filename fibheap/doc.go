// SPDX-License-Identifier: MIT

// Package fibheap implements a Fibonacci heap: a mergeable min-priority queue
// with amortized O(1) Insert, Merge, FindMin and DecreasePriority, and
// amortized O(log n) ExtractMin.
//
// Overview:
//
//   - Entries live in an arena owned by the Heap and are addressed by Handle
//     values (arena index + generation). Sibling rings, child and parent links
//     are arena indices, so structural mutation (link, cut, merge) can never
//     leave a dangling reference behind.
//   - A Handle is valid until its entry is removed (ExtractMin, Delete) or the
//     heap is absorbed by Merge. Stale handles are rejected with ErrInvalidHandle.
//   - ExtractMin consolidates the root list lazily: roots of equal degree are
//     linked pairwise until all root degrees are distinct, then the surviving
//     roots are scanned once to locate the new minimum.
//   - DecreasePriority only ever lowers a priority. A request to raise one is
//     rejected with ErrPriorityIncrease and leaves the heap untouched.
//
// Complexity (amortized):
//
//   - Insert, FindMin, DecreasePriority: O(1)
//   - Merge: O(1) ring splice plus O(m) to relocate the absorbed heap's arena
//   - ExtractMin, Delete: O(log n)
//
// Determinism:
//
//   - Ties are broken the same way on every run: on Insert and Merge the
//     existing minimum keeps its place, and during consolidation the root that
//     was already in the degree table becomes the parent.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Each caller owns its heap.
//
// Example:
//
//	h := fibheap.New[string, float64]()
//	a := h.Insert("a", 5)
//	h.Insert("b", 3)
//	_ = h.DecreasePriority(a, 1)
//	key, prio, _ := h.ExtractMin() // "a", 1
package fibheap

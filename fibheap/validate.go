// SPDX-License-Identifier: MIT

package fibheap

import "fmt"

// Validate walks the whole heap and checks its structural invariants:
//
//   - every ring is consistently doubly linked;
//   - roots have no parent and are never marked;
//   - every child points back at its parent and is not smaller than it;
//   - each degree equals the length of the child ring;
//   - the number of reachable entries equals Len();
//   - the minimum is a root and no root is smaller than it.
//
// It returns nil or an error wrapping ErrCorrupt. Intended for tests and
// diagnostics; it costs O(n).
func (h *Heap[K, P]) Validate() error {
	if h.min == nilIndex {
		if h.n != 0 {
			return fmt.Errorf("%w: no minimum but Len()=%d", ErrCorrupt, h.n)
		}
		return nil
	}
	if h.entries[h.min].parent != nilIndex {
		return fmt.Errorf("%w: minimum %d is not a root", ErrCorrupt, h.min)
	}

	limit := len(h.entries)
	count := 0
	minPrio := h.entries[h.min].priority

	var walk func(first, parent int) (int, error)
	walk = func(first, parent int) (int, error) {
		size := 0
		x := first
		for {
			e := &h.entries[x]
			if !e.live {
				return 0, fmt.Errorf("%w: released slot %d still linked", ErrCorrupt, x)
			}
			if h.entries[e.next].prev != x || h.entries[e.prev].next != x {
				return 0, fmt.Errorf("%w: ring broken at %d", ErrCorrupt, x)
			}
			if e.parent != parent {
				return 0, fmt.Errorf("%w: entry %d has parent %d, want %d", ErrCorrupt, x, e.parent, parent)
			}
			if parent == nilIndex {
				if e.marked {
					return 0, fmt.Errorf("%w: root %d is marked", ErrCorrupt, x)
				}
				if e.priority < minPrio {
					return 0, fmt.Errorf("%w: root %d is smaller than minimum", ErrCorrupt, x)
				}
			} else if e.priority < h.entries[parent].priority {
				return 0, fmt.Errorf("%w: entry %d is smaller than parent %d", ErrCorrupt, x, parent)
			}

			count++
			size++
			if count > limit {
				return 0, fmt.Errorf("%w: cycle through child links", ErrCorrupt)
			}

			children := 0
			if e.child != nilIndex {
				var err error
				if children, err = walk(e.child, x); err != nil {
					return 0, err
				}
			}
			if children != e.degree {
				return 0, fmt.Errorf("%w: entry %d has degree %d but %d children", ErrCorrupt, x, e.degree, children)
			}

			x = e.next
			if x == first {
				return size, nil
			}
		}
	}

	if _, err := walk(h.min, nilIndex); err != nil {
		return err
	}
	if count != h.n {
		return fmt.Errorf("%w: %d reachable entries, Len()=%d", ErrCorrupt, count, h.n)
	}

	return nil
}

// RootDegrees returns the degree of every root, starting at the minimum.
func (h *Heap[K, P]) RootDegrees() []int {
	roots := h.rootIndices()
	degrees := make([]int, len(roots))
	for i, x := range roots {
		degrees[i] = h.entries[x].degree
	}

	return degrees
}

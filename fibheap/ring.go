// SPDX-License-Identifier: MIT

package fibheap

// splice concatenates the ring containing a with the ring containing b.
// Both rings must be distinct. Complexity: O(1).
func (h *Heap[K, P]) splice(a, b int) {
	e := h.entries
	aNext := e[a].next
	bPrev := e[b].prev

	e[a].next = b
	e[b].prev = a
	e[bPrev].next = aNext
	e[aNext].prev = bPrev
}

// unlink removes x from its ring and turns it into a singleton ring.
// It does not touch the parent's child pointer; callers handle that.
func (h *Heap[K, P]) unlink(x int) {
	e := h.entries
	e[e[x].prev].next = e[x].next
	e[e[x].next].prev = e[x].prev
	e[x].next, e[x].prev = x, x
}

// meld joins two root rings and returns the index of the smaller root.
// On equal priorities a is returned, so the current minimum keeps its place.
func (h *Heap[K, P]) meld(a, b int) int {
	if a == nilIndex {
		return b
	}
	if b == nilIndex {
		return a
	}
	h.splice(a, b)
	if h.entries[b].priority < h.entries[a].priority {
		return b
	}

	return a
}

// link makes root y a child of root x. The caller guarantees
// priority(x) <= priority(y).
func (h *Heap[K, P]) link(y, x int) {
	h.unlink(y)

	e := h.entries
	e[y].parent = x
	if e[x].child == nilIndex {
		e[x].child = y
	} else {
		h.splice(e[x].child, y)
	}
	e[x].degree++
	e[y].marked = false
}

// cut detaches x from its parent y and moves it to the root list, unmarked.
func (h *Heap[K, P]) cut(x, y int) {
	e := h.entries
	if e[x].next == x {
		e[y].child = nilIndex
	} else {
		if e[y].child == x {
			e[y].child = e[x].next
		}
		h.unlink(x)
	}
	e[y].degree--

	e[x].parent = nilIndex
	e[x].marked = false
	h.splice(h.min, x)
}

// cascadingCut walks up from y: a marked non-root ancestor is cut and the
// walk continues with its parent; the first unmarked non-root ancestor is
// marked and the walk stops. Roots are never marked.
func (h *Heap[K, P]) cascadingCut(y int) {
	for {
		z := h.entries[y].parent
		if z == nilIndex {
			return
		}
		if !h.entries[y].marked {
			h.entries[y].marked = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

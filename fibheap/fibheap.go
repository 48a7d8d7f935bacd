// SPDX-License-Identifier: MIT

package fibheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap is a Fibonacci heap of (key, priority) pairs ordered by ascending priority.
// Keys need not be unique. The zero value is not usable; call New.
type Heap[K any, P constraints.Ordered] struct {
	entries []entry[K, P] // arena; links between entries are indices into it
	free    []int         // released slots available for reuse
	min     int           // root with the smallest priority, or nilIndex
	n       int           // number of live entries
}

// New returns an empty heap.
func New[K any, P constraints.Ordered]() *Heap[K, P] {
	return &Heap[K, P]{min: nilIndex}
}

// NewWithCapacity returns an empty heap whose arena is preallocated for
// capacity entries. Use it when the number of inserts is known up front.
func NewWithCapacity[K any, P constraints.Ordered](capacity int) *Heap[K, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap[K, P]{
		entries: make([]entry[K, P], 0, capacity),
		min:     nilIndex,
	}
}

// Len returns the number of entries in the heap.
func (h *Heap[K, P]) Len() int { return h.n }

// Empty reports whether the heap holds no entries.
func (h *Heap[K, P]) Empty() bool { return h.n == 0 }

// Insert adds a new singleton entry and merges it into the root list.
// It never fails and returns a Handle usable with DecreasePriority and Delete.
//
// Complexity: O(1) amortized.
func (h *Heap[K, P]) Insert(key K, priority P) Handle {
	x := h.alloc(key, priority)
	h.min = h.meld(h.min, x)
	h.n++

	return h.handle(x)
}

// Merge moves every entry of other into h. The resulting minimum is the
// smaller of the two minima (h's minimum wins ties). other is left empty and
// all Handles previously issued by other become invalid.
//
// Complexity: O(1) to splice the root lists, plus O(m) to relocate other's
// m arena slots, since Handles are arena-local.
func (h *Heap[K, P]) Merge(other *Heap[K, P]) error {
	if other == h {
		return ErrSelfMerge
	}
	if other == nil || other.n == 0 {
		return nil
	}

	// 1) Allocate a slot in h for every live entry of other.
	remap := make([]int, len(other.entries))
	for i := range other.entries {
		remap[i] = nilIndex
		if other.entries[i].live {
			src := &other.entries[i]
			remap[i] = h.alloc(src.key, src.priority)
		}
	}

	// 2) Rewrite the structural links through the remap table.
	at := func(i int) int {
		if i == nilIndex {
			return nilIndex
		}
		return remap[i]
	}
	for i := range other.entries {
		if remap[i] == nilIndex {
			continue
		}
		src := &other.entries[i]
		dst := &h.entries[remap[i]]
		dst.next, dst.prev = at(src.next), at(src.prev)
		dst.child, dst.parent = at(src.child), at(src.parent)
		dst.degree = src.degree
		dst.marked = src.marked
	}

	// 3) Splice the root rings and account for the new entries.
	h.min = h.meld(h.min, remap[other.min])
	h.n += other.n
	other.invalidate()

	return nil
}

// Merge melds b into a and returns a. Either argument may be nil, in which
// case the other is returned unchanged.
func Merge[K any, P constraints.Ordered](a, b *Heap[K, P]) (*Heap[K, P], error) {
	if a == nil {
		return b, nil
	}
	if err := a.Merge(b); err != nil {
		return nil, err
	}

	return a, nil
}

// FindMin returns the Handle of the minimum entry without removing it.
// The second result is false when the heap is empty.
//
// Complexity: O(1).
func (h *Heap[K, P]) FindMin() (Handle, bool) {
	if h.min == nilIndex {
		return Handle{}, false
	}

	return h.handle(h.min), true
}

// Min returns the key and priority of the minimum entry without removing it.
func (h *Heap[K, P]) Min() (K, P, bool) {
	if h.min == nilIndex {
		var k K
		var p P
		return k, p, false
	}
	e := &h.entries[h.min]

	return e.key, e.priority, true
}

// Contains reports whether hd addresses a live entry of h.
func (h *Heap[K, P]) Contains(hd Handle) bool {
	return hd.index >= 0 &&
		hd.index < len(h.entries) &&
		h.entries[hd.index].live &&
		h.entries[hd.index].gen == hd.gen
}

// Key returns the key stored under hd.
func (h *Heap[K, P]) Key(hd Handle) (K, error) {
	if !h.Contains(hd) {
		var k K
		return k, ErrInvalidHandle
	}

	return h.entries[hd.index].key, nil
}

// Priority returns the current priority stored under hd.
func (h *Heap[K, P]) Priority(hd Handle) (P, error) {
	if !h.Contains(hd) {
		var p P
		return p, ErrInvalidHandle
	}

	return h.entries[hd.index].priority, nil
}

// DecreasePriority lowers the priority of the entry addressed by hd.
//
// Inputs:
//   - hd:       a handle returned by Insert and not yet extracted or deleted.
//   - priority: the new priority, no greater than the current one.
//
// Returns: nil on success. An equal priority is accepted and changes nothing.
//
// Errors:
//   - ErrInvalidHandle    if hd is not a live entry of h.
//   - ErrInvalidPriority  if priority is NaN.
//   - ErrPriorityIncrease if priority is greater than the current one.
//
// If the new priority breaks heap order with respect to the parent, the entry
// is cut to the root list and its ancestors undergo a cascading cut.
//
// Complexity: O(1) amortized. A cascading cut may touch O(log n) ancestors,
// but each cut clears a mark that an earlier decrease paid for.
func (h *Heap[K, P]) DecreasePriority(hd Handle, priority P) error {
	// 1) Validate the handle and the new priority.
	if !h.Contains(hd) {
		return ErrInvalidHandle
	}
	if isNaN(priority) {
		return ErrInvalidPriority
	}

	// 2) Reject increases, then store the new priority in place.
	x := hd.index
	if cur := h.entries[x].priority; priority > cur {
		return fmt.Errorf("%w: %v > %v", ErrPriorityIncrease, priority, cur)
	}
	h.entries[x].priority = priority

	// 3) Heap order violated: move x to the root list, then let marked
	// ancestors follow.
	if y := h.entries[x].parent; y != nilIndex && priority < h.entries[y].priority {
		h.cut(x, y)
		h.cascadingCut(y)
	}

	// 4) x may now be the new minimum.
	if priority < h.entries[h.min].priority {
		h.min = x
	}

	return nil
}

// ExtractMin removes the minimum entry and returns its key and priority.
//
// Returns:
//   - key, priority: the removed entry.
//   - ok:            false when the heap is empty (zero key and priority).
//
// The handle of the removed entry becomes stale; its arena slot is reused by
// a later Insert under a new generation.
//
// Complexity: O(log n) amortized. The consolidation pass is linear in the
// root list, which earlier O(1) inserts and cuts have paid for.
func (h *Heap[K, P]) ExtractMin() (K, P, bool) {
	// 1) Nothing to extract from an empty heap.
	z := h.min
	if z == nilIndex {
		var k K
		var p P
		return k, p, false
	}

	// 2) Promote every child of z to the root list, clearing parent links
	// and marks.
	if c := h.entries[z].child; c != nilIndex {
		x := c
		for {
			h.entries[x].parent = nilIndex
			h.entries[x].marked = false
			x = h.entries[x].next
			if x == c {
				break
			}
		}
		h.splice(z, c)
		h.entries[z].child = nilIndex
		h.entries[z].degree = 0
	}

	// 3) Drop z from the root list. If z was the only root the heap is now
	// empty; otherwise merge roots of equal degree and find the new minimum.
	next := h.entries[z].next
	h.unlink(z)
	if next == z {
		h.min = nilIndex
	} else {
		h.min = next
		h.consolidate()
	}
	h.n--

	// 4) Read the result before the slot is recycled.
	key, priority := h.entries[z].key, h.entries[z].priority
	h.release(z)

	return key, priority, true
}

// Delete removes the entry addressed by hd, wherever it sits in the heap.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, P]) Delete(hd Handle) error {
	if !h.Contains(hd) {
		return ErrInvalidHandle
	}

	// Promote x as if its priority had dropped below everything else, then
	// extract it. No sentinel "minus infinity" priority is needed.
	x := hd.index
	if y := h.entries[x].parent; y != nilIndex {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	h.min = x
	h.ExtractMin()

	return nil
}

// handle builds the public Handle for arena slot i.
func (h *Heap[K, P]) handle(i int) Handle {
	return Handle{index: i, gen: h.entries[i].gen}
}

// alloc claims an arena slot for a new singleton entry and returns its index.
func (h *Heap[K, P]) alloc(key K, priority P) int {
	var i int
	if last := len(h.free) - 1; last >= 0 {
		i = h.free[last]
		h.free = h.free[:last]
	} else {
		h.entries = append(h.entries, entry[K, P]{gen: 1})
		i = len(h.entries) - 1
	}

	e := &h.entries[i]
	e.key, e.priority = key, priority
	e.next, e.prev = i, i
	e.child, e.parent = nilIndex, nilIndex
	e.degree = 0
	e.marked = false
	e.live = true

	return i
}

// release returns slot i to the free list and bumps its generation.
func (h *Heap[K, P]) release(i int) {
	var k K
	var p P
	e := &h.entries[i]
	e.key, e.priority = k, p
	e.live = false
	e.gen++
	h.free = append(h.free, i)
}

// invalidate empties h after its entries were moved elsewhere. Slots are kept
// (with bumped generations) so old Handles can never match a future entry.
func (h *Heap[K, P]) invalidate() {
	h.free = h.free[:0]
	for i := range h.entries {
		if h.entries[i].live {
			h.release(i)
			continue
		}
		h.free = append(h.free, i)
	}
	h.min = nilIndex
	h.n = 0
}

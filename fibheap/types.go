// SPDX-License-Identifier: MIT

package fibheap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrInvalidHandle indicates that a Handle does not address a live entry
	// of this heap (zero Handle, already extracted, or absorbed by Merge).
	ErrInvalidHandle = errors.New("fibheap: invalid or stale handle")

	// ErrPriorityIncrease indicates a DecreasePriority call whose new priority
	// is larger than the current one. The heap is left unchanged.
	ErrPriorityIncrease = errors.New("fibheap: new priority is greater than current priority")

	// ErrInvalidPriority indicates a NaN priority, which has no place in a total order.
	ErrInvalidPriority = errors.New("fibheap: priority is NaN")

	// ErrSelfMerge indicates an attempt to merge a heap into itself.
	ErrSelfMerge = errors.New("fibheap: cannot merge a heap with itself")

	// ErrCorrupt is returned by Validate when a structural invariant does not hold.
	ErrCorrupt = errors.New("fibheap: structural invariant violated")
)

// nilIndex marks an absent arena link (no parent, no child, no minimum).
const nilIndex = -1

// Handle identifies one live entry of a Heap. The zero Handle is never valid.
type Handle struct {
	index int
	gen   uint32
}

// String implements fmt.Stringer for debugging output.
func (h Handle) String() string {
	return fmt.Sprintf("fibheap.Handle(%d#%d)", h.index, h.gen)
}

// entry is one arena slot.
//
// next/prev form the circular doubly linked sibling ring, child points at any
// one child, parent is nilIndex for roots. marked records whether this entry
// lost a child since it last became a child itself. gen is bumped every time
// the slot is released, which is what makes old Handles detectable.
type entry[K any, P constraints.Ordered] struct {
	key      K
	priority P

	next, prev    int
	child, parent int
	degree        int
	marked        bool

	live bool
	gen  uint32
}

// isNaN reports whether p is a floating-point NaN; it is false for every
// other ordered type.
func isNaN[P constraints.Ordered](p P) bool {
	return p != p
}

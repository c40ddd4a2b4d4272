package osdep

import (
	"sync"

	glulxruntime "github.com/wippyai/glulx-runtime"
)

// Heap hands out byte blocks for the VM core with ANSI malloc/realloc
// semantics. Go's runtime cannot report allocation failure, so the
// failure path the VM core depends on is provided by an optional byte
// budget: requests that would exceed it fail with a nil sentinel.
//
// Accounting is keyed on block length; callers must pass back the slices
// they were given.
type Heap struct {
	mu    sync.Mutex
	limit uint64
	used  uint64
}

var _ glulxruntime.Allocator = (*Heap)(nil)

// NewHeap creates a heap with the given byte budget. A limit of zero
// means unbounded.
func NewHeap(limit uint64) *Heap {
	return &Heap{limit: limit}
}

// Alloc returns a zeroed block of the given size, or nil if the budget
// would be exceeded. Never panics.
func (h *Heap) Alloc(size uint32) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.reserve(uint64(size)) {
		return nil
	}
	return make([]byte, size)
}

// Realloc resizes a block, copying min(old, new) bytes. On failure it
// returns nil and the original block, its contents, and its accounting
// are untouched. Realloc(nil, n) behaves like Alloc(n).
func (h *Heap) Realloc(buf []byte, size uint32) []byte {
	if buf == nil {
		return h.Alloc(size)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	old := uint64(len(buf))
	if uint64(size) > old && !h.reserve(uint64(size)-old) {
		return nil
	}
	if uint64(size) <= old {
		h.used -= old - uint64(size)
	}

	next := make([]byte, size)
	copy(next, buf)
	return next
}

// Free returns a block's bytes to the budget. Free(nil) is a no-op.
func (h *Heap) Free(buf []byte) {
	if buf == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	n := uint64(len(buf))
	if n > h.used {
		n = h.used
	}
	h.used -= n
}

// Used returns the number of bytes currently accounted.
func (h *Heap) Used() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.used
}

// reserve charges n bytes against the budget; caller holds the lock.
func (h *Heap) reserve(n uint64) bool {
	if h.limit != 0 && h.used+n > h.limit {
		return false
	}
	h.used += n
	return true
}

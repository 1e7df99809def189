// Package fmm implements the Fast Marching Method (spec.md §4.I): a
// single-pass, heap-ordered Eikonal solver producing a signed distance
// function and, optionally, extension fields carried along by the
// Adalsteinsson-Sethian construction.
package fmm

// heapItem pairs a grid point (by its flat offset into the solver's ghost
// box) with the |T| key the heap orders on.
type heapItem struct {
	offset int
	key    float64
}

// handleHeap is a 4-ary min-heap keyed on |T|, carrying an explicit
// offset->heap-slot map so a Trial point's key can be decreased in
// O(log N) without a linear scan. container/heap only exposes a binary heap
// and has no handle-indexed decrease-key, so the narrow-band marching loop
// (spec.md §4.I step 2: "decrease-key if already Trial") needs this
// hand-rolled variant instead.
type handleHeap struct {
	items  []heapItem
	handle map[int]int // offset -> index into items
}

func newHandleHeap(capacity int) *handleHeap {
	return &handleHeap{
		items:  make([]heapItem, 0, capacity),
		handle: make(map[int]int, capacity),
	}
}

func (h *handleHeap) Len() int { return len(h.items) }

func (h *handleHeap) Contains(offset int) bool {
	_, ok := h.handle[offset]
	return ok
}

const heapArity = 4

func parentOf(i int) int  { return (i - 1) / heapArity }
func firstChild(i int) int { return i*heapArity + 1 }

func (h *handleHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.handle[h.items[i].offset] = i
	h.handle[h.items[j].offset] = j
}

func (h *handleHeap) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if h.items[p].key <= h.items[i].key {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *handleHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		first := firstChild(i)
		for c := first; c < first+heapArity && c < n; c++ {
			if h.items[c].key < h.items[smallest].key {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Push inserts offset with the given key. offset must not already be in the
// heap.
func (h *handleHeap) Push(offset int, key float64) {
	i := len(h.items)
	h.items = append(h.items, heapItem{offset, key})
	h.handle[offset] = i
	h.siftUp(i)
}

// DecreaseKey lowers offset's key; it is the caller's responsibility to
// only ever decrease (never increase) it.
func (h *handleHeap) DecreaseKey(offset int, key float64) {
	i, ok := h.handle[offset]
	if !ok {
		return
	}
	if key >= h.items[i].key {
		return
	}
	h.items[i].key = key
	h.siftUp(i)
}

// PopMin removes and returns the offset with the smallest key.
func (h *handleHeap) PopMin() (offset int, key float64) {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.handle[h.items[0].offset] = 0
	h.items = h.items[:last]
	delete(h.handle, top.offset)
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top.offset, top.key
}

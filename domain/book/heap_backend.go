package book

import (
	"container/heap"

	"matchbook/infra/memory"
)

// heapBackend keeps one binary heap per side ordered by (price, id), with the
// comparator inverted between sides so the root is always the best price.
// Insert and pop-best are O(log n).
//
// A binary heap cannot cheaply remove an interior element, so cancellation is
// lazy: the order is marked dead, then skipped and physically discarded when
// it surfaces at the root. When more than half the heap is dead it is
// compacted in one O(n) pass.
//
// Resting orders are copied into a pooled arena on insert and recycled when
// they leave the book, keeping the hot path allocation-free.
type heapBackend struct {
	bids orderHeap
	asks orderHeap
	byID map[uint64]*Order
	pool *memory.Pool[Order]
}

// compactAbove is the minimum heap size before compaction is considered.
const compactAbove = 64

func newHeapBackend() *heapBackend {
	return &heapBackend{
		bids: orderHeap{max: true},
		asks: orderHeap{max: false},
		byID: make(map[uint64]*Order),
		pool: memory.NewPool(func() *Order { return &Order{} }),
	}
}

func (h *heapBackend) Kind() Kind { return KindHeap }

func (h *heapBackend) side(side Side) *orderHeap {
	if side == Buy {
		return &h.bids
	}
	return &h.asks
}

func (h *heapBackend) InsertResting(o *Order) error {
	p := h.pool.Get()
	*p = o.clone()
	heap.Push(h.side(o.Side), p)
	h.byID[p.ID] = p
	return nil
}

// dropDeadRoot discards dead orders sitting at the root so the live best
// surfaces. Dead orders elsewhere in the heap stay until they either surface
// or a compaction sweeps them.
func (h *heapBackend) dropDeadRoot(s *orderHeap) {
	for len(s.items) > 0 && s.items[0].dead {
		o := heap.Pop(s).(*Order)
		s.dead--
		o.reset()
		h.pool.Put(o)
	}
}

func (h *heapBackend) PeekBest(side Side) *Order {
	s := h.side(side)
	h.dropDeadRoot(s)
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

func (h *heapBackend) PopBest(side Side) *Order {
	s := h.side(side)
	h.dropDeadRoot(s)
	if len(s.items) == 0 {
		return nil
	}
	o := heap.Pop(s).(*Order)
	delete(h.byID, o.ID)
	// hand back a detached copy and recycle the pooled object
	c := o.clone()
	o.reset()
	h.pool.Put(o)
	return &c
}

func (h *heapBackend) Remove(id uint64) error {
	o, ok := h.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.dead = true
	delete(h.byID, id)
	s := h.side(o.Side)
	s.dead++
	if len(s.items) >= compactAbove && s.dead*2 > len(s.items) {
		h.compact(s)
	}
	return nil
}

// compact rebuilds the heap without its dead entries.
func (h *heapBackend) compact(s *orderHeap) {
	live := s.items[:0]
	for _, o := range s.items {
		if o.dead {
			o.reset()
			h.pool.Put(o)
			continue
		}
		live = append(live, o)
	}
	s.items = live
	s.dead = 0
	heap.Init(s)
}

func (h *heapBackend) BestPrice(side Side) (int64, bool) {
	best := h.PeekBest(side)
	if best == nil {
		return 0, false
	}
	return best.Price, true
}

func (h *heapBackend) SideEmpty(side Side) bool {
	s := h.side(side)
	return len(s.items)-s.dead == 0
}

func (h *heapBackend) Len() int {
	return (len(h.bids.items) - h.bids.dead) + (len(h.asks.items) - h.asks.dead)
}

// orderHeap implements heap.Interface over resting orders. max selects the
// bid comparator (highest price first); ties break on the lower id, i.e. the
// earlier arrival.
type orderHeap struct {
	items []*Order
	max   bool
	dead  int
}

func (s *orderHeap) Len() int { return len(s.items) }

func (s *orderHeap) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	if a.Price != b.Price {
		if s.max {
			return a.Price > b.Price
		}
		return a.Price < b.Price
	}
	return a.ID < b.ID
}

func (s *orderHeap) Swap(i, j int) { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *orderHeap) Push(x any) {
	s.items = append(s.items, x.(*Order))
}

func (s *orderHeap) Pop() any {
	old := s.items
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	s.items = old[:n-1]
	return x
}

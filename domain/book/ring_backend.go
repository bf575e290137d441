package book

import "matchbook/infra/memory"

// ringBackend stores each side in a bounded lock-free ring buffer, appended
// on insert. Best-price lookup is a linear scan, so it degrades with depth
// but stays allocation-free and cache-local for shallow books.
//
// The ring cannot remove an interior element, so pops and cancellations mark
// the order dead in place; dead slots are physically reclaimed by compacting
// the ring when an insert finds it full. Scans skip dead orders.
//
// The ring's enqueue/dequeue are lock-free, but scans assume the per-symbol
// single-matcher discipline: they are not a concurrent snapshot mechanism.
type ringBackend struct {
	bids, asks *memory.Ring[*Order]
	byID       map[uint64]*Order
	liveBids   int
	liveAsks   int
}

func newRingBackend(capacity int) *ringBackend {
	return &ringBackend{
		bids: memory.NewRing[*Order](capacity),
		asks: memory.NewRing[*Order](capacity),
		byID: make(map[uint64]*Order),
	}
}

func (r *ringBackend) Kind() Kind { return KindRing }

func (r *ringBackend) ring(side Side) *memory.Ring[*Order] {
	if side == Buy {
		return r.bids
	}
	return r.asks
}

func (r *ringBackend) live(side Side) *int {
	if side == Buy {
		return &r.liveBids
	}
	return &r.liveAsks
}

func (r *ringBackend) InsertResting(o *Order) error {
	q := r.ring(o.Side)
	if q.IsFull() {
		compactRing(q)
	}
	if !q.Enqueue(o) {
		return ErrQueueFull
	}
	r.byID[o.ID] = o
	*r.live(o.Side)++
	return nil
}

// compactRing drains the ring and re-enqueues live orders, preserving FIFO
// order. Each dequeue frees the slot the re-enqueue needs, so it never fails.
func compactRing(q *memory.Ring[*Order]) {
	n := q.Len()
	for i := 0; i < n; i++ {
		o, ok := q.Dequeue()
		if !ok {
			return
		}
		if o.dead {
			continue
		}
		q.Enqueue(o)
	}
}

// scanBest finds the best live order: highest price for bids, lowest for
// asks. The ring iterates oldest-first and comparisons are strict, so the
// earliest order wins at equal price.
func (r *ringBackend) scanBest(side Side) *Order {
	var best *Order
	r.ring(side).Range(func(o *Order) bool {
		if o.dead {
			return true
		}
		if best == nil ||
			(side == Buy && o.Price > best.Price) ||
			(side == Sell && o.Price < best.Price) {
			best = o
		}
		return true
	})
	return best
}

func (r *ringBackend) PeekBest(side Side) *Order {
	return r.scanBest(side)
}

func (r *ringBackend) PopBest(side Side) *Order {
	best := r.scanBest(side)
	if best == nil {
		return nil
	}
	best.dead = true
	delete(r.byID, best.ID)
	*r.live(side)--
	return best
}

func (r *ringBackend) Remove(id uint64) error {
	o, ok := r.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.dead = true
	delete(r.byID, id)
	*r.live(o.Side)--
	return nil
}

func (r *ringBackend) BestPrice(side Side) (int64, bool) {
	best := r.scanBest(side)
	if best == nil {
		return 0, false
	}
	return best.Price, true
}

func (r *ringBackend) SideEmpty(side Side) bool {
	return *r.live(side) == 0
}

func (r *ringBackend) Len() int {
	return r.liveBids + r.liveAsks
}

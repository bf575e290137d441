package book

import "fmt"

// Kind selects a backend implementation at construction time.
type Kind int

const (
	// KindRing stores each side in a bounded lock-free ring buffer and finds
	// the best price by linear scan. Allocation-free and cache-local, but
	// O(n) per lookup and bounded: inserts fail with ErrQueueFull when full.
	KindRing Kind = iota
	// KindTree keeps per-side btrees of price levels. O(log n) everywhere;
	// the general-purpose backend.
	KindTree
	// KindHeap keeps per-side binary heaps with lazy deletion. Fastest pure
	// insert/match throughput, amortized O(1) cancellation with occasional
	// compaction.
	KindHeap
)

func (k Kind) String() string {
	switch k {
	case KindRing:
		return "ring"
	case KindTree:
		return "tree"
	case KindHeap:
		return "heap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config string to a backend kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "ring", "arrayqueue":
		return KindRing, nil
	case "tree", "orderedmap":
		return KindTree, nil
	case "heap", "priorityqueue":
		return KindHeap, nil
	}
	return 0, fmt.Errorf("book: unknown backend kind %q", s)
}

// Kinds lists all backends, in a fixed order, for comparison harnesses.
var Kinds = []Kind{KindRing, KindTree, KindHeap}

// Backend is the storage contract every book variant satisfies. The matching
// loop is written once against it; implementations differ only in how resting
// orders are indexed.
//
// PeekBest returns a live reference whose Qty the matcher decrements in
// place; PopBest must then discard that same order once it reaches zero.
// Backends are not internally synchronized: one goroutine drives a given
// backend at a time (the per-symbol single-writer discipline).
type Backend interface {
	// InsertResting stores a non-crossing remainder, preserving
	// price-then-id ordering among resting orders.
	InsertResting(o *Order) error
	// PeekBest returns the best resting order on side: highest-price bid or
	// lowest-price ask, oldest first at equal price. Nil when the side is
	// empty.
	PeekBest(side Side) *Order
	// PopBest removes and returns the order PeekBest would return.
	PopBest(side Side) *Order
	// Remove cancels a resting order by id.
	Remove(id uint64) error
	// BestPrice reports the best price on side, if any.
	BestPrice(side Side) (int64, bool)
	// SideEmpty reports whether side holds no live orders.
	SideEmpty(side Side) bool
	// Len is the total number of live resting orders.
	Len() int
	Kind() Kind
}

// Config carries backend construction parameters.
type Config struct {
	// RingCapacity bounds each side of the ring backend. Zero means
	// DefaultRingCapacity. Other backends ignore it.
	RingCapacity int
}

// DefaultRingCapacity is the per-side bound when the config leaves it unset.
const DefaultRingCapacity = 4096

func newBackend(kind Kind, cfg Config) Backend {
	switch kind {
	case KindRing:
		capacity := cfg.RingCapacity
		if capacity <= 0 {
			capacity = DefaultRingCapacity
		}
		return newRingBackend(capacity)
	case KindTree:
		return newTreeBackend()
	case KindHeap:
		return newHeapBackend()
	}
	panic(fmt.Sprintf("book: unknown backend kind %d", int(kind)))
}

package book

import (
	"errors"
	"testing"
)

func TestHeapLazyDeletionSkipsDeadRoot(t *testing.T) {
	h := newHeapBackend()
	h.InsertResting(&Order{ID: 1, Side: Sell, Price: PriceToTicks(100.0), Qty: 5})
	h.InsertResting(&Order{ID: 2, Side: Sell, Price: PriceToTicks(101.0), Qty: 5})

	if err := h.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	best := h.PeekBest(Sell)
	if best == nil || best.ID != 2 {
		t.Fatalf("dead root must be skipped, got %+v", best)
	}
	if price, ok := h.BestPrice(Sell); !ok || price != PriceToTicks(101.0) {
		t.Fatalf("best ask should be 101, got %s ok=%v", FormatTicks(price), ok)
	}
	if h.Len() != 1 {
		t.Fatalf("one live order expected, got %d", h.Len())
	}
}

func TestHeapRemoveUnknown(t *testing.T) {
	h := newHeapBackend()
	if err := h.Remove(42); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestHeapCompactionKeepsOrdering(t *testing.T) {
	h := newHeapBackend()
	const n = 128
	for i := 1; i <= n; i++ {
		h.InsertResting(&Order{
			ID:    uint64(i),
			Side:  Sell,
			Price: PriceToTicks(100.0 + float64(i)),
			Qty:   1,
		})
	}
	// cancel enough interior orders to push the dead fraction past half
	for i := 2; i <= n; i += 2 {
		if err := h.Remove(uint64(i)); err != nil {
			t.Fatalf("remove %d: %v", i, err)
		}
	}
	if err := h.Remove(1); err != nil {
		t.Fatalf("remove 1: %v", err)
	}
	if h.asks.dead != 0 {
		t.Fatalf("expected compaction to have run, %d dead entries remain", h.asks.dead)
	}
	if want := n/2 - 1; h.Len() != want {
		t.Fatalf("expected %d live orders, got %d", want, h.Len())
	}

	// pops must surface the surviving odd ids in ascending price order
	want := PriceToTicks(103.0)
	for i := 0; i < 3; i++ {
		o := h.PopBest(Sell)
		if o == nil || o.Price != want {
			t.Fatalf("pop %d: expected price %s, got %+v", i, FormatTicks(want), o)
		}
		want += 2 * PriceScale
	}
}

func TestHeapTieBreaksOnID(t *testing.T) {
	h := newHeapBackend()
	h.InsertResting(&Order{ID: 2, Side: Buy, Price: PriceToTicks(100.0), Qty: 1})
	h.InsertResting(&Order{ID: 1, Side: Buy, Price: PriceToTicks(100.0), Qty: 1})

	if best := h.PeekBest(Buy); best == nil || best.ID != 1 {
		t.Fatalf("lower id wins at equal price, got %+v", best)
	}
}

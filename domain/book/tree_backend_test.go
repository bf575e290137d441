package book

import "testing"

func TestTreeLevelLifecycle(t *testing.T) {
	tr := newTreeBackend()
	tr.InsertResting(&Order{ID: 1, Side: Buy, Price: PriceToTicks(100.0), Qty: 1})
	tr.InsertResting(&Order{ID: 2, Side: Buy, Price: PriceToTicks(100.0), Qty: 1})
	tr.InsertResting(&Order{ID: 3, Side: Buy, Price: PriceToTicks(99.0), Qty: 1})

	if tr.bids.Len() != 2 {
		t.Fatalf("expected 2 price levels, got %d", tr.bids.Len())
	}

	// drain the 100 level; it must disappear and expose the 99 level
	if o := tr.PopBest(Buy); o == nil || o.ID != 1 {
		t.Fatalf("expected oldest order at best level, got %+v", o)
	}
	if o := tr.PopBest(Buy); o == nil || o.ID != 2 {
		t.Fatalf("expected second order at best level, got %+v", o)
	}
	if tr.bids.Len() != 1 {
		t.Fatalf("empty level should be deleted, got %d levels", tr.bids.Len())
	}
	if price, ok := tr.BestPrice(Buy); !ok || price != PriceToTicks(99.0) {
		t.Fatalf("best bid should be 99, got %s ok=%v", FormatTicks(price), ok)
	}
}

func TestTreeBestIsMinOfEachComparator(t *testing.T) {
	tr := newTreeBackend()
	tr.InsertResting(&Order{ID: 1, Side: Buy, Price: PriceToTicks(99.0), Qty: 1})
	tr.InsertResting(&Order{ID: 2, Side: Buy, Price: PriceToTicks(101.0), Qty: 1})
	tr.InsertResting(&Order{ID: 3, Side: Sell, Price: PriceToTicks(105.0), Qty: 1})
	tr.InsertResting(&Order{ID: 4, Side: Sell, Price: PriceToTicks(103.0), Qty: 1})

	if price, _ := tr.BestPrice(Buy); price != PriceToTicks(101.0) {
		t.Fatalf("best bid should be the highest price, got %s", FormatTicks(price))
	}
	if price, _ := tr.BestPrice(Sell); price != PriceToTicks(103.0) {
		t.Fatalf("best ask should be the lowest price, got %s", FormatTicks(price))
	}
}

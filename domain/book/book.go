package book

// Book is the order book for a single symbol: two independent sides held by
// one backend, matched synchronously on every submission so a crossing pair
// never rests.
//
// A Book is single-writer: callers serialize Submit/Cancel per symbol. Books
// for different symbols are fully independent.
type Book struct {
	symbol string
	be     Backend
}

// New creates an empty book for symbol using the given backend kind.
func New(symbol string, kind Kind, cfg Config) *Book {
	return &Book{symbol: symbol, be: newBackend(kind, cfg)}
}

func (b *Book) Symbol() string { return b.symbol }
func (b *Book) Kind() Kind     { return b.be.Kind() }

// Submit matches the incoming order against the opposite side and rests any
// remainder. The order must be validated and carry its assigned id; Submit
// takes ownership of it.
//
// On ErrQueueFull (ring backend at capacity) the remainder is rejected but
// fills that already executed stand; they are returned with the error.
func (b *Book) Submit(o *Order) (MatchResult, error) {
	res := MatchResult{Fills: matchIncoming(b.be, o)}
	if o.Qty > 0 {
		if err := b.be.InsertResting(o); err != nil {
			return res, err
		}
		rest := o.clone()
		res.Resting = &rest
	}
	return res, nil
}

// Cancel removes a resting order. ErrOrderNotFound if the id is not resting
// (unknown, fully filled, or already cancelled).
func (b *Book) Cancel(id uint64) error {
	return b.be.Remove(id)
}

// BestPrices returns a snapshot of the top of book.
func (b *Book) BestPrices() Quote {
	var q Quote
	q.Bid, q.HasBid = b.be.BestPrice(Buy)
	q.Ask, q.HasAsk = b.be.BestPrice(Sell)
	return q
}

// CanMatch reports whether o would execute at least one fill right now. It
// peeks, never pops, and leaves the book untouched.
func (b *Book) CanMatch(o *Order) bool {
	best := b.be.PeekBest(o.Side.Opposite())
	return best != nil && crosses(o, best.Price)
}

// IsEmpty reports whether no orders rest on either side.
func (b *Book) IsEmpty() bool {
	return b.be.SideEmpty(Buy) && b.be.SideEmpty(Sell)
}

// Len is the number of resting orders across both sides.
func (b *Book) Len() int { return b.be.Len() }

package book

// Fill records one execution. Price is always the resting (maker) order's
// price; the maker arrived first and keeps its terms.
type Fill struct {
	Price   int64
	Qty     int64
	MakerID uint64
	TakerID uint64
}

// MatchResult is returned by Book.Submit. Fills are in execution order.
// Resting is a detached copy of the remainder left in the book, or nil when
// the incoming order filled completely.
type MatchResult struct {
	Fills   []Fill
	Resting *Order
}

// FilledQty is the total quantity executed by this submission.
func (r MatchResult) FilledQty() int64 {
	var n int64
	for _, f := range r.Fills {
		n += f.Qty
	}
	return n
}

// Quote is a best-price snapshot of one book. HasBid/HasAsk distinguish an
// empty side from a zero price.
type Quote struct {
	Bid, Ask       int64
	HasBid, HasAsk bool
}

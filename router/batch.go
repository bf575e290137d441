package router

import "matchbook/domain/book"

// BatchMode selects how much checking SubmitBatch performs per order.
type BatchMode int

const (
	// Safe fully validates every order and isolates failures: a rejected
	// order is reported in its slot and the rest of the batch proceeds.
	Safe BatchMode = iota
	// Fast assumes the caller pre-validated the orders and only checks
	// symbol existence.
	Fast
	// Unchecked skips validation and the symbol check. Only sound when the
	// caller guarantees well-formed orders on registered symbols; feeding it
	// anything else is a contract violation (unknown symbols panic).
	Unchecked
)

// BatchResult is the outcome of one order in a batch.
type BatchResult struct {
	Result book.MatchResult
	Err    error
}

// SubmitBatch processes orders in submission order, one result per input.
// Accepted orders are independent transactions: a rejection in the middle
// neither rolls back earlier fills nor blocks later orders.
func (r *Router) SubmitBatch(orders []book.Order, mode BatchMode) []BatchResult {
	out := make([]BatchResult, len(orders))
	for i, o := range orders {
		switch mode {
		case Safe:
			out[i].Result, out[i].Err = r.SubmitOrder(o)
		case Fast:
			out[i].Result, out[i].Err = r.submitFast(o)
		case Unchecked:
			out[i].Result = r.submitUnchecked(o)
		}
	}
	return out
}

package router

import (
	"errors"
	"fmt"

	"matchbook/domain/book"
	"matchbook/infra/sequence"
)

// ErrUnknownSymbol rejects orders for symbols the router was not built with.
var ErrUnknownSymbol = errors.New("router: unknown symbol")

// Router owns one book per registered symbol and is the only entry point for
// order flow. The symbol set is fixed at construction; books live for the
// process lifetime.
//
// Each book is single-writer: callers must serialize submissions per symbol.
// Different symbols are independent and may be driven concurrently.
//
// Self-trade prevention is not implemented: an order may match a resting
// order from the same submitter.
type Router struct {
	books map[string]*book.Book
	seq   *sequence.Sequencer
	kind  book.Kind
}

// New builds a router with one backend of the given kind per symbol.
func New(symbols []string, kind book.Kind, cfg book.Config) *Router {
	books := make(map[string]*book.Book, len(symbols))
	for _, sym := range symbols {
		books[sym] = book.New(sym, kind, cfg)
	}
	return &Router{
		books: books,
		seq:   sequence.New(0),
		kind:  kind,
	}
}

func (r *Router) Kind() book.Kind { return r.kind }

// Symbols returns the registered symbol set.
func (r *Router) Symbols() []string {
	out := make([]string, 0, len(r.books))
	for sym := range r.books {
		out = append(out, sym)
	}
	return out
}

// SubmitOrder validates the order, assigns its id and routes it to the
// symbol's book. No state is mutated on rejection.
func (r *Router) SubmitOrder(o book.Order) (book.MatchResult, error) {
	if err := o.Validate(); err != nil {
		return book.MatchResult{}, err
	}
	return r.submitFast(o)
}

// submitFast skips syntactic validation but still checks symbol existence.
func (r *Router) submitFast(o book.Order) (book.MatchResult, error) {
	b, ok := r.books[o.Symbol]
	if !ok {
		return book.MatchResult{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, o.Symbol)
	}
	o.ID = r.seq.Next()
	return b.Submit(&o)
}

// submitUnchecked skips validation and the symbol check. The caller
// guarantees a well-formed order for a registered symbol; an unknown symbol
// panics and a malformed order corrupts only its own accounting. This is a
// contract violation, not a recoverable error.
func (r *Router) submitUnchecked(o book.Order) book.MatchResult {
	o.ID = r.seq.Next()
	res, _ := r.books[o.Symbol].Submit(&o)
	return res
}

// CancelOrder removes a resting order from its symbol's book.
func (r *Router) CancelOrder(symbol string, id uint64) error {
	b, ok := r.books[symbol]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return b.Cancel(id)
}

// BestPrices returns the top of book for symbol. ok is false for unknown
// symbols.
func (r *Router) BestPrices(symbol string) (book.Quote, bool) {
	b, ok := r.books[symbol]
	if !ok {
		return book.Quote{}, false
	}
	return b.BestPrices(), true
}

// IsValidSymbol reports whether the router owns a book for symbol.
func (r *Router) IsValidSymbol(symbol string) bool {
	_, ok := r.books[symbol]
	return ok
}

// CanMatch reports whether o would cross right now, without mutating the
// book. False for unknown symbols.
func (r *Router) CanMatch(symbol string, o book.Order) bool {
	b, ok := r.books[symbol]
	if !ok {
		return false
	}
	return b.CanMatch(&o)
}

// MultiSymbolBestPrices looks up the top of book for each requested symbol.
// Unknown symbols map to nil rather than failing the batch.
func (r *Router) MultiSymbolBestPrices(symbols []string) map[string]*book.Quote {
	out := make(map[string]*book.Quote, len(symbols))
	for _, sym := range symbols {
		if b, ok := r.books[sym]; ok {
			q := b.BestPrices()
			out[sym] = &q
		} else {
			out[sym] = nil
		}
	}
	return out
}

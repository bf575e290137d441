package book

import (
	"errors"
	"fmt"
)

type Side int8

const (
	Buy Side = iota
	Sell
)

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return fmt.Sprintf("Side(%d)", int8(s))
}

var (
	// ErrInvalidOrder rejects malformed orders before any book state is touched.
	ErrInvalidOrder = errors.New("book: invalid order")
	// ErrOrderNotFound is returned by cancellation when the id is not resting.
	ErrOrderNotFound = errors.New("book: order not found")
	// ErrQueueFull signals backpressure from the bounded ring backend.
	ErrQueueFull = errors.New("book: queue full")
)

// Order is a limit order. Qty is the remaining unfilled quantity and is
// decremented in place as fills execute; an order with Qty == 0 never rests.
//
// ID is assigned by the router on acceptance and is strictly monotonic per
// process, so it doubles as the FIFO tie-breaker at equal price.
type Order struct {
	ID     uint64
	Symbol string
	Side   Side
	Price  int64 // ticks, see PriceScale
	Qty    int64

	// intrusive FIFO links used by the tree backend's price levels
	next, prev *Order
	// lazy-deletion mark used by the ring and heap backends
	dead bool
}

// Validate checks syntactic well-formedness. It performs no book lookups.
func (o *Order) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: nil", ErrInvalidOrder)
	}
	if o.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidOrder)
	}
	if o.Side != Buy && o.Side != Sell {
		return fmt.Errorf("%w: side must be BUY or SELL", ErrInvalidOrder)
	}
	if o.Qty <= 0 {
		return fmt.Errorf("%w: quantity must be > 0", ErrInvalidOrder)
	}
	if o.Price <= 0 {
		return fmt.Errorf("%w: price must be > 0 ticks", ErrInvalidOrder)
	}
	return nil
}

// clone returns a detached copy safe to hand to callers.
func (o *Order) clone() Order {
	c := *o
	c.next, c.prev = nil, nil
	c.dead = false
	return c
}

// reset prepares a pooled order for reuse.
func (o *Order) reset() { *o = Order{} }

package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of ticks per quote unit: 150.25 is 150250 ticks.
const PriceScale = 1000

// tickExp is PriceScale as a decimal exponent (10^3).
const tickExp = 3

// PriceToTicks converts a float price to ticks, truncating sub-tick noise.
func PriceToTicks(price float64) int64 {
	return int64(price * PriceScale)
}

// TicksToPrice converts ticks back to a float price.
func TicksToPrice(ticks int64) float64 {
	return float64(ticks) / PriceScale
}

// ParsePrice converts a decimal string ("150.25") to ticks exactly.
// Prices with sub-tick precision are rejected rather than rounded.
func ParsePrice(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q: %v", ErrInvalidOrder, s, err)
	}
	t := d.Shift(tickExp)
	if !t.IsInteger() {
		return 0, fmt.Errorf("%w: price %q is finer than one tick", ErrInvalidOrder, s)
	}
	return t.IntPart(), nil
}

// FormatTicks renders ticks as a decimal price string without float error.
func FormatTicks(ticks int64) string {
	return decimal.New(ticks, -tickExp).String()
}

// Command load replays an identical synthetic order stream through every
// backend and reports throughput, so the storage strategies can be compared
// on the same workload. It also cross-checks that all backends produced the
// same fill sequence.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"matchbook/domain/book"
	"matchbook/router"
)

type simParams struct {
	count      int
	initial    float64
	mean       float64
	drift      float64
	reversion  float64
	volatility float64
	symbols    []string
	seed       int64
}

func main() {
	var p simParams
	flag.IntVar(&p.count, "n", 100_000, "orders to generate")
	flag.Int64Var(&p.seed, "seed", 42, "rng seed (fixed so runs are comparable)")
	ringCap := flag.Int("ring-cap", 1<<20, "ring backend capacity per side")
	flag.Parse()

	p.initial, p.mean = 100.0, 100.0
	p.drift, p.reversion, p.volatility = 0.0001, 0.05, 0.02
	p.symbols = []string{"AAPL", "GOOGL", "TSLA"}

	orders := generateOrders(p)

	var baseline []book.Fill
	for _, kind := range book.Kinds {
		r := router.New(p.symbols, kind, book.Config{RingCapacity: *ringCap})

		start := time.Now()
		results := r.SubmitBatch(orders, router.Fast)
		elapsed := time.Since(start)

		var fills []book.Fill
		rejected := 0
		for _, br := range results {
			if br.Err != nil {
				rejected++
				continue
			}
			fills = append(fills, br.Result.Fills...)
		}

		fmt.Printf("%-5s  %8d orders  %10.0f orders/s  %8d fills  %d rejected  %v\n",
			kind, len(orders), float64(len(orders))/elapsed.Seconds(), len(fills), rejected, elapsed)

		if baseline == nil {
			baseline = fills
			continue
		}
		if rejected == 0 && !sameFills(baseline, fills) {
			fmt.Fprintf(os.Stderr, "fill sequences diverge between backends\n")
			os.Exit(1)
		}
	}
}

// generateOrders produces a mean-reverting random walk with normal shocks,
// round-robin across symbols.
func generateOrders(p simParams) []book.Order {
	rng := rand.New(rand.NewSource(p.seed))
	price := p.initial
	orders := make([]book.Order, 0, p.count)
	for i := 0; i < p.count; i++ {
		shock := rng.NormFloat64()
		logReturn := p.drift + p.reversion*(p.mean-price) + p.volatility*shock
		price = math.Max(price*math.Exp(logReturn), 0.01)

		side := book.Buy
		if rng.Intn(2) == 1 {
			side = book.Sell
		}
		orders = append(orders, book.Order{
			Symbol: p.symbols[i%len(p.symbols)],
			Side:   side,
			Price:  book.PriceToTicks(price),
			Qty:    int64(rng.Intn(1000) + 1),
		})
	}
	return orders
}

func sameFills(a, b []book.Fill) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

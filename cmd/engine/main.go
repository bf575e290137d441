// Command engine wires the matching engine end to end: config, logger,
// router, and the optional Kafka fill broadcaster, then runs a small demo
// order flow against the configured backend.
package main

import (
	"os"

	"go.uber.org/zap"

	"matchbook/config"
	"matchbook/domain/book"
	"matchbook/jobs/broadcaster"
	"matchbook/router"
	"matchbook/util"
)

func main() {
	log, err := util.NewLogger()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	var bc *broadcaster.Broadcaster
	if cfg.Kafka.Enabled() {
		bc, err = broadcaster.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatal("kafka connect failed", zap.Error(err))
		}
		defer bc.Close()
	}

	r := router.New(cfg.Symbols, cfg.Backend, book.Config{RingCapacity: cfg.RingCapacity})
	log.Info("engine up",
		zap.Stringer("backend", cfg.Backend),
		zap.Strings("symbols", cfg.Symbols),
	)

	orders := demoOrders(cfg.Symbols)
	for _, o := range orders {
		res, err := r.SubmitOrder(o)
		if err != nil {
			log.Warn("order rejected", zap.String("symbol", o.Symbol), zap.Error(err))
			continue
		}
		log.Info("order processed",
			zap.String("symbol", o.Symbol),
			zap.Stringer("side", o.Side),
			zap.String("price", book.FormatTicks(o.Price)),
			zap.Int64("filled", res.FilledQty()),
			zap.Int("fills", len(res.Fills)),
			zap.Bool("rested", res.Resting != nil),
		)
		if bc != nil && len(res.Fills) > 0 {
			if err := bc.PublishFills(o.Symbol, res.Fills); err != nil {
				log.Error("fill publish failed", zap.Error(err))
			}
		}
	}

	for sym, q := range r.MultiSymbolBestPrices(cfg.Symbols) {
		if q == nil {
			continue
		}
		fields := []zap.Field{zap.String("symbol", sym)}
		if q.HasBid {
			fields = append(fields, zap.String("bid", book.FormatTicks(q.Bid)))
		}
		if q.HasAsk {
			fields = append(fields, zap.String("ask", book.FormatTicks(q.Ask)))
		}
		log.Info("top of book", fields...)
	}
}

// demoOrders builds a small crossing flow on the first two symbols.
func demoOrders(symbols []string) []book.Order {
	if len(symbols) == 0 {
		return nil
	}
	first := symbols[0]
	second := first
	if len(symbols) > 1 {
		second = symbols[1]
	}
	return []book.Order{
		{Symbol: first, Side: book.Buy, Price: book.PriceToTicks(150.0), Qty: 100},
		{Symbol: first, Side: book.Sell, Price: book.PriceToTicks(149.5), Qty: 40},
		{Symbol: first, Side: book.Sell, Price: book.PriceToTicks(151.0), Qty: 50},
		{Symbol: second, Side: book.Buy, Price: book.PriceToTicks(2500.0), Qty: 200},
		{Symbol: second, Side: book.Sell, Price: book.PriceToTicks(2501.0), Qty: 100},
	}
}

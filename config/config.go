// Package config loads process configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"matchbook/domain/book"
)

type Kafka struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether fills should be published at all.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

type Config struct {
	// Backend selects the book implementation for every symbol.
	Backend book.Kind
	// Symbols is the fixed symbol set registered at startup.
	Symbols []string
	// RingCapacity bounds each side of the ring backend.
	RingCapacity int
	Kafka        Kafka
}

func defaults() Config {
	return Config{
		Backend:      book.KindTree,
		Symbols:      []string{"AAPL", "GOOGL", "TSLA"},
		RingCapacity: book.DefaultRingCapacity,
		Kafka:        Kafka{Topic: "fills"},
	}
}

// Load reads MATCHBOOK_* variables from the environment. A .env file in the
// working directory is merged in when present; missing files are fine.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if v := os.Getenv("MATCHBOOK_BACKEND"); v != "" {
		kind, err := book.ParseKind(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Backend = kind
	}
	if v := os.Getenv("MATCHBOOK_SYMBOLS"); v != "" {
		cfg.Symbols = splitList(v)
		if len(cfg.Symbols) == 0 {
			return Config{}, fmt.Errorf("config: MATCHBOOK_SYMBOLS is empty")
		}
	}
	if v := os.Getenv("MATCHBOOK_RING_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: bad MATCHBOOK_RING_CAPACITY %q", v)
		}
		cfg.RingCapacity = n
	}
	if v := os.Getenv("MATCHBOOK_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("MATCHBOOK_KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

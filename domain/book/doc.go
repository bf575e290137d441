// Package book implements a single-symbol limit order book with price-time
// priority matching over interchangeable storage backends.
//
// The matching loop is written once against the Backend contract; the ring,
// tree and heap backends trade asymptotics and constant factors against each
// other while producing identical fill sequences for any order stream. Books
// are single-writer per symbol and never expose live internal references:
// all results are detached copies.
package book

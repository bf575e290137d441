// Package memory provides the allocation primitives shared by the order book
// backends: a typed object pool and a bounded lock-free ring buffer.
package memory

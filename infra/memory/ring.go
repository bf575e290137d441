package memory

import "sync/atomic"

// Ring is a bounded lock-free SPSC queue: one producer may Enqueue while one
// consumer Dequeues without locking. Capacity is rounded up to a power of two.
type Ring[T any] struct {
	// head/tail on separate cache lines
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte

	buf  []T
	mask uint64
}

// NewRing allocates a fixed-size circular buffer holding at least cap items.
func NewRing[T any](cap int) *Ring[T] {
	n := uint64(1)
	for n < uint64(cap) {
		n <<= 1
	}
	return &Ring[T]{buf: make([]T, n), mask: n - 1}
}

// Enqueue pushes v into the ring. Returns false if the buffer is full.
func (q *Ring[T]) Enqueue(v T) bool {
	h := q.head
	t := atomic.LoadUint64(&q.tail)
	if h-t == uint64(len(q.buf)) {
		return false // full
	}
	q.buf[h&q.mask] = v
	atomic.StoreUint64(&q.head, h+1)
	return true
}

// Dequeue pops the oldest item. Returns the zero value and false when empty.
func (q *Ring[T]) Dequeue() (T, bool) {
	t := q.tail
	h := atomic.LoadUint64(&q.head)
	if t == h {
		var zero T
		return zero, false
	}
	v := q.buf[t&q.mask]
	var zero T
	q.buf[t&q.mask] = zero
	atomic.StoreUint64(&q.tail, t+1)
	return v, true
}

// Range visits items oldest-first. It must only be called by the consumer
// side while no concurrent Dequeue runs; Enqueues appending past the observed
// head are not visited.
func (q *Ring[T]) Range(fn func(v T) bool) {
	h := atomic.LoadUint64(&q.head)
	for t := atomic.LoadUint64(&q.tail); t != h; t++ {
		if !fn(q.buf[t&q.mask]) {
			return
		}
	}
}

// Len returns the number of items currently stored.
func (q *Ring[T]) Len() int {
	h := atomic.LoadUint64(&q.head)
	t := atomic.LoadUint64(&q.tail)
	return int(h - t)
}

// Cap returns the total capacity of the ring.
func (q *Ring[T]) Cap() int {
	return len(q.buf)
}

// IsFull reports whether the ring is full.
func (q *Ring[T]) IsFull() bool {
	h := atomic.LoadUint64(&q.head)
	t := atomic.LoadUint64(&q.tail)
	return h-t == uint64(len(q.buf))
}

// IsEmpty reports whether the ring is empty.
func (q *Ring[T]) IsEmpty() bool {
	return atomic.LoadUint64(&q.head) == atomic.LoadUint64(&q.tail)
}

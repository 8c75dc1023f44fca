// Package squeue provides a fixed-capacity FIFO queue backed by a circular
// buffer. The backing storage is allocated once at construction and never
// grows; when the queue is full, a push evicts the oldest element and reports
// the loss through its return status.
//
// The queue is not safe for concurrent use. Exactly one owner mutates it at a
// time; wrap it with external locking if producers run on multiple goroutines.
package squeue

import (
	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("squeue: capacity must be positive")

// Status is the result of a Push.
type Status int

const (
	// OK means the element was stored without displacing anything.
	OK Status = iota
	// Overflow means the element was stored but the oldest element was
	// evicted to make room. The push itself never fails.
	Overflow
)

// String returns a readable name for the status.
func (s Status) String() string {
	if s == Overflow {
		return "overflow"
	}
	return "ok"
}

// Queue is a fixed-capacity circular FIFO for values of type T.
// Push appends at the back, Pop removes from the front, and a push on a full
// queue silently discards the oldest element (the caller learns about it from
// the returned Status).
type Queue[T any] struct {
	buf      []T
	head     int // next slot to write
	tail     int // oldest live element, next to pop
	count    int
	overflow bool
}

// New creates a queue holding at most capacity elements of type T.
// The backing array is allocated here and reused for the queue's lifetime;
// no operation allocates afterwards. Returns ErrInvalidCapacity if capacity
// is zero or negative.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, errors.WithStack(ErrInvalidCapacity)
	}
	return &Queue[T]{buf: make([]T, capacity)}, nil
}

// Clear resets the queue to the empty state. Stored elements become
// unreachable but their slots are not zeroed; capacity is unchanged.
func (q *Queue[T]) Clear() {
	q.head = 0
	q.tail = 0
	q.count = 0
	q.overflow = false
}

// Size returns the number of live elements.
func (q *Queue[T]) Size() int { return q.count }

// Capacity returns the fixed capacity set at construction.
func (q *Queue[T]) Capacity() int { return len(q.buf) }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.count == 0 }

// Full reports whether the next Push will evict the oldest element.
func (q *Queue[T]) Full() bool { return q.count == len(q.buf) }

// Overflowed reports whether the most recent push evicted an element.
// The flag is cleared by the next Pop and by any non-evicting Push.
func (q *Queue[T]) Overflowed() bool { return q.overflow }

// Front returns a pointer to the oldest element, the one the next Pop will
// remove, or nil if the queue is empty. The pointer is valid only until the
// next mutating call (Push, Pop or Clear).
func (q *Queue[T]) Front() *T {
	if q.count == 0 {
		return nil
	}
	return &q.buf[q.tail]
}

// Back returns a pointer to the most recently pushed element, or nil if the
// queue is empty. Same validity contract as Front.
func (q *Queue[T]) Back() *T {
	if q.count == 0 {
		return nil
	}
	return &q.buf[(q.head-1+len(q.buf))%len(q.buf)]
}

// Push appends v at the back of the queue. If the queue is full the oldest
// element is discarded first and Overflow is returned; otherwise OK.
// The element is always stored, so the status is a data-loss notification,
// not an error.
func (q *Queue[T]) Push(v T) Status {
	if q.Full() {
		q.overflow = true
		q.tail = (q.tail + 1) % len(q.buf)
	} else {
		q.overflow = false
		q.count++
	}

	q.buf[q.head] = v
	q.head = (q.head + 1) % len(q.buf)

	if q.overflow {
		return Overflow
	}
	return OK
}

// Pop removes the oldest element. Popping an empty queue is a no-op.
// The slot is not zeroed; it is overwritten by a later Push. Pop always
// clears the overflow flag.
func (q *Queue[T]) Pop() {
	if q.count == 0 {
		return
	}
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--
	q.overflow = false
}

// Clone returns an independent copy of the queue, including the full backing
// array. Cost is O(capacity) regardless of how many elements are live.
func (q *Queue[T]) Clone() *Queue[T] {
	dup := &Queue[T]{
		buf:      make([]T, len(q.buf)),
		head:     q.head,
		tail:     q.tail,
		count:    q.count,
		overflow: q.overflow,
	}
	copy(dup.buf, q.buf)
	return dup
}

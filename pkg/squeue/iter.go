package squeue

// Each walks the live elements in FIFO order (oldest first) and calls fn for
// each one. Return false from fn to stop early. The walk reads the ring in
// place, so it does not allocate and must not be mixed with mutating calls
// from inside fn.
func (q *Queue[T]) Each(fn func(*T) bool) {
	for i := 0; i < q.count; i++ {
		if !fn(&q.buf[(q.tail+i)%len(q.buf)]) {
			return
		}
	}
}

// Snapshot returns a new slice with copies of the live elements in FIFO
// order. Returns nil for an empty queue.
func (q *Queue[T]) Snapshot() []T {
	if q.count == 0 {
		return nil
	}
	out := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.tail+i)%len(q.buf)]
	}
	return out
}

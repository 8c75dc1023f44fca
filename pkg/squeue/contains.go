package squeue

// Contains reports whether any live element equals v. It is a package-level
// function rather than a method so the comparable constraint only applies
// where the capability is actually used; queues of non-comparable element
// types are unaffected. O(count) scan from the oldest element.
func Contains[T comparable](q *Queue[T], v T) bool {
	for i := 0; i < q.count; i++ {
		if q.buf[(q.tail+i)%len(q.buf)] == v {
			return true
		}
	}
	return false
}

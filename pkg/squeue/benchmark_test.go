package squeue

import (
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// benchConfig holds benchmark test configuration.
type benchConfig struct {
	name     string
	capacity int
}

// benchConfigs defines the capacities for benchmarking.
var benchConfigs = []benchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Benchmarks
// ===========================================================================

// BenchmarkPush measures steady-state push cost with the ring kept below
// capacity, so no evictions occur.
func BenchmarkPush(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q, err := New[int](cfg.capacity)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q.Push(i)
				if q.Full() {
					q.Pop()
				}
			}
		})
	}
}

// BenchmarkPushOverflow measures push cost once the ring is saturated and
// every push evicts.
func BenchmarkPushOverflow(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q, err := New[int](cfg.capacity)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < cfg.capacity; i++ {
				q.Push(i)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q.Push(i)
			}
		})
	}
}

// BenchmarkPushPop measures a balanced push/pop cycle.
func BenchmarkPushPop(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q, err := New[int](cfg.capacity)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q.Push(i)
				q.Pop()
			}
		})
	}
}

// BenchmarkContains measures the linear scan on a full ring.
func BenchmarkContains(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			q, err := New[int](cfg.capacity)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < cfg.capacity; i++ {
				q.Push(i)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				// Worst case: absent element scans every live slot.
				Contains(q, -1)
			}
		})
	}
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForReduce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Count odd indices: 0..999 has 500 of them.
	got := pool.ParallelForReduce(1000, func(i int) int64 {
		return int64(i & 1)
	})
	if got != 500 {
		t.Errorf("ParallelForReduce = %d, want 500", got)
	}
}

func TestParallelForReduceVisitsEachIndexOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 257
	visits := make([]atomic.Int32, n)
	sum := pool.ParallelForReduce(n, func(i int) int64 {
		visits[i].Add(1)
		return int64(i)
	})

	if want := int64(n * (n - 1) / 2); sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
	for i := range visits {
		if v := visits[i].Load(); v != 1 {
			t.Errorf("index %d visited %d times", i, v)
		}
	}
}

func TestParallelForReduceEdgeCases(t *testing.T) {
	pool := New(4)
	if got := pool.ParallelForReduce(0, func(int) int64 { return 1 }); got != 0 {
		t.Errorf("n=0: got %d, want 0", got)
	}
	if got := pool.ParallelForReduce(1, func(int) int64 { return 7 }); got != 7 {
		t.Errorf("n=1: got %d, want 7", got)
	}

	pool.Close()
	// Closed pool falls back to a sequential reduction.
	if got := pool.ParallelForReduce(10, func(int) int64 { return 2 }); got != 20 {
		t.Errorf("closed pool: got %d, want 20", got)
	}
}

func TestWith(t *testing.T) {
	var inner *Pool
	With(3, func(p *Pool) {
		inner = p
		if p.NumWorkers() != 3 {
			t.Errorf("NumWorkers() = %d, want 3", p.NumWorkers())
		}
		var count atomic.Int32
		p.ParallelForAtomic(30, func(int) { count.Add(1) })
		if count.Load() != 30 {
			t.Errorf("count = %d, want 30", count.Load())
		}
	})

	if !inner.closed.Load() {
		t.Error("pool should be closed after With returns")
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomic(n, func(i int) {
			_ = i * i
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForReduce(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForReduce(n, func(i int) int64 {
			return int64(i & 1)
		})
	}
}

// BenchmarkPoolOverhead measures the overhead of using the pool vs inline spawn
func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pool.ParallelFor(10, func(start, end int) {
				// Minimal work
			})
		}
	})
}

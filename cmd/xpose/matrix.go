package main

import (
	"math/rand"

	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

// newRandomMatrix returns an n×n matrix of values in [-1, 1). Rows are
// filled by the pool's workers, so pages are first touched by the threads
// that later work on them. Row r draws from its own source seeded with
// seed+r, so the result does not depend on the worker count.
func newRandomMatrix(pool *workerpool.Pool, n int, seed int64) []float32 {
	m := hwy.AlignedSlice[float32](n*n, hwy.VectorAlignment)
	pool.ParallelFor(n, func(start, end int) {
		for row := start; row < end; row++ {
			rng := rand.New(rand.NewSource(seed + int64(row)))
			for i := row * n; i < (row+1)*n; i++ {
				m[i] = rng.Float32()*2 - 1
			}
		}
	})
	return m
}

// symmetrize mirrors the upper triangle of m into the lower one. Each row
// writes only below the diagonal and reads only above it.
func symmetrize(pool *workerpool.Pool, m []float32, n int) {
	pool.ParallelForAtomic(n, func(row int) {
		for col := 0; col < row; col++ {
			m[row*n+col] = m[col*n+row]
		}
	})
}

// newMatrix allocates a zeroed n×n matrix, first-touched by the pool.
func newMatrix(pool *workerpool.Pool, n int) []float32 {
	m := hwy.AlignedSlice[float32](n*n, hwy.VectorAlignment)
	pool.ParallelFor(n, func(start, end int) {
		clear(m[start*n : end*n])
	})
	return m
}

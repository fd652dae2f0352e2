// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package transpose

import (
	"runtime"

	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

// TilesPerGrab is how many tiles of the collapsed tile grid a worker claims
// per atomic operation in TransposeBlockedParallel.
const TilesPerGrab = 8

// TransposeBlockedParallel is TransposeBlocked with the tile grid spread over
// the workers of pool.
func TransposeBlockedParallel(pool *workerpool.Pool, src, dst []float32, n int) {
	TransposeBlockedParallelEdge(pool, src, dst, n, BlockSize(n))
}

// TransposeBlockedParallelEdge is TransposeBlockedEdge over a worker pool.
// The two-dimensional tile grid is collapsed into tiles² indices and handed
// out dynamically. Every tile writes a disjoint region of dst, so the join
// at the end of the loop is the only synchronization.
func TransposeBlockedParallelEdge(pool *workerpool.Pool, src, dst []float32, n, edge int) {
	edge = max(edge, 1)
	mode := blockMode(src, dst, n, edge)
	k := kernel
	tiles := (n + edge - 1) / edge

	withPool(pool, func(p *workerpool.Pool) {
		p.ParallelForAtomicBatched(tiles*tiles, TilesPerGrab, func(start, end int) {
			for i := start; i < end; i++ {
				b := Block{Row: (i / tiles) * edge, Col: (i % tiles) * edge, Edge: edge}
				transposeBlock(k, src, dst, n, b, mode)
			}
		})
	})
}

// withPool runs fn on pool, or on a GOMAXPROCS-sized pool that lives only
// for this call when pool is nil.
func withPool(pool *workerpool.Pool, fn func(p *workerpool.Pool)) {
	if pool != nil {
		fn(pool)
		return
	}
	workerpool.With(0, fn)
}

// numThreads is the thread count a pool stands for.
func numThreads(pool *workerpool.Pool) int {
	if pool == nil {
		return runtime.GOMAXPROCS(0)
	}
	return pool.NumWorkers()
}

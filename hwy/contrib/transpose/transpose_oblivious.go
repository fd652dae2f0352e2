// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transpose

import (
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

// Recursion cut-offs for the cache-oblivious transpose. The parallel
// variant stops at a larger size since a task per quadrant only pays off
// above it.
const (
	ObliviousBaseSize         = 32
	ObliviousParallelBaseSize = 64
)

// frame is a size×size sub-problem with top-left element (rowOff, colOff).
type frame struct {
	size, rowOff, colOff int
}

// quadrants splits f into four frames of size/2. For odd sizes the last row
// and column of f are left out.
func (f frame) quadrants() [4]frame {
	h := f.size / 2
	return [4]frame{
		{h, f.rowOff, f.colOff},
		{h, f.rowOff, f.colOff + h},
		{h, f.rowOff + h, f.colOff},
		{h, f.rowOff + h, f.colOff + h},
	}
}

type obliviousTransposer struct {
	src, dst []float32
	n        int
	k        Kernel
	aligned  bool
}

func newObliviousTransposer(src, dst []float32, n int) *obliviousTransposer {
	return &obliviousTransposer{
		src:     src,
		dst:     dst,
		n:       n,
		k:       kernel,
		aligned: buffersAligned(src, dst, n),
	}
}

// TransposeCacheOblivious transposes the n×n matrix src into dst by
// recursive quadrant splitting. It needs no block size: some level of the
// recursion fits each level of the cache hierarchy.
func TransposeCacheOblivious(src, dst []float32, n int) {
	t := newObliviousTransposer(src, dst, n)
	t.recurse(frame{size: n}, ObliviousBaseSize)
}

// TransposeCacheObliviousParallel runs the four top-level quadrants of
// TransposeCacheOblivious as concurrent tasks, at most pool.NumWorkers() at
// a time, and waits for them before fixing up an odd last row and column.
// Below the top level the recursion is serial.
func TransposeCacheObliviousParallel(pool *workerpool.Pool, src, dst []float32, n int) {
	t := newObliviousTransposer(src, dst, n)
	root := frame{size: n}
	if root.size <= ObliviousParallelBaseSize {
		t.base(root)
		return
	}

	var g errgroup.Group
	g.SetLimit(numThreads(pool))
	for _, q := range root.quadrants() {
		g.Go(func() error {
			t.recurse(q, ObliviousBaseSize)
			return nil
		})
	}
	_ = g.Wait()

	t.fixOddEdge(root)
}

func (t *obliviousTransposer) recurse(f frame, baseSize int) {
	if f.size <= baseSize {
		t.base(f)
		return
	}
	for _, q := range f.quadrants() {
		t.recurse(q, baseSize)
	}
	t.fixOddEdge(f)
}

// base transposes a frame directly: 4x4 kernel tiles when the size is a
// multiple of 4, element-wise otherwise.
func (t *obliviousTransposer) base(f frame) {
	if f.size%4 != 0 {
		transposeRange(t.src, t.dst, t.n, f.rowOff, f.rowOff+f.size, f.colOff, f.colOff+f.size)
		return
	}

	// Odd splits above this frame can leave it off the 16-byte grid.
	aligned := t.aligned && f.rowOff%4 == 0 && f.colOff%4 == 0
	for row := f.rowOff; row < f.rowOff+f.size; row += 4 {
		for col := f.colOff; col < f.colOff+f.size; col += 4 {
			if aligned {
				t.k.Transpose4x4Aligned(t.src, t.dst, row, col, t.n)
			} else {
				t.k.Transpose4x4Unaligned(t.src, t.dst, row, col, t.n)
			}
		}
	}
}

// fixOddEdge transposes the last row and column of an odd-sized frame,
// which halving leaves out of all four quadrants.
func (t *obliviousTransposer) fixOddEdge(f frame) {
	if f.size&1 == 0 {
		return
	}
	n, last := t.n, f.size-1
	for i := 0; i < f.size; i++ {
		t.dst[(f.colOff+last)*n+f.rowOff+i] = t.src[(f.rowOff+i)*n+f.colOff+last]
		t.dst[(f.colOff+i)*n+f.rowOff+last] = t.src[(f.rowOff+last)*n+f.colOff+i]
	}
}

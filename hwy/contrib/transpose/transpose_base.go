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

import "github.com/ajroetker/go-transpose/hwy"

// TransposeNaive writes the transpose of the n×n matrix src into dst,
// one element at a time in row-major read order.
func TransposeNaive(src, dst []float32, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst[col*n+row] = src[row*n+col]
		}
	}
}

// Block is a square tile with top-left element (Row, Col). Tiles on the
// last row or column of the grid are clipped to the matrix order.
type Block struct {
	Row, Col, Edge int
}

// Bounds returns the exclusive row and column ends of b inside an n×n matrix.
func (b Block) Bounds(n int) (rowEnd, colEnd int) {
	return min(b.Row+b.Edge, n), min(b.Col+b.Edge, n)
}

// Clipped reports whether b extends past the border of an n×n matrix.
func (b Block) Clipped(n int) bool {
	return b.Row+b.Edge > n || b.Col+b.Edge > n
}

// kernelMode selects how a block is copied.
type kernelMode int

const (
	elementWise kernelMode = iota
	vectorUnaligned
	vectorAligned
)

// blockMode picks the copy mode for tiles of the given edge: the 4x4 kernel
// when edge is a multiple of 4, with aligned loads when both buffers start
// on a 16-byte boundary and n keeps every row on one.
func blockMode(src, dst []float32, n, edge int) kernelMode {
	if edge%4 != 0 {
		return elementWise
	}
	if buffersAligned(src, dst, n) {
		return vectorAligned
	}
	return vectorUnaligned
}

func buffersAligned(src, dst []float32, n int) bool {
	return n%4 == 0 &&
		hwy.IsAligned(src, hwy.VectorAlignment) &&
		hwy.IsAligned(dst, hwy.VectorAlignment)
}

// transposeBlock copies the transpose of one tile. Clipped tiles are always
// copied element-wise.
func transposeBlock(k Kernel, src, dst []float32, n int, b Block, mode kernelMode) {
	rowEnd, colEnd := b.Bounds(n)
	if mode == elementWise || b.Clipped(n) {
		transposeRange(src, dst, n, b.Row, rowEnd, b.Col, colEnd)
		return
	}

	for row := b.Row; row < rowEnd; row += 4 {
		for col := b.Col; col < colEnd; col += 4 {
			if mode == vectorAligned {
				k.Transpose4x4Aligned(src, dst, row, col, n)
			} else {
				k.Transpose4x4Unaligned(src, dst, row, col, n)
			}
		}
	}
}

// transposeRange copies rows [rowStart, rowEnd) × cols [colStart, colEnd)
// of src to the transposed position in dst.
func transposeRange(src, dst []float32, n, rowStart, rowEnd, colStart, colEnd int) {
	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			dst[col*n+row] = src[row*n+col]
		}
	}
}

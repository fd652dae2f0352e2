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

import "github.com/ajroetker/go-transpose/hwy/contrib/workerpool"

// CheckSymmetricNaive reports whether m[r][c] == m[c][r] for every r < c,
// scanning the strict upper triangle row by row and stopping at the first
// mismatch.
func CheckSymmetricNaive(m []float32, n int) bool {
	for row := 0; row < n; row++ {
		for col := row + 1; col < n; col++ {
			if m[row*n+col] != m[col*n+row] {
				return false
			}
		}
	}
	return true
}

// CheckSymmetricBlocked is CheckSymmetricNaive over BlockSize(n) tiles on
// and above the diagonal, so the mirrored reads stay within a few cache
// lines. It stops at the first tile holding a mismatch.
func CheckSymmetricBlocked(m []float32, n int) bool {
	edge := BlockSize(n)
	for row := 0; row < n; row += edge {
		for col := row; col < n; col += edge {
			if countBlockMismatches(m, n, Block{Row: row, Col: col, Edge: edge}) != 0 {
				return false
			}
		}
	}
	return true
}

// CheckSymmetricParallel spreads the upper-triangular tiles over pool and
// reports whether no mismatch was found. Unlike the serial checks it always
// scans the whole triangle.
func CheckSymmetricParallel(pool *workerpool.Pool, m []float32, n int) bool {
	return CountAsymmetric(pool, m, n) == 0
}

// CountAsymmetric returns the number of pairs r < c with m[r][c] != m[c][r].
// Each worker counts mismatches in its tiles privately; the partial counts
// are summed after the join.
func CountAsymmetric(pool *workerpool.Pool, m []float32, n int) int64 {
	edge := BlockSize(n)
	tiles := (n + edge - 1) / edge

	var count int64
	withPool(pool, func(p *workerpool.Pool) {
		count = p.ParallelForReduce(tiles*tiles, func(i int) int64 {
			tr, tc := i/tiles, i%tiles
			if tc < tr {
				// Below the diagonal: covered by its mirror tile.
				return 0
			}
			return countBlockMismatches(m, n, Block{Row: tr * edge, Col: tc * edge, Edge: edge})
		})
	})
	return count
}

// countBlockMismatches compares the strict-upper-triangle part of b with
// its mirror.
func countBlockMismatches(m []float32, n int, b Block) int64 {
	rowEnd, colEnd := b.Bounds(n)
	var count int64
	for row := b.Row; row < rowEnd; row++ {
		for col := max(b.Col, row+1); col < colEnd; col++ {
			if m[row*n+col] != m[col*n+row] {
				count++
			}
		}
	}
	return count
}

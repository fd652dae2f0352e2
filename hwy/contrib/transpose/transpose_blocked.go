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

// TransposeBlocked transposes the n×n matrix src into dst tile by tile, with
// the tile edge from BlockSize(n).
func TransposeBlocked(src, dst []float32, n int) {
	TransposeBlockedEdge(src, dst, n, BlockSize(n))
}

// TransposeBlockedEdge transposes src into dst in edge×edge tiles. Tiles use
// the 4x4 kernel when edge is a multiple of 4 (aligned loads when both
// buffers allow it) and an element-wise copy otherwise. An edge that does
// not divide n leaves clipped tiles on the border, which are copied
// element-wise.
func TransposeBlockedEdge(src, dst []float32, n, edge int) {
	edge = max(edge, 1)
	mode := blockMode(src, dst, n, edge)
	k := kernel

	for row := 0; row < n; row += edge {
		for col := 0; col < n; col += edge {
			transposeBlock(k, src, dst, n, Block{Row: row, Col: col, Edge: edge}, mode)
		}
	}
}

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
	"unsafe"

	"github.com/ajroetker/go-transpose/hwy"
)

// elementSize is the size in bytes of a matrix element.
const elementSize = int(unsafe.Sizeof(float32(0)))

// ComputeBlockSize returns the tile edge used by the blocked strategies for
// a matrix of order n: the largest divisor of n not above
// (cacheLineBytes/4) * 1.5.
//
// With 64-byte lines the bound is 24, so n=4096 gives 16 and n=96 gives 24.
// A prime n larger than the bound gives 1, which degrades the blocked
// transpose to an element-wise loop; results stay correct.
func ComputeBlockSize(n, cacheLineBytes int) int {
	upperBound := int(float32(cacheLineBytes/elementSize) * 1.5)

	edge := 1
	for candidate := 1; candidate <= n && candidate <= upperBound; candidate++ {
		if n%candidate == 0 {
			edge = candidate
		}
	}
	return edge
}

// BlockSize returns ComputeBlockSize for the cache line size of this platform.
func BlockSize(n int) int {
	return ComputeBlockSize(n, hwy.CacheLineSize())
}

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

// Package transpose provides transposition and symmetry checks for dense,
// square, row-major float32 matrices.
//
// A matrix of order n is a []float32 holding at least n*n elements, with
// element (r, c) at index r*n+c. Source and destination never alias.
//
// # Strategies
//
//   - [TransposeNaive]: element-by-element, row-major reads.
//   - [TransposeBlocked]: square tiles sized by [ComputeBlockSize] from the
//     cache line size, transposed with the 4x4 vector kernel when the tile
//     edge is a multiple of 4.
//   - [TransposeBlockedParallel]: the tile grid spread over a worker pool.
//   - [TransposeCacheOblivious]: recursive quadrant split down to 32×32.
//   - [TransposeCacheObliviousParallel]: the four top-level quadrants run as
//     concurrent tasks.
//   - [TransposeDispatch]: picks one of the above from the matrix order.
//
// # Vector kernel
//
// Every vectorized path bottoms out in a 4x4 in-register transpose. On
// amd64 with SSE4.1 it is the shufps/blendps kernel from hwy/asm, on arm64
// the NEON zip kernel; elsewhere, with the noasm tag, or with HWY_NO_SIMD
// set, a portable kernel with the same lane contract is used.
//
// # Preconditions
//
// There is no validation layer: n > 0, len(src), len(dst) >= n*n and
// disjoint buffers are the caller's responsibility. Results are
// deterministic and bit-identical across strategies.
//
// # Parallelism
//
// Parallel entry points take a [workerpool.Pool]; its worker count is the
// thread count for that call. A nil pool uses GOMAXPROCS workers for the
// duration of the call.
package transpose

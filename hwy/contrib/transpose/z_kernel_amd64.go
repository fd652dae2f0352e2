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

//go:build !noasm && amd64

package transpose

import (
	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/asm"
)

type sseKernel struct{}

func (sseKernel) Name() string { return "sse4" }

func (sseKernel) Transpose4x4Unaligned(src, dst []float32, row, col, n int) {
	asm.Transpose4x4SSE(src[row*n+col:], dst[col*n+row:], n)
}

func (sseKernel) Transpose4x4Aligned(src, dst []float32, row, col, n int) {
	asm.Transpose4x4SSEAligned(src[row*n+col:], dst[col*n+row:], n)
}

func init() {
	// blendps needs SSE4.1; HWY_NO_SIMD leaves the portable kernel in place.
	if hwy.HasVector4x4() {
		kernel = sseKernel{}
	}
}

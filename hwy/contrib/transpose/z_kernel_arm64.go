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

//go:build !noasm && arm64

package transpose

import (
	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/asm"
)

type neonKernel struct{}

func (neonKernel) Name() string { return "neon" }

func (neonKernel) Transpose4x4Unaligned(src, dst []float32, row, col, n int) {
	asm.Transpose4x4NEON(src[row*n+col:], dst[col*n+row:], n)
}

// NEON ld1/st1 have no aligned form; both entry points share one kernel.
func (neonKernel) Transpose4x4Aligned(src, dst []float32, row, col, n int) {
	asm.Transpose4x4NEON(src[row*n+col:], dst[col*n+row:], n)
}

func init() {
	if hwy.HasVector4x4() {
		kernel = neonKernel{}
	}
}

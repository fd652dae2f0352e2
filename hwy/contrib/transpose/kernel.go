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

// Kernel transposes fixed 4x4 sub-blocks of an n-wide row-major matrix.
//
// Both methods read the block whose top-left element is src[row*n+col] and
// write its transpose to the block whose top-left element is
// dst[col*n+row]. Transpose4x4Aligned may assume that both of those
// addresses and every row start (n*4 bytes apart) are 16-byte aligned; an
// implementation is free to fault when they are not.
type Kernel interface {
	// Name identifies the implementation ("scalar", "sse4", "neon").
	Name() string

	// Transpose4x4Unaligned uses loads and stores without alignment requirements.
	Transpose4x4Unaligned(src, dst []float32, row, col, n int)

	// Transpose4x4Aligned uses aligned loads and stores.
	Transpose4x4Aligned(src, dst []float32, row, col, n int)
}

// kernel is the active 4x4 kernel. Overridden in z_kernel_*.go init().
var kernel Kernel = scalarKernel{}

// CurrentKernel returns the 4x4 kernel selected for this CPU.
func CurrentKernel() Kernel {
	return kernel
}

// ScalarKernel returns the portable kernel. It follows the same shuffle and
// blend sequence as the SSE kernel on hwy.Float32x4 values.
func ScalarKernel() Kernel {
	return scalarKernel{}
}

// Transpose4x4Unaligned transposes one 4x4 block with the current kernel.
func Transpose4x4Unaligned(src, dst []float32, row, col, n int) {
	kernel.Transpose4x4Unaligned(src, dst, row, col, n)
}

// Transpose4x4Aligned transposes one 4x4 block with the current kernel
// using aligned loads. See [Kernel] for the alignment contract.
func Transpose4x4Aligned(src, dst []float32, row, col, n int) {
	kernel.Transpose4x4Aligned(src, dst, row, col, n)
}

// Shuffle immediates for output column k: lanes 0,1 come from rows 0/1 and
// lanes 2,3 from rows 2/3, then blending the odd lanes of the second
// shuffle yields [r0[k], r1[k], r2[k], r3[k]].
var (
	shuffleRows02 = [4]uint8{0x00, 0x11, 0x22, 0x33}
	shuffleRows13 = [4]uint8{0x00, 0x44, 0x88, 0xCC}
)

const blendOddLanes = 0b1010

type scalarKernel struct{}

func (scalarKernel) Name() string { return "scalar" }

func (scalarKernel) Transpose4x4Unaligned(src, dst []float32, row, col, n int) {
	transpose4x4Portable(src, dst, row, col, n)
}

// Portable loads have no alignment requirement.
func (scalarKernel) Transpose4x4Aligned(src, dst []float32, row, col, n int) {
	transpose4x4Portable(src, dst, row, col, n)
}

func transpose4x4Portable(src, dst []float32, row, col, n int) {
	s := row*n + col
	r0 := hwy.LoadFloat32x4Slice(src[s:])
	r1 := hwy.LoadFloat32x4Slice(src[s+n:])
	r2 := hwy.LoadFloat32x4Slice(src[s+2*n:])
	r3 := hwy.LoadFloat32x4Slice(src[s+3*n:])

	d := col*n + row
	for k := range 4 {
		a := r0.Shuffle(r2, shuffleRows02[k])
		b := r1.Shuffle(r3, shuffleRows13[k])
		a.Blend(b, blendOddLanes).StoreSlice(dst[d+k*n:])
	}
}

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

// NEON 4x4 float32 transpose for ARM64.
// Two rounds of ZIP1/ZIP2: rows (0,2) and (1,3) first, then the halves.
package asm

import "unsafe"

// Transpose4x4NEON transposes the 4x4 block whose top-left element is src[0]
// into the block whose top-left element is dst[0]. stride is the row length
// of both matrices in elements. NEON loads have no alignment requirement, so
// this serves both the aligned and unaligned kernel entry points.
func Transpose4x4NEON(src, dst []float32, stride int) {
	_ = src[3*stride+3]
	_ = dst[3*stride+3]
	transpose4x4_neon(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), uintptr(stride)*4)
}

//go:noescape
func transpose4x4_neon(src, dst unsafe.Pointer, stride uintptr)

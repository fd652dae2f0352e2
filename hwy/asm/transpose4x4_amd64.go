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

// SSE4.1 4x4 float32 transpose for AMD64.
// Uses shufps to gather one column from alternating row pairs and blendps
// to merge the pairs, so each output register holds one source column.
package asm

import "unsafe"

// Transpose4x4SSE transposes the 4x4 block whose top-left element is src[0]
// into the block whose top-left element is dst[0]. stride is the row length
// of both matrices in elements. Unaligned loads and stores are used.
func Transpose4x4SSE(src, dst []float32, stride int) {
	_ = src[3*stride+3]
	_ = dst[3*stride+3]
	transpose4x4_sse_unaligned(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), uintptr(stride)*4)
}

// Transpose4x4SSEAligned is Transpose4x4SSE with aligned loads and stores.
// Both &src[0] and &dst[0] must be 16-byte aligned, and stride must keep
// every row aligned; otherwise the process faults.
func Transpose4x4SSEAligned(src, dst []float32, stride int) {
	_ = src[3*stride+3]
	_ = dst[3*stride+3]
	transpose4x4_sse_aligned(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), uintptr(stride)*4)
}

//go:noescape
func transpose4x4_sse_unaligned(src, dst unsafe.Pointer, stride uintptr)

//go:noescape
func transpose4x4_sse_aligned(src, dst unsafe.Pointer, stride uintptr)

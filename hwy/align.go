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

package hwy

import "unsafe"

// VectorAlignment is the byte boundary required by aligned 128-bit loads
// and stores (movaps).
const VectorAlignment = 16

// IsAligned reports whether the first element of s starts on an
// align-byte boundary. An empty slice is never aligned. align must be a
// power of two.
func IsAligned[T Lanes](s []T, align int) bool {
	if len(s) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&s[0]))&uintptr(align-1) == 0
}

// AlignedSlice allocates a zeroed slice of n elements whose first element
// starts on an align-byte boundary. align must be a power of two and a
// multiple of the element size.
func AlignedSlice[T Lanes](n, align int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	pad := align / size
	buf := make([]T, n+pad)
	off := 0
	for off < pad && !IsAligned(buf[off:], align) {
		off++
	}
	return buf[off : off+n : off+n]
}

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

// This file provides a portable 128-bit float32 vector with the lane
// semantics of the x86 shufps/blendps/unpcklps/unpckhps instructions.
// It backs the scalar 4x4 transpose kernel, so the shuffle pattern used by
// the vector kernels can be expressed (and tested) without assembly.

// Float32x4 is a 128-bit vector of 4 float32 lanes held by value.
type Float32x4 [4]float32

// LoadFloat32x4Slice loads 4 consecutive float32 values from s.
func LoadFloat32x4Slice(s []float32) Float32x4 {
	_ = s[3]
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// StoreSlice writes the 4 lanes of v into dst.
func (v Float32x4) StoreSlice(dst []float32) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Shuffle selects lanes 0,1 from v and lanes 2,3 from b, each by a 2-bit
// field of imm (low bits first), like shufps.
//
//	Shuffle(b, imm) = [v[imm&3], v[imm>>2&3], b[imm>>4&3], b[imm>>6&3]]
func (v Float32x4) Shuffle(b Float32x4, imm uint8) Float32x4 {
	return Float32x4{v[imm&3], v[imm>>2&3], b[imm>>4&3], b[imm>>6&3]}
}

// Blend takes lane i from b when bit i of mask is set and from v otherwise,
// like blendps. Only the low 4 bits of mask are used.
func (v Float32x4) Blend(b Float32x4, mask uint8) Float32x4 {
	r := v
	for i := range 4 {
		if mask&(1<<i) != 0 {
			r[i] = b[i]
		}
	}
	return r
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func (v Float32x4) InterleaveLower(b Float32x4) Float32x4 {
	return Float32x4{v[0], b[0], v[1], b[1]}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func (v Float32x4) InterleaveUpper(b Float32x4) Float32x4 {
	return Float32x4{v[2], b[2], v[3], b[3]}
}

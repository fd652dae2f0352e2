// Package hwy holds the hardware-facing pieces shared by the transpose
// engine: runtime SIMD level detection, the cache line size probe, a
// portable 128-bit float32 vector with shufps/blendps lane semantics, and
// alignment helpers for buffers handed to aligned vector loads.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-transpose/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.CacheLineSize())
//
//	buf := hwy.AlignedSlice[float32](n*n, hwy.VectorAlignment)
//
// Set HWY_NO_SIMD=1 to force the scalar paths.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

//go:build noasm || !amd64

package asm

// Stub implementations for non-AMD64 or noasm builds.
// These should never be called - the transpose package uses the portable
// kernel when no SSE4.1 kernel is available.

func Transpose4x4SSE(src, dst []float32, stride int)        { panic("SSE4.1 not available") }
func Transpose4x4SSEAligned(src, dst []float32, stride int) { panic("SSE4.1 not available") }

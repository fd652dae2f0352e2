//go:build noasm || !arm64

package asm

func Transpose4x4NEON(src, dst []float32, stride int) { panic("NEON not available") }

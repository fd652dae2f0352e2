package hwy

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultCacheLineSize is the cache line size assumed when the platform
// does not report one.
const DefaultCacheLineSize = 64

// CacheLineSize returns the L1 data cache line size in bytes for the
// target architecture, as padded by golang.org/x/sys/cpu.
func CacheLineSize() int {
	if n := int(unsafe.Sizeof(cpu.CacheLinePad{})); n > 0 {
		return n
	}
	return DefaultCacheLineSize
}

package transpose

import (
	"math/rand"
	"testing"
)

// sequential returns the n×n matrix with element (r, c) = r*n+c.
func sequential(n int) []float32 {
	m := make([]float32, n*n)
	for i := range m {
		m[i] = float32(i)
	}
	return m
}

func randomMatrix(n int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	m := make([]float32, n*n)
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	return m
}

func symmetricMatrix(n int, seed int64) []float32 {
	m := randomMatrix(n, seed)
	for r := range n {
		for c := r + 1; c < n; c++ {
			m[c*n+r] = m[r*n+c]
		}
	}
	return m
}

func reference(src []float32, n int) []float32 {
	dst := make([]float32, n*n)
	for r := range n {
		for c := range n {
			dst[c*n+r] = src[r*n+c]
		}
	}
	return dst
}

// kernels returns the portable kernel and, when it differs, the kernel
// selected for this CPU.
func kernels() []Kernel {
	ks := []Kernel{ScalarKernel()}
	if k := CurrentKernel(); k.Name() != ks[0].Name() {
		ks = append(ks, k)
	}
	return ks
}

// useKernel installs k as the active kernel for the rest of the test.
func useKernel(t testing.TB, k Kernel) {
	t.Helper()
	prev := kernel
	kernel = k
	t.Cleanup(func() { kernel = prev })
}

// strategyFuncs lists every transpose entry point, serial ones adapted to
// the pool signature.
var strategyFuncs = []struct {
	name string
	fn   transposeFunc
}{
	{"Naive", strategyTable[Naive]},
	{"Blocked", strategyTable[Blocked]},
	{"BlockedParallel", TransposeBlockedParallel},
	{"CacheOblivious", strategyTable[CacheOblivious]},
	{"CacheObliviousParallel", TransposeCacheObliviousParallel},
	{"Dispatch", TransposeDispatch},
}

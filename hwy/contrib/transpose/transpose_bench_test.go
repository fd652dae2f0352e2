package transpose

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

var benchSizes = []int{64, 255, 256, 1024, 2048}

func BenchmarkTranspose(b *testing.B) {
	b.Logf("Dispatch level: %s, kernel: %s", hwy.CurrentName(), CurrentKernel().Name())
	pool := workerpool.New(0)
	defer pool.Close()

	for _, n := range benchSizes {
		src := randomMatrix(n, 1)
		dst := make([]float32, n*n)
		for _, s := range strategyFuncs {
			b.Run(fmt.Sprintf("%s/%d", s.name, n), func(b *testing.B) {
				b.SetBytes(int64(2 * n * n * elementSize))
				for b.Loop() {
					s.fn(pool, src, dst, n)
				}
			})
		}
	}
}

func BenchmarkTransposeScalarKernel(b *testing.B) {
	useKernel(b, ScalarKernel())
	const n = 1024
	src := randomMatrix(n, 1)
	dst := make([]float32, n*n)
	b.SetBytes(int64(2 * n * n * elementSize))
	for b.Loop() {
		TransposeBlocked(src, dst, n)
	}
}

func BenchmarkCheckSymmetric(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, n := range []int{256, 2048} {
		m := symmetricMatrix(n, 1)
		b.Run(fmt.Sprintf("Naive/%d", n), func(b *testing.B) {
			for b.Loop() {
				CheckSymmetricNaive(m, n)
			}
		})
		b.Run(fmt.Sprintf("Blocked/%d", n), func(b *testing.B) {
			for b.Loop() {
				CheckSymmetricBlocked(m, n)
			}
		})
		b.Run(fmt.Sprintf("Parallel/%d", n), func(b *testing.B) {
			for b.Loop() {
				CheckSymmetricParallel(pool, m, n)
			}
		})
	}
}

package transpose

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
	"github.com/stretchr/testify/require"
)

type symmetryCheck struct {
	name string
	fn   func(pool *workerpool.Pool, m []float32, n int) bool
}

var symmetryChecks = []symmetryCheck{
	{"Naive", func(_ *workerpool.Pool, m []float32, n int) bool { return CheckSymmetricNaive(m, n) }},
	{"Blocked", func(_ *workerpool.Pool, m []float32, n int) bool { return CheckSymmetricBlocked(m, n) }},
	{"Parallel", CheckSymmetricParallel},
}

func TestCheckSymmetric(t *testing.T) {
	tests := []struct {
		name string
		m    []float32
		n    int
		want bool
	}{
		{"single", []float32{42}, 1, true},
		{"symmetric3", []float32{1, 2, 3, 2, 5, 6, 3, 6, 9}, 3, true},
		{"mismatch01", []float32{1, 2, 3, 9, 5, 6, 3, 6, 9}, 3, false},
		{"diagonalOnly", []float32{1, 0, 0, 2}, 2, true},
	}

	pool := workerpool.New(4)
	defer pool.Close()

	for _, tt := range tests {
		for _, c := range symmetryChecks {
			t.Run(tt.name+"/"+c.name, func(t *testing.T) {
				require.Equal(t, tt.want, c.fn(pool, tt.m, tt.n))
			})
		}
	}
}

func TestCheckSymmetricAgreement(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range testSizes {
		sym := symmetricMatrix(n, int64(n))
		for _, c := range symmetryChecks {
			require.True(t, c.fn(pool, sym, n), "%s n=%d symmetric", c.name, n)
		}
		require.Zero(t, CountAsymmetric(pool, sym, n))

		if n == 1 {
			continue
		}
		// Break symmetry at the last element of the upper triangle, which
		// sits in the last tile scanned.
		asym := append([]float32(nil), sym...)
		asym[(n-2)*n+n-1] += 1
		for _, c := range symmetryChecks {
			require.False(t, c.fn(pool, asym, n), "%s n=%d asymmetric", c.name, n)
		}
		require.Equal(t, int64(1), CountAsymmetric(pool, asym, n))
	}
}

func TestCheckSymmetricTransposeIdentity(t *testing.T) {
	// M + Mᵀ is symmetric; a random M is not.
	for _, n := range []int{5, 33, 66, 128} {
		m := randomMatrix(n, 9)
		mt := make([]float32, n*n)
		TransposeDispatch(nil, m, mt, n)

		sum := make([]float32, n*n)
		for i := range sum {
			sum[i] = m[i] + mt[i]
		}
		require.True(t, CheckSymmetricBlocked(sum, n), "n=%d", n)
		require.True(t, CheckSymmetricParallel(nil, sum, n), "n=%d", n)
		require.False(t, CheckSymmetricNaive(m, n), "n=%d", n)
	}
}

func TestCountAsymmetric(t *testing.T) {
	const n = 40
	m := symmetricMatrix(n, 3)
	// Perturb the upper triangle at 10 distinct pairs spread over tiles.
	for i := range 10 {
		r, c := i, n-1-i
		m[r*n+c] += 1
	}
	for _, workers := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			workerpool.With(workers, func(p *workerpool.Pool) {
				require.Equal(t, int64(10), CountAsymmetric(p, m, n))
				require.False(t, CheckSymmetricParallel(p, m, n))
			})
		})
	}
	require.False(t, CheckSymmetricNaive(m, n))
	require.False(t, CheckSymmetricBlocked(m, n))
}

func TestCheckSymmetricPrimeOrder(t *testing.T) {
	// BlockSize is 1 for a prime order; the blocked check degrades to one
	// element per tile.
	const n = 67
	m := symmetricMatrix(n, 4)
	require.True(t, CheckSymmetricBlocked(m, n))
	m[3*n+60] = -5
	require.False(t, CheckSymmetricBlocked(m, n))
	require.Equal(t, int64(1), CountAsymmetric(nil, m, n))
}

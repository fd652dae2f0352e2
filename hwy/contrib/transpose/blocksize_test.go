package transpose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBlockSize(t *testing.T) {
	tests := []struct {
		n, lineBytes, want int
	}{
		{1, 64, 1},
		{4, 64, 4},
		{6, 64, 6},
		{24, 64, 24},
		{66, 64, 22},
		{67, 64, 1},
		{96, 64, 24},
		{100, 64, 20},
		{512, 64, 16},
		{513, 64, 19},
		{4096, 64, 16},
		{4096, 128, 32},
		{4096, 32, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d/line=%d", tt.n, tt.lineBytes), func(t *testing.T) {
			require.Equal(t, tt.want, ComputeBlockSize(tt.n, tt.lineBytes))
		})
	}
}

func TestComputeBlockSizeDivides(t *testing.T) {
	for _, lineBytes := range []int{32, 64, 128} {
		bound := int(float32(lineBytes/4) * 1.5)
		for n := 1; n <= 1024; n++ {
			edge := ComputeBlockSize(n, lineBytes)
			require.GreaterOrEqual(t, edge, 1, "n=%d", n)
			require.LessOrEqual(t, edge, min(n, bound), "n=%d", n)
			require.Zero(t, n%edge, "n=%d edge=%d", n, edge)

			// Largest admissible divisor.
			for d := edge + 1; d <= min(n, bound); d++ {
				require.NotZero(t, n%d, "n=%d: %d divides and beats %d", n, d, edge)
			}
		}
	}
}

func TestComputeBlockSizePowerOfTwo(t *testing.T) {
	for shift := 0; shift <= 16; shift++ {
		n := 1 << shift
		edge := ComputeBlockSize(n, 64)
		require.True(t, isPowerOfTwo(edge), "n=%d edge=%d", n, edge)
		require.Equal(t, min(n, 16), edge, "n=%d", n)
	}
}

func TestComputeBlockSizePrime(t *testing.T) {
	for _, p := range []int{29, 31, 67, 101, 4099} {
		require.Equal(t, 1, ComputeBlockSize(p, 64), "n=%d", p)
	}
}

func TestBlockSizeUsesCacheLine(t *testing.T) {
	for _, n := range []int{6, 66, 512, 4096} {
		edge := BlockSize(n)
		require.Zero(t, n%edge)
		require.GreaterOrEqual(t, edge, 1)
	}
}

//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures fall back to scalar mode and the portable kernel.
	setScalarMode()
}

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/contrib/transpose"
	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

var errMismatch = errors.New("result differs from naive")

// benchmark runs fn repeat times and returns the average wall time per run
// together with the last result.
func benchmark[T any](repeat int, fn func() T) (T, time.Duration) {
	var ret T
	start := time.Now()
	for range repeat {
		ret = fn()
	}
	return ret, time.Since(start) / time.Duration(repeat)
}

func report(w io.Writer, name string, avg time.Duration, repeat int) {
	fmt.Fprintf(w, "%-28s took %12.3f ms (avg of %d)\n", name, float64(avg.Nanoseconds())/1e6, repeat)
}

// run generates the matrix described by opts, times the symmetry checks and
// the selected strategies, and returns an error wrapping errMismatch for
// every result that disagrees with the naive one.
func run(w io.Writer, opts *options, strategies []transpose.Strategy) error {
	n := opts.order
	pool := workerpool.New(opts.threads)
	defer pool.Close()

	log := hwy.Logger()
	log.Info("starting",
		"n", n,
		"threads", pool.NumWorkers(),
		"seed", opts.seed,
		"simd", hwy.CurrentName(),
		"kernel", transpose.CurrentKernel().Name(),
		"blockSize", transpose.BlockSize(n))

	m := newRandomMatrix(pool, n, opts.seed)
	if opts.symmetric {
		symmetrize(pool, m, n)
	}

	bytes := int64(n) * int64(n) * 4
	fmt.Fprintf(w, "Testing for %d rows and columns\n", n)
	fmt.Fprintf(w, "Which means %d elements\n", int64(n)*int64(n))
	fmt.Fprintf(w, "For a total %.3f GB\n", float64(bytes)/1e9)

	var errs []error

	// Symmetry checks.
	isSym, avg := benchmark(1, func() bool { return transpose.CheckSymmetricNaive(m, n) })
	report(w, "symmetric/naive", avg, 1)
	if isSym {
		fmt.Fprintln(w, "Matrix is symmetric")
	} else {
		fmt.Fprintln(w, "Matrix is not symmetric")
	}
	checks := []struct {
		name string
		fn   func() bool
	}{
		{"symmetric/blocked", func() bool { return transpose.CheckSymmetricBlocked(m, n) }},
		{"symmetric/parallel", func() bool { return transpose.CheckSymmetricParallel(pool, m, n) }},
	}
	for _, c := range checks {
		got, avg := benchmark(opts.repeat, c.fn)
		report(w, c.name, avg, opts.repeat)
		if got != isSym {
			errs = append(errs, fmt.Errorf("%s returned %v: %w", c.name, got, errMismatch))
		}
	}

	// Transposes, each checked against the naive result.
	ref := newMatrix(pool, n)
	_, avg = benchmark(1, func() struct{} {
		transpose.TransposeNaive(m, ref, n)
		return struct{}{}
	})
	report(w, "transpose/naive (reference)", avg, 1)

	dst := newMatrix(pool, n)
	for _, s := range strategies {
		clear(dst)
		_, avg = benchmark(opts.repeat, func() struct{} {
			transpose.Run(s, pool, m, dst, n)
			return struct{}{}
		})
		report(w, "transpose/"+s.String(), avg, opts.repeat)
		if err := verify(ref, dst, n); err != nil {
			errs = append(errs, fmt.Errorf("transpose/%s: %w", s, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Error("verification failed", "err", err)
		return err
	}
	log.Info("all results verified", "strategies", len(strategies))
	return nil
}

// verify compares got with want and reports the first differing element.
func verify(want, got []float32, n int) error {
	for i := range n * n {
		if got[i] != want[i] {
			return fmt.Errorf("element (%d,%d) = %v, want %v: %w", i/n, i%n, got[i], want[i], errMismatch)
		}
	}
	return nil
}

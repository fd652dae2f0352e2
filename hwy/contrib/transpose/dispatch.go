// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package transpose

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/contrib/workerpool"
)

// Strategy names a transpose implementation.
type Strategy int

const (
	Naive Strategy = iota
	Blocked
	BlockedParallel
	CacheOblivious
	CacheObliviousParallel

	numStrategies
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown transpose strategy")

var strategyNames = [numStrategies]string{
	Naive:                  "naive",
	Blocked:                "blocked",
	BlockedParallel:        "blocked-parallel",
	CacheOblivious:         "oblivious",
	CacheObliviousParallel: "oblivious-parallel",
}

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Parallel reports whether s uses a worker pool.
func (s Strategy) Parallel() bool {
	return s == BlockedParallel || s == CacheObliviousParallel
}

// ParseStrategy maps a name such as "blocked" or "oblivious-parallel" back
// to its Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, sName := range strategyNames {
		if name == sName {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	all := make([]Strategy, numStrategies)
	for s := range all {
		all[s] = Strategy(s)
	}
	return all
}

// LargeMatrixOrder is the order from which Select picks a parallel strategy.
const LargeMatrixOrder = 512

// transposeFunc is the common signature of every strategy. Serial
// strategies ignore the pool.
type transposeFunc func(pool *workerpool.Pool, src, dst []float32, n int)

var strategyTable = [numStrategies]transposeFunc{
	Naive: func(_ *workerpool.Pool, src, dst []float32, n int) {
		TransposeNaive(src, dst, n)
	},
	Blocked: func(_ *workerpool.Pool, src, dst []float32, n int) {
		TransposeBlocked(src, dst, n)
	},
	BlockedParallel: TransposeBlockedParallel,
	CacheOblivious: func(_ *workerpool.Pool, src, dst []float32, n int) {
		TransposeCacheOblivious(src, dst, n)
	},
	CacheObliviousParallel: TransposeCacheObliviousParallel,
}

// selectTable is indexed by (large << 1) | powerOfTwo.
var selectTable = [4]Strategy{
	Blocked,
	CacheOblivious,
	BlockedParallel,
	CacheObliviousParallel,
}

// Select picks a strategy from the matrix order alone: parallel for orders
// of at least LargeMatrixOrder, cache-oblivious for powers of two (where the
// recursion halves evenly) and blocked otherwise.
func Select(n int) Strategy {
	idx := 0
	if n >= LargeMatrixOrder {
		idx |= 2
	}
	if isPowerOfTwo(n) {
		idx |= 1
	}
	return selectTable[idx]
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// Run transposes src into dst with strategy s. It panics if s is not one
// of the declared strategies.
func Run(s Strategy, pool *workerpool.Pool, src, dst []float32, n int) {
	if s < 0 || s >= numStrategies {
		panic(fmt.Sprintf("transpose: invalid strategy %d", int(s)))
	}
	hwy.Logger().Debug("transpose",
		"strategy", s.String(),
		"n", n,
		"kernel", kernel.Name())
	strategyTable[s](pool, src, dst, n)
}

// TransposeDispatch transposes src into dst with the strategy Select picks
// for n.
func TransposeDispatch(pool *workerpool.Pool, src, dst []float32, n int) {
	Run(Select(n), pool, src, dst, n)
}

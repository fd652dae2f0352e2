// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xpose benchmarks and cross-checks the transpose strategies and
// symmetry checks on a random square float32 matrix.
//
// Usage:
//
//	xpose                                  # n=4096, every strategy
//	xpose -n 1000 -t 8 -s blocked,oblivious-parallel -r 100
//	xpose -n 513 -s auto --symmetric --log-level debug
//
// Every strategy's output is compared with the naive transpose and every
// symmetry check with the naive check; any disagreement makes the command
// exit with a non-zero status.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package fuzzlegacy is a dvyukov/go-fuzz-style harness over ParseSymbols.
// go-fuzz itself has been superseded in this module by native
// `go test -fuzz` (see FuzzParseSymbols); this harness is kept for anyone
// still running the external corpus-based fuzzer against a vendored
// checkout.
package fuzzlegacy

import "github.com/saferwall/linkmap"

// Fuzz is the entry point go-fuzz looks for. It returns 1 when data parsed
// as a link map produced at least one symbol, -1 when it parsed but the
// input is uninteresting (no symbols), and 0 on any parse error so the
// fuzzer deprioritizes that input.
func Fuzz(data []byte) int {
	syms, err := linkmap.ParseSymbols(string(data))
	if err != nil {
		return 0
	}
	if len(syms) == 0 {
		return -1
	}
	return 1
}

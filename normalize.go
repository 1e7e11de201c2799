// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import (
	"regexp"
	"strings"
)

// promotedGlobalDemangledRegex matches the parenthesized form LLVM emits for
// a demangled promoted global, e.g. "foo (.llvm.1234)" or
// "foo (.1.llvm.1234)".
var promotedGlobalDemangledRegex = regexp.MustCompile(` \((\.\d+)?\.llvm\.\d+\)$`)

// promotedGlobalRawRegex matches the bare mangled form, e.g.
// "_ZN3fooE.llvm.1234" or "_ZN3fooE.1.llvm.1234".
var promotedGlobalRawRegex = regexp.MustCompile(`(\.\d+)?\.llvm\.\d+$`)

// stringLiteralName is the sentinel name used for merged ".L.str*" string
// literal symbols.
const stringLiteralName = "string literal"

// stripLlvmPromotedGlobalNames removes the trailing ".llvm.<hash>" suffix
// (and the optional numeric disambiguator before it) that LLVM appends when
// it promotes a local/static global to external linkage. It handles both
// the bare-mangled form and the parenthesized demangled form.
func stripLlvmPromotedGlobalNames(name string) string {
	if !strings.Contains(name, ".llvm.") {
		return name
	}
	if strings.HasSuffix(name, ")") {
		return promotedGlobalDemangledRegex.ReplaceAllString(name, "")
	}
	return promotedGlobalRawRegex.ReplaceAllString(name, "")
}

// normalizeName applies the remaining (non-LLVM-suffix) name rewrites:
// collapsing merged string-literal pool symbols to a fixed sentinel, and
// trimming the " (.cfi)" suffix some control-flow-integrity thunks carry.
func normalizeName(name string) string {
	if strings.HasPrefix(name, ".L.str") {
		return stringLiteralName
	}
	if strings.HasSuffix(name, " (.cfi)") {
		return name[:len(name)-len(" (.cfi)")]
	}
	return name
}

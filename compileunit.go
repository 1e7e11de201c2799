// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import (
	"regexp"
	"strings"
)

// Regexes for TransformCompileUnit, tried in order; the first match wins.
// Comments show a representative compile_unit value each rule targets.
var (
	// ./exe.unstripped/component_manager.alloc-54127f36ba192482.alloc.4k1iwrm2-cgu.0.rcgu.o.rcgu.o
	libraryCrateRegex = regexp.MustCompile(`/[a-zA-Z0-9_]+\.[a-zA-Z0-9_-]+\.([a-zA-Z0-9_]+)\.[a-zA-Z0-9-]+.*\.rcgu\.o$`)

	// ./exe.unstripped/component_manager.component_manager.7rcbfp3g-cgu.0.rcgu.o
	binCrateRegex = regexp.MustCompile(`/[a-zA-Z0-9_-]+\.([a-zA-Z0-9_]+)\.[a-zA-Z0-9-]+.*\.rcgu\.o$`)

	// foobar.rlib(libregex_syntax-....regex_syntax.c02sfxfu-cgu.13.rcgu.o)
	rlibCrateRegex = regexp.MustCompile(`rlib\([a-zA-Z_\-0-9]+\.([a-zA-Z0-9_]+)\.[a-zA-Z0-9-]+.*\.rcgu\.o\)$`)

	// .../out/default.zircon/user-arm64-clang.shlib/obj/system/ulib/c/crt1.Scrt1.cc.o
	zirconLibRegex       = regexp.MustCompile(`/out/[a-zA-Z0-9_-]+\.zircon/.*/obj/system/ulib/(.*)\.o$`)
	zirconLibPrefixRegex = regexp.MustCompile(`/[a-zA-Z0-9\-_]+\.([a-zA-Z0-9\-_]+\.(cc|c))$`)

	// obj/out/default/fidling/gen/sdk/fidl/.../x.fidl.tables.c.o
	fidlingRegex       = regexp.MustCompile(`^obj/out/.*/fidling/gen/(.*)\.o$`)
	fidlingPrefixRegex = regexp.MustCompile(`[a-zA-Z0-9\-.]+_[a-zA-Z0-9\-_]+\.([a-zA-Z0-9\-.]+\.(c|cc))$`)

	// obj/zircon/public/lib/fidl_base/libfidl_base.a(libfidl_base.decoding.cc.o)
	zirconFidlLibRegex = regexp.MustCompile(`^obj/zircon/public/lib/fidl_base/libfidl_base\.a\(libfidl_base\.(.*)\.cc\.o\)$`)
)

const ringCompatPrefix = "obj/third_party/rust_crates/compat/ring/libring-core.a"

// crateResult builds the "[crate: X]" canonical form shared by every
// Rust-crate rule.
func crateResult(crate string) (string, string, bool) {
	return "[crate: " + crate + "]", crate, true
}

// TransformCompileUnit normalizes a raw compile-unit path into a canonical
// form for the Fuchsia build layout: Rust crate tags, generated FIDL
// bindings, and Zircon library member paths. It is a pure textual rewrite;
// rules are tried in a fixed order and the first match wins. ok is false
// when no rule matches, in which case path should be used unchanged by the
// caller.
func TransformCompileUnit(path string) (canonical string, crate string, ok bool) {
	if m := libraryCrateRegex.FindStringSubmatch(path); m != nil {
		return crateResult(m[1])
	}
	if m := binCrateRegex.FindStringSubmatch(path); m != nil {
		return crateResult(m[1])
	}
	if m := rlibCrateRegex.FindStringSubmatch(path); m != nil {
		return crateResult(m[1])
	}
	if m := zirconLibRegex.FindStringSubmatch(path); m != nil {
		ccPath := m[1]
		if zirconLibPrefixRegex.MatchString(ccPath) {
			ccPath = zirconLibPrefixRegex.ReplaceAllString(ccPath, "/$1")
			return "../../zircon/system/ulib/" + ccPath, "", true
		}
	}
	if m := fidlingRegex.FindStringSubmatch(path); m != nil {
		ccPath := m[1]
		if fidlingPrefixRegex.MatchString(ccPath) {
			ccPath = fidlingPrefixRegex.ReplaceAllString(ccPath, "$1")
			return "fidling/gen/" + ccPath, "", true
		}
	}
	if m := zirconFidlLibRegex.FindStringSubmatch(path); m != nil {
		return "../../zircon/system/ulib/fidl/" + m[1] + ".cc", "", true
	}
	if strings.HasPrefix(path, ringCompatPrefix) {
		return crateResult("ring")
	}
	return "", "", false
}

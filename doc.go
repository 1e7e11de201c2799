// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package linkmap parses linker map files emitted by LLD in its "v1"
// human-readable format.
//
// A map file is a three-level indentation-structured text stream:
//
//	     VMA      LMA     Size Align Out     In      Symbol
//	     194      194       13     1 .interp
//	     194      194       13     1         <internal>:(.interp)
//	     1a8      1a8     22d8     4 .ARM.exidx
//	     1b0      1b0        8     4         obj/sandbox/syscall.o:(.ARM.exidx)
//	     400      400   123400    64 .text
//	     600      600       14     4         ...:(.text.OUTLINED_FUNCTION_0)
//	     600      600        0     1                 $x.3
//	     600      600       14     1                 OUTLINED_FUNCTION_0
//	  123800   123800    20000   256 .rodata
//	  123800   123800       4      4         ...:o:(.rodata._ZN3fooE.llvm.1234)
//	  123800   123800       4      1                 foo (.llvm.1234)
//
// Level 1 lines (no indentation) name a section. Level 2 lines (8 spaces of
// indentation) name an object file and the section-local symbol or chunk
// within it. Level 3 lines (16 spaces) name the individual symbol, and may
// be missing entirely for chunks that were never split further by the
// linker.
//
// ParseSymbols walks this structure and returns a flat list of Symbol
// values; ParseSections returns only the Level 1 rows. TransformCompileUnit
// is a separate, pure string rewrite applied to the compile_unit field of a
// Symbol to normalize known build-system path shapes.
package linkmap

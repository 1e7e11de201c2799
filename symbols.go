// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import (
	"strings"
)

// Symbol is a single resolved symbol extracted from a map file.
type Symbol struct {
	Name        string
	CompileUnit string
	Section     string
	Addr        uint64
	Size        uint64
}

// jumpTableSymbolName is the synthetic name given to a CFI jump table's
// Level 2 record; its Level 3 descendants are never turned into symbols.
const jumpTableSymbolName = "** CFI jump table"

// mergeStringsSymbolName is the synthetic name given to the <internal>
// string-literal pool within .rodata.
const mergeStringsSymbolName = "** lld merge strings"

// internalObject is the pseudo-object path the linker uses for synthesized
// data that has no originating object file (merge pools, thunks, ...).
const internalObject = "<internal>"

// builderState carries everything the symbol builder needs across Tokens.
// It is reset fresh for every call to ParseSymbols.
type builderState struct {
	cfg config

	curSection      string
	sectionIsUseful bool
	mangledStartIdx int
	inPartitions    bool

	curObject        string
	isPartial        bool
	nextUsableAddr   uint64
	inJumpTable      bool
	jumpTablesCount  uint64
	jumpEntriesCount uint64
	promotedCount    uint64

	syms []Symbol
}

// ParseSymbols parses content as an lld v1 link map and returns the symbol
// list described in the package doc: one entry per named Level 2 chunk or
// Level 3 symbol that falls within a "useful" section, in input order.
func ParseSymbols(content string, opts ...Option) ([]Symbol, error) {
	cfg := newConfig(opts...)

	_, rest, firstLine, err := splitHeader(content)
	if err != nil {
		return nil, err
	}

	b := &builderState{cfg: cfg}
	recordCount := 0
	truncated := false
	err = tokenize(rest, firstLine, func(tok Token) error {
		recordCount++
		if cfg.maxRecords > 0 && recordCount > cfg.maxRecords {
			truncated = true
			return nil
		}
		return b.handle(tok)
	})
	if err != nil {
		return nil, err
	}
	if truncated {
		cfg.logger.Warnf("truncated after %d records (max %d)", cfg.maxRecords, cfg.maxRecords)
	}

	if b.promotedCount > 0 {
		cfg.logger.Debugf("Found %d promoted global names", b.promotedCount)
	}
	if b.jumpTablesCount > 0 {
		cfg.logger.Debugf("Found %d CFI jump tables with %d total entries",
			b.jumpTablesCount, b.jumpEntriesCount)
	}
	return b.syms, nil
}

func (b *builderState) handle(tok Token) error {
	switch tok.Level {
	case Level1:
		b.handleLevel1(tok)
	case Level2:
		if b.sectionIsUseful {
			return b.handleLevel2(tok)
		}
	case Level3:
		if b.sectionIsUseful {
			return b.handleLevel3(tok)
		}
	}
	return nil
}

func (b *builderState) handleLevel1(tok Token) {
	name := tok.Tok
	if strings.HasSuffix(name, "_partition") {
		b.inPartitions = true
	} else if name == SectionPartEnd {
		b.inPartitions = false
	}

	if b.inPartitions {
		b.curSection = ""
		b.sectionIsUseful = false
		return
	}
	b.curSection = name
	b.mangledStartIdx = len(name) + 1
	b.sectionIsUseful = usefulSection(name) || b.cfg.extraUsefulSections[name]
}

func (b *builderState) handleLevel2(tok Token) error {
	object, paren, ok := splitLevel2Object(tok.Tok)
	if !ok {
		return parseErr(ErrLevel2Mismatch, 0, tok.Line)
	}
	b.curObject = object

	if strings.Contains(paren, ".L.cfi.jumptable") {
		b.jumpTablesCount++
		b.inJumpTable = true
		b.curObject = ""
		b.syms = append(b.syms, Symbol{
			Name:    jumpTableSymbolName,
			Section: b.curSection,
			Addr:    tok.Address,
			Size:    tok.Size,
		})
		b.nextUsableAddr = tok.Address
		return nil
	}
	b.inJumpTable = false

	mangledName := ""
	if len(paren) >= b.mangledStartIdx {
		mangledName = paren[b.mangledStartIdx:]
	}
	b.isPartial = true

	switch {
	case b.curObject == internalObject:
		if b.curSection == SectionRodata && mangledName == "" {
			mangledName = mergeStringsSymbolName
		} else {
			mangledName = "** " + mangledName
		}
		b.isPartial = false
		b.curObject = ""
	case b.curObject == "lto.tmp" || strings.Contains(b.curObject, "thinlto-cache"):
		b.curObject = ""
	}

	b.syms = append(b.syms, Symbol{
		Name:        mangledName,
		CompileUnit: b.curObject,
		Section:     b.curSection,
		Addr:        tok.Address,
		Size:        tok.Size,
	})
	// Level 3 children live inside this range, so next_usable_address does
	// not include the Level 2 record's own size.
	b.nextUsableAddr = tok.Address
	return nil
}

func (b *builderState) handleLevel3(tok Token) error {
	if b.inJumpTable {
		if !strings.HasPrefix(tok.Tok, "__typeid_") {
			b.jumpEntriesCount++
		}
		return nil
	}
	if strings.HasPrefix(tok.Tok, ".L_MergedGlobals") {
		return nil
	}
	if tok.Span == nil || *tok.Span == 0 {
		return nil
	}

	name := tok.Tok
	stripped := stripLlvmPromotedGlobalNames(name)
	if stripped != name {
		b.promotedCount++
		name = stripped
	}
	name = normalizeName(name)

	last := len(b.syms) - 1

	if b.isPartial && last >= 0 && b.syms[last].Addr < tok.Address {
		b.syms[last].Size = tok.Address - b.syms[last].Addr
		b.nextUsableAddr = tok.Address
		b.isPartial = false
	}

	if b.isPartial {
		size := tok.Size
		if size == 0 {
			size = minUint64(b.syms[last].Size, *tok.Span)
		}
		b.syms[last].Name = name
		b.syms[last].Size = size
		b.nextUsableAddr = tok.Address + size
		b.isPartial = false
		return nil
	}

	if tok.Address < b.nextUsableAddr {
		return nil
	}

	var size uint64
	switch {
	case strings.HasPrefix(name, "__typeid_") && strings.HasSuffix(name, "_byte_array"):
		if tok.Size != 1 {
			return parseErr(ErrTypeidByteArraySize, 0, tok.Line)
		}
		size = *tok.Span
	case strings.HasPrefix(name, "__typeid_"):
		b.cfg.logger.Warnf("Unrecognized __typeid_ symbol at %#x", tok.Address)
		return nil
	default:
		size = tok.Size
		if size == 0 {
			size = *tok.Span
		}
	}

	b.syms = append(b.syms, Symbol{
		Name:        name,
		CompileUnit: b.curObject,
		Section:     b.curSection,
		Addr:        tok.Address,
		Size:        size,
	})
	b.nextUsableAddr = tok.Address + size
	return nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

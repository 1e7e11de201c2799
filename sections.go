// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "strings"

// Section names recognized as "useful" by the symbol builder (see
// usefulSection). Kept as named constants for callers that want to
// recognize these section names without pulling in the whole builder.
const (
	SectionBSS        = ".bss"
	SectionBSSRelRo   = ".bss.rel.ro"
	SectionData       = ".data"
	SectionPartEnd    = ".part.end"
	SectionRodata     = ".rodata"
	SectionText       = ".text"
	sectionDataPrefix = ".data"

	// SectionMultiple is never produced by this parser; it is the
	// original's sentinel value for a symbol group that spans more than
	// one section, kept here only so downstream aggregation code that
	// groups bloaty-style output has a name to compare against.
	SectionMultiple = ".*"

	// The remaining constants name sections the original vocabulary knows
	// about but that usefulSection does not treat as useful. They are not
	// referenced by the symbol builder; they exist so callers built
	// against the wider bloaty section vocabulary can still name them.
	SectionDex              = ".dex"
	SectionDexMethod        = ".dex.method"
	SectionOther            = ".other"
	SectionPakNontranslated = ".pak.nontranslated"
	SectionPakTranslations  = ".pak.translations"
)

// Section is a single Level 1 record: a named region of the output binary
// with a start address and a byte size.
type Section struct {
	Name string
	Addr uint64
	Size uint64
}

// ParseSections parses content as an lld v1 link map and returns every
// Level 1 ("Out" column) record, in input order. Unlike ParseSymbols it
// applies no "useful section" filtering: every section header line in the
// map becomes a Section.
func ParseSections(content string) ([]Section, error) {
	header, rest, lineNum, err := splitHeader(content)
	if err != nil {
		return nil, err
	}
	_ = header

	var sections []Section
	err = tokenize(rest, lineNum, func(tok Token) error {
		if tok.Level != Level1 {
			return nil
		}
		sections = append(sections, Section{
			Name: tok.Tok,
			Addr: tok.Address,
			Size: tok.Size,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// usefulSection reports whether a Level 1 section name is one the symbol
// builder descends into: exactly .bss, .bss.rel.ro, .part.end, .rodata,
// .text, or anything starting with .data.
func usefulSection(name string) bool {
	switch name {
	case SectionBSS, SectionBSSRelRo, SectionPartEnd, SectionRodata, SectionText:
		return true
	}
	return strings.HasPrefix(name, sectionDataPrefix)
}

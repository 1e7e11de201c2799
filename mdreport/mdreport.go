// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package mdreport renders parsed symbols and sections as a Markdown table,
// for pasting into bug-tracker comments or PR descriptions.
package mdreport

import (
	"fmt"
	"strings"

	"github.com/saferwall/linkmap"
	"github.com/yuin/goldmark"
)

// Symbols renders syms as a Markdown table. Before returning, it parses its
// own output with goldmark and returns an error if that fails, so a caller
// never ships malformed Markdown.
func Symbols(syms []linkmap.Symbol) (string, error) {
	var b strings.Builder
	b.WriteString("| Address | Size | Section | Name | Compile Unit |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, s := range syms {
		fmt.Fprintf(&b, "| 0x%x | 0x%x | %s | %s | %s |\n",
			s.Addr, s.Size, escapeCell(s.Section), escapeCell(s.Name), escapeCell(s.CompileUnit))
	}
	return validate(b.String())
}

// Sections renders sections as a Markdown table, with the same
// self-validation as Symbols.
func Sections(sections []linkmap.Section) (string, error) {
	var b strings.Builder
	b.WriteString("| Address | Size | Name |\n")
	b.WriteString("|---|---|---|\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "| 0x%x | 0x%x | %s |\n", s.Addr, s.Size, escapeCell(s.Name))
	}
	return validate(b.String())
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func validate(doc string) (string, error) {
	var discard strings.Builder
	if err := goldmark.Convert([]byte(doc), &discard); err != nil {
		return "", fmt.Errorf("mdreport: rendered markdown failed to parse: %w", err)
	}
	return doc, nil
}

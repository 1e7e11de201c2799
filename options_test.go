// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c := newConfig()
	if c.logger == nil {
		t.Fatal("default config has a nil logger")
	}
	if c.maxRecords != 0 {
		t.Errorf("default maxRecords = %d, want 0 (unbounded)", c.maxRecords)
	}
	if len(c.extraUsefulSections) != 0 {
		t.Errorf("default extraUsefulSections = %v, want empty", c.extraUsefulSections)
	}
}

func TestWithMaxRecords(t *testing.T) {
	c := newConfig(WithMaxRecords(5))
	if c.maxRecords != 5 {
		t.Errorf("maxRecords = %d, want 5", c.maxRecords)
	}
}

func TestWithExtraUsefulSections(t *testing.T) {
	c := newConfig(WithExtraUsefulSections(".custom", ".another"))
	if !c.extraUsefulSections[".custom"] || !c.extraUsefulSections[".another"] {
		t.Errorf("extraUsefulSections = %v, want both names set", c.extraUsefulSections)
	}
	if len(c.extraUsefulSections) != 2 {
		t.Errorf("got %d entries, want 2", len(c.extraUsefulSections))
	}
}

func TestWithMaxRecordsLimitsParsedSymbols(t *testing.T) {
	content := "     VMA      LMA     Size Align Out     In      Symbol\n" +
		"     400      400      100    64 .text\n" +
		"     600      600       10     4         obj.o:(.text.first)\n" +
		"     600      600       10     1                 first\n" +
		"     700      700       10     4         obj.o:(.text.second)\n" +
		"     700      700       10     1                 second\n"
	syms, err := ParseSymbols(content, WithMaxRecords(1))
	if err != nil {
		t.Fatalf("ParseSymbols failed: %v", err)
	}
	if len(syms) > 1 {
		t.Errorf("got %d symbols with WithMaxRecords(1), want at most 1: %+v", len(syms), syms)
	}
}

func TestWithExtraUsefulSectionsExtendsBuilder(t *testing.T) {
	content := "     VMA      LMA     Size Align Out     In      Symbol\n" +
		"     400      400      100    64 .custom\n" +
		"     600      600       10     4         obj.o:(.custom.sym)\n" +
		"     600      600       10     1                 sym\n"

	withoutOpt, err := ParseSymbols(content)
	if err != nil {
		t.Fatalf("ParseSymbols failed: %v", err)
	}
	if len(withoutOpt) != 0 {
		t.Fatalf("expected .custom to be filtered out by default, got %+v", withoutOpt)
	}

	withOpt, err := ParseSymbols(content, WithExtraUsefulSections(".custom"))
	if err != nil {
		t.Fatalf("ParseSymbols failed: %v", err)
	}
	if len(withOpt) != 1 || withOpt[0].Name != "sym" {
		t.Fatalf("got %+v, want a single \"sym\" symbol once .custom is allow-listed", withOpt)
	}
}

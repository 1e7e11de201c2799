// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "testing"

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"     VMA      LMA     Size Align Out     In      Symbol", true},
		{"VMA LMA Size Align Out In Symbol", true},
		{"", false},
		{"not a header", false},
		{"     VMA      LMA     Size Align Out     In", false},
	}
	for _, tt := range tests {
		if got := matchHeader(tt.line); got != tt.want {
			t.Errorf("matchHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLexBodyLine(t *testing.T) {
	line := "     600      600       14     4         obj.o:(.text.foo)"
	raw, ok := lexBodyLine(line, 7)
	if !ok {
		t.Fatalf("lexBodyLine(%q) failed to match", line)
	}
	if raw.lma != 0x600 {
		t.Errorf("lma = %#x, want 0x600", raw.lma)
	}
	if raw.size != 0x14 {
		t.Errorf("size = %#x, want 0x14", raw.size)
	}
	if raw.indent != 8 {
		t.Errorf("indent = %d, want 8", raw.indent)
	}
	if raw.tok != "obj.o:(.text.foo)" {
		t.Errorf("tok = %q, want %q", raw.tok, "obj.o:(.text.foo)")
	}
	if raw.lineNum != 7 {
		t.Errorf("lineNum = %d, want 7", raw.lineNum)
	}
}

func TestLexBodyLineRejectsNonBodyLines(t *testing.T) {
	for _, line := range []string{"", "     VMA      LMA     Size Align Out     In      Symbol", "garbage"} {
		if _, ok := lexBodyLine(line, 1); ok {
			t.Errorf("lexBodyLine(%q) unexpectedly matched", line)
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		indent    int
		wantLevel int
		wantOK    bool
	}{
		{0, 1, true},
		{7, 1, true},
		{8, 2, true},
		{15, 2, true},
		{16, 3, true},
		{23, 3, true},
		{24, 4, false},
		{32, 5, false},
	}
	for _, tt := range tests {
		level, ok := levelOf(tt.indent)
		if ok != tt.wantOK {
			t.Errorf("levelOf(%d) ok = %v, want %v", tt.indent, ok, tt.wantOK)
			continue
		}
		if ok && level != tt.wantLevel {
			t.Errorf("levelOf(%d) = %d, want %d", tt.indent, level, tt.wantLevel)
		}
	}
}

func TestSplitLevel2Object(t *testing.T) {
	tests := []struct {
		tok        string
		wantObject string
		wantParen  string
		wantOK     bool
	}{
		{"obj.o:(.text.foo)", "obj.o", ".text.foo", true},
		{"<internal>:(.rodata)", "<internal>", ".rodata", true},
		{"obj.o:(.rodata..L.cfi.jumptable)", "obj.o", ".rodata..L.cfi.jumptable", true},
		{"malformed", "", "", false},
	}
	for _, tt := range tests {
		object, paren, ok := splitLevel2Object(tt.tok)
		if ok != tt.wantOK {
			t.Errorf("splitLevel2Object(%q) ok = %v, want %v", tt.tok, ok, tt.wantOK)
			continue
		}
		if ok && (object != tt.wantObject || paren != tt.wantParen) {
			t.Errorf("splitLevel2Object(%q) = (%q, %q), want (%q, %q)",
				tt.tok, object, paren, tt.wantObject, tt.wantParen)
		}
	}
}

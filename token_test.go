// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "testing"

func TestParseArmAnnotation(t *testing.T) {
	tests := []struct {
		tok         string
		wantIsAnno  bool
		wantThumb   bool
		wantSetMode bool
	}{
		{"$t", true, true, true},
		{"$t.1", true, true, true},
		{"$a", true, false, true},
		{"$a.2", true, false, true},
		{"$d", true, false, false},
		{"$d.3", true, false, false},
		{"$x.0", true, false, false},
		{"foo", false, false, false},
		{"$", false, false, false},
		{"$tfoo", false, false, false},
	}
	for _, tt := range tests {
		isAnno, thumb, setMode := parseArmAnnotation(tt.tok)
		if isAnno != tt.wantIsAnno || thumb != tt.wantThumb || setMode != tt.wantSetMode {
			t.Errorf("parseArmAnnotation(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tt.tok, isAnno, thumb, setMode, tt.wantIsAnno, tt.wantThumb, tt.wantSetMode)
		}
	}
}

func collectTokens(t *testing.T, lines []string) []Token {
	t.Helper()
	var toks []Token
	if err := tokenize(lines, 1, func(tok Token) error {
		toks = append(toks, tok)
		return nil
	}); err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	return toks
}

func TestTokenizeEmpty(t *testing.T) {
	toks := collectTokens(t, nil)
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0", len(toks))
	}
}

func TestTokenizeSpanToNextLevel3(t *testing.T) {
	lines := []string{
		"     400      400      100    64 .text",
		"     600      600       30     4         obj.o:(.text.multi)",
		"     600      600        0     1                 first",
		"     620      620       10     1                 second",
	}
	toks := collectTokens(t, lines)
	var level3 []Token
	for _, tok := range toks {
		if tok.Level == Level3 {
			level3 = append(level3, tok)
		}
	}
	if len(level3) != 2 {
		t.Fatalf("got %d level-3 tokens, want 2: %+v", len(level3), level3)
	}
	if *level3[0].Span != 0x20 {
		t.Errorf("first level-3 span = %#x, want 0x20 (distance to \"second\")", *level3[0].Span)
	}
	// last level-3 record in a level-2 group spans to the level-2 end.
	if *level3[1].Span != 0x10 {
		t.Errorf("second level-3 span = %#x, want 0x10 (distance to level-2 end)", *level3[1].Span)
	}
}

func TestTokenizeAnnotationNotEmitted(t *testing.T) {
	lines := []string{
		"     400      400      800    64 .text",
		"     600      600       14     4         obj.o:(.text.foo)",
		"     600      600        0     1                 $t",
		"     601      601       14     1                 foo",
	}
	toks := collectTokens(t, lines)
	for _, tok := range toks {
		if tok.Level == Level3 && tok.Tok == "$t" {
			t.Fatalf("annotation token was emitted: %+v", tok)
		}
	}
}

func TestTokenizeThumbClearsLowBit(t *testing.T) {
	lines := []string{
		"     400      400      800    64 .text",
		"     600      600       14     4         obj.o:(.text.foo)",
		"     600      600        0     1                 $t",
		"     601      601       14     1                 foo",
	}
	toks := collectTokens(t, lines)
	for _, tok := range toks {
		if tok.Level == Level3 && tok.Tok == "foo" {
			if tok.Address != 0x600 {
				t.Errorf("got address %#x, want 0x600 (bit 0 cleared by thumb mode)", tok.Address)
			}
			return
		}
	}
	t.Fatal("symbol \"foo\" not found in token stream")
}

func TestTokenizeThumbModeResetsOnNonLevel3(t *testing.T) {
	lines := []string{
		"     400      400      800    64 .text",
		"     600      600       14     4         obj.o:(.text.foo)",
		"     600      600        0     1                 $t",
		"     601      601        8     1                 odd_addr_symbol",
		"     700      700      100    64 .rodata",
		"     701      701       10     4         obj.o:(.rodata.bar)",
		"     701      701       10     1                 odd_after_reset",
	}
	toks := collectTokens(t, lines)
	var addrs = map[string]uint64{}
	for _, tok := range toks {
		if tok.Level == Level3 {
			addrs[tok.Tok] = tok.Address
		}
	}
	if addrs["odd_addr_symbol"] != 0x600 {
		t.Errorf("odd_addr_symbol address = %#x, want 0x600", addrs["odd_addr_symbol"])
	}
	if addrs["odd_after_reset"] != 0x701 {
		t.Errorf("odd_after_reset address = %#x, want 0x701 (thumb mode reset by intervening records)",
			addrs["odd_after_reset"])
	}
}

func TestTokenizeIllegalLevel(t *testing.T) {
	lines := []string{
		"     400      400      100    64 .text",
		"     600      600       14     1                                 foo",
	}
	err := tokenize(lines, 1, func(Token) error { return nil })
	if err == nil {
		t.Fatal("expected error for over-deep indentation")
	}
}

func TestTokenizeIllegalNesting(t *testing.T) {
	lines := []string{
		"     400      400      100    64 .text",
		"     600      600       14     1                 foo",
	}
	err := tokenize(lines, 1, func(Token) error { return nil })
	if err == nil {
		t.Fatal("expected error for level-3 record with no level-2 parent")
	}
}

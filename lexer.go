// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import (
	"regexp"
	"strconv"
)

// headerLineRegex matches the lld v1 column header. Only whitespace is
// allowed before and between column names; this is intentionally loose
// about exact spacing since real map files right-align the numeric columns
// with varying amounts of padding.
//
//	     VMA      LMA     Size Align Out     In      Symbol
var headerLineRegex = regexp.MustCompile(`^\s*VMA\s+LMA\s+Size\s+Align\s+Out\s+In\s+Symbol\s*$`)

// bodyLineRegex matches a single data line of the map file.
//
//	     194      194       13     1 .interp
//
// Capture groups: (1) LMA hex, (2) size hex, (3) align decimal (unused,
// kept only to anchor the match), (4) the run of indentation spaces that
// encodes nesting level, (5) the remainder of the line (the token).
var bodyLineRegex = regexp.MustCompile(`^\s*[0-9a-f]+\s+([0-9a-f]+)\s+([0-9a-f]+)\s+(\d+) ( *)(.*)$`)

// level2ParenRegex splits a Level 2 token of the form "object:(section)".
var level2ParenRegex = regexp.MustCompile(`^(.*):\((.*)\)$`)

// rawLine is a successfully lexed body line, before level/span annotation.
type rawLine struct {
	lma     uint64
	size    uint64
	indent  int // length of the indentation run, in spaces
	tok     string
	lineNum int
	text    string
}

// matchHeader reports whether line is a valid lld v1 column header.
func matchHeader(line string) bool {
	return headerLineRegex.MatchString(line)
}

// lexBodyLine attempts to parse line as a body record. ok is false when the
// line does not match the body shape at all, which callers treat as a
// tolerated blank/comment line rather than an error.
func lexBodyLine(line string, lineNum int) (rawLine, bool) {
	m := bodyLineRegex.FindStringSubmatch(line)
	if m == nil {
		return rawLine{}, false
	}
	lma, err := strconv.ParseUint(m[1], 16, 64)
	if err != nil {
		return rawLine{}, false
	}
	size, err := strconv.ParseUint(m[2], 16, 64)
	if err != nil {
		return rawLine{}, false
	}
	return rawLine{
		lma:     lma,
		size:    size,
		indent:  len(m[4]),
		tok:     m[5],
		lineNum: lineNum,
		text:    line,
	}, true
}

// levelOf derives the 1/2/3 nesting level from an indentation run length.
func levelOf(indent int) (int, bool) {
	level := indent/8 + 1
	if level < 1 || level > 3 {
		return 0, false
	}
	return level, true
}

// splitLevel2Object splits a Level 2 token "object:(paren)" into its object
// path and parenthesized contents.
func splitLevel2Object(tok string) (object, paren string, ok bool) {
	m := level2ParenRegex.FindStringSubmatch(tok)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

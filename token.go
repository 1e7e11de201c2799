// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "strings"

// Level identifies the nesting depth of a Token, inferred from the
// indentation of its source line: 1 for a section, 2 for an object/member,
// 3 for a symbol.
type Level int

const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
)

// Token is one annotated record of the body of a map file, emitted by
// tokenize with a one-line lookahead already resolved into Span.
type Token struct {
	Line    string
	Address uint64
	Size    uint64
	Level   Level
	Span    *uint64 // only set for Level 3 tokens
	Tok     string
}

// sentinelLine is appended to the real input so the last real record's span
// can be computed against something. Its fields never collide with a real
// address, matching the approach used upstream.
const sentinelLine = "0 0 0 0 THE_END"

// parseArmAnnotation classifies a Level 3 token as an ARM/Thumb mode
// annotation ("$t", "$a", "$d.1", ...). Annotations of the form "$t..." ask
// the caller to enter Thumb mode; "$a..." asks for ARM32 mode; any other
// annotation ("$d", "$x.3", ...) leaves the mode unchanged but is still
// never emitted as a symbol.
func parseArmAnnotation(tok string) (isAnnotation bool, thumb bool, setMode bool) {
	if !strings.HasPrefix(tok, "$") {
		return false, false, false
	}
	if len(tok) != 2 && !(len(tok) > 2 && tok[2] == '.') {
		return false, false, false
	}
	switch {
	case strings.HasPrefix(tok, "$t"):
		return true, true, true
	case strings.HasPrefix(tok, "$a"):
		return true, false, true
	default:
		return true, false, false
	}
}

// tokenize scans the body lines of a map file (everything after the header)
// and invokes emit once per real Level 1/2/3 record, in input order, with
// Span already computed for Level 3 records.
//
// Lines that don't match the body line shape are silently dropped, which
// tolerates blank lines and stray comments. An internal sentinel record is
// processed after the real input so the last record's span can be resolved.
func tokenize(lines []string, firstLineNum int, emit func(Token) error) error {
	if _, ok := lexBodyLine(sentinelLine, 0); !ok {
		return parseErr(ErrSentinelInvalid, 0, sentinelLine)
	}

	var (
		level2EndAddress uint64
		thumbMode        bool
		havePending      bool
		pending          rawLine
		pendingLevel     = 1 // seed so an immediate Level 3 row is rejected
	)

	process := func(next rawLine, matched bool) error {
		if !matched {
			return nil
		}
		level, valid := levelOf(next.indent)
		if !valid {
			return parseErr(ErrIllegalLevel, next.lineNum, next.text)
		}

		if level == 3 {
			if pendingLevel != 2 && pendingLevel != 3 {
				return parseErr(ErrIllegalNesting, next.lineNum, next.text)
			}
			isAnno, thumb, setMode := parseArmAnnotation(next.tok)
			if isAnno {
				if setMode {
					thumbMode = thumb
				}
				return nil
			}
			if thumbMode {
				next.lma &^= 1
			}
		} else {
			thumbMode = false
		}

		if havePending {
			var span *uint64
			switch pendingLevel {
			case 3:
				s := next.lma
				if level != 3 {
					s = level2EndAddress
				}
				s -= pending.lma
				span = &s
			case 2:
				level2EndAddress = pending.lma + pending.size
			}
			if err := emit(Token{
				Line:    pending.text,
				Address: pending.lma,
				Size:    pending.size,
				Level:   Level(pendingLevel),
				Span:    span,
				Tok:     pending.tok,
			}); err != nil {
				return err
			}
		}

		pending = next
		pendingLevel = level
		havePending = true
		return nil
	}

	for i, line := range lines {
		raw, ok := lexBodyLine(line, firstLineNum+i)
		if err := process(raw, ok); err != nil {
			return err
		}
	}
	sentinel, ok := lexBodyLine(sentinelLine, 0)
	if err := process(sentinel, ok); err != nil {
		return err
	}
	return nil
}

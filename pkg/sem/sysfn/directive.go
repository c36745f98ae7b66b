// Copyright Verilite Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sysfn

import (
	"fmt"

	"github.com/verilite/go-verilite/pkg/logic"
)

// DirectiveKind identifies what a single parsed unit of a format string is:
// literal text, or one of the conversion specifiers.
type DirectiveKind uint8

const (
	// LITERAL is a run of ordinary text.
	LITERAL DirectiveKind = iota
	// BINARY renders an integral argument in base two.
	BINARY
	// OCTAL renders an integral argument in base eight.
	OCTAL
	// DECIMAL renders an integral argument in base ten.
	DECIMAL
	// HEX renders an integral argument in base sixteen.
	HEX
	// CHAR renders the low byte of an argument as a single character.
	CHAR
	// STR renders an argument as text.
	STR
	// REAL renders a floating-point argument.
	REAL
	// TIME renders an integral time argument in base ten.
	TIME
	// MODULE renders the hierarchical name of the enclosing scope, and
	// consumes no argument.
	MODULE
	// PERCENT renders a literal percent sign, and consumes no argument.
	PERCENT
)

// NeedsArgument checks whether this directive consumes an argument from the
// bound argument list.
func (k DirectiveKind) NeedsArgument() bool {
	switch k {
	case LITERAL, MODULE, PERCENT:
		return false
	}
	//
	return true
}

// Radix returns the rendering radix for the integral directive kinds.
func (k DirectiveKind) Radix() logic.Radix {
	switch k {
	case BINARY:
		return logic.BINARY
	case OCTAL:
		return logic.OCTAL
	case DECIMAL, TIME:
		return logic.DECIMAL
	case HEX:
		return logic.HEX
	}
	//
	panic("directive has no radix")
}

// String returns the specifier this directive kind was parsed from.
func (k DirectiveKind) String() string {
	switch k {
	case LITERAL:
		return "literal"
	case BINARY:
		return "%b"
	case OCTAL:
		return "%o"
	case DECIMAL:
		return "%d"
	case HEX:
		return "%h"
	case CHAR:
		return "%c"
	case STR:
		return "%s"
	case REAL:
		return "%f"
	case TIME:
		return "%t"
	case MODULE:
		return "%m"
	case PERCENT:
		return "%%"
	}
	//
	panic("unknown directive kind")
}

// Directive is one parsed unit of a format string: either a run of literal
// text, or a conversion specifier with its flags.  Directives are derived
// from the format text at bind time and are not part of the persistent
// symbol graph.
type Directive struct {
	Kind DirectiveKind
	// Literal text (LITERAL only).
	Text string
	// Minimum field width, or -1 when unspecified.
	Width int
	// Pad with zeroes rather than spaces.
	ZeroPad bool
	// Offset of this directive within the format text, for diagnostics.
	Offset int
}

// ParseError describes why a format string failed to parse, along with the
// offset at which it did.
type ParseError struct {
	Offset  int
	Message string
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	return fmt.Sprintf("%d: %s", p.Offset, p.Message)
}

// ParseDirectives splits a format string into its directives.  When
// isStringLiteral is set, the text is first subjected to the escape-sequence
// rules of string literals: backslash escapes are decoded and a bare
// unescaped quote is an error.  Otherwise the text is taken verbatim (it
// originated from a runtime-computed string whose escapes, if any, were
// resolved long ago).
func ParseDirectives(text string, isStringLiteral bool) ([]Directive, *ParseError) {
	if isStringLiteral {
		var err *ParseError
		//
		if text, err = decodeEscapes(text); err != nil {
			return nil, err
		}
	}
	//
	var (
		directives []Directive
		literal    []rune
		start      int
		runes      = []rune(text)
	)
	// Flush any pending literal run into the directive list.
	flush := func() {
		if len(literal) > 0 {
			directives = append(directives, Directive{LITERAL, string(literal), -1, false, start})
			literal = nil
		}
	}
	//
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			if len(literal) == 0 {
				start = i
			}
			//
			literal = append(literal, runes[i])
			//
			continue
		}
		// Parse one conversion specifier.
		flush()
		//
		directive, next, err := parseConversion(runes, i)
		//
		if err != nil {
			return nil, err
		}
		//
		directives = append(directives, directive)
		i = next
	}
	//
	flush()
	//
	return directives, nil
}

// parseConversion parses a single conversion specifier starting at the given
// percent sign, returning the directive and the index of its final rune.
func parseConversion(runes []rune, at int) (Directive, int, *ParseError) {
	var (
		i         = at + 1
		width     = -1
		zeroPad   = false
		directive = Directive{Width: -1, Offset: at}
	)
	//
	if i >= len(runes) {
		return directive, 0, &ParseError{at, "format string ends with a bare '%'"}
	}
	// Optional zero-pad flag.
	if runes[i] == '0' {
		zeroPad = true
		i++
	}
	// Optional field width.
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		if width < 0 {
			width = 0
		}
		//
		width = (width * 10) + int(runes[i]-'0')
		// Bound the width before it can overflow, or drive a pathological
		// allocation downstream.
		if width > DEFAULT_MAX_FORMAT_LENGTH {
			return directive, 0, &ParseError{at, "format field width is too large"}
		}
		//
		i++
	}
	//
	if i >= len(runes) {
		return directive, 0, &ParseError{at, "format specifier is missing its conversion"}
	}
	//
	var kind DirectiveKind
	//
	switch runes[i] {
	case 'b', 'B':
		kind = BINARY
	case 'o', 'O':
		kind = OCTAL
	case 'd', 'D':
		kind = DECIMAL
	case 'h', 'H', 'x', 'X':
		kind = HEX
	case 'c', 'C':
		kind = CHAR
	case 's', 'S':
		kind = STR
	case 'e', 'f', 'g', 'E', 'F', 'G':
		kind = REAL
	case 't', 'T':
		kind = TIME
	case 'm', 'M':
		kind = MODULE
	case '%':
		kind = PERCENT
	default:
		msg := fmt.Sprintf("unknown format specifier '%%%c'", runes[i])
		return directive, 0, &ParseError{at, msg}
	}
	//
	return Directive{kind, "", width, zeroPad, at}, i, nil
}

// decodeEscapes applies string-literal escape rules to the format text.
func decodeEscapes(text string) (string, *ParseError) {
	var (
		runes   = []rune(text)
		decoded []rune
	)
	//
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '"':
			return "", &ParseError{i, "unescaped quote in string literal"}
		case '\\':
			i++
			//
			if i >= len(runes) {
				return "", &ParseError{i - 1, "string literal ends with a bare backslash"}
			}
			//
			switch r := runes[i]; {
			case r == 'n':
				decoded = append(decoded, '\n')
			case r == 't':
				decoded = append(decoded, '\t')
			case r == '\\' || r == '"':
				decoded = append(decoded, r)
			case r >= '0' && r <= '7':
				// Up to three octal digits.
				value := 0
				//
				for n := 0; n < 3 && i < len(runes) && runes[i] >= '0' && runes[i] <= '7'; n++ {
					value = (value * 8) + int(runes[i]-'0')
					i++
				}
				//
				i--
				decoded = append(decoded, rune(value))
			default:
				msg := fmt.Sprintf("unknown escape sequence '\\%c'", r)
				return "", &ParseError{i - 1, msg}
			}
		default:
			decoded = append(decoded, runes[i])
		}
	}
	//
	return string(decoded), nil
}

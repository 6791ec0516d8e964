// rules_unicode.go: Rule Group 4 - dangerous Unicode codepoints.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var zeroWidthRunes = map[rune]bool{0x200B: true, 0x200C: true, 0x200D: true, 0xFEFF: true}
var dotHomoglyphs = map[rune]bool{0x2024: true, 0x2025: true, 0x2026: true, 0xFF0E: true, 0x3002: true}
var slashHomoglyphs = map[rune]bool{0x2044: true, 0x2215: true, 0x2571: true, 0x29F8: true, 0xFF0F: true}
var backslashHomoglyphs = map[rune]bool{0x2216: true, 0xFF3C: true}
var currencyHomoglyphs = map[rune]bool{0x00A5: true, 0x20A9: true, 0x00B4: true}

func isBidiControl(r rune) bool {
	return (r >= 0x202A && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069)
}

func isFullWidthASCII(r rune) bool {
	return r >= 0xFF01 && r <= 0xFF5E
}

// checkDangerousUnicode scans the NFC-normalised form of s codepoint by
// codepoint, rejecting on the first match of any dangerous class: this is
// the only rule that normalises before inspecting, so a homoglyph or
// combining sequence that only becomes the dangerous form after
// normalisation is still caught.
func checkDangerousUnicode(s string, _ *scanOptions) error {
	normalized := norm.NFC.String(s)
	var prev rune
	for i, r := range normalized {
		switch {
		case zeroWidthRunes[r]:
			return newRuleError(UnicodeErrorKind, "zero-width character", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case isBidiControl(r):
			return newRuleError(UnicodeErrorKind, "bidirectional control character", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case dotHomoglyphs[r]:
			return newRuleError(UnicodeErrorKind, "dot homoglyph", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case slashHomoglyphs[r]:
			return newRuleError(UnicodeErrorKind, "slash homoglyph", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case backslashHomoglyphs[r]:
			return newRuleError(UnicodeErrorKind, "backslash homoglyph", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case currencyHomoglyphs[r]:
			return newRuleError(UnicodeErrorKind, "currency homoglyph", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case isFullWidthASCII(r):
			return newRuleError(UnicodeErrorKind, "full-width ascii character", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		case r == '?' || r == '*':
			return newRuleError(UnicodeErrorKind, "wildcard character", fmt.Sprintf("%q at byte offset %d", r, i))
		case prev == '.' && unicode.Is(unicode.Mn, r):
			return newRuleError(UnicodeErrorKind, "combining mark after dot", fmt.Sprintf("U+%04X at byte offset %d", r, i))
		}
		prev = r
	}
	return nil
}

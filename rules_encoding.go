// rules_encoding.go: Rule Group 3 - percent, entity, and hex encoding attacks.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// forbiddenPercentTokens are the URL-encoded forbidden tokens from the rule
// tables that must appear verbatim in any conforming implementation.
var forbiddenPercentTokens = []string{"%2e", "%2f", "%5c", "%00", "%0a", "%0d"}

// overlongUTF8Tokens are the overlong UTF-8 percent forms from the rule
// tables.
var overlongUTF8Tokens = []string{
	"%c0%ae", "%c0%af", "%c1%9c", "%e0%80%ae", "%e0%80%af", "%f0%80%80%ae",
}

var hexEscapeTokens = []string{`\x2e`, `\x2f`, `\x5c`}

var doubleURLPattern = regexp.MustCompile(`(?i)%25[0-9a-f]{2}`)
var percentUPattern = regexp.MustCompile(`(?i)%u[0-9a-f]{4}`)
var htmlEntityPattern = regexp.MustCompile(`&#([xX][0-9a-fA-F]+|[0-9]+);`)

func checkURLPercentEncoding(s string, _ *scanOptions) error {
	lower := strings.ToLower(s)
	for _, tok := range forbiddenPercentTokens {
		if strings.Contains(lower, tok) {
			return newRuleError(EncodingErrorKind, "url percent encoding", fmt.Sprintf("contains token %s", tok))
		}
	}
	return nil
}

func checkDoubleURLEncoding(s string, _ *scanOptions) error {
	if m := doubleURLPattern.FindString(s); m != "" {
		return newRuleError(EncodingErrorKind, "double url encoding", fmt.Sprintf("contains token %s", m))
	}
	return nil
}

func checkOverlongUTF8(s string, _ *scanOptions) error {
	lower := strings.ToLower(s)
	for _, tok := range overlongUTF8Tokens {
		if strings.Contains(lower, tok) {
			return newRuleError(EncodingErrorKind, "overlong utf-8 percent form", fmt.Sprintf("contains token %s", tok))
		}
	}
	return nil
}

func checkPercentU(s string, _ *scanOptions) error {
	if m := percentUPattern.FindString(s); m != "" {
		return newRuleError(EncodingErrorKind, "unicode percent-u escape", fmt.Sprintf("contains token %s", m))
	}
	return nil
}

// checkHTMLEntity rejects &#<decimal>; or &#x<hex>; entities that decode to
// '.', '/', or '\'.
func checkHTMLEntity(s string, _ *scanOptions) error {
	for _, m := range htmlEntityPattern.FindAllStringSubmatch(s, -1) {
		raw := m[1]
		var cp int64
		var err error
		if raw[0] == 'x' || raw[0] == 'X' {
			cp, err = strconv.ParseInt(raw[1:], 16, 32)
		} else {
			cp, err = strconv.ParseInt(raw, 10, 32)
		}
		if err != nil {
			continue
		}
		switch rune(cp) {
		case '.', '/', '\\':
			return newRuleError(EncodingErrorKind, "html entity", fmt.Sprintf("decodes to %q", rune(cp)))
		}
	}
	return nil
}

func checkHexEscape(s string, _ *scanOptions) error {
	lower := strings.ToLower(s)
	for _, tok := range hexEscapeTokens {
		if strings.Contains(lower, tok) {
			return newRuleError(EncodingErrorKind, "hex escape literal", fmt.Sprintf("contains token %s", tok))
		}
	}
	return nil
}

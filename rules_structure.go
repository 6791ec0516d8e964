// rules_structure.go: Rule Group 5 - absolute paths, separator games, and
// advanced traversal tokens.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"regexp"
	"strings"
)

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// checkAbsolute rejects a leading "/" or drive letter. A leading "\\" or
// "//" is left to checkUNCDevice in Rule Group 6, which classifies it as a
// PlatformError (UNC path) rather than a generic StructureError.
func checkAbsolute(s string, _ *scanOptions) error {
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return newRuleError(StructureErrorKind, "absolute path", "begins with /")
	}
	if len(s) >= 2 && isASCIILetter(s[0]) && s[1] == ':' {
		return newRuleError(StructureErrorKind, "absolute path", "begins with a drive letter")
	}
	return nil
}

var separatorManipulationLiterals = []string{"//", `\\`, `\/`, `/\`}
var mixedSeparatorPattern = regexp.MustCompile(`(/\.{1,2}\\)|(\\\.{1,2}/)`)

func checkSeparatorManipulation(s string, _ *scanOptions) error {
	// A leading "\\" or "//" is a UNC/device prefix reported by
	// checkUNCDevice in Rule Group 6; only the rest is inspected here.
	body := s
	if strings.HasPrefix(s, `\\`) || strings.HasPrefix(s, "//") {
		body = s[2:]
	}
	for _, pat := range separatorManipulationLiterals {
		if strings.Contains(body, pat) {
			return newRuleError(StructureErrorKind, "separator manipulation", fmt.Sprintf("contains %q", pat))
		}
	}
	if m := mixedSeparatorPattern.FindString(body); m != "" {
		return newRuleError(StructureErrorKind, "separator manipulation", fmt.Sprintf("contains mixed separators %q", m))
	}
	return nil
}

func checkAlternativeSeparator(s string, _ *scanOptions) error {
	if strings.Contains(s, ";") {
		return newRuleError(StructureErrorKind, "alternative separator", "contains semicolon")
	}
	return nil
}

var threeDotsPattern = regexp.MustCompile(`\.{3,}`)
var dottedSlashTokens = []string{"....//", `....\/`, `....\\`}

func checkAdvancedTraversal(s string, _ *scanOptions) error {
	if m := threeDotsPattern.FindString(s); m != "" {
		return newRuleError(StructureErrorKind, "advanced traversal", fmt.Sprintf("contains %q", m))
	}
	switch {
	case strings.Contains(s, ". ."):
		return newRuleError(StructureErrorKind, "advanced traversal", `contains ". ."`)
	case strings.Contains(s, ".\t."):
		return newRuleError(StructureErrorKind, "advanced traversal", `contains ".<tab>."`)
	case strings.Contains(s, ".|."):
		return newRuleError(StructureErrorKind, "advanced traversal", `contains ".|."`)
	}
	for _, tok := range dottedSlashTokens {
		if strings.Contains(s, tok) {
			return newRuleError(StructureErrorKind, "advanced traversal", fmt.Sprintf("contains %q", tok))
		}
	}
	depth := 0
	for _, comp := range splitComponents(s) {
		switch comp {
		case ".":
		case "..":
			depth--
			if depth < 0 {
				return newRuleError(StructureErrorKind, "advanced traversal", `".." climbs above the input's starting directory`)
			}
		default:
			depth++
		}
	}
	return nil
}

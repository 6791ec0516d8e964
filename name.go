// name.go: NameCheck, the project/identifier name validator.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import "fmt"

// reservedNames is the Windows reserved set plus the two bare dot names,
// exactly as the rule tables require it.
var reservedNames = buildReservedNames()

func buildReservedNames() map[string]bool {
	names := map[string]bool{".": true, "..": true}
	for name := range reservedDeviceNames {
		names[name] = true
	}
	return names
}

func isNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

// NameCheck validates name as a project or identifier component: length in
// [1, 64], characters restricted to [A-Za-z0-9_-], the first and last
// character neither '-' nor '_', and not a reserved name.
func NameCheck(name string) (string, error) {
	runes := []rune(name)
	n := len(runes)

	if n < 1 || n > 64 {
		return "", newRuleError(NameSyntaxErrorKind, "length", fmt.Sprintf("length %d is outside [1, 64]", n))
	}

	for _, r := range runes {
		if !isNameChar(r) {
			return "", newRuleError(NameSyntaxErrorKind, "character class", fmt.Sprintf("contains disallowed character %q", r))
		}
	}

	if runes[0] == '-' || runes[0] == '_' {
		return "", newRuleError(NameSyntaxErrorKind, "start character", fmt.Sprintf("starts with %q", runes[0]))
	}
	if runes[n-1] == '-' || runes[n-1] == '_' {
		return "", newRuleError(NameSyntaxErrorKind, "end character", fmt.Sprintf("ends with %q", runes[n-1]))
	}

	lower := lowerASCII(name)
	if reservedNames[lower] {
		return "", newRuleError(ReservedNameErrorKind, "reserved name", fmt.Sprintf("%q is reserved", name))
	}

	return name, nil
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

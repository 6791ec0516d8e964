// filename.go: FileNameCheck, for a single path component with no separators.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import "fmt"

func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// FileNameCheck validates name as a single filename: length in [1, 255], no
// path separator, not "." or "..", no null/control character, and clean
// under scanner rule groups 1-6 (the special-root check in group 7 does not
// apply: a bare filename has no root).
func FileNameCheck(name string) (string, error) {
	runes := []rune(name)
	n := len(runes)

	if n < 1 || n > 255 {
		return "", newRuleError(FileNameStructureErrorKind, "length", fmt.Sprintf("length %d is outside [1, 255]", n))
	}
	if name == "." || name == ".." {
		return "", newRuleError(FileNameStructureErrorKind, "dot name", fmt.Sprintf("%q is not a valid filename", name))
	}
	for _, r := range runes {
		switch r {
		case '/', '\\':
			return "", newRuleError(FileNameStructureErrorKind, "separator", fmt.Sprintf("contains separator %q", r))
		}
		if isControlRune(r) {
			return "", newRuleError(FileNameStructureErrorKind, "control character", fmt.Sprintf("contains control character U+%04X", r))
		}
	}

	if err := scan(name, groupPlatform, nil); err != nil {
		return "", err
	}

	return name, nil
}

// rules_scheme.go: Rule Group 2 - protocol scheme prefixes.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"strings"
)

// protocolSchemes is the fixed, case-insensitive, prefix-anchored scheme
// table from the rule tables that must appear verbatim in any conforming
// implementation.
var protocolSchemes = []string{
	"file:", "http:", "https:", "ftp:", "ftps:", "gopher:",
	"ldap:", "ldaps:", "dict:", "smb:", "jar:", "data:",
}

func checkProtocolScheme(s string, _ *scanOptions) error {
	lower := strings.ToLower(s)
	for _, scheme := range protocolSchemes {
		if strings.HasPrefix(lower, scheme) {
			return newRuleError(SchemeErrorKind, "protocol scheme", fmt.Sprintf("begins with scheme %q", scheme))
		}
	}
	return nil
}

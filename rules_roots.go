// rules_roots.go: Rule Group 7 - special system roots.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"strings"
)

// specialRoots are forbidden unconditionally, per the rule tables that must
// appear verbatim in any conforming implementation.
var specialRoots = []string{
	"/proc/", "/sys/", "/dev/", "/etc/", "/boot/", "/var/log/",
	`C:\Windows`, `C:\Program Files`, `C:\ProgramData`,
}

// tempRoots are flagged by default but may be permitted by a caller-supplied
// RootPolicy, the one documented override point in the design notes.
var tempRoots = []string{"/tmp/", "/var/tmp/", `C:\Temp`, `C:\Windows\Temp`}

func checkSpecialRoot(s string, opts *scanOptions) error {
	lower := strings.ToLower(s)
	for _, root := range specialRoots {
		if rootMatches(lower, root) {
			return newRuleError(SpecialRootErrorKind, "special system root", fmt.Sprintf("addresses %s", root))
		}
	}

	policy := DefaultRootPolicy()
	if opts != nil && opts.rootPolicy != nil {
		policy = *opts.rootPolicy
	}
	if policy.AllowTempRoots {
		return nil
	}
	for _, root := range tempRoots {
		if rootMatches(lower, root) {
			return newRuleError(SpecialRootErrorKind, "special system root", fmt.Sprintf("addresses temp root %s", root))
		}
	}
	return nil
}

func rootMatches(lowerInput, root string) bool {
	lowerRoot := strings.ToLower(root)
	return strings.HasPrefix(lowerInput, lowerRoot) || strings.Contains(lowerInput, lowerRoot)
}

// config.go: the one documented override point for Rule Group 7, whether
// temp roots (/tmp, /var/tmp, C:\Temp) are treated as forbidden special
// roots or permitted. This is opt-in and the only configuration surface
// aegis has: no environment variables, no other file format, nothing read
// at init time.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"os"

	goerrors "github.com/agilira/go-errors"
	yaml "go.yaml.in/yaml/v3"
)

// RootPolicy overrides Rule Group 7's strict default. The zero value is the
// strict default: temp roots are forbidden.
type RootPolicy struct {
	// AllowTempRoots stops Rule Group 7 from rejecting inputs that address
	// /tmp, /var/tmp or C:\Temp. C:\Windows\Temp stays forbidden because it
	// lies under the C:\Windows special root, and an absolute input is still
	// rejected by Rule Group 5. Every other special root in rules_roots.go
	// always stays forbidden; there is no override for /proc, /etc, and the rest.
	AllowTempRoots bool `yaml:"allow_temp_roots"`
}

// DefaultRootPolicy is the strict policy used when no override is supplied.
func DefaultRootPolicy() RootPolicy {
	return RootPolicy{AllowTempRoots: false}
}

// LoadRootPolicy reads a RootPolicy from a small YAML file:
//
//	allow_temp_roots: true
//
// It is the only file-based configuration aegis reads, and it is never
// read implicitly: callers opt in with WithRootPolicy.
func LoadRootPolicy(path string) (RootPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RootPolicy{}, goerrors.New(ResourceErrorKind, fmt.Sprintf("root policy: cannot read %s: %v", path, err))
	}
	var policy RootPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return RootPolicy{}, goerrors.New(ResourceErrorKind, fmt.Sprintf("root policy: cannot parse %s: %v", path, err))
	}
	return policy, nil
}

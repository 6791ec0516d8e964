// rules_platform.go: Rule Group 6 - Windows-style path attacks, applied on
// every host regardless of runtime.GOOS.
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

// reservedDeviceNames are the Windows device names from the rule tables
// (the NameCheck/FileNameCheck reserved set additionally includes "." and
// "..", defined separately in name.go).
var reservedDeviceNames = buildReservedDeviceNames()

func buildReservedDeviceNames() map[string]bool {
	names := map[string]bool{"con": true, "prn": true, "aux": true, "nul": true}
	for _, prefix := range []string{"com", "lpt"} {
		for i := 1; i <= 9; i++ {
			names[prefix+strconv.Itoa(i)] = true
		}
	}
	return names
}

func splitComponents(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\\' })
}

// checkNTFSStream rejects any component containing a colon that is not a
// bare drive-letter prefix, including the literal "::$DATA" pattern.
func checkNTFSStream(s string, _ *scanOptions) error {
	for _, comp := range splitComponents(s) {
		if !strings.Contains(comp, ":") {
			continue
		}
		if len(comp) == 2 && isASCIILetter(comp[0]) && comp[1] == ':' {
			continue
		}
		return newRuleError(PlatformErrorKind, "ntfs alternate data stream", fmt.Sprintf("component %q uses stream syntax", comp))
	}
	return nil
}

var uncDevicePrefixes = []string{`\\?\`, `\\.\`, `//?/`, `//./`, `\\`, `//`}

func checkUNCDevice(s string, _ *scanOptions) error {
	for _, prefix := range uncDevicePrefixes {
		if strings.HasPrefix(s, prefix) {
			return newRuleError(PlatformErrorKind, "unc or device path", fmt.Sprintf("begins with %q", prefix))
		}
	}
	return nil
}

func checkTrailingDotSpace(s string, _ *scanOptions) error {
	for _, comp := range splitComponents(s) {
		if comp == "" {
			continue
		}
		last := comp[len(comp)-1]
		if last == '.' || last == ' ' || last == '\t' {
			return newRuleError(PlatformErrorKind, "trailing dot or space", fmt.Sprintf("component %q ends with a dot or space", comp))
		}
	}
	return nil
}

func checkReservedNameExt(s string, _ *scanOptions) error {
	for _, comp := range splitComponents(s) {
		base := comp
		if idx := strings.IndexByte(comp, '.'); idx >= 0 {
			base = comp[:idx]
		}
		if reservedDeviceNames[strings.ToLower(base)] {
			return newRuleError(PlatformErrorKind, "reserved name with extension", fmt.Sprintf("component %q uses reserved name %q", comp, base))
		}
	}
	return nil
}

var driveRelativePattern = regexp.MustCompile(`^[A-Za-z]:[^\\/]`)

func checkDriveRelative(s string, _ *scanOptions) error {
	for _, comp := range splitComponents(s) {
		if driveRelativePattern.MatchString(comp) {
			return newRuleError(PlatformErrorKind, "drive-relative path", fmt.Sprintf("component %q is drive-relative", comp))
		}
	}
	return nil
}

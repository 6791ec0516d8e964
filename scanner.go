// scanner.go: ordered rule-group engine shared by PathCheck and FileNameCheck.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

// ruleGroupID identifies one of the rule groups described in the design
// notes. Groups run in ascending order; within a group, rules run in
// declared order. The scanner never modifies the input string.
type ruleGroupID int

const (
	groupWhitespace ruleGroupID = iota + 1
	groupScheme
	groupEncoding
	groupUnicode
	groupStructure
	groupPlatform
	groupRoots
)

// scanOptions carries the per-call knobs the scanner needs. A nil
// *scanOptions (or nil fields within) means "use defaults."
type scanOptions struct {
	rootPolicy *RootPolicy
}

// rule is one predicate in the scanner's tagged-variant table: a group, a
// name for diagnostics, and the check itself. The table is static and
// iterated in order; there is no per-rule dynamic dispatch.
type rule struct {
	group ruleGroupID
	name  string
	check func(s string, opts *scanOptions) error
}

// ruleTable is the complete, ordered rule set for groups 1-7. PathCheck adds
// group 8 (canonicalisation) separately, since it is the only rule that
// touches the filesystem.
var ruleTable = []rule{
	{groupWhitespace, "leading/trailing whitespace", checkBoundaryWhitespace},
	{groupWhitespace, "internal whitespace", checkInternalWhitespace},

	{groupScheme, "protocol scheme", checkProtocolScheme},

	{groupEncoding, "url percent encoding", checkURLPercentEncoding},
	{groupEncoding, "double url encoding", checkDoubleURLEncoding},
	{groupEncoding, "overlong utf-8 percent form", checkOverlongUTF8},
	{groupEncoding, "unicode percent-u escape", checkPercentU},
	{groupEncoding, "html entity", checkHTMLEntity},
	{groupEncoding, "hex escape literal", checkHexEscape},

	{groupUnicode, "dangerous unicode", checkDangerousUnicode},

	{groupStructure, "absolute path", checkAbsolute},
	{groupStructure, "separator manipulation", checkSeparatorManipulation},
	{groupStructure, "alternative separator", checkAlternativeSeparator},
	{groupStructure, "advanced traversal", checkAdvancedTraversal},

	{groupPlatform, "ntfs alternate data stream", checkNTFSStream},
	{groupPlatform, "unc or device path", checkUNCDevice},
	{groupPlatform, "trailing dot or space", checkTrailingDotSpace},
	{groupPlatform, "reserved name with extension", checkReservedNameExt},
	{groupPlatform, "drive-relative path", checkDriveRelative},

	{groupRoots, "special system root", checkSpecialRoot},
}

// scan runs every rule whose group is <= maxGroup, in table order, returning
// the first error raised. It touches nothing but s and opts.
func scan(s string, maxGroup ruleGroupID, opts *scanOptions) error {
	for _, r := range ruleTable {
		if r.group > maxGroup {
			continue
		}
		if err := r.check(s, opts); err != nil {
			return err
		}
	}
	return nil
}

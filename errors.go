// errors.go: error taxonomy for the aegis path-safety validator.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// ErrorKind identifies which rule class rejected an input. It is a
// github.com/agilira/go-errors ErrorCode under the hood, so every error this
// package raises survives a type assertion to goerrors.ErrorCoder.
type ErrorKind = goerrors.ErrorCode

// The twelve rejection kinds from the rule groups. Exactly one is raised per
// failed call; there is no partial result and no recovery.
const (
	WhitespaceErrorKind        ErrorKind = "AEGIS_WHITESPACE"
	SchemeErrorKind            ErrorKind = "AEGIS_SCHEME"
	EncodingErrorKind          ErrorKind = "AEGIS_ENCODING"
	UnicodeErrorKind           ErrorKind = "AEGIS_UNICODE"
	StructureErrorKind         ErrorKind = "AEGIS_STRUCTURE"
	PlatformErrorKind          ErrorKind = "AEGIS_PLATFORM"
	SpecialRootErrorKind       ErrorKind = "AEGIS_SPECIAL_ROOT"
	ContainmentErrorKind       ErrorKind = "AEGIS_CONTAINMENT"
	ResourceErrorKind          ErrorKind = "AEGIS_RESOURCE"
	NameSyntaxErrorKind        ErrorKind = "AEGIS_NAME_SYNTAX"
	ReservedNameErrorKind      ErrorKind = "AEGIS_RESERVED_NAME"
	FileNameStructureErrorKind ErrorKind = "AEGIS_FILENAME_STRUCTURE"
)

// newRuleError builds the error for a rule that fired against rule, naming
// the offending token or condition in detail.
func newRuleError(kind ErrorKind, rule, detail string) error {
	return goerrors.New(kind, fmt.Sprintf("%s: %s", rule, detail))
}

// KindOf extracts the ErrorKind from an error produced by this package. It
// returns ("", false) for any error not raised by aegis.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return "", false
	}
	coder, ok := err.(goerrors.ErrorCoder)
	if !ok {
		return "", false
	}
	return coder.ErrorCode(), true
}

// SPDX-License-Identifier: AGPL-3.0-or-later

// Package domain holds the error taxonomy shared by the vocabrecon packages.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind, so callers can use errors.Is.
var (
	ErrDirectoryUnavailable   = errors.New("schema directory unavailable")
	ErrSheetExportUnavailable = errors.New("sheet export unavailable")
	ErrMalformedSchemaFile    = errors.New("malformed schema file")
	ErrInvalidInput           = errors.New("invalid input")
	ErrIO                     = errors.New("i/o failure")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindDirectoryUnavailable   ErrorKind = "directory_unavailable"
	KindSheetExportUnavailable ErrorKind = "sheet_export_unavailable"
	KindMalformedSchemaFile    ErrorKind = "malformed_schema_file"
	KindInvalidInput           ErrorKind = "invalid_input"
	KindIO                     ErrorKind = "io"
)

// OpError wraps an underlying cause with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Path  string // file path or URL, optional
	Hint  string // user-facing remediation, optional
	Cause error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Cause != nil {
		base += fmt.Sprintf(": %v", e.Cause)
	}
	return base
}

// Unwrap exposes both the cause and the sentinel for the kind.
func (e *OpError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if s := sentinel(e.Kind); s != nil {
		errs = append(errs, s)
	}
	return errs
}

// IsKind reports whether any OpError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// HintOf returns the first non-empty remediation hint in err's chain.
func HintOf(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Hint
	}
	return ""
}

func sentinel(kind ErrorKind) error {
	switch kind {
	case KindDirectoryUnavailable:
		return ErrDirectoryUnavailable
	case KindSheetExportUnavailable:
		return ErrSheetExportUnavailable
	case KindMalformedSchemaFile:
		return ErrMalformedSchemaFile
	case KindInvalidInput:
		return ErrInvalidInput
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// Package kmerr holds the error taxonomy shared by the loader, the
// reconstructor and the CLI. Every concrete error matches one sentinel via
// errors.Is so callers can branch on the class without type switches.
package kmerr

import (
	"errors"
	"fmt"
)

var (
	ErrUsage            = errors.New("usage error")
	ErrFormat           = errors.New("format error")
	ErrMissingParameter = errors.New("missing parameter")
	ErrLookup           = errors.New("k-mer not found")
	ErrIntegrity        = errors.New("overlap mismatch")
)

// UsageError reports bad arguments. Nothing has been read or written yet.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
func (e *UsageError) Unwrap() error { return ErrUsage }

// Usagef builds a UsageError.
func Usagef(format string, a ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// FormatError reports a malformed line. Line is 1-based; 0 means unknown.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// MissingParameterError is raised the first time a window size or overlap
// length is needed but was never declared (or is not positive).
type MissingParameterError struct {
	Name  string
	Value int
}

func (e *MissingParameterError) Error() string {
	if e.Value != 0 {
		return fmt.Sprintf("parameter %s must be positive, got %d", e.Name, e.Value)
	}
	return fmt.Sprintf("parameter %s was not declared (expected a '# %s = <int>' header line)", e.Name, e.Name)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// LookupError names a window found in neither orientation.
type LookupError struct {
	Window fmt.Stringer
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("k-mer not found in either orientation: %s", e.Window)
}

func (e *LookupError) Unwrap() error { return ErrLookup }

// IntegrityError reports two consecutive windows whose sequences disagree on
// the shared overlap.
type IntegrityError struct {
	Window fmt.Stringer
	Want   string // trailing bases of the accumulated sequence
	Got    string // leading bases of the window's sequence
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("overlap mismatch at window %s: accumulated sequence ends with %q, k-mer starts with %q", e.Window, e.Want, e.Got)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

// Package riverserr defines the small set of error codes that are allowed
// to cross the RIVERS scoring core boundary (spec §6.3). Every other
// failure mode is absorbed into a per-component diagnostic flag instead.
package riverserr

import (
	"errors"
	"fmt"
)

// Code identifies one of the four caller-facing failure families.
type Code string

const (
	// NotReady means preflight validation (§4.7) failed; the caller should
	// install a complete snapshot or adjust the request before retrying.
	NotReady Code = "NOT_READY"

	// UnknownTeam means a team identifier could not be resolved against
	// the installed snapshot.
	UnknownTeam Code = "UNKNOWN_TEAM"

	// DataCorruption means a non-finite (NaN/Inf) value reached a
	// top-level computation. The snapshot is considered invalid for any
	// further request until a new one is installed.
	DataCorruption Code = "DATA_CORRUPTION"

	// Cancelled means the caller's context was cancelled between
	// component scorers.
	Cancelled Code = "CANCELLED"
)

// Error is the concrete error type carried across the core boundary.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an *Error around an existing cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the Code from err, or "" if err is not (or does not wrap)
// a *riverserr.Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

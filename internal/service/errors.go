// Package service implements the domain logic behind the HTTP handlers:
// credential and session management for users and admins, and event
// lifecycle validation. Every fallible operation returns a *Error whose
// Kind tells the handler layer which HTTP status to use; handlers never
// inspect error strings.
package service

import "errors"

// ErrorKind classifies domain failures for status-code mapping.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota + 1 // malformed or missing fields -> 400
	KindDuplicateEmail                    // unique email violated -> 400
	KindInvalidCredentials                // password mismatch -> 401
	KindNotFound                          // principal or event missing -> 404 (401 for login)
	KindRevocationFailed                  // logout delete-miss -> 400
	KindInvalidDate                       // unparseable start/end date -> 400
	KindInvalidRange                      // startDate > endDate -> 400
	KindInvalidID                         // id not a positive integer -> 400
	KindInternal                          // anything unexpected -> 500
)

// Error is the single domain error type. Code optionally carries a
// machine-readable identifier (event validation uses these), Message is
// the short client-facing string.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// E builds a plain domain error.
func E(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// EC builds a domain error with a machine-readable code.
func EC(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// KindOf extracts the ErrorKind from err, or KindInternal for anything
// that is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// CodeOf extracts the machine-readable code, if any.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

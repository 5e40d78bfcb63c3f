// Package repository defines sentinel errors shared by the concrete
// repositories. Higher layers compare against these values to pick the
// right HTTP status instead of inspecting driver error strings.
package repository

import "errors"

// ErrEmailExists is returned when an insert violates the unique email
// constraint on the users or admins table.
var ErrEmailExists = errors.New("email already exists")

// ErrTokenExists is returned when an insert violates the unique token
// constraint on a token table. Callers regenerate the token and retry.
var ErrTokenExists = errors.New("token already exists")

// ErrTokenNotFound is returned when a delete-by-token matches no row.
// Logout treats this as a failure rather than succeeding silently.
var ErrTokenNotFound = errors.New("token not found")

// ErrEventNotFound is returned when an event lookup, update or delete
// targets an id that has no row.
var ErrEventNotFound = errors.New("event not found")

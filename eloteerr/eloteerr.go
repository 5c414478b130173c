// Package eloteerr defines the typed failure kinds shared by the
// competitor, arena, and history packages.
package eloteerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on Is without parsing
// error strings.
type Kind string

const (
	// InvalidParameter marks a construction-time value outside its legal
	// range, e.g. an initial rating below the configured floor.
	InvalidParameter Kind = "invalid_parameter"
	// InvalidState marks a rejected state document: wrong type, missing
	// fields, or a caller-supplied rating below the floor.
	InvalidState Kind = "invalid_state"
	// TypeMismatch marks an operation attempted between competitors of
	// different variants.
	TypeMismatch Kind = "type_mismatch"
	// InvalidThresholds marks a confusion-matrix threshold pair outside
	// [0,1] or with lo > hi.
	InvalidThresholds Kind = "invalid_thresholds"
)

// Error is the concrete error type surfaced by this module. Op names the
// failing operation (e.g. "Elo.Beat"), and Err carries the underlying
// cause when there is one.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with a plain message.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Wrap builds an *Error around an existing error.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err is an *Error of the given kind, unwrapping as
// needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

package models

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")
	ErrPhoneTaken    = errors.New("phone number is already registered")

	ErrCapacityExceeded = errors.New("store capacity reached")
	ErrNotFound         = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionLocked      = errors.New("too many failed login attempts")
	ErrInvalidOTP         = errors.New("one-time code does not match")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// ValidationError reports a single field that failed a format or strength
// check. Callers re-prompt; nothing was written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a failed file operation. In-memory state is left
// unchanged when one of these is returned.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

package interview

import "errors"

// Operation errors surfaced to callers. Oracle failures are deliberately
// absent: those are absorbed with neutral defaults and never abort an
// interview.
var (
	// ErrSessionNotFound means the session id is unknown.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidStateTransition means the operation is not valid in the
	// session's current state.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

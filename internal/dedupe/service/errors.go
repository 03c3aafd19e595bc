package service

import "errors"

// Merge failure taxonomy. Matching and scoring never produce errors; a
// non-match is a normal MatchNone result.
var (
	// ErrValidation rejects a request before any mutation is attempted.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means the merge target no longer exists, typically because
	// another operator already resolved the pair. Informational, not fatal.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint means an attendance repoint hit the one-row-per-(game,
	// coach) uniqueness index.
	ErrConstraint = errors.New("uniqueness constraint violated")
	// ErrStore wraps any underlying read/write failure; the operation aborts
	// and is never retried automatically.
	ErrStore = errors.New("store operation failed")
)

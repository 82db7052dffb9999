package domain

import "errors"

// Registry operations wrap one of these sentinels with %w, so callers can
// branch on the kind with errors.Is while still getting a message naming the
// offending entity.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrDuplicateEmail   = errors.New("duplicate email")
	ErrDuplicateFlight  = errors.New("duplicate flight")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

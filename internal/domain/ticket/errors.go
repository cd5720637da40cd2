package ticket

import "errors"

var (
	// ErrNotFound covers both absent tickets and tickets outside the caller's scope.
	ErrNotFound = errors.New("ticket not found")

	ErrEmptyPatch = errors.New("no valid fields to update")
)

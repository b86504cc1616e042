package trivia

import "errors"

// Failure kinds surfaced by the core. Transport maps each kind to a fixed
// HTTP status and message; anything else is an internal error.
var (
	// ErrNotFound covers out-of-range pages, absent question ids and an
	// empty category catalog.
	ErrNotFound = errors.New("resource not found")

	// ErrUnprocessable covers rejected store writes and a missing quiz
	// category scope.
	ErrUnprocessable = errors.New("unprocessable")
)

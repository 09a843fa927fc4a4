package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Nothing in the core
// is fatal: every failure path returns a sentinel and leaves state
// unchanged.
var (
	// ErrInvalidSnippet indicates a snippet failed structural
	// validation (missing or oversized field).
	ErrInvalidSnippet = errors.New("invalid snippet")

	// ErrPayloadTooLarge indicates an accumulation would exceed the
	// combined-size ceiling. Reported distinctly from validation so
	// callers can show a size-specific message.
	ErrPayloadTooLarge = errors.New("combined payload too large")

	// ErrEmptySelection indicates finalize was called with no
	// collected snippets.
	ErrEmptySelection = errors.New("no snippets collected")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// wrapInvalid annotates ErrInvalidSnippet with detail while keeping it
// matchable via errors.Is.
func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnippet, fmt.Sprintf(format, args...))
}

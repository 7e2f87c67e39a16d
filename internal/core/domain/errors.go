package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPageOutOfRange indicates a requested page index outside the
	// document. The page is skipped with a warning; the run continues.
	ErrPageOutOfRange = errors.New("page index out of range")

	// ErrDocumentUnreadable indicates the source document could not be
	// opened or parsed. This is the one fatal condition: the whole run
	// aborts with no partial results.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

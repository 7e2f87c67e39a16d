package driven

import (
	"context"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// LayoutProvider opens a document and exposes its pages as styled layouts.
// The core treats document parsing as an opaque capability; it never
// touches file formats itself.
type LayoutProvider interface {
	// Open parses the document at path. A document that cannot be opened
	// or parsed is the one fatal condition of an extraction run; the
	// returned error wraps domain.ErrDocumentUnreadable.
	Open(ctx context.Context, path string) (LayoutDocument, error)
}

// LayoutDocument is an open document handle yielding per-page layouts.
type LayoutDocument interface {
	// PageCount returns the document's total number of pages.
	PageCount() int

	// PageLayout returns the styled layout of the zero-based page index.
	// Indices outside [0, PageCount) return domain.ErrPageOutOfRange.
	PageLayout(ctx context.Context, index int) (domain.PageLayout, error)

	// Close releases the underlying document resources.
	Close() error
}

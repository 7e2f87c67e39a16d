package driven

import (
	"context"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// ManagementExtractor pulls management names and roles from a company
// block's free text. It is a named extension point: the shipped
// implementation always returns nothing, so records carry clean data
// until a real extractor exists.
type ManagementExtractor interface {
	// Extract returns management entries for the block, deduplicated
	// in first-seen order. An empty result is not an error.
	Extract(ctx context.Context, block domain.Block) ([]string, error)
}

// Package management provides the management/role extraction adapters.
package management

import (
	"context"

	"github.com/Finn-TH/scribe/internal/core/domain"
	"github.com/Finn-TH/scribe/internal/core/ports/driven"
)

// Ensure NoopExtractor implements the interface.
var _ driven.ManagementExtractor = (*NoopExtractor)(nil)

// NoopExtractor is the documented "always empty" default implementation
// of the management extractor. Name/role extraction from the directory
// free text needs NLP to avoid dirty data, so until a real extractor
// exists, records carry empty management fields. A future implementation
// substitutes here without touching the aggregation code.
type NoopExtractor struct{}

// NewNoopExtractor creates the always-empty management extractor.
func NewNoopExtractor() *NoopExtractor {
	return &NoopExtractor{}
}

// Extract returns no management entries.
func (e *NoopExtractor) Extract(_ context.Context, _ domain.Block) ([]string, error) {
	return nil, nil
}

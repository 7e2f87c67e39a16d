package management

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// TestNoopExtractor_AlwaysEmpty tests the documented always-empty behaviour
func TestNoopExtractor_AlwaysEmpty(t *testing.T) {
	e := NewNoopExtractor()

	entries, err := e.Extract(context.Background(), domain.Block{
		CompanyName: "ACME SDN BHD",
		BodyText:    "Managing Director: A. Person",
	})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

package driven

import "github.com/Finn-TH/scribe/internal/core/domain"

// HeuristicsStore loads the header-detection heuristic tables.
// Stores fall back to domain.DefaultHeuristics when no configuration
// exists, so extraction always has working tables.
type HeuristicsStore interface {
	// Load returns the effective heuristics.
	Load() (domain.Heuristics, error)
}

package domain

// Heuristics holds the tunable tables driving header detection and page
// selection. They are loaded from configuration and passed explicitly to
// the detector so deployments can adapt them to other directory formats.
type Heuristics struct {
	// RejectPrefixes are case-insensitive "starts with" phrases that
	// disqualify a bold run from being a company name. Section titles
	// and contact-field labels in the source directories are also bold
	// and must be excluded explicitly.
	RejectPrefixes []string

	// CompanySuffixes are legal-entity suffix keywords. A bold run is
	// recognised as a company name when it contains one of these as a
	// whole word, or carries a registration-number annotation.
	CompanySuffixes []string

	// MaxNameLength is the maximum accepted cleaned name length.
	MaxNameLength int

	// DefaultPages are the zero-based pages extracted when the caller
	// requests none.
	DefaultPages []int
}

// DefaultHeuristics returns the built-in tables, tuned for Malaysian
// company directories (SDN BHD / BHD / BERHAD entity suffixes).
func DefaultHeuristics() Heuristics {
	return Heuristics{
		RejectPrefixes: []string{
			"directory of",
			"business activities",
			"email",
			"web site",
			"tel.no",
			"fax.no",
			"authorised capital",
			"paid up capital",
			"incorporation date",
			"no of employees",
			"management",
		},
		CompanySuffixes: []string{"SDN BHD", "BHD", "BERHAD"},
		MaxNameLength:   120,
		DefaultPages:    []int{3},
	}
}

package domain

// Header represents a detected company-name boundary on a page.
type Header struct {
	// CompanyName is the cleaned company name (registration annotation
	// stripped, at most the configured maximum length).
	CompanyName string

	// TerminatorSpan is the index into the span sequence of the last
	// span whose accumulation triggered recognition. The detector always
	// sets it; a negative value is treated defensively as "page start"
	// by the block slicer.
	TerminatorSpan int
}

// Block is the contiguous text owned by one company: everything between
// its header's line and the next header's line (or the page end).
type Block struct {
	// CompanyName is the owning company's cleaned name.
	CompanyName string

	// BodyText is the newline-joined text of the block's non-empty lines.
	BodyText string
}

// ContactSet holds the structured contact fields pulled from one block.
// Both slices are deduplicated and preserve first-seen order.
type ContactSet struct {
	Phones []string
	Emails []string
}

// Record is a fully extracted company directory entry.
type Record struct {
	// ID is the unique identifier assigned at extraction time.
	ID string `json:"id"`

	// Company is the cleaned company name.
	Company string `json:"company"`

	// Emails are the deduplicated emails in first-seen order.
	Emails []string `json:"emails"`

	// Phones are the deduplicated phone numbers in first-seen order.
	Phones []string `json:"phones"`

	// Management lists extracted management names and roles.
	// Currently always empty; see the management extractor port.
	Management []string `json:"management"`
}

// PageSummary is the page-level rollup across all records on one page:
// the company names in order, and page-wide deduplicated unions of the
// contact fields, each in first-seen order.
type PageSummary struct {
	Companies  []string `json:"companies"`
	Emails     []string `json:"emails"`
	Phones     []string `json:"phones"`
	Management []string `json:"management"`
}

// PageResult is the outcome of running the pipeline on one page.
type PageResult struct {
	PageIndex int        `json:"page"`
	Records   []Record   `json:"records"`
	Summary   PageSummary `json:"summary"`
}

// ExtractionResult is the outcome of one extraction run over a document.
type ExtractionResult struct {
	// DocumentPath is the path of the processed document.
	DocumentPath string `json:"document"`

	// PageCount is the document's total page count.
	PageCount int `json:"page_count"`

	// Pages holds one result per processed page, in request order.
	Pages []PageResult `json:"pages"`

	// Skipped lists requested page indices that were out of range.
	Skipped []int `json:"skipped,omitempty"`
}

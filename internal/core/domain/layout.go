package domain

import "strings"

// boldWeightThreshold is the minimum numeric font weight treated as bold.
// 700 is the conventional weight of a bold face.
const boldWeightThreshold = 700

// Fragment is one styled run of text within a visual line, as delivered
// by the layout provider. It is the provider's smallest unit of styled text.
type Fragment struct {
	// Text is the visible text of the run, possibly with raw whitespace.
	Text string

	// FontName is the provider's font identifier (e.g. "Helvetica-Bold").
	FontName string

	// FontWeight is the numeric weight if the provider exposes one.
	// Zero when unknown; FontName alone then decides boldness.
	FontWeight int
}

// IsBold reports whether the fragment is rendered in a bold face.
// A fragment is bold when its font name contains "bold" (case-insensitive)
// or its numeric weight is 700 or above.
func (f Fragment) IsBold() bool {
	if strings.Contains(strings.ToLower(f.FontName), "bold") {
		return true
	}
	return f.FontWeight >= boldWeightThreshold
}

// PageLayout is the layout provider's view of a single page: visual lines
// in reading order, each holding its styled fragments in left-to-right order.
type PageLayout struct {
	// PageIndex is the zero-based page number within the document.
	PageIndex int

	// Lines holds the page's visual lines in reading order.
	Lines [][]Fragment
}

// Span is one non-empty styled text run in document reading order,
// produced by the layout flattener. Spans are immutable once produced.
type Span struct {
	// Text is the whitespace-collapsed run text. Never empty.
	Text string

	// Bold reports whether the run was rendered in a bold face.
	Bold bool

	// Line is the index of the visual line the span belongs to.
	Line int
}

// Line is one reconstructed visual line: the space-joined text of all
// spans sharing the line index. Blank lines keep their index with empty
// text so block slicing can use index arithmetic.
type Line struct {
	// Index is the zero-based visual line number on the page.
	Index int

	// Text is the joined visible text. Empty for blank lines.
	Text string
}

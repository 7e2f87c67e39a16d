// Package flatten turns a page's nested styled layout into the flat,
// ordered span and line sequences the rest of the pipeline consumes.
package flatten

import (
	"strings"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// Flatten walks the page layout in reading order and produces the ordered
// span sequence plus the parallel reconstructed line sequence.
//
// Every fragment with non-empty whitespace-collapsed text becomes a span
// carrying its visual line index. Every visual line becomes a line entry
// built by space-joining its non-empty fragment texts; lines with no
// visible text keep their index as an empty entry, so block slicing can
// rely on index arithmetic. Flatten is a pure transform and never fails.
func Flatten(layout domain.PageLayout) ([]domain.Span, []domain.Line) {
	spans := make([]domain.Span, 0, len(layout.Lines))
	lines := make([]domain.Line, 0, len(layout.Lines))

	for lineIdx, fragments := range layout.Lines {
		var parts []string
		for _, frag := range fragments {
			text := collapseWhitespace(frag.Text)
			if text == "" {
				continue
			}
			spans = append(spans, domain.Span{
				Text: text,
				Bold: frag.IsBold(),
				Line: lineIdx,
			})
			parts = append(parts, text)
		}
		lines = append(lines, domain.Line{
			Index: lineIdx,
			Text:  strings.Join(parts, " "),
		})
	}

	return spans, lines
}

// collapseWhitespace reduces any whitespace run to a single space and
// trims the result.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

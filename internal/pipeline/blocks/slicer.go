// Package blocks slices a page's lines into per-company text blocks.
package blocks

import (
	"strings"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// Slice attributes every page line between consecutive headers to the
// earlier header's company, producing exactly one block per header in
// header order.
//
// A block starts on the line after its header's terminating span and
// stops on the line before the next header's terminating span, or on the
// last page line for the final header. Adjacent headers can produce an
// inverted range; that is clamped to a single line rather than surfaced.
// Blank lines count for the boundary arithmetic but are filtered from
// the body text.
func Slice(headers []domain.Header, spans []domain.Span, lines []domain.Line) []domain.Block {
	out := make([]domain.Block, 0, len(headers))

	for i, header := range headers {
		startLine := 0
		if header.TerminatorSpan >= 0 && header.TerminatorSpan < len(spans) {
			startLine = spans[header.TerminatorSpan].Line + 1
		}

		stopLine := len(lines) - 1
		if i+1 < len(headers) {
			next := headers[i+1].TerminatorSpan
			if next >= 0 && next < len(spans) {
				stopLine = spans[next].Line - 1
			}
		}
		if stopLine < startLine {
			stopLine = startLine
		}

		var body []string
		for j := startLine; j <= stopLine && j < len(lines); j++ {
			if lines[j].Text == "" {
				continue
			}
			body = append(body, lines[j].Text)
		}

		out = append(out, domain.Block{
			CompanyName: header.CompanyName,
			BodyText:    strings.Join(body, "\n"),
		})
	}

	return out
}

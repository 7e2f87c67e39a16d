// Package pdflayout adapts a PDF's text layer to the layout provider port.
//
// It uses github.com/ledongthuc/pdf for parsing. Only the embedded text
// layer is read; scanned (image-only) PDFs would need OCR and are not
// handled here. Positioned text elements are grouped into visual lines
// by Y coordinate and merged into styled fragments per font run, which
// is the representation the core pipeline consumes.
package pdflayout

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/Finn-TH/scribe/internal/core/domain"
	"github.com/Finn-TH/scribe/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.LayoutProvider = (*Provider)(nil)

// Provider opens PDF documents as styled page layouts.
type Provider struct {
	// rowTolerance is the Y-coordinate tolerance (in points) for
	// grouping text elements into the same visual line.
	rowTolerance float64

	// wordSpaceMultiplier is the fraction of the font size an X gap
	// must exceed to count as a word space between merged elements.
	wordSpaceMultiplier float64
}

// New creates a provider with sensible defaults for directory pages.
func New() *Provider {
	return &Provider{
		rowTolerance:        2.0,
		wordSpaceMultiplier: 0.3,
	}
}

// Open parses the PDF at path. Failure to open or parse the file is the
// run's one fatal condition and wraps domain.ErrDocumentUnreadable.
func (p *Provider) Open(_ context.Context, path string) (driven.LayoutDocument, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDocumentUnreadable, path, err)
	}
	return &document{file: f, reader: r, provider: p}, nil
}

// document is an open PDF handle.
type document struct {
	file     *os.File
	reader   *pdf.Reader
	provider *Provider
}

// PageCount returns the PDF's total page count.
func (d *document) PageCount() int {
	return d.reader.NumPage()
}

// PageLayout extracts the styled layout of the zero-based page index.
func (d *document) PageLayout(_ context.Context, index int) (domain.PageLayout, error) {
	if index < 0 || index >= d.reader.NumPage() {
		return domain.PageLayout{}, fmt.Errorf("%w: %d", domain.ErrPageOutOfRange, index)
	}

	// ledongthuc/pdf numbers pages from 1.
	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return domain.PageLayout{PageIndex: index}, nil
	}

	texts := page.Content().Text
	rows := groupIntoRows(texts, d.provider.rowTolerance)

	layout := domain.PageLayout{PageIndex: index, Lines: make([][]domain.Fragment, 0, len(rows))}
	for _, row := range rows {
		layout.Lines = append(layout.Lines, d.provider.mergeRow(row))
	}
	return layout, nil
}

// Close releases the underlying file.
func (d *document) Close() error {
	return d.file.Close()
}

// mergeRow merges an X-sorted row of text elements into fragments.
// Consecutive elements sharing a font stay in one fragment; a gap wider
// than the word-space threshold inserts a space inside it. A font change
// starts a new fragment, which is what preserves bold run boundaries.
func (p *Provider) mergeRow(row []pdf.Text) []domain.Fragment {
	var fragments []domain.Fragment
	var current *domain.Fragment
	var prevEnd float64

	for _, t := range row {
		if t.S == "" {
			continue
		}
		if current == nil || t.Font != current.FontName {
			fragments = append(fragments, domain.Fragment{FontName: t.Font})
			current = &fragments[len(fragments)-1]
		} else if t.X-prevEnd > p.wordSpaceMultiplier*t.FontSize {
			current.Text += " "
		}
		current.Text += t.S
		prevEnd = t.X + t.W
	}
	return fragments
}

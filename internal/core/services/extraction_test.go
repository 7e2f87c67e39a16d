package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finn-TH/scribe/internal/adapters/driven/management"
	"github.com/Finn-TH/scribe/internal/core/domain"
	"github.com/Finn-TH/scribe/internal/core/ports/driven"
	"github.com/Finn-TH/scribe/internal/pipeline/headers"
)

// mockProvider is a test double for driven.LayoutProvider.
type mockProvider struct {
	doc *mockDocument
	err error
}

func (m *mockProvider) Open(_ context.Context, _ string) (driven.LayoutDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

// mockDocument is a test double for driven.LayoutDocument.
type mockDocument struct {
	pages  []domain.PageLayout
	closed bool
}

func (m *mockDocument) PageCount() int { return len(m.pages) }

func (m *mockDocument) PageLayout(_ context.Context, index int) (domain.PageLayout, error) {
	if index < 0 || index >= len(m.pages) {
		return domain.PageLayout{}, domain.ErrPageOutOfRange
	}
	return m.pages[index], nil
}

func (m *mockDocument) Close() error {
	m.closed = true
	return nil
}

func newTestService(t *testing.T, doc *mockDocument) *ExtractionService {
	t.Helper()
	detector, err := headers.New(headers.ConfigFromHeuristics(domain.DefaultHeuristics()))
	require.NoError(t, err)
	return NewExtractionService(&mockProvider{doc: doc}, detector, management.NewNoopExtractor())
}

func boldLine(texts ...string) []domain.Fragment {
	frags := make([]domain.Fragment, 0, len(texts))
	for _, text := range texts {
		frags = append(frags, domain.Fragment{Text: text, FontName: "Arial-Bold"})
	}
	return frags
}

func plainLine(texts ...string) []domain.Fragment {
	frags := make([]domain.Fragment, 0, len(texts))
	for _, text := range texts {
		frags = append(frags, domain.Fragment{Text: text, FontName: "Arial"})
	}
	return frags
}

// directoryPage builds a two-company page in the source directory's shape.
func directoryPage() domain.PageLayout {
	return domain.PageLayout{
		Lines: [][]domain.Fragment{
			boldLine("DIRECTORY OF MEMBER COMPANIES"),
			boldLine("ACME MANUFACTURING", "SDN BHD"),
			plainLine("Tel No.: 03-12345678, 019-8765432"),
			plainLine("sales @ acme . com"),
			{},
			boldLine("GADGET WORKS BHD", "(Co. No.: 4567-X)"),
			plainLine("Tel No.: 04-7654321"),
			plainLine("info@gadget.com.my"),
		},
	}
}

// TestExtractPages_FullPipeline tests a realistic two-company page
func TestExtractPages_FullPipeline(t *testing.T) {
	doc := &mockDocument{pages: []domain.PageLayout{directoryPage()}}
	svc := newTestService(t, doc)

	result, err := svc.ExtractPages(context.Background(), "directory.pdf", []int{0})
	require.NoError(t, err)

	assert.Equal(t, "directory.pdf", result.DocumentPath)
	assert.Equal(t, 1, result.PageCount)
	assert.Empty(t, result.Skipped)
	require.Len(t, result.Pages, 1)

	page := result.Pages[0]
	require.Len(t, page.Records, 2)

	acme := page.Records[0]
	assert.NotEmpty(t, acme.ID)
	assert.Equal(t, "ACME MANUFACTURING SDN BHD", acme.Company)
	assert.Equal(t, []string{"03-12345678", "019-8765432"}, acme.Phones)
	assert.Equal(t, []string{"sales@acme.com"}, acme.Emails)
	assert.Empty(t, acme.Management)

	gadget := page.Records[1]
	assert.Equal(t, "GADGET WORKS BHD", gadget.Company)
	assert.Equal(t, []string{"04-7654321"}, gadget.Phones)
	assert.Equal(t, []string{"info@gadget.com.my"}, gadget.Emails)

	assert.Equal(t, []string{"ACME MANUFACTURING SDN BHD", "GADGET WORKS BHD"}, page.Summary.Companies)
	assert.Equal(t, []string{"sales@acme.com", "info@gadget.com.my"}, page.Summary.Emails)
	assert.Equal(t, []string{"03-12345678", "019-8765432", "04-7654321"}, page.Summary.Phones)
	assert.Empty(t, page.Summary.Management)

	assert.True(t, doc.closed)
}

// TestExtractPages_EmptyPage tests that a page without bold spans yields nothing
func TestExtractPages_EmptyPage(t *testing.T) {
	doc := &mockDocument{pages: []domain.PageLayout{
		{Lines: [][]domain.Fragment{plainLine("just plain prose")}},
	}}
	svc := newTestService(t, doc)

	result, err := svc.ExtractPages(context.Background(), "directory.pdf", []int{0})
	require.NoError(t, err)

	require.Len(t, result.Pages, 1)
	assert.Empty(t, result.Pages[0].Records)
	assert.Empty(t, result.Pages[0].Summary.Companies)
}

// TestExtractPages_OutOfRangeSkipped tests warn-and-skip for bad indices
func TestExtractPages_OutOfRangeSkipped(t *testing.T) {
	doc := &mockDocument{pages: []domain.PageLayout{directoryPage()}}
	svc := newTestService(t, doc)

	result, err := svc.ExtractPages(context.Background(), "directory.pdf", []int{-1, 0, 7})
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 7}, result.Skipped)
	require.Len(t, result.Pages, 1)
	assert.Equal(t, 0, result.Pages[0].PageIndex)
}

// TestExtractPages_OpenFailureIsFatal tests the one fatal condition
func TestExtractPages_OpenFailureIsFatal(t *testing.T) {
	detector, err := headers.New(headers.ConfigFromHeuristics(domain.DefaultHeuristics()))
	require.NoError(t, err)
	svc := NewExtractionService(
		&mockProvider{err: domain.ErrDocumentUnreadable},
		detector,
		management.NewNoopExtractor(),
	)

	result, err := svc.ExtractPages(context.Background(), "broken.pdf", []int{0})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
}

// TestExtractPages_DuplicateHeaderSharesBlock tests duplicate-name suppression
func TestExtractPages_DuplicateHeaderSharesBlock(t *testing.T) {
	doc := &mockDocument{pages: []domain.PageLayout{{
		Lines: [][]domain.Fragment{
			boldLine("A SDN BHD"),
			plainLine("Tel No.: 03-11111111"),
			boldLine("A SDN BHD"),
			plainLine("Tel No.: 03-22222222"),
		},
	}}}
	svc := newTestService(t, doc)

	result, err := svc.ExtractPages(context.Background(), "directory.pdf", []int{0})
	require.NoError(t, err)

	page := result.Pages[0]
	require.Len(t, page.Records, 1)
	// The duplicate does not open a second block, so the first company's
	// block runs to the page end and owns both phone lines.
	assert.Equal(t, "A SDN BHD", page.Records[0].Company)
	assert.Equal(t, []string{"03-11111111", "03-22222222"}, page.Records[0].Phones)
}

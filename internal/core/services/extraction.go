// Package services contains the core application services.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Finn-TH/scribe/internal/core/domain"
	"github.com/Finn-TH/scribe/internal/core/ports/driven"
	"github.com/Finn-TH/scribe/internal/logger"
	"github.com/Finn-TH/scribe/internal/pipeline/blocks"
	"github.com/Finn-TH/scribe/internal/pipeline/contacts"
	"github.com/Finn-TH/scribe/internal/pipeline/flatten"
	"github.com/Finn-TH/scribe/internal/pipeline/headers"
)

// ExtractionService runs the company extraction pipeline over document
// pages. All pipeline entities live for one page-processing call and are
// discarded once the page's records are assembled; nothing persists
// across pages or runs.
type ExtractionService struct {
	layouts  driven.LayoutProvider
	detector *headers.Detector
	mgmt     driven.ManagementExtractor
}

// NewExtractionService creates an extraction service.
func NewExtractionService(
	layouts driven.LayoutProvider,
	detector *headers.Detector,
	mgmt driven.ManagementExtractor,
) *ExtractionService {
	return &ExtractionService{
		layouts:  layouts,
		detector: detector,
		mgmt:     mgmt,
	}
}

// ExtractPages opens the document and extracts the requested zero-based
// pages in order. Out-of-range indices are recorded as skipped and do
// not fail the run; a document that cannot be opened is fatal.
func (s *ExtractionService) ExtractPages(ctx context.Context, path string, pages []int) (*domain.ExtractionResult, error) {
	if s.layouts == nil {
		return nil, domain.ErrNotImplemented
	}

	doc, err := s.layouts.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = doc.Close() }()

	result := &domain.ExtractionResult{
		DocumentPath: path,
		PageCount:    doc.PageCount(),
	}
	logger.Info("Loaded %s (%d pages)", path, result.PageCount)

	for _, page := range pages {
		if page < 0 || page >= result.PageCount {
			logger.Warn("Skipping page %d: outside [0, %d)", page, result.PageCount)
			result.Skipped = append(result.Skipped, page)
			continue
		}

		pageResult, err := s.extractPage(ctx, doc, page)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", page, err)
		}
		result.Pages = append(result.Pages, pageResult)
	}

	return result, nil
}

// extractPage runs the full pipeline on one in-range page:
// flatten, detect headers, slice blocks, extract contacts, aggregate.
func (s *ExtractionService) extractPage(ctx context.Context, doc driven.LayoutDocument, page int) (domain.PageResult, error) {
	logger.Section(fmt.Sprintf("Page %d", page))

	layout, err := doc.PageLayout(ctx, page)
	if err != nil {
		return domain.PageResult{}, err
	}

	spans, lines := flatten.Flatten(layout)
	logger.Debug("Flattened %d spans across %d lines", len(spans), len(lines))

	detected := s.detector.Detect(spans)
	logger.Debug("Detected %d headers", len(detected))

	sliced := blocks.Slice(detected, spans, lines)

	records := make([]domain.Record, 0, len(sliced))
	for _, block := range sliced {
		record, err := s.assembleRecord(ctx, block)
		if err != nil {
			return domain.PageResult{}, err
		}
		records = append(records, record)
	}

	return domain.PageResult{
		PageIndex: page,
		Records:   records,
		Summary:   summarise(records),
	}, nil
}

// assembleRecord combines contact extraction and management extraction
// for one block into a record.
func (s *ExtractionService) assembleRecord(ctx context.Context, block domain.Block) (domain.Record, error) {
	set := contacts.Extract(block.BodyText)

	var mgmt []string
	if s.mgmt != nil {
		var err error
		mgmt, err = s.mgmt.Extract(ctx, block)
		if err != nil {
			return domain.Record{}, fmt.Errorf("management extraction for %q: %w", block.CompanyName, err)
		}
	}

	return domain.Record{
		ID:         uuid.New().String(),
		Company:    block.CompanyName,
		Emails:     set.Emails,
		Phones:     set.Phones,
		Management: domain.Dedup(mgmt),
	}, nil
}

// summarise builds the page-level rollup: company names in record order
// and page-wide first-seen-order unions of the contact fields.
func summarise(records []domain.Record) domain.PageSummary {
	var companies, emails, phones, mgmt []string
	for _, r := range records {
		companies = append(companies, r.Company)
		emails = append(emails, r.Emails...)
		phones = append(phones, r.Phones...)
		mgmt = append(mgmt, r.Management...)
	}
	return domain.PageSummary{
		Companies:  companies,
		Emails:     domain.Dedup(emails),
		Phones:     domain.Dedup(phones),
		Management: domain.Dedup(mgmt),
	}
}

// Package render formats extraction results for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// Styles contains the pre-configured lipgloss styles for result output.
type Styles struct {
	// PageTitle marks the start of a page's results.
	PageTitle lipgloss.Style

	// Section labels a rollup section (companies, emails, ...).
	Section lipgloss.Style

	// Company renders a company name.
	Company lipgloss.Style

	// Muted renders placeholder text for empty fields.
	Muted lipgloss.Style
}

// DefaultStyles returns the default result styling.
func DefaultStyles() Styles {
	return Styles{
		PageTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Section:   lipgloss.NewStyle().Bold(true),
		Company:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Result renders the whole extraction result with default styles.
func Result(result *domain.ExtractionResult) string {
	return DefaultStyles().Result(result)
}

// Result renders every processed page's records and rollups.
func (s Styles) Result(result *domain.ExtractionResult) string {
	var b strings.Builder
	for i := range result.Pages {
		b.WriteString(s.page(&result.Pages[i]))
	}
	return b.String()
}

// page renders one page's company list and deduplicated rollups.
func (s Styles) page(page *domain.PageResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.PageTitle.Render(fmt.Sprintf("--- Page %d ---", page.PageIndex)))
	b.WriteString("\n")

	b.WriteString(s.Section.Render(fmt.Sprintf("Companies (%d)", len(page.Summary.Companies))))
	b.WriteString("\n")
	if len(page.Summary.Companies) == 0 {
		b.WriteString("  " + s.Muted.Render("(none)") + "\n")
	}
	for _, company := range page.Summary.Companies {
		b.WriteString("  " + s.Company.Render(company) + "\n")
	}

	b.WriteString(s.rollup("Emails", page.Summary.Emails))
	b.WriteString(s.rollup("Phones", page.Summary.Phones))
	b.WriteString(s.rollup("Management", page.Summary.Management))

	return b.String()
}

// rollup renders one labelled, comma-joined field union.
func (s Styles) rollup(label string, values []string) string {
	rendered := s.Muted.Render("(none)")
	if len(values) > 0 {
		rendered = strings.Join(values, ", ")
	}
	return s.Section.Render(label+":") + " " + rendered + "\n"
}

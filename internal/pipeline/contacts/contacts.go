// Package contacts extracts normalised phone numbers and emails from a
// company block's free text.
//
// The text arrives from a PDF text layer that reflows visual lines, so
// emails are frequently broken across lines at the "@" or "." boundary.
// The patterns here absorb that broken whitespace while still requiring
// a plausible shape, to avoid matching unrelated "word.word" text. The
// functions are pure (text in, structured list out) so the patterns can
// be iterated and tested independently of layout extraction.
package contacts

import (
	"regexp"
	"strings"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

var (
	// telLabelRe locates a telephone label and captures the text that
	// follows it up to the next line break.
	telLabelRe = regexp.MustCompile(`(?i)Tel\.?\s*No\.?\s*:\s*([^\n\r]+)`)

	// phoneRe matches a phone shape: optional country-code prefix,
	// 2-3 digit area code, optional hyphen, 5-8 digit subscriber number.
	phoneRe = regexp.MustCompile(`\b(?:\+?6?0)?\d{2,3}-?\d{5,8}\b`)

	// emailRe matches an email possibly broken across visual lines,
	// with stray whitespace around the "@" and dots. Groups: local part,
	// domain, first TLD label, optional second TLD label.
	emailRe = regexp.MustCompile(`([A-Za-z0-9._%+-]+)\s*@\s*([A-Za-z0-9.-]+)\s*\.\s*([A-Za-z]{2,})(?:\.\s*([A-Za-z]{2,}))?`)
)

// Extract pulls phones and emails from one block's body text.
func Extract(blockText string) domain.ContactSet {
	return domain.ContactSet{
		Phones: Phones(blockText),
		Emails: Emails(blockText),
	}
}

// Phones returns the deduplicated phone numbers found after telephone
// labels, in first-seen order. Digit sequences without a preceding label
// are intentionally ignored: registration numbers and other identifiers
// share the phone shape, so precision wins over recall.
func Phones(text string) []string {
	var phones []string
	for _, m := range telLabelRe.FindAllStringSubmatch(text, -1) {
		tail := m[1]
		phones = append(phones, phoneRe.FindAllString(tail, -1)...)
	}
	return domain.Dedup(phones)
}

// Emails returns the deduplicated emails found anywhere in the text,
// reconstructed from reflowed matches and lower-cased, in first-seen order.
func Emails(text string) []string {
	var emails []string
	for _, m := range emailRe.FindAllStringSubmatch(text, -1) {
		local, dom, tld1, tld2 := m[1], m[2], m[3], m[4]
		email := local + "@" + dom + "." + tld1
		if tld2 != "" {
			email += "." + tld2
		}
		emails = append(emails, strings.ToLower(email))
	}
	return domain.Dedup(emails)
}

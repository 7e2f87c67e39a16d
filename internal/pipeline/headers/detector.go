// Package headers detects company-name headers from runs of bold spans.
//
// Company names in the source directories are always rendered in bold and
// terminate with a legal-entity suffix or a registration-number
// parenthetical. Administrative labels (section titles, contact-field
// labels) are frequently bold too and must be excluded explicitly, or
// they would produce false headers.
package headers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Finn-TH/scribe/internal/core/domain"
)

// registrationRe matches a registration-number annotation such as
// "(Co. No.: 123456-A)", tolerating the optional spaces seen in the
// source material.
var registrationRe = regexp.MustCompile(`(?i)\(Co\. ?No\. ?: ?([A-Z0-9-]+)\)`)

// registrationMarker is the literal prefix of a registration annotation.
// Its presence alone flushes the accumulated run, even before the closing
// parenthesis has been seen.
const registrationMarker = "(Co. No."

// doubleSpaceRe collapses the double space left behind when a
// registration annotation is stripped from the middle of a name.
var doubleSpaceRe = regexp.MustCompile(`\s{2,}`)

// Config carries the heuristic tables for one detector instance.
// The tables are injected rather than read from package state so they
// can be customised per deployment and tested in isolation.
type Config struct {
	// RejectPrefixes disqualify a bold run by case-insensitive
	// "starts with" match.
	RejectPrefixes []string

	// CompanySuffixes are legal-entity suffix keywords, matched as
	// whole words case-insensitively.
	CompanySuffixes []string

	// MaxNameLength is the maximum accepted cleaned name length.
	// Zero means the default of 120.
	MaxNameLength int
}

// ConfigFromHeuristics builds a detector config from loaded heuristics.
func ConfigFromHeuristics(h domain.Heuristics) Config {
	return Config{
		RejectPrefixes:  h.RejectPrefixes,
		CompanySuffixes: h.CompanySuffixes,
		MaxNameLength:   h.MaxNameLength,
	}
}

// state is the detector's position in the bold-run state machine.
type state int

const (
	// stateIdle means no bold run is being accumulated.
	stateIdle state = iota

	// stateAccumulating means a bold run is open in the buffer.
	stateAccumulating
)

// Detector recognises company-name headers in a span sequence.
type Detector struct {
	cfg      Config
	suffixRe *regexp.Regexp
}

// New compiles a detector from the given config. It fails when no
// company suffixes are configured, since the detector would then never
// recognise a suffix-terminated name.
func New(cfg Config) (*Detector, error) {
	if len(cfg.CompanySuffixes) == 0 {
		return nil, fmt.Errorf("headers: %w: no company suffixes configured", domain.ErrInvalidInput)
	}
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = 120
	}

	quoted := make([]string, 0, len(cfg.CompanySuffixes))
	for _, suffix := range cfg.CompanySuffixes {
		quoted = append(quoted, regexp.QuoteMeta(suffix))
	}
	suffixRe, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("headers: compile suffix pattern: %w", err)
	}

	return &Detector{cfg: cfg, suffixRe: suffixRe}, nil
}

// Detect runs the state machine over the span sequence and returns the
// recognised headers in document order, deduplicated by cleaned name
// with the first occurrence winning.
//
// Transitions:
//   - bold span starting with a rejection prefix: flush, discard the span
//   - bold span: accumulate; flush immediately when the joined buffer
//     contains a company marker (suffix keyword or registration annotation)
//   - non-bold span: flush (a company name is an uninterrupted bold run)
//   - end of sequence: one final flush
//
// A buffer containing a marker flushes as soon as the marker appears, even
// when the name would have continued on the next span. The source data
// does not disambiguate that case; the behaviour is kept as observed.
func (d *Detector) Detect(spans []domain.Span) []domain.Header {
	var (
		candidates []domain.Header
		buf        []string
		lastIdx    int
		st         = stateIdle
	)

	flush := func() {
		if st == stateIdle {
			return
		}
		if header, ok := d.accept(strings.Join(buf, " "), lastIdx); ok {
			candidates = append(candidates, header)
		}
		buf = buf[:0]
		st = stateIdle
	}

	for i, span := range spans {
		if !span.Bold {
			flush()
			continue
		}
		if d.hasRejectPrefix(span.Text) {
			flush()
			continue
		}

		buf = append(buf, span.Text)
		lastIdx = i
		st = stateAccumulating

		if d.isCompanyMarker(strings.Join(buf, " ")) || strings.Contains(span.Text, registrationMarker) {
			flush()
		}
	}
	flush()

	return dedupByName(candidates)
}

// accept validates a flushed run and produces a header when it names a
// company. The registration annotation is stripped from the cleaned name.
func (d *Detector) accept(joined string, lastIdx int) (domain.Header, bool) {
	joined = strings.TrimSpace(joined)
	if joined == "" {
		return domain.Header{}, false
	}
	if d.hasRejectPrefix(joined) {
		return domain.Header{}, false
	}
	if !d.isCompanyMarker(joined) {
		return domain.Header{}, false
	}

	clean := registrationRe.ReplaceAllString(joined, "")
	clean = strings.TrimSpace(doubleSpaceRe.ReplaceAllString(clean, " "))
	if clean == "" || len(clean) > d.cfg.MaxNameLength {
		return domain.Header{}, false
	}

	return domain.Header{CompanyName: clean, TerminatorSpan: lastIdx}, true
}

// isCompanyMarker reports whether text contains a legal-entity suffix or
// a registration-number annotation.
func (d *Detector) isCompanyMarker(text string) bool {
	return d.suffixRe.MatchString(text) || strings.Contains(text, registrationMarker)
}

// hasRejectPrefix reports whether text starts with one of the configured
// rejection phrases, case-insensitively.
func (d *Detector) hasRejectPrefix(text string) bool {
	lowered := strings.ToLower(text)
	for _, prefix := range d.cfg.RejectPrefixes {
		if strings.HasPrefix(lowered, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// dedupByName keeps the first header for each cleaned name, preserving
// document order.
func dedupByName(headers []domain.Header) []domain.Header {
	seen := make(map[string]struct{}, len(headers))
	out := make([]domain.Header, 0, len(headers))
	for _, h := range headers {
		if _, ok := seen[h.CompanyName]; ok {
			continue
		}
		seen[h.CompanyName] = struct{}{}
		out = append(out, h)
	}
	return out
}

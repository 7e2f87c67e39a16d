package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtract_PhonesAndBrokenEmail tests the combined extraction fixture
func TestExtract_PhonesAndBrokenEmail(t *testing.T) {
	set := Extract("Tel No.: 03-12345678, 019-8765432\nsome.person @ example . com")

	assert.Equal(t, []string{"03-12345678", "019-8765432"}, set.Phones)
	assert.Equal(t, []string{"some.person@example.com"}, set.Emails)
}

// TestPhones_RequireLabel tests that unlabelled digit runs are ignored
func TestPhones_RequireLabel(t *testing.T) {
	text := "Registration 123456-A\n03-12345678 appears without a label"

	assert.Empty(t, Phones(text))
}

// TestPhones_LabelVariants tests tolerated label spellings
func TestPhones_LabelVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"dotted", "Tel. No.: 03-12345678"},
		{"undotted", "Tel No: 03-12345678"},
		{"compact", "TelNo: 03-12345678"},
		{"lower case", "tel no.: 03-12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{"03-12345678"}, Phones(tt.text))
		})
	}
}

// TestPhones_StopAtLineBreak tests that a label only claims its own line
func TestPhones_StopAtLineBreak(t *testing.T) {
	text := "Tel No.: 03-12345678\n04-7654321 belongs to nobody"

	assert.Equal(t, []string{"03-12345678"}, Phones(text))
}

// TestPhones_CountryCodePrefix tests the optional country-code prefix
func TestPhones_CountryCodePrefix(t *testing.T) {
	// A leading "+" sits outside any word boundary, so the match starts
	// at the first digit; the 60 country prefix itself is kept.
	text := "Tel No.: +603-12345678 and Tel No.: 6019-8765432"

	assert.Equal(t, []string{"603-12345678", "6019-8765432"}, Phones(text))
}

// TestPhones_Dedup tests first-seen-order deduplication across labels
func TestPhones_Dedup(t *testing.T) {
	text := "Tel No.: 03-12345678\nTel No.: 03-12345678, 019-8765432"

	assert.Equal(t, []string{"03-12345678", "019-8765432"}, Phones(text))
}

// TestEmails_ReflowAcrossLines tests reconstruction of line-broken emails
func TestEmails_ReflowAcrossLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"broken at @", "sales\n@example.com", "sales@example.com"},
		{"broken at dot", "sales@example\n.com", "sales@example.com"},
		{"spaces everywhere", "sales @ example . com", "sales@example.com"},
		{"intact", "sales@example.com", "sales@example.com"},
		{"compound TLD", "info@widget.com.my", "info@widget.com.my"},
		{"subdomain", "ops@mail.example.com", "ops@mail.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emails(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

// TestEmails_LowerCased tests case normalisation
func TestEmails_LowerCased(t *testing.T) {
	assert.Equal(t, []string{"sales@example.com"}, Emails("SALES@Example.COM"))
}

// TestEmails_Dedup tests first-seen-order deduplication
func TestEmails_Dedup(t *testing.T) {
	text := "a@example.com b@example.com A@EXAMPLE.COM"

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, Emails(text))
}

// TestExtract_NoMatches tests that absent contacts are simply empty
func TestExtract_NoMatches(t *testing.T) {
	set := Extract("manufacturer and distributor of widgets")

	assert.Empty(t, set.Phones)
	assert.Empty(t, set.Emails)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFragment_IsBold tests boldness derivation from font name and weight
func TestFragment_IsBold(t *testing.T) {
	tests := []struct {
		name     string
		fragment Fragment
		want     bool
	}{
		{"bold in font name", Fragment{Text: "ACME", FontName: "Helvetica-Bold"}, true},
		{"bold case-insensitive", Fragment{Text: "ACME", FontName: "ARIALBOLDMT"}, true},
		{"regular font", Fragment{Text: "acme", FontName: "Helvetica"}, false},
		{"weight 700", Fragment{Text: "ACME", FontName: "CustomFace", FontWeight: 700}, true},
		{"weight above 700", Fragment{Text: "ACME", FontName: "CustomFace", FontWeight: 800}, true},
		{"weight below 700", Fragment{Text: "acme", FontName: "CustomFace", FontWeight: 400}, false},
		{"no style information", Fragment{Text: "acme"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fragment.IsBold())
		})
	}
}

// TestDefaultHeuristics_Tables tests the built-in heuristic tables
func TestDefaultHeuristics_Tables(t *testing.T) {
	h := DefaultHeuristics()

	assert.Contains(t, h.RejectPrefixes, "directory of")
	assert.Contains(t, h.RejectPrefixes, "management")
	assert.Equal(t, []string{"SDN BHD", "BHD", "BERHAD"}, h.CompanySuffixes)
	assert.Equal(t, 120, h.MaxNameLength)
	assert.Equal(t, []int{3}, h.DefaultPages)
}

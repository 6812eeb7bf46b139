package analysis

import (
	"strings"
	"testing"
)

func TestDecodeAnalysis(t *testing.T) {
	payload := `{
		"descriptiveName": "red-fox-in-snow",
		"title": "Red Fox in Snow",
		"altText": "A red fox in fresh snow.",
		"metaDescription": "A red fox in a snowy clearing.",
		"keywords": ["fox", "snow"],
		"locationName": "",
		"city": "",
		"stateProvince": "",
		"country": "Canada"
	}`

	tests := []struct {
		name     string
		response string
	}{
		{"bare json", payload},
		{"json code fence", "```json\n" + payload + "\n```"},
		{"plain code fence", "```\n" + payload + "\n```"},
		{"surrounding whitespace", "\n\n  " + payload + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAnalysis(tt.response)
			if got.DescriptiveName != "red-fox-in-snow" {
				t.Errorf("DescriptiveName = %q", got.DescriptiveName)
			}
			if got.Title != "Red Fox in Snow" {
				t.Errorf("Title = %q", got.Title)
			}
			if len(got.Keywords) != 2 || got.Keywords[0] != "fox" {
				t.Errorf("Keywords = %v", got.Keywords)
			}
			if got.Country != "Canada" {
				t.Errorf("Country = %q", got.Country)
			}
		})
	}
}

func TestDecodeAnalysisSalvagesNonJSON(t *testing.T) {
	raw := strings.Repeat("The image shows a busy street market. ", 12)

	got := decodeAnalysis(raw)
	if got.DescriptiveName != "unnamed-image" {
		t.Errorf("DescriptiveName = %q, want unnamed-image", got.DescriptiveName)
	}
	if len(got.AltText) != 200 {
		t.Errorf("AltText length = %d, want 200", len(got.AltText))
	}
	if len(got.MetaDescription) != 300 {
		t.Errorf("MetaDescription length = %d, want 300", len(got.MetaDescription))
	}
	if got.Keywords == nil || len(got.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", got.Keywords)
	}
}

func TestDecodeAnalysisDefaultsEmptyName(t *testing.T) {
	got := decodeAnalysis(`{"altText": "something"}`)
	if got.DescriptiveName != "unnamed-image" {
		t.Errorf("DescriptiveName = %q, want unnamed-image", got.DescriptiveName)
	}
	if got.Keywords == nil {
		t.Error("Keywords must never be nil")
	}
}

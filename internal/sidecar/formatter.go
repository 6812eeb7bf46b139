package sidecar

import (
	"fmt"
	"strings"
	"time"

	"github.com/curate-labs/imagemeta/internal/models"
)

// placeholder shown for fields with no value
const emptyField = "—"

// Formatter renders the sidecar metadata document that accompanies an
// exported image. Now is consulted only for the Date Created line and the
// copyright year; it defaults to time.Now.
type Formatter struct {
	Now func() time.Time
}

// New returns a Formatter using the wall clock.
func New() *Formatter {
	return &Formatter{Now: time.Now}
}

// Format produces the markdown document for one exported image. The layout
// is fixed: heading, title, alt text, description, keywords, copyright and
// creator placeholders, creation date, rights statement placeholder, and a
// location block.
func (f *Formatter) Format(fileName string, analysis *models.ImageAnalysis) string {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	dateCreated := now.Format("2006-01-02")

	locationParts := make([]string, 0, 4)
	for _, part := range []string{analysis.LocationName, analysis.City, analysis.StateProvince, analysis.Country} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}
	locationString := strings.Join(locationParts, ", ")
	if locationString == "" {
		locationString = emptyField
	}

	keywords := emptyField
	if len(analysis.Keywords) > 0 {
		keywords = strings.Join(analysis.Keywords, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", fileName)
	fmt.Fprintf(&b, "## Title\n%s\n\n", orDash(analysis.Title))
	fmt.Fprintf(&b, "## Alt Text\n%s\n\n", orDash(analysis.AltText))
	fmt.Fprintf(&b, "## Description\n%s\n\n", orDash(analysis.MetaDescription))
	fmt.Fprintf(&b, "## Keywords\n%s\n\n", keywords)
	fmt.Fprintf(&b, "## Copyright\n<!-- Fill in: e.g. © %d Your Company. All rights reserved. -->\n\n", now.Year())
	b.WriteString("## Creator\n<!-- Fill in: e.g. Photography: Name | Edit: Design Team -->\n\n")
	fmt.Fprintf(&b, "## Date Created\n%s\n\n", dateCreated)
	b.WriteString("## Web Statement of Rights\n<!-- Fill in: e.g. https://example.com/image-licensing-terms -->\n\n")
	fmt.Fprintf(&b, "## Location\n%s\n\n", locationString)
	b.WriteString("### Location Details\n")
	fmt.Fprintf(&b, "- **Location Name:** %s\n", orDash(analysis.LocationName))
	fmt.Fprintf(&b, "- **City:** %s\n", orDash(analysis.City))
	fmt.Fprintf(&b, "- **State/Province:** %s\n", orDash(analysis.StateProvince))
	fmt.Fprintf(&b, "- **Country:** %s\n", orDash(analysis.Country))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

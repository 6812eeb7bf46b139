package models

import "fmt"

// AnalysisField enumerates the editable fields of an ImageAnalysis.
type AnalysisField string

const (
	FieldDescriptiveName AnalysisField = "descriptive_name"
	FieldTitle           AnalysisField = "title"
	FieldAltText         AnalysisField = "alt_text"
	FieldMetaDescription AnalysisField = "meta_description"
	FieldKeywords        AnalysisField = "keywords"
	FieldLocationName    AnalysisField = "location_name"
	FieldCity            AnalysisField = "city"
	FieldStateProvince   AnalysisField = "state_province"
	FieldCountry         AnalysisField = "country"
)

// FieldEdit is a single edit to one analysis field. Keyword edits carry the
// full replacement list in Keywords; every other field uses Value.
type FieldEdit struct {
	Field    AnalysisField `json:"field"`
	Value    string        `json:"value,omitempty"`
	Keywords []string      `json:"keywords,omitempty"`
}

// Apply writes the edit onto the analysis record. The item's status is
// never affected by edits.
func (a *ImageAnalysis) Apply(edit FieldEdit) error {
	switch edit.Field {
	case FieldDescriptiveName:
		a.DescriptiveName = edit.Value
	case FieldTitle:
		a.Title = edit.Value
	case FieldAltText:
		a.AltText = edit.Value
	case FieldMetaDescription:
		a.MetaDescription = edit.Value
	case FieldKeywords:
		a.Keywords = edit.Keywords
	case FieldLocationName:
		a.LocationName = edit.Value
	case FieldCity:
		a.City = edit.Value
	case FieldStateProvince:
		a.StateProvince = edit.Value
	case FieldCountry:
		a.Country = edit.Value
	default:
		return fmt.Errorf("unknown analysis field: %q", edit.Field)
	}
	return nil
}

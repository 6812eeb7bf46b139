package analysis

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/curate-labs/imagemeta/internal/models"
)

// wireAnalysis matches the JSON shape requested in the prompt.
type wireAnalysis struct {
	DescriptiveName string   `json:"descriptiveName"`
	Title           string   `json:"title"`
	AltText         string   `json:"altText"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	LocationName    string   `json:"locationName"`
	City            string   `json:"city"`
	StateProvince   string   `json:"stateProvince"`
	Country         string   `json:"country"`
}

// decodeAnalysis parses the model response into an analysis record.
// Markdown code fences are stripped first. When the response is not valid
// JSON the raw text is salvaged into the alt text and description fields so
// the user still gets something to edit.
func decodeAnalysis(response string) *models.ImageAnalysis {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	var wire wireAnalysis
	if err := json.Unmarshal([]byte(response), &wire); err != nil {
		slog.Warn("Failed to parse analysis JSON, salvaging raw output", "error", err)
		return &models.ImageAnalysis{
			DescriptiveName: "unnamed-image",
			AltText:         truncate(response, 200),
			MetaDescription: truncate(response, 300),
			Keywords:        []string{},
		}
	}

	if wire.DescriptiveName == "" {
		wire.DescriptiveName = "unnamed-image"
	}
	if wire.Keywords == nil {
		wire.Keywords = []string{}
	}

	return &models.ImageAnalysis{
		DescriptiveName: wire.DescriptiveName,
		Title:           wire.Title,
		AltText:         wire.AltText,
		MetaDescription: wire.MetaDescription,
		Keywords:        wire.Keywords,
		LocationName:    wire.LocationName,
		City:            wire.City,
		StateProvince:   wire.StateProvince,
		Country:         wire.Country,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package models

import "time"

// Status tracks an image through the processing lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// MediaType is the MIME type of a loaded image.
type MediaType string

const (
	MediaTypeJPEG MediaType = "image/jpeg"
	MediaTypePNG  MediaType = "image/png"
	MediaTypeGIF  MediaType = "image/gif"
	MediaTypeWebP MediaType = "image/webp"
)

// ImageAnalysis is the structured metadata generated for one image.
// Every field may be edited after generation.
type ImageAnalysis struct {
	DescriptiveName string   `json:"descriptive_name"`
	Title           string   `json:"title"`
	AltText         string   `json:"alt_text"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	LocationName    string   `json:"location_name"`
	City            string   `json:"city"`
	StateProvince   string   `json:"state_province"`
	Country         string   `json:"country"`
}

// ImageItem represents one image loaded into a batch.
type ImageItem struct {
	ID               string         `json:"id"`
	OriginalFileName string         `json:"original_file_name"`
	Data             []byte         `json:"-"`
	MediaType        MediaType      `json:"media_type"`
	Status           Status         `json:"status"`
	Error            string         `json:"error,omitempty"`
	Analysis         *ImageAnalysis `json:"analysis,omitempty"`
	FinalFileName    string         `json:"final_file_name,omitempty"`
	Exported         bool           `json:"exported"`
	LoadedAt         time.Time      `json:"loaded_at"`
}

// Settings holds the user-configurable naming and language options.
// They are held constant for the duration of a processing or export pass.
type Settings struct {
	Language  string `json:"language" yaml:"language"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Suffix    string `json:"suffix" yaml:"suffix"`
	Separator string `json:"separator" yaml:"separator"`
}

package export

import (
	"github.com/curate-labs/imagemeta/internal/models"
	"github.com/curate-labs/imagemeta/internal/naming"
)

// candidateName builds the templated file name for one item before collision
// resolution. The descriptive name is sanitized again here because the user
// may have edited it after analysis.
func candidateName(item *models.ImageItem, settings models.Settings) string {
	slug := naming.Sanitize(item.Analysis.DescriptiveName)
	if slug == "" {
		slug = "unnamed-image"
	}
	ext := naming.Extension(item.OriginalFileName)
	return naming.BuildFileName(settings.Prefix, slug, settings.Suffix, settings.Separator, ext)
}

// exportable reports whether an item participates in an export pass.
// Anything without a completed analysis is skipped untouched.
func exportable(item *models.ImageItem) bool {
	return item.Status == models.StatusDone && item.Analysis != nil
}

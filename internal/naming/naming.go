package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// BuildFileName assembles an export file name from the configured prefix and
// suffix, the AI-suggested base name, and the original extension. Prefix and
// suffix are trimmed and omitted when empty; the separator joins whatever
// parts remain, verbatim. The extension is lower-cased and always starts
// with a dot.
func BuildFileName(prefix, aiName, suffix, separator, originalExtension string) string {
	parts := make([]string, 0, 3)
	if p := strings.TrimSpace(prefix); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, strings.TrimSpace(aiName))
	if s := strings.TrimSpace(suffix); s != "" {
		parts = append(parts, s)
	}

	ext := originalExtension
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return strings.Join(parts, separator) + strings.ToLower(ext)
}

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Sanitize converts free text into a kebab-case slug safe for file names.
func Sanitize(text string) string {
	s := strings.ToLower(text)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Extension returns the lower-cased extension of fileName, including the dot.
func Extension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}

// ResolveUnique returns candidate unchanged when taken reports it free.
// Otherwise it probes base-2.ext, base-3.ext, ... and returns the first free
// name. The counter is strictly increasing, so the probe terminates for any
// finite taken set.
func ResolveUnique(candidate string, taken func(string) bool) string {
	if !taken(candidate) {
		return candidate
	}

	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)

	for counter := 2; ; counter++ {
		name := fmt.Sprintf("%s-%d%s", base, counter, ext)
		if !taken(name) {
			return name
		}
	}
}

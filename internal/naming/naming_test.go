package naming

import (
	"testing"
)

func TestBuildFileName(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		aiName    string
		suffix    string
		separator string
		extension string
		want      string
	}{
		{
			name:      "prefix and suffix",
			prefix:    "blog",
			aiName:    "red-fox-in-snow",
			suffix:    "hero",
			separator: "-",
			extension: "JPG",
			want:      "blog-red-fox-in-snow-hero.jpg",
		},
		{
			name:      "no prefix",
			aiName:    "sunset-over-bay",
			suffix:    "web",
			separator: "-",
			extension: ".png",
			want:      "sunset-over-bay-web.png",
		},
		{
			name:      "no suffix",
			prefix:    "shop",
			aiName:    "leather-boots",
			separator: "_",
			extension: ".webp",
			want:      "shop_leather-boots.webp",
		},
		{
			name:      "bare name",
			aiName:    "mountain-lake",
			separator: "-",
			extension: ".jpeg",
			want:      "mountain-lake.jpeg",
		},
		{
			name:      "whitespace-only prefix and suffix are omitted",
			prefix:    "   ",
			aiName:    "city-street",
			suffix:    "\t",
			separator: "-",
			extension: ".gif",
			want:      "city-street.gif",
		},
		{
			name:      "extension without dot gets one",
			aiName:    "harbor-cranes",
			separator: "-",
			extension: "png",
			want:      "harbor-cranes.png",
		},
		{
			name:      "upper-case extension is normalized",
			prefix:    "press",
			aiName:    "ceo-portrait",
			separator: "-",
			extension: ".JPEG",
			want:      "press-ceo-portrait.jpeg",
		},
		{
			name:      "separator used verbatim",
			prefix:    "a",
			aiName:    "b",
			suffix:    "c",
			separator: "__",
			extension: ".jpg",
			want:      "a__b__c.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFileName(tt.prefix, tt.aiName, tt.suffix, tt.separator, tt.extension)
			if got != tt.want {
				t.Errorf("BuildFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already a slug", "red-fox-in-snow", "red-fox-in-snow"},
		{"mixed case and spaces", "Red Fox in Snow", "red-fox-in-snow"},
		{"punctuation stripped", "café & bar, downtown!", "caf-bar-downtown"},
		{"hyphen runs collapse", "a -- b --- c", "a-b-c"},
		{"leading and trailing hyphens trimmed", "-edge-case-", "edge-case"},
		{"empty input", "", ""},
		{"only invalid characters", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"photo.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"shot.webp", ".webp"},
	}

	for _, tt := range tests {
		if got := Extension(tt.fileName); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestResolveUnique(t *testing.T) {
	taken := func(names ...string) func(string) bool {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
		return func(n string) bool { return set[n] }
	}

	tests := []struct {
		name      string
		candidate string
		taken     func(string) bool
		want      string
	}{
		{
			name:      "free candidate returned unchanged",
			candidate: "photo.jpg",
			taken:     taken(),
			want:      "photo.jpg",
		},
		{
			name:      "first collision appends 2",
			candidate: "photo.jpg",
			taken:     taken("photo.jpg"),
			want:      "photo-2.jpg",
		},
		{
			name:      "counter keeps incrementing",
			candidate: "photo.jpg",
			taken:     taken("photo.jpg", "photo-2.jpg"),
			want:      "photo-3.jpg",
		},
		{
			name:      "no extension",
			candidate: "notes",
			taken:     taken("notes"),
			want:      "notes-2",
		},
		{
			name:      "gap is not reused below the counter",
			candidate: "img.png",
			taken:     taken("img.png", "img-2.png", "img-3.png"),
			want:      "img-4.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveUnique(tt.candidate, tt.taken)
			if got != tt.want {
				t.Errorf("ResolveUnique(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
			if tt.taken(got) {
				t.Errorf("ResolveUnique(%q) returned a taken name %q", tt.candidate, got)
			}
		})
	}
}

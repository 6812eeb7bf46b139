package analysis

import "fmt"

// buildPrompt creates the image description prompt. The model is asked for
// bare JSON so the response can be decoded directly; decode.go handles
// models that wrap the payload in code fences anyway.
func buildPrompt(language string) string {
	if language == "" {
		language = "en"
	}

	return fmt.Sprintf(`Analyze this image and respond with ONLY valid JSON (no markdown, no code fences) in this exact format:

{
  "descriptiveName": "short-kebab-case-name",
  "title": "Short human-readable title",
  "altText": "Descriptive alt text for accessibility",
  "metaDescription": "SEO-friendly meta description of the image",
  "keywords": ["keyword1", "keyword2", "keyword3"],
  "locationName": "Name of the depicted place, if identifiable",
  "city": "City, if identifiable",
  "stateProvince": "State or province, if identifiable",
  "country": "Country, if identifiable"
}

Rules for descriptiveName:
- 3-6 words maximum
- Kebab-case (lowercase, hyphens between words)
- Describe the key subject and action
- No filler words (a, the, of, etc.)

Rules for altText:
- One clear sentence describing what's in the image
- Useful for screen readers

Rules for metaDescription:
- One sentence, SEO-friendly
- Describes the image content and potential use

Rules for keywords:
- 5-10 relevant keywords
- Lowercase, single words or short phrases

Rules for location fields:
- Only fill in places you can actually identify from the image
- Use empty string "" when unknown; never guess

Write all human-readable text (title, altText, metaDescription, keywords) in the language with ISO code %q. The descriptiveName must stay in English kebab-case.`, language)
}

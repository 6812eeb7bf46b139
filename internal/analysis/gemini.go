package analysis

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/curate-labs/imagemeta/internal/models"
)

// Gemini analyzes images with Google Gemini.
type Gemini struct{}

// NewGemini returns a new Gemini analyzer.
func NewGemini() *Gemini {
	return &Gemini{}
}

// Analyze sends the image and description prompt to Gemini.
func (g *Gemini) Analyze(ctx context.Context, imageData []byte, mediaType models.MediaType, config Config) (*models.ImageAnalysis, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	modelName := config.Model
	if modelName == "" {
		modelName = DefaultModel("gemini")
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(config.Temperature))

	// genai wants the bare image format, not the full MIME type
	format := strings.TrimPrefix(string(mediaType), "image/")

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, imageData),
		genai.Text(buildPrompt(config.Language)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	return decodeAnalysis(string(txt)), nil
}

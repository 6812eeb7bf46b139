package analysis

import (
	"context"
	"fmt"
	"os"

	"github.com/curate-labs/imagemeta/internal/models"
)

// Config carries the per-request provider settings.
type Config struct {
	Model       string
	Temperature float64
	Language    string
}

// Analyzer produces descriptive metadata for a single image. Implementations
// make exactly one attempt; retry policy belongs to the caller.
type Analyzer interface {
	Analyze(ctx context.Context, imageData []byte, mediaType models.MediaType, config Config) (*models.ImageAnalysis, error)
}

// NewAnalyzer returns the analyzer for the named provider. An empty provider
// falls back to the IMAGEMETA_PROVIDER environment variable, then to gemini.
func NewAnalyzer(provider string) (Analyzer, error) {
	if provider == "" {
		provider = os.Getenv("IMAGEMETA_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
	}

	switch provider {
	case "gemini":
		return NewGemini(), nil
	case "openai":
		return NewOpenAI(), nil
	case "ollama":
		return NewOllama(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// DefaultModel returns the model used for a provider when none is requested.
func DefaultModel(provider string) string {
	switch provider {
	case "gemini":
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			return "gemini-2.0-flash"
		}
		return model
	case "openai":
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			return "gpt-4o"
		}
		return model
	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return "mistral-small3.2:24b"
		}
		return model
	default:
		return ""
	}
}

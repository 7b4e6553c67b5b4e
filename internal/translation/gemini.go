package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiEngine translates text using the Google Gemini API.
type GeminiEngine struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiEngine creates a new Gemini translation engine. The API client
// is created lazily on first use.
func NewGeminiEngine(apiKey, model string) *GeminiEngine {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiEngine{
		apiKey: apiKey,
		model:  model,
	}
}

// Translate translates text from sourceLang to targetLang.
func (e *GeminiEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	if e.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  e.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		e.client = client
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(translationPrompt(text, sourceLang, targetLang)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translation, nil
}

// Name returns the engine name.
func (e *GeminiEngine) Name() string {
	return "gemini"
}

// IsAvailable checks if the engine is configured.
func (e *GeminiEngine) IsAvailable() error {
	if e.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set")
	}
	return nil
}

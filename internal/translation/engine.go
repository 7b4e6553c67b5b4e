package translation

import (
	"context"
	"fmt"
)

// Engine defines the interface for external translation services.
type Engine interface {
	// Translate translates text from sourceLang to targetLang. Placeholders
	// of the form <id> must survive the translation unchanged.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name returns the engine name.
	Name() string

	// IsAvailable checks if the engine is properly configured.
	IsAvailable() error
}

// Config holds common configuration for translation engines.
type Config struct {
	Engine string // Engine name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine:      "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewEngine creates the appropriate translation engine based on
// configuration, wrapped in a circuit breaker.
func NewEngine(config *Config) (Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var engine Engine
	switch config.Engine {
	case "openai":
		engine = NewOpenAIEngine(config.OpenAIKey, config.OpenAIModel)
	case "gemini":
		engine = NewGeminiEngine(config.GeminiKey, config.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", config.Engine)
	}

	return NewBreakerEngine(engine), nil
}

// translationPrompt builds the instruction sent to chat-style engines.
func translationPrompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf("Translate the following text from %s to %s. "+
		"Keep any placeholders of the form <number> exactly as they are. "+
		"Respond with only the translation, nothing else.\n\n%s",
		sourceLang, targetLang, text)
}

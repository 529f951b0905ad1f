package llm

import (
	"context"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultOpenAIModel    = "gpt-3.5-turbo"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
)

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Model name (e.g., "gpt-3.5-turbo", "claude-3-5-haiku-latest")
}

// TextClient sends a single prompt and returns the model's raw text.
type TextClient interface {
	Complete(ctx context.Context, req TextRequest) (*TextResponse, error)
	Model() string
}

// TextRequest is one user prompt.
type TextRequest struct {
	Prompt      string
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = model default
}

// TextResponse contains the model's reply, untrimmed.
type TextResponse struct {
	Content          string
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

// NewTextClient creates a TextClient for cfg.Provider. Defaults to OpenAI.
func NewTextClient(cfg Config) (TextClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

func Temp(t float64) *float64 {
	return &t
}

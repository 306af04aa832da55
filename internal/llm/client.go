package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateContent generates free-form text for a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// GenerateJSON generates a JSON document for a prompt; implementations
	// strip markdown wrappers and reasoning traces from the response
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Model returns the configured model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client for the configured backend.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Backend {
	case BackendOpenAI:
		return newOpenAIClient(config)
	case BackendOllama:
		return newOllamaClient(config)
	case BackendGemini:
		return NewGeminiClient(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported model backend %q", config.Backend)
	}
}

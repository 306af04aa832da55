package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// langchainClient implements Client over any langchaingo model.
// Both the OpenAI and Ollama backends go through it.
type langchainClient struct {
	model  llms.Model
	config *Config
}

func newOpenAIClient(config *Config) (*langchainClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for the openai backend")
	}

	opts := []openai.Option{
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	}
	if config.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(config.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &langchainClient{model: model, config: config}, nil
}

func newOllamaClient(config *Config) (*langchainClient, error) {
	opts := []ollama.Option{
		ollama.WithModel(config.Model),
	}
	if config.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(config.BaseURL))
	}

	model, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &langchainClient{model: model, config: config}, nil
}

// GenerateContent generates free-form text for a prompt.
func (c *langchainClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.config.Temperature()))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	// Local reasoning models emit <think> traces before the answer
	return StripThinkTags(out), nil
}

// GenerateJSON generates JSON content for a prompt. A low temperature keeps
// the output structure stable.
func (c *langchainClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(0.1),
		llms.WithJSONMode())
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return CleanJSONBlock(StripThinkTags(out)), nil
}

// Model returns the configured model name.
func (c *langchainClient) Model() string {
	return c.config.Model
}

// Close is a no-op; langchaingo clients hold no persistent connections.
func (c *langchainClient) Close() error {
	return nil
}

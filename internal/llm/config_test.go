package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, BackendOllama, cfg.Backend)
	assert.Equal(t, "llama3.1", cfg.Model)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestConfigTemperature(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected float64
	}{
		{name: "explicit value", temp: 0.3, expected: 0.3},
		{name: "zero falls back to default", temp: 0, expected: 0.7},
		{name: "negative falls back to default", temp: -1, expected: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Temp: tt.temp}
			assert.Equal(t, tt.expected, cfg.Temperature())
		})
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config defaults to ollama", func(t *testing.T) {
		client, err := NewClient(ctx, nil)
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, "llama3.1", client.Model())
	})

	t.Run("ollama backend", func(t *testing.T) {
		client, err := NewClient(ctx, &Config{
			Backend: BackendOllama,
			Model:   "mistral",
			BaseURL: "http://127.0.0.1:11434",
		})
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, "mistral", client.Model())
	})

	t.Run("openai backend", func(t *testing.T) {
		client, err := NewClient(ctx, &Config{
			Backend: BackendOpenAI,
			Model:   "gpt-4o-mini",
			APIKey:  "test-key",
		})
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, "gpt-4o-mini", client.Model())
	})

	t.Run("openai requires API key", func(t *testing.T) {
		_, err := NewClient(ctx, &Config{
			Backend: BackendOpenAI,
			Model:   "gpt-4o-mini",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("gemini requires API key", func(t *testing.T) {
		_, err := NewClient(ctx, &Config{
			Backend: BackendGemini,
			Model:   "gemini-2.5-flash",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		_, err := NewClient(ctx, &Config{Backend: "anthropic"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported model backend")
	})
}

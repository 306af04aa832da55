// Package llm provides client abstractions over the supported model backends.
package llm

// Backend identifies a model provider.
type Backend string

// Supported backends.
const (
	// BackendOpenAI is the hosted OpenAI API
	BackendOpenAI Backend = "openai"
	// BackendOllama is a local Ollama model server
	BackendOllama Backend = "ollama"
	// BackendGemini is the Google Gemini API
	BackendGemini Backend = "gemini"
)

// Config holds the model configuration for a client.
type Config struct {
	Backend Backend
	Model   string
	BaseURL string  // Only used by Ollama
	APIKey  string  // Not used by Ollama
	Temp    float64 // Sampling temperature
}

// DefaultConfig returns the default configuration: a local Ollama server,
// so the tool works without any API key.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendOllama,
		Model:   "llama3.1",
		BaseURL: "http://127.0.0.1:11434",
		Temp:    0.7,
	}
}

// Temperature returns the configured temperature, defaulting to 0.7.
func (c *Config) Temperature() float64 {
	if c.Temp > 0 {
		return c.Temp
	}
	return 0.7
}

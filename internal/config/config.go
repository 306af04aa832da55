// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Model backends supported by the content generator.
const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendGemini = "gemini"
)

// Browser preference values. The launcher falls back through the remaining
// candidates when the preferred binary cannot be found.
const (
	BrowserChrome   = "chrome"
	BrowserChromium = "chromium"
	BrowserEdge     = "edge"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultBackend    = BackendOllama
	DefaultModel      = "llama3.1"
	DefaultOllamaURL  = "http://127.0.0.1:11434"
	DefaultOutputDir  = "output"
	DefaultCacheTTL   = 7 * 24 * time.Hour
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Firefox/120.0"
	DefaultPaperWidth = 8.5 // US Letter, inches
	DefaultPaperHt    = 11.0
	DefaultMargin     = 0.5
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Model backend
	ModelBackend string `json:"model_backend,omitempty"` // openai | ollama | gemini
	Model        string `json:"model,omitempty"`         // Model name for the chosen backend
	APIURL       string `json:"api_url,omitempty"`       // Base URL for local model servers (Ollama)
	APIKey       string `json:"api_key,omitempty"`       // API key (hosted backends only)

	// Paths
	ProfilePath string `json:"profile,omitempty"`    // Path to plain-text résumé YAML
	StylesDir   string `json:"styles_dir,omitempty"` // Directory holding document styles
	Style       string `json:"style,omitempty"`      // Preselected style name
	OutputDir   string `json:"output_dir,omitempty"` // Where generated PDFs are written

	// Browser
	Browser      string `json:"browser,omitempty"`       // chrome | chromium | edge
	Headless     *bool  `json:"headless,omitempty"`      // Defaults to true
	UserAgent    string `json:"user_agent,omitempty"`    // Override browser user agent
	WindowWidth  int    `json:"window_width,omitempty"`  // Browser window size, pixels
	WindowHeight int    `json:"window_height,omitempty"`

	// Network
	ProxyEnabled bool   `json:"proxy_enabled,omitempty"`
	ProxyHTTP    string `json:"proxy_http,omitempty"`
	ProxyHTTPS   string `json:"proxy_https,omitempty"`

	// Behavior
	UseMockData bool `json:"use_mock_data,omitempty"` // Force mock data mode
	SkipCache   bool `json:"skip_cache,omitempty"`    // Bypass the page cache
	Verbose     bool `json:"verbose,omitempty"`

	// Cache
	CacheTTLHours int `json:"cache_ttl_hours,omitempty"` // Page cache freshness window

	// PDF layout, inches
	PaperWidth   float64 `json:"paper_width,omitempty"`
	PaperHeight  float64 `json:"paper_height,omitempty"`
	MarginTop    float64 `json:"margin_top,omitempty"`
	MarginBottom float64 `json:"margin_bottom,omitempty"`
	MarginLeft   float64 `json:"margin_left,omitempty"`
	MarginRight  float64 `json:"margin_right,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.ModelBackend {
	case "", BackendOpenAI, BackendOllama, BackendGemini:
	default:
		return fmt.Errorf("config error: unknown model_backend %q (want openai, ollama or gemini)", c.ModelBackend)
	}

	switch c.Browser {
	case "", BrowserChrome, BrowserChromium, BrowserEdge:
	default:
		return fmt.Errorf("config error: unknown browser %q (want chrome, chromium or edge)", c.Browser)
	}

	if (c.ModelBackend == BackendOpenAI || c.ModelBackend == BackendGemini) && c.ResolveAPIKey() == "" {
		return fmt.Errorf("config error: model_backend %q requires an api_key (or OPENAI_API_KEY / GEMINI_API_KEY / LLM_API_KEY in the environment)", c.ModelBackend)
	}

	if c.ProxyEnabled && c.ProxyHTTP == "" && c.ProxyHTTPS == "" {
		return fmt.Errorf("config error: proxy_enabled is set but no proxy URL is configured")
	}

	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: cache_ttl_hours must be non-negative")
	}

	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return fmt.Errorf("config error: window size must be non-negative")
	}

	for name, v := range map[string]float64{
		"paper_width":   c.PaperWidth,
		"paper_height":  c.PaperHeight,
		"margin_top":    c.MarginTop,
		"margin_bottom": c.MarginBottom,
		"margin_left":   c.MarginLeft,
		"margin_right":  c.MarginRight,
	} {
		if v < 0 {
			return fmt.Errorf("config error: %s must be non-negative", name)
		}
	}

	if c.ProfilePath != "" {
		if _, err := os.Stat(c.ProfilePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.ProfilePath)
		}
	}

	return nil
}

// ResolveAPIKey returns the configured API key, falling back to the
// environment. Ollama needs no key and always resolves to the empty string.
func (c *Config) ResolveAPIKey() string {
	if c.ModelBackend == BackendOllama {
		return ""
	}
	if c.APIKey != "" {
		return c.APIKey
	}
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		return key
	}
	if c.ModelBackend == BackendGemini {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("OPENAI_API_KEY")
}

// CacheTTL returns the configured cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLHours > 0 {
		return time.Duration(c.CacheTTLHours) * time.Hour
	}
	return DefaultCacheTTL
}

// HeadlessMode returns the headless setting, defaulting to true.
func (c *Config) HeadlessMode() bool {
	if c.Headless == nil {
		return true
	}
	return *c.Headless
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ModelBackend == "" {
		result.ModelBackend = defaults.ModelBackend
	}
	if result.ModelBackend == "" {
		result.ModelBackend = DefaultBackend
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Model == "" {
		result.Model = defaultModelFor(result.ModelBackend)
	}
	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.APIURL == "" && result.ModelBackend == BackendOllama {
		result.APIURL = DefaultOllamaURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.StylesDir == "" {
		result.StylesDir = defaults.StylesDir
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = DefaultOutputDir
	}
	if result.Browser == "" {
		result.Browser = defaults.Browser
	}
	if result.Browser == "" {
		result.Browser = BrowserChrome
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.UserAgent == "" {
		result.UserAgent = DefaultUserAgent
	}
	if result.ProxyHTTP == "" {
		result.ProxyHTTP = defaults.ProxyHTTP
	}
	if result.ProxyHTTPS == "" {
		result.ProxyHTTPS = defaults.ProxyHTTPS
	}
	if result.Headless == nil {
		result.Headless = defaults.Headless
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}

	if result.PaperWidth == 0 {
		result.PaperWidth = nonZero(defaults.PaperWidth, DefaultPaperWidth)
	}
	if result.PaperHeight == 0 {
		result.PaperHeight = nonZero(defaults.PaperHeight, DefaultPaperHt)
	}
	if result.MarginTop == 0 {
		result.MarginTop = nonZero(defaults.MarginTop, DefaultMargin)
	}
	if result.MarginBottom == 0 {
		result.MarginBottom = nonZero(defaults.MarginBottom, DefaultMargin)
	}
	if result.MarginLeft == 0 {
		result.MarginLeft = nonZero(defaults.MarginLeft, DefaultMargin)
	}
	if result.MarginRight == 0 {
		result.MarginRight = nonZero(defaults.MarginRight, DefaultMargin)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func defaultModelFor(backend string) string {
	switch backend {
	case BackendOpenAI:
		return "gpt-4o-mini"
	case BackendGemini:
		return "gemini-2.5-flash"
	default:
		return DefaultModel
	}
}

func nonZero(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

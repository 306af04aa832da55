package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/config"
)

// commonFlags holds the flags shared by the document generation commands.
type commonFlags struct {
	configPath string

	backend string
	model   string
	apiURL  string
	apiKey  string

	profile   string
	stylesDir string
	style     string
	outputDir string

	browser   string
	headless  bool
	userAgent string

	mock      bool
	skipCache bool
	verbose   bool
}

// register adds the shared flags to a command.
func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVar(&f.backend, "backend", "", "Model backend: openai, ollama or gemini (default ollama)")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Model name for the chosen backend")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "Base URL for a local model server (Ollama)")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "API key for hosted backends (defaults to OPENAI_API_KEY / GEMINI_API_KEY)")

	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "Path to plain-text resume YAML")
	cmd.Flags().StringVar(&f.stylesDir, "styles-dir", "", "Directory holding document styles (default: built-in styles)")
	cmd.Flags().StringVarP(&f.style, "style", "s", "", "Style name (default: first available)")
	cmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "Output directory (default output)")

	cmd.Flags().StringVar(&f.browser, "browser", "", "Preferred browser: chrome, chromium or edge")
	cmd.Flags().BoolVar(&f.headless, "headless", true, "Run the browser headless")
	cmd.Flags().StringVar(&f.userAgent, "user-agent", "", "Override the browser and HTTP user agent")

	cmd.Flags().BoolVar(&f.mock, "mock", false, "Use mock job data instead of fetching the page")
	cmd.Flags().BoolVar(&f.skipCache, "skip-cache", false, "Bypass the page cache")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed progress information")
}

// mergedConfig loads the optional config file, applies explicitly set CLI
// flags on top, fills defaults, and validates the result.
func (f *commonFlags) mergedConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
		if f.verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", f.configPath)
		}
	}

	// Only override when the flag was explicitly set
	if cmd.Flags().Changed("backend") {
		cfg.ModelBackend = f.backend
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("profile") {
		cfg.ProfilePath = f.profile
	}
	if cmd.Flags().Changed("styles-dir") {
		cfg.StylesDir = f.stylesDir
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = f.style
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("browser") {
		cfg.Browser = f.browser
	}
	if cmd.Flags().Changed("headless") {
		headless := f.headless
		cfg.Headless = &headless
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = f.userAgent
	}
	if cmd.Flags().Changed("mock") {
		cfg.UseMockData = f.mock
	}
	if cmd.Flags().Changed("skip-cache") {
		cfg.SkipCache = f.skipCache
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// requireProfile fails early when no profile path is configured, before any
// model or browser work starts.
func requireProfile(cfg *config.Config) error {
	if cfg.ProfilePath == "" {
		return fmt.Errorf("a profile is required: pass --profile or set \"profile\" in the config file")
	}
	if _, err := os.Stat(cfg.ProfilePath); err != nil {
		return fmt.Errorf("profile file not found: %s", cfg.ProfilePath)
	}
	return nil
}

// Package pipeline - bridge.go maps the CLI configuration onto the
// per-package option structs.
package pipeline

import (
	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/fetch"
	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/render"
)

// proxyURL picks the proxy to use, preferring the HTTPS one.
func proxyURL(cfg *config.Config) string {
	if !cfg.ProxyEnabled {
		return ""
	}
	if cfg.ProxyHTTPS != "" {
		return cfg.ProxyHTTPS
	}
	return cfg.ProxyHTTP
}

func llmConfig(cfg *config.Config) *llm.Config {
	return &llm.Config{
		Backend: llm.Backend(cfg.ModelBackend),
		Model:   cfg.Model,
		BaseURL: cfg.APIURL,
		APIKey:  cfg.ResolveAPIKey(),
	}
}

func browserOptions(cfg *config.Config) *browser.Options {
	opts := browser.DefaultOptions()
	if cfg.Browser != "" {
		opts.Preferred = cfg.Browser
	}
	opts.Headless = cfg.HeadlessMode()
	opts.UserAgent = cfg.UserAgent
	if cfg.WindowWidth > 0 {
		opts.Width = cfg.WindowWidth
	}
	if cfg.WindowHeight > 0 {
		opts.Height = cfg.WindowHeight
	}
	opts.ProxyURL = proxyURL(cfg)
	opts.Verbose = cfg.Verbose
	return opts
}

func fetchOptions(cfg *config.Config) *fetch.Options {
	opts := fetch.DefaultOptions()
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	opts.ProxyURL = proxyURL(cfg)
	return opts
}

func renderOptions(cfg *config.Config) *render.Options {
	opts := render.DefaultOptions()
	if cfg.PaperWidth > 0 {
		opts.PaperWidth = cfg.PaperWidth
	}
	if cfg.PaperHeight > 0 {
		opts.PaperHeight = cfg.PaperHeight
	}
	if cfg.MarginTop > 0 {
		opts.MarginTop = cfg.MarginTop
	}
	if cfg.MarginBottom > 0 {
		opts.MarginBottom = cfg.MarginBottom
	}
	if cfg.MarginLeft > 0 {
		opts.MarginLeft = cfg.MarginLeft
	}
	if cfg.MarginRight > 0 {
		opts.MarginRight = cfg.MarginRight
	}
	opts.Verbose = cfg.Verbose
	return opts
}

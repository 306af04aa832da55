// Package pipeline - acquire.go implements the fetch fallback chain:
// page cache, plain HTTP, headless browser, and finally mock data.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/fetch"
	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/parsing"
	"github.com/jonathan/apply-agent/internal/render"
	"github.com/jonathan/apply-agent/internal/store"
	"github.com/jonathan/apply-agent/internal/types"
)

// AcquirePosting obtains a parsed job posting for the URL. In mock data mode
// it synthesizes one immediately; otherwise it fetches the page (cache, HTTP,
// then browser rendering), extracts the posting text, and runs LLM
// extraction. Every fetch or extraction failure degrades to mock data so the
// pipeline always has a posting to work with.
func AcquirePosting(ctx context.Context, client llm.Client, jobURL string, cfg *config.Config) (*types.JobPosting, error) {
	jobURL = fetch.NormalizeURL(jobURL)

	if cfg.UseMockData {
		if cfg.Verbose {
			log.Printf("[PIPELINE] Mock data mode enabled, skipping fetch")
		}
		return parsing.Mock(jobURL), nil
	}

	html, source := fetchPage(ctx, jobURL, cfg)
	if html == "" {
		fmt.Printf("Warning: could not fetch job page, falling back to mock data\n")
		return parsing.Mock(jobURL), nil
	}

	platform := fetch.DetectPlatform(jobURL)
	text, err := fetch.ExtractMainText(html,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil || text == "" {
		fmt.Printf("Warning: no usable text on job page, falling back to mock data\n")
		return parsing.Mock(jobURL), nil
	}

	posting, err := parsing.Extract(ctx, client, text, jobURL)
	if err != nil {
		fmt.Printf("Warning: posting extraction failed (%v), falling back to mock data\n", err)
		return parsing.Mock(jobURL), nil
	}
	posting.Source = source
	return posting, nil
}

// fetchPage returns the job page HTML and where it came from. An empty
// string means every strategy failed.
func fetchPage(ctx context.Context, jobURL string, cfg *config.Config) (string, types.JobSource) {
	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	if cache != nil && !cfg.SkipCache {
		if page, err := cache.GetPage(ctx, jobURL, cfg.CacheTTL()); err == nil && page != nil {
			if cfg.Verbose {
				log.Printf("[PIPELINE] Cache hit for %s (fetched %s)", jobURL, page.FetchedAt)
			}
			return page.HTML, types.SourceCache
		}
		if skip, reason, err := cache.ShouldSkip(ctx, jobURL); err == nil && skip {
			fmt.Printf("Warning: skipping fetch: %s\n", reason)
			return "", types.SourceMock
		}
	}

	html, err := fetchLive(ctx, jobURL, cfg)
	if err != nil {
		if cache != nil {
			_ = cache.RecordFailure(ctx, jobURL, err)
		}
		return "", types.SourceMock
	}

	if cache != nil {
		if _, err := cache.PutPage(ctx, jobURL, html); err != nil && cfg.Verbose {
			log.Printf("[PIPELINE] Failed to cache page: %v", err)
		}
	}
	return html, types.SourceLive
}

// fetchLive performs the HTTP fetch and escalates to browser rendering when
// the page looks JavaScript-rendered.
func fetchLive(ctx context.Context, jobURL string, cfg *config.Config) (string, error) {
	result, err := fetch.URL(ctx, jobURL, fetchOptions(cfg))
	if err == nil && !fetch.ShouldUseBrowser(result.Text) {
		return result.HTML, nil
	}
	if err != nil && cfg.Verbose {
		log.Printf("[PIPELINE] HTTP fetch failed: %v, trying browser", err)
	}

	html, berr := fetch.WithBrowser(ctx, jobURL, browserOptions(cfg), fetch.DefaultTimeout)
	if berr != nil {
		if err != nil {
			return "", fmt.Errorf("HTTP fetch failed (%v) and browser rendering failed: %w", err, berr)
		}
		// The plain fetch worked but looked thin; better than nothing.
		return result.HTML, nil
	}
	return html, nil
}

// openCache opens the page cache, returning nil when unavailable. A broken
// cache never blocks a run.
func openCache(cfg *config.Config) *store.DB {
	path, err := store.DefaultPath()
	if err != nil {
		if cfg.Verbose {
			log.Printf("[PIPELINE] Page cache unavailable: %v", err)
		}
		return nil
	}
	db, err := store.Open(path)
	if err != nil {
		fmt.Printf("Warning: failed to open page cache: %v\n", err)
		fmt.Printf("Continuing without caching...\n")
		return nil
	}
	return db
}

// renderDocuments prints every generated document to PDF, sharing one
// browser session across documents.
func renderDocuments(ctx context.Context, cfg *config.Config, docs map[output.DocumentKind]string, pdfs map[output.DocumentKind][]byte) error {
	sess, err := browser.NewSession(ctx, browserOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to start browser for printing: %w", err)
	}
	defer sess.Close()

	opts := renderOptions(cfg)
	for kind, html := range docs {
		pdf, err := render.WithSession(sess, html, opts)
		if err != nil {
			return fmt.Errorf("printing %s failed: %w", kind, err)
		}
		if pages := render.CountPages(pdf); pages > 1 && cfg.Verbose {
			log.Printf("[PIPELINE] %s spans %d pages", kind, pages)
		}
		pdfs[kind] = pdf
	}
	return nil
}

// Package fetch - render.go provides headless browser rendering for
// JavaScript-heavy pages.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonathan/apply-agent/internal/browser"
)

// MinContentLength is the minimum extracted text length to consider a plain
// HTTP fetch successful. Shorter content usually means a JavaScript-rendered
// page and triggers browser rendering.
const MinContentLength = 500

// renderSettle is how long the page gets to finish client-side rendering
// after the body is ready.
const renderSettle = 3 * time.Second

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. The session is launched per call; callers doing several renders
// should use WithSession.
func WithBrowser(ctx context.Context, urlStr string, opts *browser.Options, timeout time.Duration) (string, error) {
	sess, err := browser.NewSession(ctx, opts)
	if err != nil {
		return "", err
	}
	defer sess.Close()

	return WithSession(sess, urlStr, timeout, opts != nil && opts.Verbose)
}

// WithSession renders a page in an already running browser session.
func WithSession(sess *browser.Session, urlStr string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering page: %s", urlStr)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tabCtx, cancel := chromedp.NewContext(sess.Ctx)
	defer cancel()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		// Dismiss common cookie banners; missing buttons are not an error
		chromedp.ActionFunc(func(ctx context.Context) error {
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

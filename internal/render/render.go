// Package render converts HTML documents to PDF using a headless browser's
// print engine.
package render

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/apply-agent/internal/browser"
)

// DefaultTimeout bounds a single print job, including page load.
const DefaultTimeout = 60 * time.Second

// printSettle is how long the page gets to apply fonts and layout after the
// body is ready, before printing.
const printSettle = 2 * time.Second

// Options holds the page geometry for printing. All dimensions are inches.
type Options struct {
	PaperWidth   float64
	PaperHeight  float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
	Timeout      time.Duration
	Verbose      bool
}

// DefaultOptions returns US Letter geometry with half-inch margins.
func DefaultOptions() *Options {
	return &Options{
		PaperWidth:   8.5,
		PaperHeight:  11.0,
		MarginTop:    0.5,
		MarginBottom: 0.5,
		MarginLeft:   0.5,
		MarginRight:  0.5,
		Timeout:      DefaultTimeout,
	}
}

// HTMLToPDF renders an HTML document to PDF bytes. The document is written
// to a temporary file and loaded over file:// so relative resources and
// inlined styles behave exactly as they would in a regular page load.
func HTMLToPDF(ctx context.Context, htmlContent string, opts *Options, browserOpts *browser.Options) ([]byte, error) {
	sess, err := browser.NewSession(ctx, browserOpts)
	if err != nil {
		return nil, &Error{Message: "failed to start browser", Cause: err}
	}
	defer sess.Close()

	return WithSession(sess, htmlContent, opts)
}

// WithSession renders an HTML document to PDF in an already running browser
// session.
func WithSession(sess *browser.Session, htmlContent string, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tmpPath, cleanup, err := writeTempHTML(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	tabCtx, cancel := chromedp.NewContext(sess.Ctx)
	defer cancel()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	if opts.Verbose {
		log.Printf("[RENDER] Printing %d bytes of HTML to PDF", len(htmlContent))
	}

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.Sleep(printSettle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(false).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(opts.MarginTop).
				WithMarginBottom(opts.MarginBottom).
				WithMarginLeft(opts.MarginLeft).
				WithMarginRight(opts.MarginRight).
				WithDisplayHeaderFooter(false).
				WithPreferCSSPageSize(true).
				WithScale(1.0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &Error{Message: "PDF printing failed", Cause: err}
	}

	if err := CheckPDF(pdf); err != nil {
		return nil, err
	}

	if opts.Verbose {
		log.Printf("[RENDER] Produced PDF: %d bytes", len(pdf))
	}

	return pdf, nil
}

// writeTempHTML writes the document to a temp file and returns its absolute
// path plus a cleanup function.
func writeTempHTML(htmlContent string) (string, func(), error) {
	f, err := os.CreateTemp("", "apply-agent-*.html")
	if err != nil {
		return "", nil, &Error{Message: "failed to create temp HTML file", Cause: err}
	}

	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(htmlContent); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, &Error{Message: "failed to write temp HTML file", Cause: err}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, &Error{Message: "failed to close temp HTML file", Cause: err}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		cleanup()
		return "", nil, &Error{Message: "failed to resolve temp HTML path", Cause: err}
	}

	return abs, cleanup, nil
}

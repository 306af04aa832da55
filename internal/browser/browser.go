// Package browser manages headless Chromium-family browser sessions shared by
// page fetching and PDF rendering.
package browser

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultLaunchTimeout bounds how long a single browser launch attempt may take.
const DefaultLaunchTimeout = 30 * time.Second

// Options configures browser startup.
type Options struct {
	Preferred string // chrome | chromium | edge; empty means chrome
	Headless  bool
	UserAgent string
	ProxyURL  string // --proxy-server value, empty disables
	Width     int
	Height    int
	Verbose   bool
}

// DefaultOptions returns sensible defaults for headless operation.
func DefaultOptions() *Options {
	return &Options{
		Preferred: "chrome",
		Headless:  true,
		Width:     1920,
		Height:    1080,
	}
}

// Session is a running headless browser. Tabs are created from Ctx;
// Close tears the whole browser down.
type Session struct {
	Ctx    context.Context
	Binary string // Resolved browser binary, empty when chromedp's default lookup was used

	cancels []context.CancelFunc
}

// Close shuts down the browser and releases the allocator.
func (s *Session) Close() {
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
}

// NewSession launches a headless browser, walking the fallback chain of
// installed binaries when the preferred one fails to start. The returned
// session must be closed by the caller.
func NewSession(ctx context.Context, opts *Options) (*Session, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	var lastErr error
	for _, candidate := range launchOrder(opts.Preferred) {
		bin := findBinary(candidate)
		if bin == "" && candidate != opts.Preferred {
			continue
		}

		sess, err := launch(ctx, opts, bin)
		if err == nil {
			if opts.Verbose && candidate != opts.Preferred {
				log.Printf("[BROWSER] Preferred browser %q unavailable, using %q", opts.Preferred, candidate)
			}
			sess.Binary = bin
			return sess, nil
		}
		lastErr = err
		if opts.Verbose {
			log.Printf("[BROWSER] Failed to launch %s: %v", candidate, err)
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no supported browser binary found")
	}
	return nil, fmt.Errorf("all browser launch attempts failed: %w", lastErr)
}

// launch starts a single browser instance from the given binary. An empty
// binary lets chromedp use its default discovery.
func launch(ctx context.Context, opts *Options, binary string) (*Session, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(orDefault(opts.Width, 1920), orDefault(opts.Height, 1080)),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.ProxyURL != "" {
		allocOpts = append(allocOpts, chromedp.ProxyServer(opts.ProxyURL))
	}
	if binary != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(binary))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// chromedp launches lazily; run an empty task so launch failures surface
	// here instead of on the first navigation.
	launchCtx, cancelLaunch := context.WithTimeout(browserCtx, DefaultLaunchTimeout)
	defer cancelLaunch()
	if err := chromedp.Run(launchCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("browser start failed: %w", err)
	}

	return &Session{
		Ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelAlloc, cancelBrowser},
	}, nil
}

// launchOrder returns the browser kinds to try, preferred first. Chrome and
// chromium are always in the chain since they are the most likely installs.
func launchOrder(preferred string) []string {
	if preferred == "" {
		preferred = "chrome"
	}
	order := []string{preferred}
	for _, alt := range []string{"chrome", "chromium", "edge"} {
		if alt != preferred {
			order = append(order, alt)
		}
	}
	return order
}

// findBinary locates an installed binary for the given browser kind.
// Returns "" when nothing was found; the caller may still let chromedp try
// its own discovery for the preferred kind.
func findBinary(kind string) string {
	for _, name := range lookupNames(kind) {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	for _, path := range wellKnownPaths(kind) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func lookupNames(kind string) []string {
	switch kind {
	case "chromium":
		return []string{"chromium", "chromium-browser"}
	case "edge":
		return []string{"microsoft-edge", "msedge"}
	default:
		return []string{"google-chrome", "google-chrome-stable", "chrome"}
	}
}

func wellKnownPaths(kind string) []string {
	switch runtime.GOOS {
	case "darwin":
		switch kind {
		case "chromium":
			return []string{"/Applications/Chromium.app/Contents/MacOS/Chromium"}
		case "edge":
			return []string{"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge"}
		default:
			return []string{"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"}
		}
	case "windows":
		switch kind {
		case "edge":
			return []string{
				os.ExpandEnv(`${ProgramFiles(x86)}\Microsoft\Edge\Application\msedge.exe`),
				os.ExpandEnv(`${ProgramFiles}\Microsoft\Edge\Application\msedge.exe`),
			}
		default:
			return []string{
				os.ExpandEnv(`${ProgramFiles}\Google\Chrome\Application\chrome.exe`),
				os.ExpandEnv(`${ProgramFiles(x86)}\Google\Chrome\Application\chrome.exe`),
				os.ExpandEnv(`${LocalAppData}\Google\Chrome\Application\chrome.exe`),
			}
		}
	default:
		switch kind {
		case "chromium":
			return []string{"/usr/bin/chromium", "/usr/bin/chromium-browser", "/snap/bin/chromium"}
		case "edge":
			return []string{"/usr/bin/microsoft-edge", "/opt/microsoft/msedge/msedge"}
		default:
			return []string{"/usr/bin/google-chrome", "/usr/bin/google-chrome-stable", "/opt/google/chrome/chrome"}
		}
	}
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

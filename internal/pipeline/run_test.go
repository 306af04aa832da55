package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/generator"
	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/types"
)

// stubClient implements llm.Client with canned responses.
type stubClient struct {
	content string
	json    string
}

func (s *stubClient) GenerateContent(context.Context, string) (string, error) {
	return s.content, nil
}

func (s *stubClient) GenerateJSON(context.Context, string) (string, error) {
	return s.json, nil
}

func (s *stubClient) Model() string { return "stub" }
func (s *stubClient) Close() error  { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg := (&config.Config{}).MergeWithDefaults(config.Config{})
	return &cfg
}

func TestAcquirePosting_MockMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.UseMockData = true

	posting, err := AcquirePosting(context.Background(), &stubClient{},
		"https://www.linkedin.com/jobs/view/4012345678", cfg)
	require.NoError(t, err)

	assert.True(t, posting.IsMock())
	assert.Equal(t, "Software Engineer 4012", posting.Title)
}

func TestAcquirePosting_LivePage(t *testing.T) {
	description := strings.Repeat("We are hiring a Go engineer to build services. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body><main>%s</main></body></html>", description)
	}))
	defer server.Close()

	cfg := testConfig(t)
	client := &stubClient{json: `{
		"title": "Go Engineer",
		"company": "Acme",
		"description": "Build services."
	}`}

	posting, err := AcquirePosting(context.Background(), client, server.URL+"/jobs/1", cfg)
	require.NoError(t, err)

	assert.Equal(t, "Go Engineer", posting.Title)
	assert.Equal(t, types.SourceLive, posting.Source)
}

func TestAcquirePosting_ExtractionFailureFallsBackToMock(t *testing.T) {
	description := strings.Repeat("A long enough job description for the fetch path. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body><main>%s</main></body></html>", description)
	}))
	defer server.Close()

	cfg := testConfig(t)
	client := &stubClient{json: "not valid json"}

	posting, err := AcquirePosting(context.Background(), client, server.URL+"/jobs/2", cfg)
	require.NoError(t, err)
	assert.True(t, posting.IsMock())
}

func TestAcquirePosting_SecondRunHitsCache(t *testing.T) {
	description := strings.Repeat("Cache me if you can, a long job description. ", 20)
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprintf(w, "<html><body><main>%s</main></body></html>", description)
	}))
	defer server.Close()

	cfg := testConfig(t)
	client := &stubClient{json: `{
		"title": "Engineer",
		"company": "Acme",
		"description": "A role."
	}`}
	ctx := context.Background()
	url := server.URL + "/jobs/3"

	first, err := AcquirePosting(ctx, client, url, cfg)
	require.NoError(t, err)
	assert.Equal(t, types.SourceLive, first.Source)

	second, err := AcquirePosting(ctx, client, url, cfg)
	require.NoError(t, err)
	assert.Equal(t, types.SourceCache, second.Source)
	assert.Equal(t, 1, hits, "second run must not refetch")
}

func TestBuildDocument(t *testing.T) {
	ctx := context.Background()
	candidate := &types.Profile{
		PersonalInformation: types.PersonalInformation{Name: "Ada", Surname: "Lovelace"},
		Skills:              []string{"Go"},
	}
	posting := &types.JobPosting{
		URL:         "https://example.com/jobs/1",
		Title:       "Engineer",
		Company:     "Acme",
		Description: "Build things.",
	}

	t.Run("resume", func(t *testing.T) {
		gen := generator.New(&stubClient{content: "<section><h2>Skills</h2></section>"})

		doc, err := buildDocument(ctx, gen, output.KindResume, candidate, posting, "body {}")
		require.NoError(t, err)
		assert.Contains(t, doc, "<!DOCTYPE html>")
		assert.Contains(t, doc, "Ada Lovelace - Resume")
		assert.Contains(t, doc, "<h2>Skills</h2>")
	})

	t.Run("cover letter", func(t *testing.T) {
		gen := generator.New(&stubClient{content: "Dear Hiring Manager,\n\nHello."})

		doc, err := buildDocument(ctx, gen, output.KindCoverLetter, candidate, posting, "body {}")
		require.NoError(t, err)
		assert.Contains(t, doc, "Ada Lovelace - Cover Letter")
		assert.Contains(t, doc, "cover-letter")
	})

	t.Run("unknown kind", func(t *testing.T) {
		gen := generator.New(&stubClient{})

		_, err := buildDocument(ctx, gen, output.DocumentKind("presentation"), candidate, posting, "")
		require.Error(t, err)
	})
}

func TestRun_EmitsProgressThroughAcquisition(t *testing.T) {
	cfg := testConfig(t)
	cfg.UseMockData = true
	// An unknown style stops the run right after acquisition, before any
	// model or browser work.
	cfg.Style = "No Such Style"

	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	profileYAML := "personal_information:\n  name: Ada\n  surname: Lovelace\n  email: ada@example.com\n"
	require.NoError(t, os.WriteFile(profilePath, []byte(profileYAML), 0o644))
	cfg.ProfilePath = profilePath

	var steps []string
	_, err := Run(context.Background(), RunOptions{
		JobURL: "https://www.linkedin.com/jobs/view/4012345678",
		Config: cfg,
		OnProgress: func(e ProgressEvent) {
			steps = append(steps, e.Step)
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style")
	assert.Equal(t, []string{StepProfile, StepFetch, StepParse}, steps)
}

func TestBridgeOptions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Browser = config.BrowserChromium
	cfg.UserAgent = "TestAgent/1.0"
	cfg.ProxyEnabled = true
	cfg.ProxyHTTP = "http://proxy:3128"
	cfg.PaperWidth = 8.27
	cfg.MarginTop = 0.4
	cfg.WindowWidth = 1280

	b := browserOptions(cfg)
	assert.Equal(t, "chromium", b.Preferred)
	assert.Equal(t, "TestAgent/1.0", b.UserAgent)
	assert.Equal(t, "http://proxy:3128", b.ProxyURL)
	assert.True(t, b.Headless)
	assert.Equal(t, 1280, b.Width)
	assert.Equal(t, 1080, b.Height)

	f := fetchOptions(cfg)
	assert.Equal(t, "TestAgent/1.0", f.UserAgent)
	assert.Equal(t, "http://proxy:3128", f.ProxyURL)

	r := renderOptions(cfg)
	assert.Equal(t, 8.27, r.PaperWidth)
	assert.Equal(t, 0.4, r.MarginTop)
	assert.Equal(t, 0.5, r.MarginBottom)

	l := llmConfig(cfg)
	assert.Equal(t, "ollama", string(l.Backend))
	assert.Equal(t, "llama3.1", l.Model)
}

func TestProxyURL(t *testing.T) {
	cfg := &config.Config{}
	assert.Empty(t, proxyURL(cfg))

	cfg.ProxyEnabled = true
	cfg.ProxyHTTP = "http://h"
	assert.Equal(t, "http://h", proxyURL(cfg))

	cfg.ProxyHTTPS = "http://hs"
	assert.Equal(t, "http://hs", proxyURL(cfg))
}

// Package pipeline provides the high-level orchestration for generating
// application documents from a job URL.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/generator"
	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/observability"
	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/profile"
	"github.com/jonathan/apply-agent/internal/styles"
	"github.com/jonathan/apply-agent/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names used in progress events.
const (
	StepProfile  = "profile"
	StepFetch    = "fetch"
	StepParse    = "parse"
	StepGenerate = "generate"
	StepRender   = "render"
	StepWrite    = "write"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	JobURL     string
	Config     *config.Config
	Documents  []output.DocumentKind // Which documents to produce
	OnProgress ProgressCallback
}

// Result summarizes a pipeline run.
type Result struct {
	RunID   uuid.UUID
	Posting *types.JobPosting
	Files   []string
	Timings []observability.StepTiming
}

// emitProgress calls the progress callback if configured
func (opts *RunOptions) emitProgress(runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
		})
	}
}

// Run orchestrates the full document generation pipeline: acquire the job
// posting, generate the requested documents, print them to PDF, and write
// them to the output layout.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		merged := (&config.Config{}).MergeWithDefaults(config.Config{})
		cfg = &merged
	}
	if opts.JobURL == "" {
		return nil, fmt.Errorf("job URL is required")
	}
	if len(opts.Documents) == 0 {
		opts.Documents = []output.DocumentKind{output.KindResume, output.KindCoverLetter}
	}

	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)
	var timings []observability.StepTiming
	timed := func(name string, fn func() error) error {
		start := time.Now()
		err := fn()
		timings = append(timings, observability.StepTiming{Name: name, Duration: time.Since(start)})
		return err
	}

	totalSteps := 5

	// Step 1: candidate profile
	fmt.Printf("Step 1/%d: Loading profile from %s...\n", totalSteps, cfg.ProfilePath)
	var candidate *types.Profile
	if err := timed("profile", func() error {
		var err error
		candidate, err = profile.Load(cfg.ProfilePath)
		return err
	}); err != nil {
		return nil, fmt.Errorf("profile loading failed: %w", err)
	}
	opts.emitProgress(runID, StepProfile, fmt.Sprintf("Loaded profile for %s", candidate.PersonalInformation.FullName()))

	client, err := llm.NewClient(ctx, llmConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("model client init failed: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Step 2: job posting (fetch + parse, with cache and fallbacks)
	fmt.Printf("Step 2/%d: Acquiring job posting from %s...\n", totalSteps, opts.JobURL)
	opts.emitProgress(runID, StepFetch, fmt.Sprintf("Fetching job posting from %s", opts.JobURL))
	var posting *types.JobPosting
	if err := timed("fetch+parse", func() error {
		var err error
		posting, err = AcquirePosting(ctx, client, opts.JobURL, cfg)
		return err
	}); err != nil {
		return nil, fmt.Errorf("job acquisition failed: %w", err)
	}
	if cfg.Verbose {
		printer.PrintJobPosting(posting)
	}
	opts.emitProgress(runID, StepParse, fmt.Sprintf("Parsed posting: %s at %s", posting.Title, posting.Company))

	// Resolve the stylesheet before spending model tokens
	manager, err := styles.NewManager(cfg.StylesDir)
	if err != nil {
		return nil, fmt.Errorf("styles init failed: %w", err)
	}
	css, err := manager.CSS(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("style selection failed: %w", err)
	}

	// Generate the requested documents concurrently
	fmt.Printf("Step 3/%d: Generating documents with %s...\n", totalSteps, client.Model())
	gen := generator.New(client)
	docs := make(map[output.DocumentKind]string, len(opts.Documents))
	var docsMu sync.Mutex

	if err := timed("generate", func() error {
		g, gCtx := errgroup.WithContext(ctx)
		for _, kind := range opts.Documents {
			g.Go(func() error {
				html, err := buildDocument(gCtx, gen, kind, candidate, posting, css)
				if err != nil {
					return err
				}
				docsMu.Lock()
				docs[kind] = html
				docsMu.Unlock()
				return nil
			})
		}
		return g.Wait()
	}); err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}
	opts.emitProgress(runID, StepGenerate, fmt.Sprintf("Generated %d document(s)", len(docs)))

	// Print to PDF, one browser session for all documents
	fmt.Printf("Step 4/%d: Rendering PDF...\n", totalSteps)
	pdfs := make(map[output.DocumentKind][]byte, len(docs))
	if err := timed("render", func() error {
		return renderDocuments(ctx, cfg, docs, pdfs)
	}); err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}
	opts.emitProgress(runID, StepRender, "Rendered PDF documents")

	// Write the output layout
	fmt.Printf("Step 5/%d: Writing output to %s...\n", totalSteps, cfg.OutputDir)
	layout := output.NewLayout(cfg.OutputDir, posting)
	var files []string
	if err := timed("write", func() error {
		for _, kind := range opts.Documents {
			path, err := layout.WritePDF(kind, pdfs[kind])
			if err != nil {
				return err
			}
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("writing output failed: %w", err)
	}
	opts.emitProgress(runID, StepWrite, fmt.Sprintf("Wrote %d file(s)", len(files)))

	if cfg.Verbose {
		printer.PrintRunSummary(timings, files)
	}

	return &Result{
		RunID:   runID,
		Posting: posting,
		Files:   files,
		Timings: timings,
	}, nil
}

// buildDocument generates one complete HTML document of the given kind.
func buildDocument(ctx context.Context, gen *generator.Generator, kind output.DocumentKind, candidate *types.Profile, posting *types.JobPosting, css string) (string, error) {
	name := candidate.PersonalInformation.FullName()

	switch kind {
	case output.KindResume:
		body, err := gen.ResumeHTML(ctx, candidate, posting)
		if err != nil {
			return "", err
		}
		return generator.ComposeDocument(fmt.Sprintf("%s - Resume", name), css, body), nil
	case output.KindCoverLetter:
		letter, err := gen.CoverLetter(ctx, candidate, posting)
		if err != nil {
			return "", err
		}
		body := generator.CoverLetterHTML(letter)
		return generator.ComposeDocument(fmt.Sprintf("%s - Cover Letter", name), css, body), nil
	default:
		return "", fmt.Errorf("unknown document kind %q", kind)
	}
}

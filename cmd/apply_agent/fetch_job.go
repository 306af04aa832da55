package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/observability"
	"github.com/jonathan/apply-agent/internal/pipeline"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch and parse a job posting without generating documents",
	Long: `Fetches the job posting through the usual fallback chain (cache, HTTP,
headless browser, mock data) and prints the parsed posting as JSON. Useful
for checking what the generators would see.`,
	RunE: runFetchJob,
}

var (
	fetchJobFlags  commonFlags
	fetchJobURL    string
	fetchJobOutput string
)

func init() {
	fetchJobFlags.register(fetchJobCmd)
	fetchJobCmd.Flags().StringVarP(&fetchJobURL, "job-url", "j", "", "URL of the job posting (required)")
	fetchJobCmd.Flags().StringVar(&fetchJobOutput, "out", "", "Write the parsed posting JSON to a file instead of stdout")
	_ = fetchJobCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(cmd *cobra.Command, _ []string) error {
	cfg, err := fetchJobFlags.mergedConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, &llm.Config{
		Backend: llm.Backend(cfg.ModelBackend),
		Model:   cfg.Model,
		BaseURL: cfg.APIURL,
		APIKey:  cfg.ResolveAPIKey(),
	})
	if err != nil {
		return fmt.Errorf("model client init failed: %w", err)
	}
	defer func() { _ = client.Close() }()

	posting, err := pipeline.AcquirePosting(ctx, client, fetchJobURL, cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobPosting(posting)
	}

	data, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posting: %w", err)
	}

	if fetchJobOutput != "" {
		if err := os.WriteFile(fetchJobOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", fetchJobOutput, err)
		}
		fmt.Printf("Posting written to %s\n", fetchJobOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/pipeline"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Generate a resume tailored to a job posting",
	Long: `Fetches the job posting, tailors the resume from your profile to it, and
writes the result as a PDF under the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runResume,
}

var (
	resumeFlags  commonFlags
	resumeJobURL string
)

func init() {
	resumeFlags.register(resumeCmd)
	resumeCmd.Flags().StringVarP(&resumeJobURL, "job-url", "j", "", "URL of the job posting (required)")
	_ = resumeCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, _ []string) error {
	cfg, err := resumeFlags.mergedConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireProfile(cfg); err != nil {
		return err
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		JobURL:    resumeJobURL,
		Config:    cfg,
		Documents: []output.DocumentKind{output.KindResume},
	})
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Printf("Resume written to %s\n", f)
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/pipeline"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter tailored to a job posting",
	Long: `Fetches the job posting and writes a personalized cover letter matching
your profile to it, rendered as a PDF under the output directory.`,
	RunE: runCoverLetter,
}

var (
	coverLetterFlags  commonFlags
	coverLetterJobURL string
)

func init() {
	coverLetterFlags.register(coverLetterCmd)
	coverLetterCmd.Flags().StringVarP(&coverLetterJobURL, "job-url", "j", "", "URL of the job posting (required)")
	_ = coverLetterCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	cfg, err := coverLetterFlags.mergedConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireProfile(cfg); err != nil {
		return err
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		JobURL:    coverLetterJobURL,
		Config:    cfg,
		Documents: []output.DocumentKind{output.KindCoverLetter},
	})
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Printf("Cover letter written to %s\n", f)
	}
	return nil
}

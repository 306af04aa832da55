package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/output"
	"github.com/jonathan/apply-agent/internal/pipeline"
	"github.com/jonathan/apply-agent/internal/styles"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interactively generate application documents for a job posting",
	Long: `Walks through the questions the other commands take as flags: the job
URL, which documents to generate, and the style to use. Anything already
provided via flags or config is not asked again.`,
	RunE: runInteractive,
}

var (
	runFlags     commonFlags
	runJobURL    string
	runDocuments string
)

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().StringVarP(&runJobURL, "job-url", "j", "", "URL of the job posting (prompted for when omitted)")
	runCmd.Flags().StringVar(&runDocuments, "documents", "", "Documents to generate: resume, cover-letter or both (prompted for when omitted)")

	rootCmd.AddCommand(runCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := runFlags.mergedConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireProfile(cfg); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	jobURL := runJobURL
	if jobURL == "" {
		jobURL, err = promptLine(reader, "Job posting URL: ")
		if err != nil {
			return err
		}
		if jobURL == "" {
			return fmt.Errorf("a job URL is required")
		}
	}

	docs, err := resolveDocuments(reader, runDocuments)
	if err != nil {
		return err
	}

	if cfg.Style == "" {
		cfg.Style, err = promptStyle(reader, cfg.StylesDir)
		if err != nil {
			return err
		}
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		JobURL:    jobURL,
		Config:    cfg,
		Documents: docs,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nDone. Generated for %s at %s:\n", result.Posting.Title, result.Posting.Company)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	return nil
}

// resolveDocuments maps the --documents value, prompting when it is empty.
func resolveDocuments(reader *bufio.Reader, value string) ([]output.DocumentKind, error) {
	if value == "" {
		fmt.Println("What would you like to generate?")
		fmt.Println("  1) Resume")
		fmt.Println("  2) Cover letter")
		fmt.Println("  3) Both")
		choice, err := promptLine(reader, "Choice [3]: ")
		if err != nil {
			return nil, err
		}
		switch choice {
		case "1":
			value = "resume"
		case "2":
			value = "cover-letter"
		case "", "3":
			value = "both"
		default:
			return nil, fmt.Errorf("invalid choice %q", choice)
		}
	}

	switch value {
	case "resume":
		return []output.DocumentKind{output.KindResume}, nil
	case "cover-letter":
		return []output.DocumentKind{output.KindCoverLetter}, nil
	case "both":
		return []output.DocumentKind{output.KindResume, output.KindCoverLetter}, nil
	default:
		return nil, fmt.Errorf("invalid documents value %q (want resume, cover-letter or both)", value)
	}
}

// promptStyle lists the available styles and asks for a number. Empty input
// keeps the default (first style).
func promptStyle(reader *bufio.Reader, stylesDir string) (string, error) {
	manager, err := styles.NewManager(stylesDir)
	if err != nil {
		return "", err
	}
	list, err := manager.List()
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", styles.ErrNoStyles
	}

	fmt.Println("Available styles:")
	for i, choice := range styles.FormatChoices(list) {
		fmt.Printf("  %d) %s\n", i+1, choice)
	}
	answer, err := promptLine(reader, fmt.Sprintf("Style [1-%d, default 1]: ", len(list)))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return list[0].Name, nil
	}

	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > len(list) {
		return "", fmt.Errorf("invalid style choice %q", answer)
	}
	return list[idx-1].Name, nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

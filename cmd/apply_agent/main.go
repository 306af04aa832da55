// Package main provides the entry point for the apply-agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apply_agent",
	Short: "AI job application assistant",
	Long:  "apply-agent fetches a job posting, tailors your resume and cover letter to it with an LLM (OpenAI, Ollama or Gemini), and renders both as PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/apply-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxRequirementsToShow is the default number of requirements to display
	maxRequirementsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of the parsed posting.
func (p *Printer) PrintJobPosting(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", posting.Company))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", posting.Title))
	if posting.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", posting.Location))
	}
	if posting.Recruiter != "" {
		sb.WriteString(fmt.Sprintf("Recruiter: %s\n", posting.Recruiter))
	}
	sb.WriteString(fmt.Sprintf("Source:    %s\n", posting.Source))

	if len(posting.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(posting.Requirements), maxRequirementsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", posting.Requirements[i]))
		}
		if len(posting.Requirements) > maxRequirementsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.Requirements)-maxRequirementsToShow))
		}
	}

	title := "PARSED JOB POSTING"
	if posting.IsMock() {
		title = "MOCK JOB POSTING"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// StepTiming records how long one pipeline step took.
type StepTiming struct {
	Name     string
	Duration time.Duration
}

// PrintRunSummary outputs the pipeline step timings and written files.
func (p *Printer) PrintRunSummary(timings []StepTiming, files []string) {
	var sb strings.Builder

	var total time.Duration
	for _, t := range timings {
		sb.WriteString(fmt.Sprintf("%-20s %8s\n", t.Name, t.Duration.Round(time.Millisecond)))
		total += t.Duration
	}
	sb.WriteString(fmt.Sprintf("%-20s %8s\n", "total", total.Round(time.Millisecond)))

	if len(files) > 0 {
		sb.WriteString("\nGenerated:\n")
		for _, f := range files {
			sb.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	p.printBox("RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

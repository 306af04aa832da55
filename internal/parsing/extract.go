// Package parsing turns scraped job page text into a structured JobPosting
// using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/prompts"
	"github.com/jonathan/apply-agent/internal/types"
)

// maxJobTextLength caps the page text passed to the model. Most postings fit
// comfortably; anything beyond this is navigation or footer noise.
const maxJobTextLength = 24000

// Extract parses a structured job posting out of cleaned page text.
// The returned posting always carries the job URL; missing company and title
// fields are backfilled from the URL where possible.
func Extract(ctx context.Context, client llm.Client, jobText, jobURL string) (*types.JobPosting, error) {
	jobText = strings.TrimSpace(jobText)
	if jobText == "" {
		return nil, &ParseError{Message: "job text is empty"}
	}
	if len(jobText) > maxJobTextLength {
		jobText = jobText[:maxJobTextLength]
	}

	prompt := buildExtractionPrompt(jobText)

	// Malformed JSON gets one fresh generation before giving up; model
	// backend errors do not.
	var posting *types.JobPosting
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		responseText, err := client.GenerateJSON(ctx, prompt)
		if err != nil {
			return nil, &APICallError{
				Message: "failed to extract job posting",
				Cause:   err,
			}
		}

		posting, lastErr = decodePosting(responseText)
		if lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	postProcess(posting, jobURL)
	return posting, nil
}

// decodePosting validates the raw model output against the posting schema
// and unmarshals it.
func decodePosting(responseText string) (*types.JobPosting, error) {
	if err := validateAgainstSchema(responseText); err != nil {
		return nil, err
	}

	var posting types.JobPosting
	if err := json.Unmarshal([]byte(responseText), &posting); err != nil {
		return nil, &ParseError{
			Message: "failed to parse job posting JSON",
			Cause:   err,
		}
	}
	return &posting, nil
}

// buildExtractionPrompt constructs the prompt for structured extraction
func buildExtractionPrompt(jobText string) string {
	template := prompts.MustGet("parsing.json", "extract-job-posting")
	return prompts.Format(template, map[string]string{
		"JobText": jobText,
	})
}

// postProcess normalizes fields and backfills anything the model left empty.
func postProcess(posting *types.JobPosting, jobURL string) {
	posting.URL = jobURL
	posting.Title = strings.TrimSpace(posting.Title)
	posting.Company = strings.TrimSpace(posting.Company)
	posting.Location = strings.TrimSpace(posting.Location)
	posting.Description = strings.TrimSpace(posting.Description)
	posting.Recruiter = strings.TrimSpace(posting.Recruiter)

	requirements := make([]string, 0, len(posting.Requirements))
	for _, req := range posting.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			requirements = append(requirements, req)
		}
	}
	posting.Requirements = requirements

	if posting.Company == "" {
		posting.Company = CompanyFromURL(jobURL)
	}
	if posting.Title == "" {
		posting.Title = "Unknown Role"
	}
	if posting.FetchedAt.IsZero() {
		posting.FetchedAt = time.Now()
	}
}

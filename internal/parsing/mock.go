// Package parsing - mock.go synthesizes a posting when the real page is
// unreachable.
package parsing

import (
	"fmt"
	"time"

	"github.com/jonathan/apply-agent/internal/fetch"
	"github.com/jonathan/apply-agent/internal/types"
)

// Mock builds a placeholder job posting from nothing but the URL. Used in
// mock data mode and as the last fallback when every fetch strategy fails,
// so the rest of the pipeline can still run end to end.
func Mock(jobURL string) *types.JobPosting {
	jobID := fetch.JobID(jobURL)
	if jobID == "" {
		jobID = "unknown"
	}
	if len(jobID) > 4 {
		jobID = jobID[:4]
	}

	return &types.JobPosting{
		URL:     jobURL,
		Title:   fmt.Sprintf("Software Engineer %s", jobID),
		Company: "Mock Company",
		Location: "Remote",
		Description: "This is a mock job description, generated because the " +
			"actual job page could not be retrieved.",
		Recruiter: "Mock Recruiter",
		Source:    types.SourceMock,
		FetchedAt: time.Now(),
	}
}

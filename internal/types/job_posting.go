// Package types defines the core data structures shared across the application.
package types

import "time"

// JobSource indicates where a job posting's content came from.
type JobSource string

const (
	// SourceLive means the posting was fetched from the live page.
	SourceLive JobSource = "live"
	// SourceCache means the posting HTML was served from the local page cache.
	SourceCache JobSource = "cache"
	// SourceMock means the posting was synthesized because fetching failed.
	SourceMock JobSource = "mock"
)

// JobPosting is a parsed job posting.
type JobPosting struct {
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements,omitempty"`
	Recruiter    string    `json:"recruiter,omitempty"`
	Source       JobSource `json:"source"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// IsMock reports whether the posting was synthesized rather than scraped.
func (j *JobPosting) IsMock() bool {
	return j.Source == SourceMock
}

// Complete reports whether the posting carries the minimum fields the
// generators need. Title and description are required; company is strongly
// recommended but can be inferred from the URL later.
func (j *JobPosting) Complete() bool {
	return j.Title != "" && j.Description != ""
}

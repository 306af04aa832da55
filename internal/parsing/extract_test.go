package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/apply-agent/internal/types"
)

// stubClient returns canned responses for extraction tests.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Model() string { return "stub" }
func (s *stubClient) Close() error  { return nil }

// sequenceClient returns a different response per call.
type sequenceClient struct {
	responses []string
	calls     int
}

func (s *sequenceClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.GenerateJSON(ctx, prompt)
}

func (s *sequenceClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	resp := s.responses[s.calls%len(s.responses)]
	s.calls++
	return resp, nil
}

func (s *sequenceClient) Model() string { return "stub" }
func (s *sequenceClient) Close() error  { return nil }

const validResponse = `{
	"title": "Senior Go Engineer",
	"company": "Acme Corp",
	"location": "Berlin, Germany (Hybrid)",
	"description": "Build and operate backend services in Go.",
	"requirements": ["5+ years Go", "Kubernetes", " "],
	"recruiter": "Jamie Doe"
}`

func TestExtract(t *testing.T) {
	ctx := context.Background()
	jobURL := "https://www.linkedin.com/jobs/view/4012345678"

	t.Run("valid response", func(t *testing.T) {
		client := &stubClient{response: validResponse}

		posting, err := Extract(ctx, client, "some job page text", jobURL)
		require.NoError(t, err)

		assert.Equal(t, "Senior Go Engineer", posting.Title)
		assert.Equal(t, "Acme Corp", posting.Company)
		assert.Equal(t, "Berlin, Germany (Hybrid)", posting.Location)
		assert.Equal(t, jobURL, posting.URL)
		assert.Equal(t, "Jamie Doe", posting.Recruiter)
		assert.Equal(t, []string{"5+ years Go", "Kubernetes"}, posting.Requirements,
			"blank requirement entries are dropped")
		assert.False(t, posting.FetchedAt.IsZero())
		assert.True(t, posting.Complete())
	})

	t.Run("empty job text", func(t *testing.T) {
		client := &stubClient{response: validResponse}

		_, err := Extract(ctx, client, "   ", jobURL)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("backend error", func(t *testing.T) {
		client := &stubClient{err: errors.New("connection refused")}

		_, err := Extract(ctx, client, "some text", jobURL)
		var apiErr *APICallError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		client := &stubClient{response: "not json at all"}

		_, err := Extract(ctx, client, "some text", jobURL)
		require.Error(t, err)
	})

	t.Run("malformed JSON retried once", func(t *testing.T) {
		client := &sequenceClient{responses: []string{"not json at all", validResponse}}

		posting, err := Extract(ctx, client, "some text", jobURL)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", posting.Company)
		assert.Equal(t, 2, client.calls)
	})

	t.Run("missing required field", func(t *testing.T) {
		client := &stubClient{response: `{"title": "Engineer", "company": "Acme"}`}

		_, err := Extract(ctx, client, "some text", jobURL)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Field, "root")
	})

	t.Run("empty company backfilled from URL", func(t *testing.T) {
		client := &stubClient{response: `{
			"title": "Engineer",
			"company": "",
			"description": "A role."
		}`}

		posting, err := Extract(ctx, client, "some text",
			"https://careers.example.com/openings/123")
		require.NoError(t, err)
		assert.Equal(t, "Example", posting.Company)
	})
}

func TestCompanyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "linkedin company page",
			url:      "https://www.linkedin.com/company/acme-widgets/jobs",
			expected: "Acme Widgets",
		},
		{
			name:     "linkedin job view has no company",
			url:      "https://www.linkedin.com/jobs/view/4012345678",
			expected: "Unknown Company",
		},
		{
			name:     "indeed",
			url:      "https://www.indeed.com/viewjob?jk=abc",
			expected: "Unknown Company",
		},
		{
			name:     "corporate careers subdomain",
			url:      "https://careers.example.com/jobs/123",
			expected: "Example",
		},
		{
			name:     "plain corporate site",
			url:      "https://big-widgets.io/jobs/42",
			expected: "Big Widgets",
		},
		{
			name:     "empty",
			url:      "",
			expected: "Unknown Company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanyFromURL(tt.url))
		})
	}
}

func TestMock(t *testing.T) {
	t.Run("with job id", func(t *testing.T) {
		posting := Mock("https://www.linkedin.com/jobs/view/4012345678")

		assert.Equal(t, "Software Engineer 4012", posting.Title)
		assert.Equal(t, "Mock Company", posting.Company)
		assert.Equal(t, types.SourceMock, posting.Source)
		assert.True(t, posting.IsMock())
		assert.True(t, posting.Complete())
	})

	t.Run("without job id", func(t *testing.T) {
		posting := Mock("https://example.com/careers")

		assert.Equal(t, "Software Engineer unkn", posting.Title)
		assert.Equal(t, types.SourceMock, posting.Source)
	})
}

// Package generator produces tailored resume and cover letter documents
// from a candidate profile and a parsed job posting.
package generator

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/apply-agent/internal/llm"
	"github.com/jonathan/apply-agent/internal/profile"
	"github.com/jonathan/apply-agent/internal/prompts"
	"github.com/jonathan/apply-agent/internal/types"
)

// maxConcurrentSections bounds parallel model calls during resume
// generation. Local Ollama servers queue requests anyway; hosted APIs
// rate-limit aggressively beyond a handful of concurrent calls.
const maxConcurrentSections = 4

// maxDescriptionLength is the job description size above which the
// description is summarized once before section generation, so each section
// prompt stays within a reasonable context window.
const maxDescriptionLength = 6000

// Generator creates tailored documents through an LLM client.
type Generator struct {
	client llm.Client
}

// New returns a Generator backed by the given client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// ResumeHTML generates the resume body, one section at a time, and returns
// the combined HTML fragment. Sections are generated concurrently and
// reassembled in document order. A nil posting produces a general-purpose
// resume instead of a tailored one.
func (g *Generator) ResumeHTML(ctx context.Context, p *types.Profile, posting *types.JobPosting) (string, error) {
	if p == nil {
		return "", &GenerateError{Message: "profile is required"}
	}

	jobDescription, err := g.jobDescription(ctx, posting)
	if err != nil {
		return "", err
	}

	results := make([]string, len(resumeSections))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentSections)

	for i, sec := range resumeSections {
		if sec.skip != nil && sec.skip(p) {
			continue
		}

		eg.Go(func() error {
			fragment, err := g.generateSection(ctx, sec, p, jobDescription)
			if err != nil {
				return err
			}
			results[i] = fragment
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, fragment := range results {
		if fragment == "" {
			continue
		}
		sb.WriteString(fragment)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// jobDescription returns the posting description, summarized through the
// model when it is too long to repeat in every section prompt. A nil posting
// yields an empty description and a general-purpose resume.
func (g *Generator) jobDescription(ctx context.Context, posting *types.JobPosting) (string, error) {
	if posting == nil {
		return "", nil
	}
	desc := posting.Description
	if len(desc) <= maxDescriptionLength {
		return desc, nil
	}

	template := prompts.MustGet("resume.json", "summarize")
	out, err := g.client.GenerateContent(ctx, prompts.Format(template, map[string]string{"Text": desc}))
	if err != nil {
		return "", &GenerateError{Message: "job description summarization failed", Cause: err}
	}
	summary := strings.TrimSpace(llm.StripThinkTags(out))
	if summary == "" {
		return desc[:maxDescriptionLength], nil
	}
	return summary, nil
}

// generateSection runs the prompt for one section and cleans the output.
func (g *Generator) generateSection(ctx context.Context, sec section, p *types.Profile, jobDescription string) (string, error) {
	template, err := prompts.Get("resume.json", sec.promptKey)
	if err != nil {
		return "", &SectionError{Section: sec.name, Message: "failed to load prompt", Cause: err}
	}

	data := sec.data(p)
	data["JobDescription"] = jobDescription
	prompt := prompts.Format(template, data)

	out, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &SectionError{Section: sec.name, Message: "generation failed", Cause: err}
	}

	fragment := cleanFragment(out)
	if fragment == "" {
		return "", &SectionError{Section: sec.name, Message: "model returned empty output"}
	}
	return fragment, nil
}

// CoverLetter generates the cover letter as plain text.
func (g *Generator) CoverLetter(ctx context.Context, p *types.Profile, posting *types.JobPosting) (string, error) {
	if p == nil {
		return "", &GenerateError{Message: "profile is required"}
	}
	if posting == nil {
		return "", &GenerateError{Message: "job posting is required"}
	}

	resumeText, err := profile.PromptText(p)
	if err != nil {
		return "", &GenerateError{Message: "failed to render profile", Cause: err}
	}

	template := prompts.MustGet("cover_letter.json", "cover-letter")
	prompt := prompts.Format(template, map[string]string{
		"Name":           p.PersonalInformation.FullName(),
		"Email":          p.PersonalInformation.Email,
		"Phone":          p.PersonalInformation.PhonePrefix + p.PersonalInformation.Phone,
		"Resume":         resumeText,
		"Company":        posting.Company,
		"Role":           posting.Title,
		"JobDescription": posting.Description,
	})

	out, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &GenerateError{Message: "cover letter generation failed", Cause: err}
	}

	letter := cleanFragment(out)
	if letter == "" {
		return "", &GenerateError{Message: "model returned empty cover letter"}
	}
	return letter, nil
}

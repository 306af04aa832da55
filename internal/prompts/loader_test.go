package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ClearCache()

	t.Run("valid prompt", func(t *testing.T) {
		prompt, err := Get("parsing.json", "extract-job-posting")
		require.NoError(t, err)
		assert.Contains(t, prompt, "{{.JobText}}")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := Get("parsing.json", "does-not-exist")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Get("nope.json", "extract-job-posting")
		require.Error(t, err)
	})
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		MustGet("cover_letter.json", "cover-letter")
	})
	assert.Panics(t, func() {
		MustGet("cover_letter.json", "missing-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Role: {{.Role}} at {{.Company}}"
	result := Format(template, map[string]string{
		"Role":    "Engineer",
		"Company": "Acme",
	})
	assert.Equal(t, "Role: Engineer at Acme", result)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestResumeSectionPrompts(t *testing.T) {
	ClearCache()

	sections := []string{
		"section-header",
		"section-education",
		"section-experience",
		"section-projects",
		"section-achievements",
		"section-certifications",
		"section-skills",
	}

	for _, key := range sections {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get("resume.json", key)
			require.NoError(t, err)
			assert.True(t, strings.Contains(prompt, "{{.JobDescription}}"),
				"section prompts must accept a job description")
		})
	}
}

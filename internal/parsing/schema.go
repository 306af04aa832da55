// Package parsing - schema.go validates extracted postings against a JSON Schema.
package parsing

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed job_posting_schema.json
var jobPostingSchema string

// validateAgainstSchema validates the raw JSON text of an extracted posting
// before unmarshalling. A failure means the model returned a malformed or
// incomplete document.
func validateAgainstSchema(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(jobPostingSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ParseError{
			Message: "response is not valid JSON",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	field := first.Field()
	if field == "" {
		field = "(root)"
	}
	return &ValidationError{
		Field:   field,
		Message: first.Description(),
	}
}

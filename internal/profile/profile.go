// Package profile loads and validates the candidate's plain-text résumé file.
package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/apply-agent/internal/types"
)

var validate = validator.New()

// Load reads a YAML profile file, parses and validates it.
func Load(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to read profile file", Cause: err}
	}
	return Parse(data, path)
}

// Parse parses and validates raw YAML profile data. The path is used only
// for error messages.
func Parse(data []byte, path string) (*types.Profile, error) {
	var p types.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &Error{Path: path, Message: "failed to parse profile YAML", Cause: err}
	}

	if err := validate.Struct(&p); err != nil {
		return nil, &Error{Path: path, Message: "profile validation failed", Cause: err}
	}

	return &p, nil
}

// PromptText renders the profile back to YAML for inclusion in LLM prompts.
// YAML keeps the field labels human-readable, which the models handle better
// than positional JSON.
func PromptText(p *types.Profile) (string, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to render profile for prompt: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

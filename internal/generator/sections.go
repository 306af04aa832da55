// Package generator - sections.go defines the resume sections and the
// profile data each one feeds to its prompt.
package generator

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/apply-agent/internal/types"
)

// section binds a prompt key to the slice of profile data it renders.
type section struct {
	name      string
	promptKey string
	// data returns the placeholder values for the section prompt.
	data func(p *types.Profile) map[string]string
	// skip reports whether the profile has nothing for this section.
	skip func(p *types.Profile) bool
}

// resumeSections lists the sections of a generated resume, in document order.
var resumeSections = []section{
	{
		name:      "header",
		promptKey: "section-header",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"PersonalInformation": mustYAML(p.PersonalInformation),
			}
		},
	},
	{
		name:      "education",
		promptKey: "section-education",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"EducationDetails": mustYAML(p.EducationDetails),
			}
		},
		skip: func(p *types.Profile) bool { return len(p.EducationDetails) == 0 },
	},
	{
		name:      "experience",
		promptKey: "section-experience",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"ExperienceDetails": mustYAML(p.ExperienceDetails),
			}
		},
		skip: func(p *types.Profile) bool { return len(p.ExperienceDetails) == 0 },
	},
	{
		name:      "projects",
		promptKey: "section-projects",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"Projects": mustYAML(p.Projects),
			}
		},
		skip: func(p *types.Profile) bool { return len(p.Projects) == 0 },
	},
	{
		name:      "achievements",
		promptKey: "section-achievements",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"Achievements": mustYAML(p.Achievements),
			}
		},
		skip: func(p *types.Profile) bool { return len(p.Achievements) == 0 },
	},
	{
		name:      "certifications",
		promptKey: "section-certifications",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"Certifications": mustYAML(p.Certifications),
			}
		},
		skip: func(p *types.Profile) bool { return len(p.Certifications) == 0 },
	},
	{
		name:      "skills",
		promptKey: "section-skills",
		data: func(p *types.Profile) map[string]string {
			return map[string]string{
				"Languages": mustYAML(p.Languages),
				"Interests": strings.Join(p.Interests, ", "),
				"Skills":    strings.Join(p.Skills, ", "),
			}
		},
		skip: func(p *types.Profile) bool {
			return len(p.Skills) == 0 && len(p.Languages) == 0 && len(p.Interests) == 0
		},
	},
}

// mustYAML renders a profile fragment as YAML for prompt inclusion. Profile
// types are plain structs and slices, so marshalling cannot fail.
func mustYAML(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

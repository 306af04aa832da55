package types

// Profile is the candidate's plain-text résumé data, loaded from YAML.
// The field layout mirrors the classic plain_text_resume.yaml format so
// existing profile files keep working.
type Profile struct {
	PersonalInformation PersonalInformation `yaml:"personal_information" json:"personal_information" validate:"required"`
	EducationDetails    []Education         `yaml:"education_details" json:"education_details,omitempty"`
	ExperienceDetails   []Experience        `yaml:"experience_details" json:"experience_details,omitempty"`
	Projects            []Project           `yaml:"projects" json:"projects,omitempty"`
	Achievements        []Achievement       `yaml:"achievements" json:"achievements,omitempty"`
	Certifications      []string            `yaml:"certifications" json:"certifications,omitempty"`
	Skills              []string            `yaml:"skills" json:"skills,omitempty"`
	Languages           []Language          `yaml:"languages" json:"languages,omitempty"`
	Interests           []string            `yaml:"interests" json:"interests,omitempty"`
}

// PersonalInformation holds contact and identity fields.
type PersonalInformation struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Surname     string `yaml:"surname" json:"surname,omitempty"`
	Country     string `yaml:"country" json:"country,omitempty"`
	City        string `yaml:"city" json:"city,omitempty"`
	PhonePrefix string `yaml:"phone_prefix" json:"phone_prefix,omitempty"`
	Phone       string `yaml:"phone" json:"phone,omitempty"`
	Email       string `yaml:"email" json:"email" validate:"omitempty,email"`
	GitHub      string `yaml:"github" json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn    string `yaml:"linkedin" json:"linkedin,omitempty" validate:"omitempty,url"`
	Summary     string `yaml:"summary" json:"summary,omitempty"`
}

// FullName returns "Name Surname" with surname omitted when empty.
func (p PersonalInformation) FullName() string {
	if p.Surname == "" {
		return p.Name
	}
	return p.Name + " " + p.Surname
}

// Education is a single education entry.
type Education struct {
	Degree       string `yaml:"education_level" json:"degree,omitempty"`
	Institution  string `yaml:"institution" json:"institution,omitempty"`
	FieldOfStudy string `yaml:"field_of_study" json:"field_of_study,omitempty"`
	Grade        string `yaml:"final_evaluation_grade" json:"grade,omitempty"`
	StartDate    string `yaml:"start_date" json:"start_date,omitempty"`
	EndDate      string `yaml:"year_of_completion" json:"end_date,omitempty"`
}

// Experience is a single work experience entry.
type Experience struct {
	Position         string   `yaml:"position" json:"position,omitempty"`
	Company          string   `yaml:"company" json:"company,omitempty"`
	EmploymentPeriod string   `yaml:"employment_period" json:"employment_period,omitempty"`
	Location         string   `yaml:"location" json:"location,omitempty"`
	Industry         string   `yaml:"industry" json:"industry,omitempty"`
	Responsibilities []string `yaml:"key_responsibilities" json:"responsibilities,omitempty"`
	SkillsAcquired   []string `yaml:"skills_acquired" json:"skills_acquired,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name         string   `yaml:"name" json:"name" validate:"required"`
	Description  string   `yaml:"description" json:"description,omitempty"`
	Technologies []string `yaml:"technologies" json:"technologies,omitempty"`
	Link         string   `yaml:"link" json:"link,omitempty"`
}

// Achievement is a named accomplishment.
type Achievement struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Language pairs a language with a proficiency level.
type Language struct {
	Language    string `yaml:"language" json:"language"`
	Proficiency string `yaml:"proficiency" json:"proficiency,omitempty"`
}

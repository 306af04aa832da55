package generator

import "fmt"

// SectionError represents a failure generating one resume section
type SectionError struct {
	Section string
	Message string
	Cause   error
}

func (e *SectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("section %s: %s: %v", e.Section, e.Message, e.Cause)
	}
	return fmt.Sprintf("section %s: %s", e.Section, e.Message)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}

// GenerateError represents a general generation failure
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generate error: %s", e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

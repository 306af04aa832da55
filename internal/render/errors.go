package render

import "fmt"

// Error represents a PDF rendering failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidPDFError represents output that is not a usable PDF document
type InvalidPDFError struct {
	Message string
}

func (e *InvalidPDFError) Error() string {
	return fmt.Sprintf("invalid PDF: %s", e.Message)
}

package cv

import "fmt"

// TemplateError represents an error parsing or executing the LaTeX template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// CompileError represents a failed remote LaTeX compilation. The caller can
// fall back to an Overleaf link when this is returned.
type CompileError struct {
	StatusCode int
	Message    string
}

func (e *CompileError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("latex compile failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("latex compile failed (status %d)", e.StatusCode)
}

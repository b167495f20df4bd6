package model

import "fmt"

// RenderError represents a fatal rendering failure with the layout step it
// happened in. Rendering never produces a partial document: either a
// complete document value comes back or the operation fails with one of
// these.
type RenderError struct {
	Step    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Step, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(step, message string, cause error) *RenderError {
	return &RenderError{
		Step:    step,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents an invoice sanity-check failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

package models

import "fmt"

// GeneratorError represents an error that stopped a generation run
type GeneratorError struct {
	Type        ErrorType              // type of error
	File        string                 // file involved, if any
	Message     string                 // error message
	Cause       error                  // underlying error cause
	Suggestions []string               // hints shown to the operator
	Context     map[string]interface{} // extra details for verbose output
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

package models

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeGeneration
	ErrorTypeFileSystem
	ErrorTypeInput
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeGeneration:
		return "generation"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeInput:
		return "input"
	default:
		return "unknown"
	}
}

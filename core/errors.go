package core

import (
	"fmt"
)

// SynthError represents an error in a synthesis operation
type SynthError struct {
	System  string
	Op      string
	Message string
}

func (e *SynthError) Error() string {
	if e.System != "" {
		return fmt.Sprintf("synthesis error in %s.%s: %s", e.System, e.Op, e.Message)
	}
	return fmt.Sprintf("synthesis error in %s: %s", e.Op, e.Message)
}

func NewSynthError(system, operation, message string) *SynthError {
	return &SynthError{
		System:  system,
		Op:      operation,
		Message: message,
	}
}

// Errorf is NewSynthError with a formatted message.
func Errorf(system, operation, format string, args ...any) *SynthError {
	return NewSynthError(system, operation, fmt.Sprintf(format, args...))
}

package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// Common test errors
var (
	// ErrTest is a generic test error
	ErrTest = errors.New("test error")

	// ErrCommandFailed represents a failed external command (tsc, docker, cdk)
	ErrCommandFailed = errors.New("command failed")

	// ErrTaskFailed represents a failed pipeline task
	ErrTaskFailed = errors.New("task failed")
)

// NewTestError creates a test error with a custom message.
func NewTestError(message string) error {
	return fmt.Errorf("test error: %s", message)
}

// NewTestErrorf creates a test error with a formatted message.
func NewTestErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("test error: "+format, args...)
}

// WrapTestError wraps an error with a test error message.
func WrapTestError(err error, message string) error {
	return fmt.Errorf("test error: %s: %w", message, err)
}

// ErrorContains checks if an error contains a specific substring.
func ErrorContains(err error, substr string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), substr)
}

package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	// Validation errors
	ErrEmptyInput = errors.New("empty input")
	ErrTooLong    = errors.New("input too long")
	ErrValidation = errors.New("validation failed")

	// Generation errors
	ErrNotConfigured    = errors.New("provider not configured")
	ErrGenerationFailed = errors.New("report generation failed")
)

// InputError is a single malformed-input failure. Kind is ErrEmptyInput or ErrTooLong.
type InputError struct {
	Kind    error
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() []error {
	return []error{e.Kind, ErrValidation}
}

// ValidationError carries every violation found in a request so they can be shown at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FailureKind enumerates why a provider call did not produce text.
type FailureKind string

const (
	FailureNotConfigured FailureKind = "not_configured"
	FailureTransport     FailureKind = "transport"
	FailureProvider      FailureKind = "provider"
	FailureMalformed     FailureKind = "malformed"
)

// ProviderError is the failure side of a provider call.
type ProviderError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s failure", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	if e.Kind == FailureNotConfigured && e.Err == nil {
		return ErrNotConfigured
	}
	return e.Err
}

package hantl

import (
	"fmt"
	"time"
)

// TimeoutError indicates an inference attempt exceeded its deadline. It is
// the only error kind the Orchestrator recovers from, via a single degraded
// retry.
type TimeoutError struct {
	Deadline time.Duration // The deadline that elapsed
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("inference timed out after %s", e.Deadline)
}

// InferenceError indicates a backend fault. Never retried by the
// Orchestrator; a provider wrapper may retry when Retryable is set.
type InferenceError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *InferenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("inference error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("inference error: %s", e.Message)
}

func (e *InferenceError) Unwrap() error {
	return e.Cause
}

// StorageError indicates a cache store fault. Writes fail loud with this
// error; reads fail open and report a miss instead.
type StorageError struct {
	Op    string // The operation that failed, e.g. "put translation"
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Op)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a malformed request, such as an unsupported
// language pair. Empty input is not a ValidationError; it is silently
// ignored by Submit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

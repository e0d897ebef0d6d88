package hantl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{Deadline: 30 * time.Second}
	if !strings.Contains(err.Error(), "30s") {
		t.Errorf("Expected deadline in message, got: %s", err.Error())
	}
}

func TestInferenceError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &InferenceError{Message: "chat completion failed", Cause: cause, Retryable: true}

	if !strings.Contains(err.Error(), "chat completion failed") {
		t.Errorf("Expected message in error, got: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestInferenceError_NoCause(t *testing.T) {
	err := &InferenceError{Message: "empty response"}
	if strings.Contains(err.Error(), "<nil>") {
		t.Errorf("Message should not render a nil cause: %s", err.Error())
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &StorageError{Op: "put translation", Cause: cause}

	if !strings.Contains(err.Error(), "put translation") {
		t.Errorf("Expected op in message, got: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "unsupported language pair"}
	if !strings.Contains(err.Error(), "unsupported language pair") {
		t.Errorf("Expected message in error, got: %s", err.Error())
	}
}

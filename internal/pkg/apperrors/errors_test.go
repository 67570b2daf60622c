package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorsUnwrapToResourceNotFound(t *testing.T) {
	for _, err := range []error{ErrCollegeNotFound, ErrStudentNotFound} {
		wrapped := fmt.Errorf("service: %w", err)
		if !errors.Is(wrapped, ErrResourceNotFound) {
			t.Fatalf("expected %v to match ErrResourceNotFound", err)
		}
		if !errors.Is(wrapped, err) {
			t.Fatalf("expected wrapped error to match %v", err)
		}
	}
	if errors.Is(ErrCollegeNotFound, ErrStudentNotFound) {
		t.Fatalf("college and student not-found must stay distinct")
	}
}

func TestCustomErrorMessage(t *testing.T) {
	if got := NewCustomError(ErrResourceNotFound, "").Error(); got != "resource not found" {
		t.Fatalf("expected fallback to wrapped message, got %q", got)
	}
	if got := (&CustomError{}).Error(); got != "unknown error" {
		t.Fatalf("unexpected message %q", got)
	}
}

package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "pfa/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code
// and returns it for further checks.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertMessageContains checks that err is an *AppError with expectedCode whose
// user-facing message mentions fragment, e.g. the offending field path.
func AssertMessageContains(t *testing.T, err error, expectedCode, fragment string) {
	t.Helper()

	appErr := AssertAppError(t, err, expectedCode)
	if !strings.Contains(appErr.Message, fragment) {
		t.Errorf("expected message to contain %q, got %q", fragment, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

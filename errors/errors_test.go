package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	withCause := NewAppError(ErrCodeDBError, "could not save", fmt.Errorf("boom"))
	if got := withCause.Error(); got != "[DB_ERROR] could not save: boom" {
		t.Fatalf("unexpected message: %q", got)
	}

	plain := NewAppError(ErrCodeNotFound, "missing", nil)
	if got := plain.Error(); got != "[NOT_FOUND] missing" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestGetAppErrorThroughWrap(t *testing.T) {
	inner := NewAppError(ErrCodeSingleton, "only one", ErrSettingsExist)
	wrapped := fmt.Errorf("create settings: %w", inner)

	if !IsAppError(wrapped) {
		t.Fatalf("expected wrapped AppError to be detected")
	}
	if got := GetAppError(wrapped); got != inner {
		t.Fatalf("expected the inner AppError, got %v", got)
	}
	if !HasCode(wrapped, ErrCodeSingleton) {
		t.Fatalf("expected code %s", ErrCodeSingleton)
	}
	if !errors.Is(wrapped, ErrSettingsExist) {
		t.Fatalf("expected errors.Is to reach the sentinel")
	}
	if GetAppError(errors.New("plain")) != nil {
		t.Fatalf("plain errors carry no AppError")
	}
}

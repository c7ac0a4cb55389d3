package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %d", 42)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("got code %s, want %s", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "bad value: 42" {
		t.Errorf("got message %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("New should not set a cause")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch %s", "https://example.com")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "NETWORK_ERROR: fetch https://example.com: connection refused"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodePackageNotFound, "no such package")

	if !Is(err, ErrCodePackageNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNetwork) {
		t.Error("Is should not match a non-structured error")
	}

	// Code is found through wrapping layers.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodePackageNotFound) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRateLimited, "slow down")); got != ErrCodeRateLimited {
		t.Errorf("got %s, want %s", got, ErrCodeRateLimited)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("got %s, want empty code", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("got %s for nil error", got)
	}
}

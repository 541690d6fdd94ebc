package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSizing, "flex factor %d out of range", 300)

	if err.Code != ErrCodeInvalidSizing {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSizing)
	}
	if err.Message != "flex factor 300 out of range" {
		t.Errorf("Message = %q", err.Message)
	}
	if want := "INVALID_SIZING: flex factor 300 out of range"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeCache, cause, "read cached layout")

	if err.Code != ErrCodeCache {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeCache)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want the original cause", errors.Unwrap(err))
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidManifest, "bad kind"), ErrCodeInvalidManifest, true},
		{"different code", New(ErrCodeInvalidManifest, "bad kind"), ErrCodeCache, false},
		{"outer code of a wrapped error", Wrap(ErrCodeCache, New(ErrCodeInvalidManifest, "inner"), "outer"), ErrCodeCache, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidManifest, false},
		{"nil error", nil, ErrCodeInvalidManifest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"structured error", New(ErrCodeInvalidPadding, "negative side"), ErrCodeInvalidPadding},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured error strips the code", New(ErrCodeInvalidInput, "manifest is required"), "manifest is required"},
		{"plain error passes through", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

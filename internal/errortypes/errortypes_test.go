package errortypes

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := UpstreamError(cause, "fetch failed")

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("Expected errors.As to extract *AppError")
	}
	if appErr.Type != ErrorTypeUpstream {
		t.Errorf("Expected type %s, got %s", ErrorTypeUpstream, appErr.Type)
	}
	if appErr.Message != "fetch failed" {
		t.Errorf("Unexpected message: %s", appErr.Message)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"validation", ValidationError(nil, "bad input"), ErrorTypeValidation},
		{"authentication", AuthenticationError(nil, "bad token"), ErrorTypeAuthentication},
		{"not found", NotFoundError(nil, "missing"), ErrorTypeNotFound},
		{"not implemented", NotImplementedError(nil, "later"), ErrorTypeNotImplemented},
		{"wrapped app error", fmt.Errorf("outer: %w", NotFoundError(nil, "missing")), ErrorTypeNotFound},
		{"plain error", errors.New("boom"), ErrorTypeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.err); got != tt.want {
				t.Errorf("TypeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWithField(t *testing.T) {
	err := ValidationError(nil, "bad input").WithField("username", "alice")

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("Expected *AppError")
	}
	if appErr.Fields["username"] != "alice" {
		t.Errorf("Expected field username=alice, got %v", appErr.Fields)
	}
}

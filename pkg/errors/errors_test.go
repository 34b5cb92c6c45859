package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "new",
			err:  New(ErrCodeDegreeMismatch, "seed %d has %d coordinates", 2, 3),
			want: "DEGREE_MISMATCH: seed 2 has 3 coordinates",
		},
		{
			name: "wrapped",
			err:  Wrap(ErrCodeInvalidConfig, errors.New("expected '='"), "decode %s", "maximizer.toml"),
			want: "INVALID_CONFIG: decode maximizer.toml: expected '='",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeCanceled, context.Canceled, "run stopped after %d iterations", 7)

	if errors.Unwrap(err) != context.Canceled {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("a canceled run must still match context.Canceled")
	}
	if UserMessage(err) != "run stopped after 7 iterations" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeEmptyInput, "no seeds"), ErrCodeEmptyInput, true},
		{"other code", New(ErrCodeEmptyInput, "no seeds"), ErrCodeDegreeMismatch, false},
		{"outermost code wins", Wrap(ErrCodeInvalidInput, New(ErrCodeAlphabetTooLarge, "inner"), "row 3"), ErrCodeInvalidInput, true},
		{"through fmt wrapping", fmt.Errorf("export json: %w", New(ErrCodeInvalidFormat, "svg")), ErrCodeInvalidFormat, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
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
		{"coded", New(ErrCodeIterationLimit, "limit"), ErrCodeIterationLimit},
		{"wrapped by fmt", fmt.Errorf("seed 2: %w", New(ErrCodeEmptyCoordinate, "empty")), ErrCodeEmptyCoordinate},
		{"plain", errors.New("plain"), ""},
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

func TestStopped(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{Wrap(ErrCodeCanceled, context.DeadlineExceeded, "run stopped"), true},
		{New(ErrCodeIterationLimit, "limit of 10 reached"), true},
		{fmt.Errorf("execute: %w", New(ErrCodeIterationLimit, "limit")), true},
		{New(ErrCodeDegreeMismatch, "seed 2"), false},
		{context.Canceled, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := Stopped(tt.err); got != tt.want {
			t.Errorf("Stopped(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "coordinate %q contains reserved symbol '#'", "a#")); got != `coordinate "a#" contains reserved symbol '#'` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

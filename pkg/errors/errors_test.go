package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedRule, "line %d: missing '|'", 3)

	if err.Code != ErrCodeMalformedRule {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedRule)
	}

	if err.Message != "line 3: missing '|'" {
		t.Errorf("Message = %v, want %v", err.Message, "line 3: missing '|'")
	}

	expected := "MALFORMED_RULE: line 3: missing '|'"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("strconv.Atoi: parsing \"x\": invalid syntax")
	err := Wrap(ErrCodeMalformedSequence, cause, "line 7")

	if err.Code != ErrCodeMalformedSequence {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedSequence)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMalformedRule, "test"),
			code:     ErrCodeMalformedRule,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedRule, "test"),
			code:     ErrCodeEmptySequence,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeMalformedRule, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeMalformedRule, "inner"), "outer"),
			code:     ErrCodeMalformedRule,
			expected: true,
		},
		{
			name:     "behind fmt.Errorf",
			err:      fmt.Errorf("parse: %w", New(ErrCodeMissingSeparator, "no blank line")),
			code:     ErrCodeMissingSeparator,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeMalformedRule,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeMalformedRule,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeEmptySequence, "test"),
			expected: ErrCodeEmptySequence,
		},
		{
			name:     "outermost wins",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeMalformedRule, "inner"), "outer"),
			expected: ErrCodeInvalidInput,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMalformedRule, "line 2: missing '|'"),
			expected: "line 2: missing '|'",
		},
		{
			name:     "wrapped plain error",
			err:      Wrap(ErrCodeMalformedSequence, errors.New("bad token"), "line 9"),
			expected: "line 9: bad token",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeMalformedRule, "x"), true},
		{New(ErrCodeMalformedSequence, "x"), true},
		{New(ErrCodeEmptySequence, "x"), true},
		{New(ErrCodeMissingSeparator, "x"), true},
		{New(ErrCodeInvalidMode, "x"), false},
		{errors.New("x"), false},
	}

	for _, tt := range tests {
		if got := IsInputError(tt.err); got != tt.want {
			t.Errorf("IsInputError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewValidation(t *testing.T) {
	err := NewValidation([]string{"quote_text", "author"})

	if err.Code != ErrValidation {
		t.Errorf("Code = %s, want %s", err.Code, ErrValidation)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if !strings.Contains(err.Message, "quote_text") || !strings.Contains(err.Message, "author") {
		t.Errorf("Message = %q, should name the rejected fields", err.Message)
	}

	fields := Fields(err)
	if len(fields) != 2 {
		t.Fatalf("Fields = %v, want 2 entries", fields)
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("quote")
	if !Is(err, ErrNotFound) {
		t.Error("Is(NotFound, ErrNotFound) = false")
	}
	if Is(err, ErrValidation) {
		t.Error("Is(NotFound, ErrValidation) = true")
	}
	if Is(stderrors.New("plain"), ErrNotFound) {
		t.Error("Is(plain error) = true")
	}
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewInvalidRequest("bad"), 400},
		{NewValidation([]string{"x"}), 422},
		{NewNotFound("y"), 404},
		{NewStore(nil), 500},
		{NewInternal(nil), 500},
	}
	for _, tt := range tests {
		if tt.err.Status != tt.status {
			t.Errorf("%s: Status = %d, want %d", tt.err.Code, tt.err.Status, tt.status)
		}
	}
}

func TestErrorString(t *testing.T) {
	err := NewInvalidRequest("unknown mood")
	got := err.Error()
	if !strings.Contains(got, "INVALID_REQUEST") || !strings.Contains(got, "unknown mood") {
		t.Errorf("Error() = %q, want code and message", got)
	}
}

package diagnostics

import (
	"strings"
	"testing"

	"github.com/hornlang/hornc/internal/token"
)

func TestErrorStringIncludesPosition(t *testing.T) {
	err := NewError(ErrNotTrait, token.Position{Line: 3, Column: 7}, "Foo is not a trait")
	got := err.Error()
	if !strings.Contains(got, "3:7") {
		t.Errorf("Error() = %q, want it to contain the position", got)
	}
	if !strings.Contains(got, string(ErrNotTrait)) {
		t.Errorf("Error() = %q, want it to contain the code", got)
	}
}

func TestErrorStringWithoutPosition(t *testing.T) {
	err := NewError(ErrNotTrait, token.Position{}, "Foo is not a trait")
	got := err.Error()
	if strings.Contains(got, "<unknown>") {
		t.Errorf("Error() = %q, want no explicit unknown position", got)
	}
	if !strings.Contains(got, "Foo is not a trait") {
		t.Errorf("Error() = %q, want it to contain the message", got)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrDuplicateParameter, token.Position{Line: 1, Column: 1}, "duplicate parameter %q", "T")
	if !strings.Contains(err.Message, "T") {
		t.Errorf("Message = %q, want it to contain T", err.Message)
	}
}

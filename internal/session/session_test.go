package session

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
)

func TestSessionLowerLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	s := New(log.New(&buf, "", 0))

	_, err := s.Lower(&ast.Program{}, ir.SolverChoice{Name: "recursive"})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "lowering:") {
		t.Errorf("log output = %q, want an entry line", out)
	}
	if !strings.Contains(out, "lowering succeeded") {
		t.Errorf("log output = %q, want a success line", out)
	}
	if !strings.Contains(out, s.ID.String()[:8]) {
		t.Errorf("log output = %q, want the session id prefix", out)
	}
}

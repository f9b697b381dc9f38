// Package session wraps a single invocation of the lowering driver with a
// correlation id, so multiple concurrent lowering runs (e.g. one per file in
// the CLI, or one per request in some future long-running host) can be told
// apart in logs.
package session

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/lowering"
)

// Session correlates one Lower call with an id and a logger prefixed with
// that id.
type Session struct {
	ID     uuid.UUID
	logger *log.Logger
}

// New creates a Session with a fresh random id, logging to the given
// *log.Logger's output (or the standard logger's output if l is nil).
func New(l *log.Logger) *Session {
	id := uuid.New()
	out := log.Writer()
	flags := log.Flags()
	if l != nil {
		out = l.Writer()
		flags = l.Flags()
	}
	return &Session{
		ID:     id,
		logger: log.New(out, "["+id.String()[:8]+"] ", flags),
	}
}

// Lower runs the lowering driver, logging entry, exit, and elapsed time.
func (s *Session) Lower(program *ast.Program, solverChoice ir.SolverChoice) (*ir.Program, error) {
	start := time.Now()
	s.logger.Printf("lowering: %d items, solver=%s", len(program.Items), solverChoice.Name)

	out, err := lowering.Lower(program, solverChoice)

	elapsed := time.Since(start)
	if err != nil {
		s.logger.Printf("lowering failed after %s: %v", elapsed, err)
		return nil, err
	}
	s.logger.Printf("lowering succeeded after %s: %d structs, %d traits, %d impls",
		elapsed, len(out.StructData), len(out.TraitData), len(out.ImplData))
	return out, nil
}

// Package token carries source positions through the AST for diagnostics.
// The upstream parser that would produce real positions is an external
// collaborator (out of scope for this module); positions here are either
// supplied by the YAML program-description loader (internal/astyaml) or
// left at the zero value in hand-built test fixtures.
package token

import "fmt"

// Position is a 1-based line/column pair, or the zero value when unknown.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsKnown reports whether the position carries real source information.
func (p Position) IsKnown() bool { return p.Line != 0 }

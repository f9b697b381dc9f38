// Package ast defines the syntactic input to the lowering pass: structs,
// traits, impls, associated-type definitions, custom clauses, and goals.
//
// Building this AST is the job of an upstream parser, which is an external
// collaborator out of scope for this module (see SPEC_FULL.md §1/§6).
// Callers either build nodes directly (as the tests do) or load them from
// the YAML program-description format in internal/astyaml.
package ast

import (
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/paramkind"
	"github.com/hornlang/hornc/internal/token"
)

// Node is the common shape of every AST node: it knows where it came from.
type Node interface {
	Pos() token.Position
}

// Program is the root of a syntactic program: an ordered list of top-level
// items. Order matters — ItemId allocation (§3) is positional.
type Program struct {
	Items []Item
}

// Item is a top-level declaration.
type Item interface {
	Node
	itemNode()
}

// ParameterKind, at the AST level, carries the declared name of a generic
// parameter.
type ParameterKind = paramkind.ParameterKind[ident.ID]

func (*StructDefn) itemNode() {}
func (*TraitDefn) itemNode()  {}
func (*Impl) itemNode()       {}
func (*Clause) itemNode()     {}

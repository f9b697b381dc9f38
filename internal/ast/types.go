package ast

import (
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/token"
)

// Ty is a syntactic type: a named type, an applied type, a projection
// (selected or unselected), or a lifetime-quantified type.
type Ty interface {
	Node
	tyNode()
}

// IdTy is a bare name: either a generic parameter or a nullary item, e.g. `T`
// or `Unit`.
type IdTy struct {
	Token token.Position
	Name  ident.ID
}

func (t *IdTy) Pos() token.Position { return t.Token }
func (*IdTy) tyNode()               {}

// ApplyTy is a named type applied to arguments, e.g. `Vec<T>`.
type ApplyTy struct {
	Token token.Position
	Name  ident.ID
	Args  []Parameter
}

func (t *ApplyTy) Pos() token.Position { return t.Token }
func (*ApplyTy) tyNode()               {}

// ProjectionTyNode is a selected projection `<TraitRef>::Name<args>`.
type ProjectionTyNode struct {
	Token    token.Position
	TraitRef *TraitRef
	Name     ident.ID
	Args     []Parameter
}

func (t *ProjectionTyNode) Pos() token.Position { return t.Token }
func (*ProjectionTyNode) tyNode()               {}

// UnselectedProjectionTyNode is a projection `Name<args>` written without an
// explicit owning trait; resolved against traits_in_scope (§4.1, §4.5).
type UnselectedProjectionTyNode struct {
	Token token.Position
	Name  ident.ID
	Args  []Parameter
}

func (t *UnselectedProjectionTyNode) Pos() token.Position { return t.Token }
func (*UnselectedProjectionTyNode) tyNode()               {}

// ForAllTy is a lifetime-quantified type `forall<'a> { T }`.
type ForAllTy struct {
	Token         token.Position
	LifetimeNames []ident.ID
	Ty            Ty
}

func (t *ForAllTy) Pos() token.Position { return t.Token }
func (*ForAllTy) tyNode()               {}

// Lifetime is a syntactic lifetime reference.
type Lifetime interface {
	Node
	lifetimeNode()
}

// IdLifetime is a named lifetime, e.g. `'a`.
type IdLifetime struct {
	Token token.Position
	Name  ident.ID
}

func (l *IdLifetime) Pos() token.Position { return l.Token }
func (*IdLifetime) lifetimeNode()         {}

// Parameter is either a type or a lifetime argument supplied at a use site
// (as opposed to ParameterKind, which is a declared parameter's kind+name).
type Parameter interface {
	Node
	parameterNode()
}

// TyParameter wraps a Ty used as an argument.
type TyParameter struct{ Ty Ty }

func (p TyParameter) Pos() token.Position { return p.Ty.Pos() }
func (TyParameter) parameterNode()        {}

// LifetimeParameter wraps a Lifetime used as an argument.
type LifetimeParameter struct{ Lifetime Lifetime }

func (p LifetimeParameter) Pos() token.Position { return p.Lifetime.Pos() }
func (LifetimeParameter) parameterNode()        {}

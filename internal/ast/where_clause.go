package ast

import "github.com/hornlang/hornc/internal/ident"
import "github.com/hornlang/hornc/internal/token"

// TraitRef is `<Self as Trait<Args>>` written as `Trait<Self, Args>`; the
// first argument is always the Self parameter (§4.6).
type TraitRef struct {
	Token     token.Position
	TraitName ident.ID
	Args      []Parameter // Args[0] is Self
}

func (t *TraitRef) Pos() token.Position { return t.Token }

// PolarizedTraitRef carries the polarity of an impl's trait reference.
type PolarizedTraitRef struct {
	Positive bool
	TraitRef *TraitRef
}

// WhereClause is a single where-clause: either a trait bound or a
// projection-equality bound.
type WhereClause interface {
	Node
	whereClauseNode()
}

// Implemented is `T: Trait<Args>`.
type Implemented struct {
	Token    token.Position
	TraitRef *TraitRef
}

func (w *Implemented) Pos() token.Position { return w.Token }
func (*Implemented) whereClauseNode()      {}

// ProjectionEq is `<TraitRef>::Name<Args> = Ty`.
type ProjectionEq struct {
	Token      token.Position
	Projection *ProjectionTyNode
	Ty         Ty
}

func (w *ProjectionEq) Pos() token.Position { return w.Token }
func (*ProjectionEq) whereClauseNode()      {}

// QuantifiedWhereClause wraps a WhereClause in a binder for additional
// quantified parameters: `forall<U> { T: Foo<U> }`.
type QuantifiedWhereClause struct {
	ParameterKinds []ParameterKind
	WhereClause    WhereClause
}

// InlineBound is a bound written inline on a declaration, e.g.
// `trait Foo where T: Bar` or `T: Iterator<Item = U>`.
type InlineBound interface {
	Node
	inlineBoundNode()
}

// TraitBound is `Trait<ArgsNoSelf>` used as an inline bound (Self supplied
// by context).
type TraitBound struct {
	Token      token.Position
	TraitName  ident.ID
	ArgsNoSelf []Parameter
}

func (b *TraitBound) Pos() token.Position { return b.Token }
func (*TraitBound) inlineBoundNode()      {}

// ProjectionEqBound is `Trait<..>::Name<Args> = Value` used as an inline
// bound.
type ProjectionEqBound struct {
	Token      token.Position
	TraitBound *TraitBound
	Name       ident.ID
	Args       []Parameter
	Value      Ty
}

func (b *ProjectionEqBound) Pos() token.Position { return b.Token }
func (*ProjectionEqBound) inlineBoundNode()       {}

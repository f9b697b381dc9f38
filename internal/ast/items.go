package ast

import "github.com/hornlang/hornc/internal/ident"
import "github.com/hornlang/hornc/internal/token"

// StructFlags are the coherence-relevant flags on a struct (§6).
type StructFlags struct {
	External    bool
	Fundamental bool
}

// Field is a single struct field.
type Field struct {
	Name ident.ID
	Ty   Ty
}

// StructDefn is `struct Name<Params> where WhereClauses { Fields }`.
type StructDefn struct {
	Token          token.Position
	Name           ident.ID
	ParameterKinds []ParameterKind
	Fields         []Field
	WhereClauses   []QuantifiedWhereClause
	Flags          StructFlags
}

func (d *StructDefn) Pos() token.Position { return d.Token }

// TraitFlags are the coherence/lang-item flags on a trait (§6).
type TraitFlags struct {
	Auto     bool
	Marker   bool
	External bool
	Deref    bool
}

// AssocTyDefn is an associated-type definition inside a trait:
// `type Name<AddlParams>: Bounds where WhereClauses;`
type AssocTyDefn struct {
	Token          token.Position
	Name           ident.ID
	ParameterKinds []ParameterKind // the definition's own "additional" parameters
	Bounds         []InlineBound
	WhereClauses   []QuantifiedWhereClause
}

func (d *AssocTyDefn) Pos() token.Position { return d.Token }

// TraitDefn is `trait Name<Params> where WhereClauses { AssocTyDefns }`.
type TraitDefn struct {
	Token          token.Position
	Name           ident.ID
	ParameterKinds []ParameterKind
	WhereClauses   []QuantifiedWhereClause
	Flags          TraitFlags
	AssocTyDefns   []*AssocTyDefn
}

func (d *TraitDefn) Pos() token.Position { return d.Token }

// AssocTyValue is an associated-type value inside an impl:
// `type Name<Params> = Value;`
type AssocTyValue struct {
	Token          token.Position
	Name           ident.ID
	ParameterKinds []ParameterKind
	Value          Ty
}

func (v *AssocTyValue) Pos() token.Position { return v.Token }

// Impl is `impl<Params> PolarizedTraitRef where WhereClauses { AssocTyValues }`.
type Impl struct {
	Token          token.Position
	ParameterKinds []ParameterKind
	TraitRef       PolarizedTraitRef
	WhereClauses   []QuantifiedWhereClause
	AssocTyValues  []*AssocTyValue
}

func (d *Impl) Pos() token.Position { return d.Token }

// Clause is a custom program clause: `forall<Params> { Consequence :- Conditions }`.
type Clause struct {
	Token          token.Position
	ParameterKinds []ParameterKind
	Consequence    DomainGoal
	Conditions     []Goal
}

func (c *Clause) Pos() token.Position { return c.Token }

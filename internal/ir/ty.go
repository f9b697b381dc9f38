package ir

import "github.com/hornlang/hornc/internal/ident"

// Ty is a lowered type expression (§4.4, §4.6).
type Ty interface {
	tyNode()
}

// VarTy is a de Bruijn-indexed bound type variable.
type VarTy struct {
	Var BoundVar
}

func (VarTy) tyNode() {}

// ApplicationTy is `Name<Parameters>` — a struct or lang-item applied to
// arguments.
type ApplicationTy struct {
	Id         ItemId
	Parameters []Parameter
}

func (ApplicationTy) tyNode() {}

// ProjectionTy is `<TraitRef as Trait>::Name<Args>` fully resolved: the
// trait is written explicitly in source. Unselected projections do not lower
// to this type; they lower to UnselectedProjectionTy.
type ProjectionTy struct {
	AssociatedTyId ItemId
	Parameters     []Parameter
}

func (ProjectionTy) tyNode() {}

// UnselectedProjectionTy is `Name<Args>` written without an owning trait.
// Lowering checks that exactly one trait in scope defines Name and
// kind-checks Args against it, but records only the name and the
// associated type's own arguments: the resolved trait, its associated-type
// id and the trait's parameters are not stored here.
type UnselectedProjectionTy struct {
	ProjectionName ident.ID
	Parameters     []Parameter
}

func (UnselectedProjectionTy) tyNode() {}

// QuantifiedTy is `forall<Params> { Ty }`.
type QuantifiedTy struct {
	QuantifierKind QuantifierKind
	Ty             Binders[Ty]
}

func (QuantifiedTy) tyNode() {}

// Lifetime is a lowered lifetime expression.
type Lifetime interface {
	lifetimeNode()
}

// VarLifetime is a de Bruijn-indexed bound lifetime variable.
type VarLifetime struct {
	Var BoundVar
}

func (VarLifetime) lifetimeNode() {}

// Parameter is either a Ty or a Lifetime.
type Parameter interface {
	parameterNode()
}

// TyParameter wraps a Ty as a Parameter.
type TyParameter struct{ Ty Ty }

func (TyParameter) parameterNode() {}

// LifetimeParameter wraps a Lifetime as a Parameter.
type LifetimeParameter struct{ Lifetime Lifetime }

func (LifetimeParameter) parameterNode() {}

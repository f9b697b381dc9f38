package ir

// DomainGoal is an atomic solver goal (§4.7).
type DomainGoal interface {
	domainGoalNode()
}

// Holds is `Implemented(TraitRef)` or `ProjectionEq(...)` used as a goal.
type Holds struct{ WhereClause WhereClause }

func (Holds) domainGoalNode() {}

// Normalize is `<TraitRef>::Name<Args> -> Ty`.
type Normalize struct {
	Projection ProjectionTy
	Ty         Ty
}

func (Normalize) domainGoalNode() {}

// WellFormedTy is `WellFormed(Ty)`.
type WellFormedTy struct{ Ty Ty }

func (WellFormedTy) domainGoalNode() {}

// WellFormedTraitRef is `WellFormed(TraitRef)`.
type WellFormedTraitRef struct{ TraitRef TraitRef }

func (WellFormedTraitRef) domainGoalNode() {}

// FromEnvTy is `FromEnv(Ty)`.
type FromEnvTy struct{ Ty Ty }

func (FromEnvTy) domainGoalNode() {}

// FromEnvTraitRef is `FromEnv(TraitRef)`.
type FromEnvTraitRef struct{ TraitRef TraitRef }

func (FromEnvTraitRef) domainGoalNode() {}

// InScope is `InScope(TraitId)`.
type InScope struct{ TraitId ItemId }

func (InScope) domainGoalNode() {}

// Derefs is `Derefs(Source, Target)`.
type Derefs struct{ Source, Target Ty }

func (Derefs) domainGoalNode() {}

// IsLocal is `IsLocal(Ty)`.
type IsLocal struct{ Ty Ty }

func (IsLocal) domainGoalNode() {}

// IsExternal is `IsExternal(Ty)`.
type IsExternal struct{ Ty Ty }

func (IsExternal) domainGoalNode() {}

// IsDeeplyExternal is `IsDeeplyExternal(Ty)`.
type IsDeeplyExternal struct{ Ty Ty }

func (IsDeeplyExternal) domainGoalNode() {}

// LocalImplAllowed is `LocalImplAllowed(TraitRef)`.
type LocalImplAllowed struct{ TraitRef TraitRef }

func (LocalImplAllowed) domainGoalNode() {}

// EqKind distinguishes a type-equality leaf goal from a lifetime-equality
// one.
type EqKind int

const (
	EqTy EqKind = iota
	EqLifetime
)

// LeafGoal is either a DomainGoal or an equality goal (§4.7).
type LeafGoal interface {
	leafGoalNode()
}

// DomainGoalLeaf wraps a DomainGoal as a leaf goal.
type DomainGoalLeaf struct{ Goal DomainGoal }

func (DomainGoalLeaf) leafGoalNode() {}

// EqGoal is `A = B`, either over types or over lifetimes depending on Kind.
type EqGoal struct {
	Kind EqKind
	A, B Parameter
}

func (EqGoal) leafGoalNode() {}

// QuantifierKind distinguishes ForAll from Exists.
type QuantifierKind int

const (
	ForAll QuantifierKind = iota
	Exists
)

// Goal is a lowered, quantifier/compound/leaf goal tree (§4.8).
type Goal interface {
	goalNode()
}

// QuantifiedGoal is `forall<Params> { Goal }` or `exists<Params> { Goal }`.
type QuantifiedGoal struct {
	Kind QuantifierKind
	Goal Binders[Goal]
}

func (QuantifiedGoal) goalNode() {}

// ImpliesGoal is `if (Hypotheses) { Goal }`; Hypotheses have already been
// elaborated into FromEnv form (§4.8).
type ImpliesGoal struct {
	Hypotheses []ProgramClause
	Goal       Goal
}

func (ImpliesGoal) goalNode() {}

// AndGoal is `G1 && G2`.
type AndGoal struct{ Goals []Goal }

func (AndGoal) goalNode() {}

// NotGoal is `not { G }`.
type NotGoal struct{ Goal Goal }

func (NotGoal) goalNode() {}

// LeafGoalNode wraps a LeafGoal as a Goal.
type LeafGoalNode struct{ Leaf LeafGoal }

func (LeafGoalNode) goalNode() {}

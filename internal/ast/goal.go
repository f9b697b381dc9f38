package ast

import "github.com/hornlang/hornc/internal/ident"
import "github.com/hornlang/hornc/internal/token"

// DomainGoal is an atomic solver goal written in source form (§4.7).
type DomainGoal interface {
	Node
	domainGoalNode()
}

// Holds wraps a where-clause as a goal: `T: Trait` used where a goal is
// expected.
type Holds struct {
	Token       token.Position
	WhereClause WhereClause
}

func (g *Holds) Pos() token.Position { return g.Token }
func (*Holds) domainGoalNode()       {}

// Normalize is `<TraitRef>::Name<Args> -> Ty` (projection normalization).
type Normalize struct {
	Token      token.Position
	Projection *ProjectionTyNode
	Ty         Ty
}

func (g *Normalize) Pos() token.Position { return g.Token }
func (*Normalize) domainGoalNode()       {}

// TyWellFormed is `WellFormed(Ty)`.
type TyWellFormed struct {
	Token token.Position
	Ty    Ty
}

func (g *TyWellFormed) Pos() token.Position { return g.Token }
func (*TyWellFormed) domainGoalNode()       {}

// TraitRefWellFormed is `WellFormed(TraitRef)`.
type TraitRefWellFormed struct {
	Token    token.Position
	TraitRef *TraitRef
}

func (g *TraitRefWellFormed) Pos() token.Position { return g.Token }
func (*TraitRefWellFormed) domainGoalNode()       {}

// TyFromEnv is `FromEnv(Ty)`.
type TyFromEnv struct {
	Token token.Position
	Ty    Ty
}

func (g *TyFromEnv) Pos() token.Position { return g.Token }
func (*TyFromEnv) domainGoalNode()       {}

// TraitRefFromEnv is `FromEnv(TraitRef)`.
type TraitRefFromEnv struct {
	Token    token.Position
	TraitRef *TraitRef
}

func (g *TraitRefFromEnv) Pos() token.Position { return g.Token }
func (*TraitRefFromEnv) domainGoalNode()       {}

// TraitInScope is `InScope(TraitName)`.
type TraitInScope struct {
	Token     token.Position
	TraitName ident.ID
}

func (g *TraitInScope) Pos() token.Position { return g.Token }
func (*TraitInScope) domainGoalNode()       {}

// Derefs is `Derefs(Source, Target)`.
type Derefs struct {
	Token          token.Position
	Source, Target Ty
}

func (g *Derefs) Pos() token.Position { return g.Token }
func (*Derefs) domainGoalNode()       {}

// IsLocal is `IsLocal(Ty)`.
type IsLocal struct {
	Token token.Position
	Ty    Ty
}

func (g *IsLocal) Pos() token.Position { return g.Token }
func (*IsLocal) domainGoalNode()       {}

// IsExternal is `IsExternal(Ty)`.
type IsExternal struct {
	Token token.Position
	Ty    Ty
}

func (g *IsExternal) Pos() token.Position { return g.Token }
func (*IsExternal) domainGoalNode()       {}

// IsDeeplyExternal is `IsDeeplyExternal(Ty)`.
type IsDeeplyExternal struct {
	Token token.Position
	Ty    Ty
}

func (g *IsDeeplyExternal) Pos() token.Position { return g.Token }
func (*IsDeeplyExternal) domainGoalNode()       {}

// LocalImplAllowed is `LocalImplAllowed(TraitRef)`.
type LocalImplAllowed struct {
	Token    token.Position
	TraitRef *TraitRef
}

func (g *LocalImplAllowed) Pos() token.Position { return g.Token }
func (*LocalImplAllowed) domainGoalNode()       {}

// LeafGoal is either a domain goal or an equality goal (§4.7).
type LeafGoal interface {
	Node
	leafGoalNode()
}

// DomainGoalLeaf wraps a DomainGoal as a leaf goal.
type DomainGoalLeaf struct {
	Goal DomainGoal
}

func (g DomainGoalLeaf) Pos() token.Position { return g.Goal.Pos() }
func (DomainGoalLeaf) leafGoalNode()         {}

// UnifyTys is `A = B` between two types.
type UnifyTys struct {
	Token token.Position
	A, B  Ty
}

func (g *UnifyTys) Pos() token.Position { return g.Token }
func (*UnifyTys) leafGoalNode()         {}

// UnifyLifetimes is `A = B` between two lifetimes.
type UnifyLifetimes struct {
	Token token.Position
	A, B  Lifetime
}

func (g *UnifyLifetimes) Pos() token.Position { return g.Token }
func (*UnifyLifetimes) leafGoalNode()         {}

// Goal is a quantified/compound/leaf goal (§4.8).
type Goal interface {
	Node
	goalNode()
}

// ForAllGoal is `forall<Params> { Goal }`.
type ForAllGoal struct {
	Token  token.Position
	Params []ParameterKind
	Goal   Goal
}

func (g *ForAllGoal) Pos() token.Position { return g.Token }
func (*ForAllGoal) goalNode()             {}

// ExistsGoal is `exists<Params> { Goal }`.
type ExistsGoal struct {
	Token  token.Position
	Params []ParameterKind
	Goal   Goal
}

func (g *ExistsGoal) Pos() token.Position { return g.Token }
func (*ExistsGoal) goalNode()             {}

// ImpliesGoal is `if (Hypotheses) { Goal }`.
type ImpliesGoal struct {
	Token      token.Position
	Hypotheses []WhereClause
	Goal       Goal
}

func (g *ImpliesGoal) Pos() token.Position { return g.Token }
func (*ImpliesGoal) goalNode()             {}

// AndGoal is `G1 && G2`.
type AndGoal struct {
	Token  token.Position
	G1, G2 Goal
}

func (g *AndGoal) Pos() token.Position { return g.Token }
func (*AndGoal) goalNode()             {}

// NotGoal is `not { G }`.
type NotGoal struct {
	Token token.Position
	G     Goal
}

func (g *NotGoal) Pos() token.Position { return g.Token }
func (*NotGoal) goalNode()             {}

// LeafGoalNode wraps a LeafGoal as a Goal.
type LeafGoalNode struct {
	Token token.Position
	Leaf  LeafGoal
}

func (g *LeafGoalNode) Pos() token.Position { return g.Token }
func (*LeafGoalNode) goalNode()             {}

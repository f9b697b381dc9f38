package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
)

// LowerDomainGoal lowers a single atomic domain goal into the one or more IR
// atoms it expands into (§4.7). Every variant produces exactly one atom
// except Holds, which inherits whatever vector its where-clause lowers to
// (§4.6) — a Holds{ProjectionEq} goal expands to [Holds{ProjectionEq},
// Holds{Implemented}].
func LowerDomainGoal(env Env, g ast.DomainGoal) ([]ir.DomainGoal, error) {
	switch g := g.(type) {
	case *ast.Holds:
		wcs, err := LowerWhereClause(env, g.WhereClause)
		if err != nil {
			return nil, err
		}
		out := make([]ir.DomainGoal, len(wcs))
		for i, wc := range wcs {
			out[i] = ir.Holds{WhereClause: wc}
		}
		return out, nil
	case *ast.Normalize:
		ty, err := lowerProjectionTyNode(env, g.Projection)
		if err != nil {
			return nil, err
		}
		value, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.Normalize{Projection: ty, Ty: value}}, nil
	case *ast.TyWellFormed:
		ty, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.WellFormedTy{Ty: ty}}, nil
	case *ast.TraitRefWellFormed:
		tr, err := LowerTraitRef(env, g.TraitRef)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.WellFormedTraitRef{TraitRef: tr}}, nil
	case *ast.TyFromEnv:
		ty, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.FromEnvTy{Ty: ty}}, nil
	case *ast.TraitRefFromEnv:
		tr, err := LowerTraitRef(env, g.TraitRef)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.FromEnvTraitRef{TraitRef: tr}}, nil
	case *ast.TraitInScope:
		id, err := resolveTraitName(env, g.Token, g.TraitName)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.InScope{TraitId: id}}, nil
	case *ast.Derefs:
		source, err := LowerTy(env, g.Source)
		if err != nil {
			return nil, err
		}
		target, err := LowerTy(env, g.Target)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.Derefs{Source: source, Target: target}}, nil
	case *ast.IsLocal:
		ty, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.IsLocal{Ty: ty}}, nil
	case *ast.IsExternal:
		ty, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.IsExternal{Ty: ty}}, nil
	case *ast.IsDeeplyExternal:
		ty, err := LowerTy(env, g.Ty)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.IsDeeplyExternal{Ty: ty}}, nil
	case *ast.LocalImplAllowed:
		tr, err := LowerTraitRef(env, g.TraitRef)
		if err != nil {
			return nil, err
		}
		return []ir.DomainGoal{ir.LocalImplAllowed{TraitRef: tr}}, nil
	default:
		panic("lowering: unknown ast.DomainGoal implementation")
	}
}

// LowerLeafGoal lowers a leaf goal — a domain goal or an equality
// constraint — into the one or more IR leaves it expands into. A domain-goal
// leaf inherits whatever vector LowerDomainGoal produces; an equality
// constraint always produces exactly one.
func LowerLeafGoal(env Env, g ast.LeafGoal) ([]ir.LeafGoal, error) {
	switch g := g.(type) {
	case ast.DomainGoalLeaf:
		dgs, err := LowerDomainGoal(env, g.Goal)
		if err != nil {
			return nil, err
		}
		out := make([]ir.LeafGoal, len(dgs))
		for i, dg := range dgs {
			out[i] = ir.DomainGoalLeaf{Goal: dg}
		}
		return out, nil
	case *ast.UnifyTys:
		a, err := LowerTy(env, g.A)
		if err != nil {
			return nil, err
		}
		b, err := LowerTy(env, g.B)
		if err != nil {
			return nil, err
		}
		return []ir.LeafGoal{ir.EqGoal{Kind: ir.EqTy, A: ir.TyParameter{Ty: a}, B: ir.TyParameter{Ty: b}}}, nil
	case *ast.UnifyLifetimes:
		a, err := LowerLifetime(env, g.A)
		if err != nil {
			return nil, err
		}
		b, err := LowerLifetime(env, g.B)
		if err != nil {
			return nil, err
		}
		return []ir.LeafGoal{ir.EqGoal{Kind: ir.EqLifetime, A: ir.LifetimeParameter{Lifetime: a}, B: ir.LifetimeParameter{Lifetime: b}}}, nil
	default:
		panic("lowering: unknown ast.LeafGoal implementation")
	}
}

// LowerGoal lowers a compound goal tree (§4.8).
func LowerGoal(env Env, g ast.Goal) (ir.Goal, error) {
	switch g := g.(type) {
	case *ast.ForAllGoal:
		params, err := lowerParameterKinds(env, g.Token, g.Params)
		if err != nil {
			return nil, err
		}
		binders, err := InBinders(env, params, func(inner Env) (ir.Goal, error) {
			return LowerGoal(inner, g.Goal)
		})
		if err != nil {
			return nil, err
		}
		return ir.QuantifiedGoal{Kind: ir.ForAll, Goal: binders}, nil
	case *ast.ExistsGoal:
		params, err := lowerParameterKinds(env, g.Token, g.Params)
		if err != nil {
			return nil, err
		}
		binders, err := InBinders(env, params, func(inner Env) (ir.Goal, error) {
			return LowerGoal(inner, g.Goal)
		})
		if err != nil {
			return nil, err
		}
		return ir.QuantifiedGoal{Kind: ir.Exists, Goal: binders}, nil
	case *ast.ImpliesGoal:
		hyps, err := elaborateHypotheses(env, g.Hypotheses)
		if err != nil {
			return nil, err
		}
		inner, err := LowerGoal(env, g.Goal)
		if err != nil {
			return nil, err
		}
		return ir.ImpliesGoal{Hypotheses: hyps, Goal: inner}, nil
	case *ast.AndGoal:
		goals, err := lowerAndGoal(env, g)
		if err != nil {
			return nil, err
		}
		return ir.AndGoal{Goals: goals}, nil
	case *ast.NotGoal:
		inner, err := LowerGoal(env, g.G)
		if err != nil {
			return nil, err
		}
		return ir.NotGoal{Goal: inner}, nil
	case *ast.LeafGoalNode:
		// A leaf that expands to k >= 1 IR leaves folds left-to-right into an
		// And-tree (§4.8); since ir.AndGoal already holds a flat list of
		// conjuncts rather than a binary tree, folding k>1 leaves is just
		// wrapping all of them into one AndGoal.
		leaves, err := LowerLeafGoal(env, g.Leaf)
		if err != nil {
			return nil, err
		}
		if len(leaves) == 1 {
			return ir.LeafGoalNode{Leaf: leaves[0]}, nil
		}
		goals := make([]ir.Goal, len(leaves))
		for i, leaf := range leaves {
			goals[i] = ir.LeafGoalNode{Leaf: leaf}
		}
		return ir.AndGoal{Goals: goals}, nil
	default:
		panic("lowering: unknown ast.Goal implementation")
	}
}

// lowerAndGoal flattens a (possibly deeply nested, left- or right-leaning)
// tree of `&&` into a single flat list of conjuncts, so the IR never
// represents an associative operator as a binary tree (§4.8).
func lowerAndGoal(env Env, g *ast.AndGoal) ([]ir.Goal, error) {
	var goals []ir.Goal
	for _, operand := range []ast.Goal{g.G1, g.G2} {
		if nested, ok := operand.(*ast.AndGoal); ok {
			flattened, err := lowerAndGoal(env, nested)
			if err != nil {
				return nil, err
			}
			goals = append(goals, flattened...)
			continue
		}
		lowered, err := LowerGoal(env, operand)
		if err != nil {
			return nil, err
		}
		goals = append(goals, lowered)
	}
	return goals, nil
}

// elaborateHypotheses turns each `if` hypothesis into the unconditional
// FromEnv program clause(s) it licenses once the implication's body is
// entered: every IR atom the hypothesis lowers to (§4.6) becomes its own
// FromEnv clause, so a plain `T: Trait` hypothesis elaborates to a single
// FromEnv(Implemented) clause, while a `<TraitRef>::Name = Ty` hypothesis
// elaborates to exactly two — FromEnv(ProjectionEq) and FromEnv(Implemented)
// for the projection's owning trait, since knowing the projection holds also
// licenses assuming the trait itself holds (§4.8).
func elaborateHypotheses(env Env, hyps []ast.WhereClause) ([]ir.ProgramClause, error) {
	var clauses []ir.ProgramClause
	for _, h := range hyps {
		atoms, err := LowerWhereClause(env, h)
		if err != nil {
			return nil, err
		}
		for _, atom := range atoms {
			switch atom := atom.(type) {
			case ir.Implemented:
				clauses = append(clauses, unconditionalClause(ir.FromEnvTraitRef{TraitRef: atom.TraitRef}))
			case ir.ProjectionEq:
				clauses = append(clauses, unconditionalClause(ir.FromEnvTy{Ty: atom.ProjectionTy}))
			default:
				panic("lowering: unknown ir.WhereClause implementation")
			}
		}
	}
	return clauses, nil
}

func unconditionalClause(consequence ir.DomainGoal) ir.ProgramClause {
	return ir.NewBinders(nil, ir.ProgramClauseImplication{Consequence: consequence})
}

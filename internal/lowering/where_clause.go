package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
)

// LowerWhereClause lowers a single where-clause into its IR atom(s) (§4.6).
// `T: Trait` lowers to the single atom Implemented; `<TraitRef>::Name = Ty`
// lowers to exactly two atoms, in this order: ProjectionEq first, then
// Implemented(projection's owning trait ref) second — knowing a projection
// holds also licenses assuming the trait itself holds.
func LowerWhereClause(env Env, wc ast.WhereClause) ([]ir.WhereClause, error) {
	switch wc := wc.(type) {
	case *ast.Implemented:
		tr, err := LowerTraitRef(env, wc.TraitRef)
		if err != nil {
			return nil, err
		}
		return []ir.WhereClause{ir.Implemented{TraitRef: tr}}, nil
	case *ast.ProjectionEq:
		ty, err := lowerProjectionTyNode(env, wc.Projection)
		if err != nil {
			return nil, err
		}
		value, err := LowerTy(env, wc.Ty)
		if err != nil {
			return nil, err
		}
		traitRef, err := LowerTraitRef(env, wc.Projection.TraitRef)
		if err != nil {
			return nil, err
		}
		return []ir.WhereClause{
			ir.ProjectionEq{ProjectionTy: ty, Ty: value},
			ir.Implemented{TraitRef: traitRef},
		}, nil
	default:
		panic("lowering: unknown ast.WhereClause implementation")
	}
}

// lowerProjectionTyNode lowers a selected projection to its IR ProjectionTy
// shape, without boxing it back into the Ty interface.
func lowerProjectionTyNode(env Env, p *ast.ProjectionTyNode) (ir.ProjectionTy, error) {
	ty, err := lowerProjectionTy(env, p)
	if err != nil {
		return ir.ProjectionTy{}, err
	}
	return ty.(ir.ProjectionTy), nil
}

// LowerQuantifiedWhereClause lowers a where-clause under its own binder,
// wrapping whatever vector of IR atoms it expands into in that one binder
// (§4.6).
func LowerQuantifiedWhereClause(env Env, qwc ast.QuantifiedWhereClause) (ir.QuantifiedWhereClause, error) {
	pos := qwc.WhereClause.Pos()
	params, err := lowerParameterKinds(env, pos, qwc.ParameterKinds)
	if err != nil {
		return ir.QuantifiedWhereClause{}, err
	}
	return InBinders(env, params, func(inner Env) ([]ir.WhereClause, error) {
		return LowerWhereClause(inner, qwc.WhereClause)
	})
}

func lowerQuantifiedWhereClauses(env Env, qwcs []ast.QuantifiedWhereClause) ([]ir.QuantifiedWhereClause, error) {
	out := make([]ir.QuantifiedWhereClause, len(qwcs))
	for i, qwc := range qwcs {
		lowered, err := LowerQuantifiedWhereClause(env, qwc)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

// LowerInlineBound lowers an inline bound (`T: Trait<..>` or
// `T: Trait<..>::Name = V` written at a declaration site).
func LowerInlineBound(env Env, ib ast.InlineBound) (ir.InlineBound, error) {
	switch ib := ib.(type) {
	case *ast.TraitBound:
		b, err := LowerTraitBound(env, ib)
		if err != nil {
			return nil, err
		}
		return ir.TraitInlineBound{TraitBound: b}, nil
	case *ast.ProjectionEqBound:
		traitBound, err := LowerTraitBound(env, ib.TraitBound)
		if err != nil {
			return nil, err
		}
		info, ok := env.AssociatedTyInfo(traitBound.TraitId, ib.Name)
		if !ok {
			return nil, errMissingAssociatedType(ib.Token, ib.Name)
		}
		args, err := lowerParameters(env, ib.Args)
		if err != nil {
			return nil, err
		}
		if err := checkParameterKinds(ib.Token, ib.Name, anonymizeIr(info.AddlParameterKinds), args); err != nil {
			return nil, err
		}
		value, err := LowerTy(env, ib.Value)
		if err != nil {
			return nil, err
		}
		return ir.ProjectionEqInlineBound{ProjectionEqBound: ir.ProjectionEqBound{
			TraitBound:     traitBound,
			AssociatedTyId: info.Id,
			Parameters:     args,
			Value:          value,
		}}, nil
	default:
		panic("lowering: unknown ast.InlineBound implementation")
	}
}

func lowerInlineBounds(env Env, ibs []ast.InlineBound) ([]ir.InlineBound, error) {
	out := make([]ir.InlineBound, len(ibs))
	for i, ib := range ibs {
		lowered, err := LowerInlineBound(env, ib)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

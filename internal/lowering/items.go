package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
)

// LowerStructDefn fully lowers a struct definition (§4.9).
func LowerStructDefn(env Env, id ir.ItemId, d *ast.StructDefn) (*ir.StructDatum, error) {
	if d.Flags.Fundamental && len(d.ParameterKinds) != 1 {
		return nil, errFundamentalStructArity(d.Token, d.Name)
	}
	binders, err := InBinders(env, d.ParameterKinds, func(inner Env) (ir.StructDatumBound, error) {
		// Where-clauses first, so the traits they reference are in scope for
		// unselected projections in the field types.
		whereClauses, err := lowerQuantifiedWhereClauses(inner, d.WhereClauses)
		if err != nil {
			return ir.StructDatumBound{}, err
		}
		fields := make([]ir.Field, len(d.Fields))
		for i, f := range d.Fields {
			ty, err := LowerTy(inner, f.Ty)
			if err != nil {
				return ir.StructDatumBound{}, err
			}
			fields[i] = ir.Field{Name: f.Name, Ty: ty}
		}
		return ir.StructDatumBound{
			Fields:       fields,
			WhereClauses: whereClauses,
			Flags:        ir.StructFlags{External: d.Flags.External, Fundamental: d.Flags.Fundamental},
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ir.StructDatum{Id: id, Binders: binders}, nil
}

// LowerTraitDefn fully lowers a trait definition, binding the synthetic Self
// parameter first (§4.3, §4.9).
func LowerTraitDefn(env Env, id ir.ItemId, d *ast.TraitDefn, assocTyIds []ir.ItemId) (*ir.TraitDatum, error) {
	if d.Flags.Auto {
		if len(d.ParameterKinds) != 0 {
			return nil, errAutoTraitParameters(d.Token, d.Name)
		}
		if len(d.WhereClauses) != 0 {
			return nil, errAutoTraitWhereClauses(d.Token, d.Name)
		}
		if len(d.AssocTyDefns) != 0 {
			return nil, errAutoTraitAssociatedTypes(d.Token, d.Name)
		}
	}

	allParams := ast.AllParameters(d)
	binders, err := InBinders(env, allParams, func(inner Env) (ir.TraitDatumBound, error) {
		whereClauses, err := lowerQuantifiedWhereClauses(inner, d.WhereClauses)
		if err != nil {
			return ir.TraitDatumBound{}, err
		}
		flags := ir.TraitFlags{
			Auto:     d.Flags.Auto,
			Marker:   d.Flags.Marker,
			External: d.Flags.External,
			Deref:    d.Flags.Deref,
		}
		return ir.TraitDatumBound{WhereClauses: whereClauses, Flags: flags, AssociatedTyIds: assocTyIds}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ir.TraitDatum{Id: id, Binders: binders}, nil
}

// LowerAssocTyDefn fully lowers a single associated-type definition into its
// standalone AssociatedTyDatum, binding [trait's own parameters ++ this
// definition's additional parameters] (§4.9).
func LowerAssocTyDefn(env Env, traitId, id ir.ItemId, traitParams []ir.ParameterKind, d *ast.AssocTyDefn) (*ir.AssociatedTyDatum, error) {
	combined := make([]ir.ParameterKind, 0, len(traitParams)+len(d.ParameterKinds))
	combined = append(combined, traitParams...)
	combined = append(combined, d.ParameterKinds...)
	binders, err := InBinders(env, combined, func(inner Env) (ir.AssociatedTyDatumBound, error) {
		bounds, err := lowerInlineBounds(inner, d.Bounds)
		if err != nil {
			return ir.AssociatedTyDatumBound{}, err
		}
		whereClauses, err := lowerQuantifiedWhereClauses(inner, d.WhereClauses)
		if err != nil {
			return ir.AssociatedTyDatumBound{}, err
		}
		return ir.AssociatedTyDatumBound{Bounds: bounds, WhereClauses: whereClauses}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ir.AssociatedTyDatum{TraitId: traitId, Id: id, Name: d.Name, Binders: binders}, nil
}

// LowerImpl fully lowers an impl block (§4.9).
func LowerImpl(env Env, d *ast.Impl) (*ir.ImplDatum, error) {
	if !d.TraitRef.Positive && len(d.AssocTyValues) != 0 {
		return nil, errNegativeImplAssociatedValues(d.Token)
	}
	var values []ir.AssociatedTyValue
	binders, err := InBinders(env, d.ParameterKinds, func(inner Env) (ir.ImplDatumBound, error) {
		traitRef, err := LowerPolarizedTraitRef(inner, d.TraitRef)
		if err != nil {
			return ir.ImplDatumBound{}, err
		}
		for _, av := range d.AssocTyValues {
			info, ok := inner.AssociatedTyInfo(traitRef.TraitRef.TraitId, av.Name)
			if !ok {
				return ir.ImplDatumBound{}, errMissingAssociatedType(av.Token, av.Name)
			}
			lowered, err := lowerAssocTyValue(inner, info.Id, av)
			if err != nil {
				return ir.ImplDatumBound{}, err
			}
			values = append(values, lowered)
		}
		whereClauses, err := lowerQuantifiedWhereClauses(inner, d.WhereClauses)
		if err != nil {
			return ir.ImplDatumBound{}, err
		}
		return ir.ImplDatumBound{TraitRef: traitRef, WhereClauses: whereClauses}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ir.ImplDatum{Binders: binders, AssociatedTyValues: values}, nil
}

func lowerAssocTyValue(env Env, assocTyId ir.ItemId, v *ast.AssocTyValue) (ir.AssociatedTyValue, error) {
	binders, err := InBinders(env, v.ParameterKinds, func(inner Env) (ir.AssociatedTyValueBound, error) {
		ty, err := LowerTy(inner, v.Value)
		if err != nil {
			return ir.AssociatedTyValueBound{}, err
		}
		return ir.AssociatedTyValueBound{Ty: ty}, nil
	})
	if err != nil {
		return ir.AssociatedTyValue{}, err
	}
	return ir.AssociatedTyValue{AssociatedTyId: assocTyId, Binders: binders}, nil
}

// LowerClause fully lowers a custom program clause (§4.9). Its consequence
// lowers to a vector of domain-goal atoms (§4.7), and one ProgramClauseImplication
// is produced per atom — so a `Holds{ProjectionEq}` consequence yields two
// implications, both sharing the same reversed conditions and the same
// binder. Conditions are written in textual order and stored in solver pop
// order, so the driver reverses them once here rather than leaving that to
// every consumer of the IR (§4.9, §4.10).
func LowerClause(env Env, c *ast.Clause) ([]ir.ProgramClause, error) {
	inner := env.Introduce(c.ParameterKinds)

	consequences, err := LowerDomainGoal(inner, c.Consequence)
	if err != nil {
		return nil, err
	}

	conditions := make([]ir.Goal, len(c.Conditions))
	for i, cond := range c.Conditions {
		lowered, err := LowerGoal(inner, cond)
		if err != nil {
			return nil, err
		}
		conditions[i] = lowered
	}
	reverse(conditions)

	params := anonymizeIr(c.ParameterKinds)
	clauses := make([]ir.ProgramClause, len(consequences))
	for i, consequence := range consequences {
		clauses[i] = ir.NewBinders(params, ir.ProgramClauseImplication{
			Consequence: consequence,
			Conditions:  conditions,
		})
	}
	return clauses, nil
}

func reverse(goals []ir.Goal) {
	for i, j := 0, len(goals)-1; i < j; i, j = i+1, j-1 {
		goals[i], goals[j] = goals[j], goals[i]
	}
}

package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/token"
)

// LowerTraitRef lowers `Trait<Self, Args...>`, checking that the name
// resolves to a trait and that the full argument list (Self included)
// matches the trait's declared parameter kinds (§4.6). A full trait
// reference like this one is what textually brings a trait into scope for
// unselected projection resolution within the current item — an inline
// bound (LowerTraitBound) does not.
func LowerTraitRef(env Env, tr *ast.TraitRef) (ir.TraitRef, error) {
	id, err := resolveTraitName(env, tr.Token, tr.TraitName)
	if err != nil {
		return ir.TraitRef{}, err
	}
	tk, _ := env.TypeKind(id)
	args, err := lowerParameters(env, tr.Args)
	if err != nil {
		return ir.TraitRef{}, err
	}
	expected := append([]ir.AnonParameterKind{selfParameterKind()}, tk.Binders.ParameterKinds...)
	if err := checkParameterKinds(tr.Token, tr.TraitName, expected, args); err != nil {
		return ir.TraitRef{}, err
	}
	env.AddTraitInScope(tr.TraitName)
	return ir.TraitRef{TraitId: id, Parameters: args}, nil
}

// LowerTraitBound lowers an inline `Trait<ArgsNoSelf>` bound, checking the
// argument list against the trait's declared parameters (Self excluded —
// it is supplied by whatever context the bound is attached to).
func LowerTraitBound(env Env, b *ast.TraitBound) (ir.TraitBound, error) {
	id, err := resolveTraitName(env, b.Token, b.TraitName)
	if err != nil {
		return ir.TraitBound{}, err
	}
	tk, _ := env.TypeKind(id)
	args, err := lowerParameters(env, b.ArgsNoSelf)
	if err != nil {
		return ir.TraitBound{}, err
	}
	if err := checkParameterKinds(b.Token, b.TraitName, tk.Binders.ParameterKinds, args); err != nil {
		return ir.TraitBound{}, err
	}
	return ir.TraitBound{TraitId: id, ArgsNoSelf: args}, nil
}

// LowerPolarizedTraitRef lowers an impl's (possibly negative) trait
// reference.
func LowerPolarizedTraitRef(env Env, p ast.PolarizedTraitRef) (ir.PolarizedTraitRef, error) {
	tr, err := LowerTraitRef(env, p.TraitRef)
	if err != nil {
		return ir.PolarizedTraitRef{}, err
	}
	return ir.PolarizedTraitRef{Positive: p.Positive, TraitRef: tr}, nil
}

func resolveTraitName(env Env, pos token.Position, name ident.ID) (ir.ItemId, error) {
	id, ok := env.LookupTypeName(name)
	if !ok {
		return ir.ItemId{}, errInvalidTypeName(pos, name)
	}
	tk, _ := env.TypeKind(id)
	if tk.Sort != ir.SortTrait {
		return ir.ItemId{}, errNotTrait(pos, name)
	}
	return id, nil
}

// resolveUnselectedAssociatedType finds the single trait in scope that
// defines an associated type of this name (§4.6).
func resolveUnselectedAssociatedType(env Env, pos token.Position, name ident.ID) (ir.ItemId, error) {
	var found ir.ItemId
	count := 0
	for traitName := range env.traits.names {
		traitId, ok := env.LookupTypeName(traitName)
		if !ok {
			continue
		}
		if _, ok := env.AssociatedTyInfo(traitId, name); ok {
			found = traitId
			count++
		}
	}
	switch count {
	case 0:
		return ir.ItemId{}, errMissingAssociatedType(pos, name)
	case 1:
		return found, nil
	default:
		return ir.ItemId{}, errAmbiguousAssociatedType(pos, name)
	}
}

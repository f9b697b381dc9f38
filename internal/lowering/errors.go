package lowering

import (
	"github.com/hornlang/hornc/internal/diagnostics"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/paramkind"
	"github.com/hornlang/hornc/internal/token"
)

func errInvalidTypeName(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrInvalidTypeName, pos, "invalid type name %q", ident.String(name))
}

func errNotTrait(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrNotTrait, pos, "%q is not a trait", ident.String(name))
}

func errNotStruct(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrNotStruct, pos, "%q is not a struct", ident.String(name))
}

func errCannotApplyTypeParameter(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrCannotApplyTypeParameter, pos, "cannot apply parameters to type parameter %q", ident.String(name))
}

func errIncorrectNumberOfTypeParameters(pos token.Position, name ident.ID, expected, found int) error {
	return diagnostics.Errorf(diagnostics.ErrIncorrectNumberOfTypeParameters, pos,
		"%q takes %d type parameters, but %d were supplied", ident.String(name), expected, found)
}

func errIncorrectParameterKind(pos token.Position, expected, found paramkind.Tag) error {
	return diagnostics.Errorf(diagnostics.ErrIncorrectParameterKind, pos,
		"expected a %s parameter, found a %s parameter", expected, found)
}

func errDuplicateItemName(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrDuplicateItemName, pos, "duplicate item name %q", ident.String(name))
}

func errDuplicateLangItem(pos token.Position, name string) error {
	return diagnostics.Errorf(diagnostics.ErrDuplicateLangItem, pos, "duplicate lang item %s", name)
}

func errDuplicateParameter(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrDuplicateParameter, pos, "duplicate parameter %q", ident.String(name))
}

func errDuplicateOrShadowedParameters(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrDuplicateOrShadowedParameters, pos,
		"parameter %q duplicates or shadows an enclosing parameter", ident.String(name))
}

func errAutoTraitParameters(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrAutoTraitParameters, pos,
		"auto trait %q may not have parameters beyond Self", ident.String(name))
}

func errAutoTraitWhereClauses(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrAutoTraitWhereClauses, pos,
		"auto trait %q may not have where clauses", ident.String(name))
}

func errAutoTraitAssociatedTypes(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrAutoTraitAssociatedTypes, pos,
		"auto trait %q may not have associated types", ident.String(name))
}

func errFundamentalStructArity(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrFundamentalStructArity, pos,
		"fundamental struct %q must take exactly one type parameter", ident.String(name))
}

func errNegativeImplAssociatedValues(pos token.Position) error {
	return diagnostics.Errorf(diagnostics.ErrNegativeImplAssociatedValues, pos,
		"negative impls may not define associated type values")
}

func errAmbiguousAssociatedType(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrAmbiguousAssociatedType, pos,
		"ambiguous associated type %q: more than one trait in scope defines it", ident.String(name))
}

func errMissingAssociatedType(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrMissingAssociatedType, pos,
		"no trait in scope defines associated type %q", ident.String(name))
}

func errUnboundVariable(pos token.Position, name ident.ID) error {
	return diagnostics.Errorf(diagnostics.ErrUnboundVariable, pos, "unbound variable %q", ident.String(name))
}

func errUnresolvedTraitReference(context, traitId ir.ItemId) error {
	return diagnostics.Errorf(diagnostics.ErrUnresolvedTraitReference, token.Position{},
		"%s references trait %s, which does not resolve to a lowered trait datum", context, traitId)
}

package lowering

import (
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/paramkind"
	"github.com/hornlang/hornc/internal/token"
)

// selfParameterKind is the anonymized kind of a trait's implicit Self
// parameter — always a type.
func selfParameterKind() ir.AnonParameterKind {
	return ir.AnonParameterKind{Kind: paramkind.TyTag}
}

// parameterTag reports the kind tag an already-lowered Parameter carries.
func parameterTag(p ir.Parameter) paramkind.Tag {
	switch p.(type) {
	case ir.TyParameter:
		return paramkind.TyTag
	case ir.LifetimeParameter:
		return paramkind.LifetimeTag
	default:
		panic("lowering: unknown ir.Parameter implementation")
	}
}

// checkParameterKinds verifies that args matches expected in both length and
// per-position kind (§4.1, §6).
func checkParameterKinds(pos token.Position, name ident.ID, expected []ir.AnonParameterKind, args []ir.Parameter) error {
	if len(args) != len(expected) {
		return errIncorrectNumberOfTypeParameters(pos, name, len(expected), len(args))
	}
	for i, arg := range args {
		got := parameterTag(arg)
		if got != expected[i].Kind {
			return errIncorrectParameterKind(pos, expected[i].Kind, got)
		}
	}
	return nil
}

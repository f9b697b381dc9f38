package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/paramkind"
)

// LowerTy lowers a syntactic type into its IR form, resolving names against
// env (§4.1, §4.5).
func LowerTy(env Env, t ast.Ty) (ir.Ty, error) {
	switch t := t.(type) {
	case *ast.IdTy:
		return lowerIdTy(env, t)
	case *ast.ApplyTy:
		return lowerApplyTy(env, t)
	case *ast.ProjectionTyNode:
		return lowerProjectionTy(env, t)
	case *ast.UnselectedProjectionTyNode:
		return lowerUnselectedProjectionTy(env, t)
	case *ast.ForAllTy:
		return lowerForAllTy(env, t)
	default:
		panic("lowering: unknown ast.Ty implementation")
	}
}

func lowerIdTy(env Env, t *ast.IdTy) (ir.Ty, error) {
	if v, kind, ok := env.LookupParameter(t.Name); ok {
		if kind != paramkind.TyTag {
			return nil, errIncorrectParameterKind(t.Token, paramkind.TyTag, kind)
		}
		return ir.VarTy{Var: v}, nil
	}
	id, ok := env.LookupTypeName(t.Name)
	if !ok {
		return nil, errInvalidTypeName(t.Token, t.Name)
	}
	tk, _ := env.TypeKind(id)
	if tk.Sort != ir.SortStruct {
		return nil, errNotStruct(t.Token, t.Name)
	}
	if len(tk.Binders.ParameterKinds) != 0 {
		return nil, errIncorrectNumberOfTypeParameters(t.Token, t.Name, len(tk.Binders.ParameterKinds), 0)
	}
	return ir.ApplicationTy{Id: id, Parameters: nil}, nil
}

func lowerApplyTy(env Env, t *ast.ApplyTy) (ir.Ty, error) {
	if _, _, ok := env.LookupParameter(t.Name); ok {
		return nil, errCannotApplyTypeParameter(t.Token, t.Name)
	}
	id, ok := env.LookupTypeName(t.Name)
	if !ok {
		return nil, errInvalidTypeName(t.Token, t.Name)
	}
	tk, _ := env.TypeKind(id)
	if tk.Sort != ir.SortStruct {
		return nil, errNotStruct(t.Token, t.Name)
	}
	args, err := lowerParameters(env, t.Args)
	if err != nil {
		return nil, err
	}
	if err := checkParameterKinds(t.Token, t.Name, tk.Binders.ParameterKinds, args); err != nil {
		return nil, err
	}
	return ir.ApplicationTy{Id: id, Parameters: args}, nil
}

func lowerProjectionTy(env Env, t *ast.ProjectionTyNode) (ir.Ty, error) {
	traitRef, err := LowerTraitRef(env, t.TraitRef)
	if err != nil {
		return nil, err
	}
	info, ok := env.AssociatedTyInfo(traitRef.TraitId, t.Name)
	if !ok {
		return nil, errMissingAssociatedType(t.Token, t.Name)
	}
	args, err := lowerParameters(env, t.Args)
	if err != nil {
		return nil, err
	}
	if err := checkParameterKinds(t.Token, t.Name, anonymizeIr(info.AddlParameterKinds), args); err != nil {
		return nil, err
	}
	params := make([]ir.Parameter, 0, len(traitRef.Parameters)+len(args))
	params = append(params, traitRef.Parameters...)
	params = append(params, args...)
	return ir.ProjectionTy{AssociatedTyId: info.Id, Parameters: params}, nil
}

func lowerUnselectedProjectionTy(env Env, t *ast.UnselectedProjectionTyNode) (ir.Ty, error) {
	traitId, err := resolveUnselectedAssociatedType(env, t.Token, t.Name)
	if err != nil {
		return nil, err
	}
	info, _ := env.AssociatedTyInfo(traitId, t.Name)
	args, err := lowerParameters(env, t.Args)
	if err != nil {
		return nil, err
	}
	if err := checkParameterKinds(t.Token, t.Name, anonymizeIr(info.AddlParameterKinds), args); err != nil {
		return nil, err
	}
	return ir.UnselectedProjectionTy{ProjectionName: t.Name, Parameters: args}, nil
}

func lowerForAllTy(env Env, t *ast.ForAllTy) (ir.Ty, error) {
	params := make([]ir.ParameterKind, len(t.LifetimeNames))
	for i, name := range t.LifetimeNames {
		params[i] = paramkind.Lifetime(name)
	}
	binders, err := InBinders(env, params, func(inner Env) (ir.Ty, error) {
		return LowerTy(inner, t.Ty)
	})
	if err != nil {
		return nil, err
	}
	return ir.QuantifiedTy{QuantifierKind: ir.ForAll, Ty: binders}, nil
}

// LowerLifetime lowers a syntactic lifetime, resolving it against env.
func LowerLifetime(env Env, l ast.Lifetime) (ir.Lifetime, error) {
	switch l := l.(type) {
	case *ast.IdLifetime:
		v, kind, ok := env.LookupParameter(l.Name)
		if !ok {
			return nil, errUnboundVariable(l.Token, l.Name)
		}
		if kind != paramkind.LifetimeTag {
			return nil, errIncorrectParameterKind(l.Token, paramkind.LifetimeTag, kind)
		}
		return ir.VarLifetime{Var: v}, nil
	default:
		panic("lowering: unknown ast.Lifetime implementation")
	}
}

// LowerParameter lowers a single type-or-lifetime argument.
func LowerParameter(env Env, p ast.Parameter) (ir.Parameter, error) {
	switch p := p.(type) {
	case ast.TyParameter:
		ty, err := LowerTy(env, p.Ty)
		if err != nil {
			return nil, err
		}
		return ir.TyParameter{Ty: ty}, nil
	case ast.LifetimeParameter:
		lt, err := LowerLifetime(env, p.Lifetime)
		if err != nil {
			return nil, err
		}
		return ir.LifetimeParameter{Lifetime: lt}, nil
	default:
		panic("lowering: unknown ast.Parameter implementation")
	}
}

func lowerParameters(env Env, ps []ast.Parameter) ([]ir.Parameter, error) {
	out := make([]ir.Parameter, len(ps))
	for i, p := range ps {
		lowered, err := LowerParameter(env, p)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

func anonymizeIr(params []ir.ParameterKind) []ir.AnonParameterKind {
	out := make([]ir.AnonParameterKind, len(params))
	for i, p := range params {
		out[i] = paramkind.Anonymize(p)
	}
	return out
}

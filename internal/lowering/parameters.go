package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/token"
)

// lowerParameterKinds validates a declared parameter-kind list: no two
// parameters may share a name, and none may shadow a parameter already
// bound in an enclosing scope (§4.3). ast.ParameterKind and ir.ParameterKind
// are the same underlying generic instantiation, so no per-element
// conversion is needed.
func lowerParameterKinds(env Env, pos token.Position, kinds []ast.ParameterKind) ([]ir.ParameterKind, error) {
	seen := make(map[ident.ID]struct{}, len(kinds))
	out := make([]ir.ParameterKind, len(kinds))
	for i, k := range kinds {
		if _, dup := seen[k.Value]; dup {
			return nil, errDuplicateParameter(pos, k.Value)
		}
		seen[k.Value] = struct{}{}
		if _, _, ok := env.LookupParameter(k.Value); ok {
			return nil, errDuplicateOrShadowedParameters(pos, k.Value)
		}
		out[i] = k
	}
	return out, nil
}

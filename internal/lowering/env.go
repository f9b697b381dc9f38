// Package lowering implements name/kind resolution, de Bruijn binder
// management, and desugaring of syntactic where-clauses and goals into the
// solver-facing IR (internal/ir).
package lowering

import (
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/paramkind"
)

// boundEntry records where a name resolves inside the current binder stack.
type boundEntry struct {
	kind  paramkind.Tag
	index int // de Bruijn depth, 0 = innermost
}

// traitsInScope is the set of trait names that full trait references
// (LowerTraitRef) lowered so far in the current item have pulled into scope
// for unselected projection resolution (§4.6); inline bounds do not add to
// it. It is shared by pointer across every Env value derived
// while lowering a single item — unlike parameterMap it is never
// binder-scoped, so Introduce does not touch it.
type traitsInScope struct {
	names map[ident.ID]struct{}
}

func newTraitsInScope() *traitsInScope {
	return &traitsInScope{names: make(map[ident.ID]struct{})}
}

func (s *traitsInScope) add(name ident.ID)      { s.names[name] = struct{}{} }
func (s *traitsInScope) contains(name ident.ID) bool {
	_, ok := s.names[name]
	return ok
}

// Env is a snapshot of everything needed to resolve a name or a kind at one
// point during lowering. It is a value type: Introduce returns a new Env
// with existing bound names shifted outward and the new ones added at depth
// 0, leaving the receiver untouched. The one deliberate exception is
// traitsInScope, which is a shared pointer so that where-clauses processed
// earlier in an item are visible to projections processed later in the same
// item (§4.6).
type Env struct {
	typeIds           ir.TypeIds
	typeKinds         ir.TypeKinds
	associatedTyInfos ir.AssociatedTyInfos

	parameterMap map[ident.ID]boundEntry
	traits       *traitsInScope
}

// NewEnv builds the root Env for lowering a program, given the maps
// populated by the driver's item/type-kind allocation passes (§4.2).
func NewEnv(typeIds ir.TypeIds, typeKinds ir.TypeKinds, associatedTyInfos ir.AssociatedTyInfos) Env {
	return Env{
		typeIds:           typeIds,
		typeKinds:         typeKinds,
		associatedTyInfos: associatedTyInfos,
		parameterMap:      make(map[ident.ID]boundEntry),
		traits:            newTraitsInScope(),
	}
}

// LookupTypeName resolves a bare name to the ItemId that declared it as a
// struct or trait.
func (e *Env) LookupTypeName(name ident.ID) (ir.ItemId, bool) {
	id, ok := e.typeIds[name]
	return id, ok
}

// TypeKind returns the TypeKind record for an ItemId known to be a struct or
// trait.
func (e *Env) TypeKind(id ir.ItemId) (*ir.TypeKind, bool) {
	tk, ok := e.typeKinds[id]
	return tk, ok
}

// AssociatedTyInfo looks up the info record for a named associated type on a
// given trait.
func (e *Env) AssociatedTyInfo(traitId ir.ItemId, name ident.ID) (*ir.AssociatedTyInfo, bool) {
	info, ok := e.associatedTyInfos[ir.AssocTyKey{TraitId: traitId, Name: name}]
	return info, ok
}

// LookupParameter resolves a bound parameter name to its de Bruijn variable
// and kind.
func (e *Env) LookupParameter(name ident.ID) (ir.BoundVar, paramkind.Tag, bool) {
	entry, ok := e.parameterMap[name]
	if !ok {
		return ir.BoundVar{}, 0, false
	}
	return ir.NewBoundVar(entry.index), entry.kind, true
}

// TraitInScope reports whether a trait name has been brought into scope by a
// trait reference lowered earlier in the current item (§4.6).
func (e *Env) TraitInScope(name ident.ID) bool {
	return e.traits.contains(name)
}

// AddTraitInScope records that name is now in scope for unselected
// projection resolution. This mutates the shared traitsInScope set, so the
// effect is visible to every Env derived from the same root via Introduce.
func (e *Env) AddTraitInScope(name ident.ID) {
	e.traits.add(name)
}

// WithFreshTraitsInScope returns a copy of e with a new, independent, empty
// traits-in-scope set. The driver calls this once per top-level item before
// lowering its body, since traits_in_scope is only ever textually populated
// by TraitRef lowering within the current item and must not leak from (or
// into) any other item (§4.1, §5).
func (e Env) WithFreshTraitsInScope() Env {
	e.traits = newTraitsInScope()
	return e
}

// Introduce returns a new Env with params bound at depth 0, existing bound
// names shifted outward by len(params). Parameters are bound in reverse
// declaration order — the last-declared parameter is innermost (index 0) —
// matching how a binder's parameter list is pushed onto the de Bruijn stack.
func (e *Env) Introduce(params []ir.ParameterKind) Env {
	shifted := make(map[ident.ID]boundEntry, len(e.parameterMap)+len(params))
	for name, entry := range e.parameterMap {
		shifted[name] = boundEntry{kind: entry.kind, index: entry.index + len(params)}
	}
	for i, p := range params {
		depth := len(params) - 1 - i
		shifted[p.Value] = boundEntry{kind: p.Kind, index: depth}
	}
	return Env{
		typeIds:           e.typeIds,
		typeKinds:         e.typeKinds,
		associatedTyInfos: e.associatedTyInfos,
		parameterMap:      shifted,
		traits:            e.traits,
	}
}

// anonymize strips names off a parameter-kind list, producing the shape
// recorded on an ir.Binders value.
func anonymize(params []ir.ParameterKind) []ir.AnonParameterKind {
	out := make([]ir.AnonParameterKind, len(params))
	for i, p := range params {
		out[i] = paramkind.Anonymize(p)
	}
	return out
}

// InBinders introduces params, lowers body against the resulting Env, and
// wraps the result in a Binders value carrying the anonymized parameter
// list (§4.4). Go lacks generic methods, so this is a free function rather
// than an Env method.
func InBinders[T any](env Env, params []ir.ParameterKind, body func(Env) (T, error)) (ir.Binders[T], error) {
	inner := env.Introduce(params)
	val, err := body(inner)
	if err != nil {
		var zero T
		return ir.Binders[T]{Value: zero}, err
	}
	return ir.NewBinders(anonymize(params), val), nil
}

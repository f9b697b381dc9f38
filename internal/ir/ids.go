// Package ir defines the lowered, de Bruijn-indexed internal representation
// consumed by the (external, out-of-scope) Horn-clause/SLG solver.
package ir

import (
	"fmt"

	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/paramkind"
)

// ItemId is an opaque, dense, monotonically allocated handle identifying a
// top-level item or an associated-type slot (§3).
type ItemId struct{ index int }

// NewItemId wraps a raw index. Only the driver (internal/lowering) should
// call this; everyone else receives ItemIds already allocated.
func NewItemId(index int) ItemId { return ItemId{index: index} }

func (id ItemId) Index() int     { return id.index }
func (id ItemId) String() string { return fmt.Sprintf("#%d", id.index) }

// ParameterKind is the IR-level counterpart of ast.ParameterKind. During
// lowering it carries an Identifier (e.g. inside a TypeKind's Binders);
// anonymized (paramkind.ParameterKind[struct{}]) it carries nothing.
type ParameterKind = paramkind.ParameterKind[ident.ID]

// AnonParameterKind is a ParameterKind stripped of its name — the shape
// recorded in a Binders value.
type AnonParameterKind = paramkind.ParameterKind[struct{}]

// TypeSort distinguishes what an ItemId names when used as a TypeKind.
type TypeSort int

const (
	SortStruct TypeSort = iota
	SortTrait
)

func (s TypeSort) String() string {
	if s == SortTrait {
		return "trait"
	}
	return "struct"
}

// TypeKind records how many and what kind of parameters a named item (struct
// or trait) has, *excluding* a trait's implicit Self (§3).
type TypeKind struct {
	Sort    TypeSort
	Name    ident.ID
	Binders Binders[struct{}]
}

// AssociatedTyInfo records the additional parameters an associated-type
// definition declares on top of its enclosing trait's own parameters (§3).
type AssociatedTyInfo struct {
	Id                 ItemId
	TraitId            ItemId
	AddlParameterKinds []ParameterKind
}

// AssocTyKey identifies an associated-type slot by its owning trait and
// name.
type AssocTyKey struct {
	TraitId ItemId
	Name    ident.ID
}

// TypeIds maps a top-level name to the ItemId that declared it.
type TypeIds map[ident.ID]ItemId

// TypeKinds maps an ItemId to its TypeKind (structs and traits only).
type TypeKinds map[ItemId]*TypeKind

// AssociatedTyInfos maps (trait id, assoc name) to its info record.
type AssociatedTyInfos map[AssocTyKey]*AssociatedTyInfo

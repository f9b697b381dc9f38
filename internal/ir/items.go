package ir

import "github.com/hornlang/hornc/internal/ident"

// StructFlags are the coherence-relevant flags on a struct (§6).
type StructFlags struct {
	External    bool
	Fundamental bool
}

// Field is a single lowered struct field.
type Field struct {
	Name ident.ID
	Ty   Ty
}

// StructDatumBound is the binder-scoped body of a StructDatum.
type StructDatumBound struct {
	Fields       []Field
	WhereClauses []QuantifiedWhereClause
	Flags        StructFlags
}

// StructDatum is the fully lowered form of a struct definition.
type StructDatum struct {
	Id      ItemId
	Binders Binders[StructDatumBound]
}

// TraitFlags are the coherence/lang-item flags on a trait (§6).
type TraitFlags struct {
	Auto     bool
	Marker   bool
	External bool
	Deref    bool
}

// TraitDatumBound is the binder-scoped body of a TraitDatum.
type TraitDatumBound struct {
	WhereClauses    []QuantifiedWhereClause
	Flags           TraitFlags
	AssociatedTyIds []ItemId
}

// TraitDatum is the fully lowered form of a trait definition. Binders
// includes the synthetic Self parameter first (§4.3).
type TraitDatum struct {
	Id      ItemId
	Binders Binders[TraitDatumBound]
}

// AssociatedTyDatum is the fully lowered form of an associated-type
// definition. Binders is [trait's own parameters ++ this definition's
// additional parameters], matching AssociatedTyInfo.AddlParameterKinds.
type AssociatedTyDatum struct {
	TraitId ItemId
	Id      ItemId
	Name    ident.ID
	Binders Binders[AssociatedTyDatumBound]
}

// AssociatedTyDatumBound is the binder-scoped body of an AssociatedTyDatum.
type AssociatedTyDatumBound struct {
	Bounds       []InlineBound
	WhereClauses []QuantifiedWhereClause
}

// ImplDatumBound is the binder-scoped body of an ImplDatum.
type ImplDatumBound struct {
	TraitRef     PolarizedTraitRef
	WhereClauses []QuantifiedWhereClause
	// Priority is assigned by RecordSpecializationPriorities, after lowering.
	Priority int
}

// ImplDatum is the fully lowered form of an impl block.
type ImplDatum struct {
	Binders            Binders[ImplDatumBound]
	AssociatedTyValues []AssociatedTyValue
}

// AssociatedTyValueBound is the binder-scoped body of an
// AssociatedTyValue — its own additional parameters plus the value ty.
type AssociatedTyValueBound struct {
	Ty Ty
}

// AssociatedTyValue is the fully lowered form of an associated-type value
// inside an impl.
type AssociatedTyValue struct {
	AssociatedTyId ItemId
	Binders        Binders[AssociatedTyValueBound]
}

// DefaultImplDatum is a synthesized default impl, produced by the
// (external, minimal) AddDefaultImpls pass rather than by lowering proper —
// see internal/lowering's driver.
type DefaultImplDatum struct {
	Binders Binders[DefaultImplDatumBound]
}

// DefaultImplDatumBound is the binder-scoped body of a DefaultImplDatum.
type DefaultImplDatumBound struct {
	TraitRef   TraitRef
	Accessible bool
}

// LangItem names a well-known trait the solver treats specially.
type LangItem int

const (
	LangItemNone LangItem = iota
	LangItemDerefTrait
)

// LangItems maps a LangItem to the ItemId that implements it, when present.
type LangItems map[LangItem]ItemId

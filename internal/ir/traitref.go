package ir

// TraitRef is `<Self as Trait<Args>>`. Parameters[0] is always Self (§4.6).
type TraitRef struct {
	TraitId    ItemId
	Parameters []Parameter
}

// PolarizedTraitRef carries the polarity of an impl's trait reference.
type PolarizedTraitRef struct {
	Positive bool
	TraitRef TraitRef
}

// TraitBound is a trait bound with Self left to be supplied by context —
// used only as an intermediate value while lowering inline bounds (§4.6);
// fully lowered IR only ever carries a complete TraitRef.
type TraitBound struct {
	TraitId    ItemId
	ArgsNoSelf []Parameter
}

// FullyApplied prepends selfTy to produce a complete TraitRef.
func (b TraitBound) FullyApplied(self Parameter) TraitRef {
	params := make([]Parameter, 0, len(b.ArgsNoSelf)+1)
	params = append(params, self)
	params = append(params, b.ArgsNoSelf...)
	return TraitRef{TraitId: b.TraitId, Parameters: params}
}

// ProjectionEqBound is an inline associated-type-equality bound, still
// carrying an unapplied TraitBound.
type ProjectionEqBound struct {
	TraitBound     TraitBound
	AssociatedTyId ItemId
	Parameters     []Parameter // the associated type's own additional args
	Value          Ty
}

package ir

// WhereClause is a lowered where-clause (§4.6).
type WhereClause interface {
	whereClauseNode()
}

// Implemented is `T: Trait<Args>`.
type Implemented struct {
	TraitRef TraitRef
}

func (Implemented) whereClauseNode() {}

// ProjectionEq is `<TraitRef>::Name<Args> = Ty`.
type ProjectionEq struct {
	ProjectionTy ProjectionTy
	Ty           Ty
}

func (ProjectionEq) whereClauseNode() {}

// QuantifiedWhereClause is a Binders-wrapped vector of WhereClause atoms
// under its own (possibly empty) binder — `forall<U> { T: Foo<U> }` (§4.4,
// §4.6). A plain `T: Trait` where-clause lowers to a one-element vector; a
// `<TraitRef>::Name = Ty` where-clause lowers to two, [ProjectionEq,
// Implemented], both sharing this same binder.
type QuantifiedWhereClause = Binders[[]WhereClause]

// InlineBound is a lowered inline bound, still carrying an unapplied
// TraitBound (self supplied by the caller at the point of use).
type InlineBound interface {
	inlineBoundNode()
}

// TraitInlineBound wraps a TraitBound as an InlineBound.
type TraitInlineBound struct {
	TraitBound TraitBound
}

func (TraitInlineBound) inlineBoundNode() {}

// ProjectionEqInlineBound wraps a ProjectionEqBound as an InlineBound.
type ProjectionEqInlineBound struct {
	ProjectionEqBound ProjectionEqBound
}

func (ProjectionEqInlineBound) inlineBoundNode() {}

// QuantifiedInlineBound is an InlineBound under its own binder.
type QuantifiedInlineBound = Binders[InlineBound]

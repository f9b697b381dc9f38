package ir

// Binders wraps a value that is under zero or more quantified parameters.
// The parameter kinds are recorded anonymously (names don't matter once
// lowering is done); the wrapped value addresses the bound parameters by de
// Bruijn index, innermost-bound-first (§4.4).
type Binders[T any] struct {
	ParameterKinds []AnonParameterKind
	Value          T
}

// NewBinders builds a Binders value directly, without going through Env — used
// for the zero-parameter case and by tests.
func NewBinders[T any](kinds []AnonParameterKind, value T) Binders[T] {
	return Binders[T]{ParameterKinds: kinds, Value: value}
}

// Len returns the number of parameters this binder introduces.
func (b Binders[T]) Len() int { return len(b.ParameterKinds) }

// MapBinders transforms the wrapped value while keeping the same parameter
// list — used when a Binders[A] needs to become a Binders[B] after some
// projection (e.g. extracting a field out of a lowered struct body).
func MapBinders[A, B any](b Binders[A], f func(A) B) Binders[B] {
	return Binders[B]{ParameterKinds: b.ParameterKinds, Value: f(b.Value)}
}

// BoundVar is a de Bruijn-indexed reference to a parameter introduced by some
// enclosing binder. Depth counts outward: 0 is the innermost binder.
type BoundVar struct {
	DebruijnIndex int
}

func NewBoundVar(index int) BoundVar { return BoundVar{DebruijnIndex: index} }

// Shifted returns the variable as seen from one binder further out.
func (v BoundVar) Shifted(by int) BoundVar {
	return BoundVar{DebruijnIndex: v.DebruijnIndex + by}
}

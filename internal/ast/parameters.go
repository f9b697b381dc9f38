package ast

import (
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/paramkind"
)

// selfName is the identifier used for a trait's synthetic Self parameter.
const selfName = "Self"

// ParameterLister is implemented by every item whose own parameter list
// participates in binder construction (§4.3).
type ParameterLister interface {
	// SyntheticParameter is the implicit parameter prepended ahead of the
	// declared ones — currently only a trait's Self. Ordering contract: the
	// synthetic parameter, if any, comes first in AllParameters.
	SyntheticParameter() (ParameterKind, bool)
	DeclaredParameters() []ParameterKind
}

// AllParameters returns the synthetic parameters (if any) followed by the
// declared parameters, in that order — the "synthetic-first" contract locked
// in by §4.3 (the commented alternative ordering in the original source is
// explicitly not part of this specification).
func AllParameters(p ParameterLister) []ParameterKind {
	declared := p.DeclaredParameters()
	synthetic, ok := p.SyntheticParameter()
	if !ok {
		out := make([]ParameterKind, len(declared))
		copy(out, declared)
		return out
	}
	out := make([]ParameterKind, 0, len(declared)+1)
	out = append(out, synthetic)
	out = append(out, declared...)
	return out
}

func (d *StructDefn) SyntheticParameter() (ParameterKind, bool) { return ParameterKind{}, false }
func (d *StructDefn) DeclaredParameters() []ParameterKind       { return d.ParameterKinds }

func (d *Impl) SyntheticParameter() (ParameterKind, bool) { return ParameterKind{}, false }
func (d *Impl) DeclaredParameters() []ParameterKind       { return d.ParameterKinds }

func (d *AssocTyDefn) SyntheticParameter() (ParameterKind, bool) { return ParameterKind{}, false }
func (d *AssocTyDefn) DeclaredParameters() []ParameterKind       { return d.ParameterKinds }

func (d *AssocTyValue) SyntheticParameter() (ParameterKind, bool) { return ParameterKind{}, false }
func (d *AssocTyValue) DeclaredParameters() []ParameterKind       { return d.ParameterKinds }

func (d *Clause) SyntheticParameter() (ParameterKind, bool) { return ParameterKind{}, false }
func (d *Clause) DeclaredParameters() []ParameterKind       { return d.ParameterKinds }

func (d *TraitDefn) SyntheticParameter() (ParameterKind, bool) {
	return paramkind.Ty(ident.Intern(selfName)), true
}
func (d *TraitDefn) DeclaredParameters() []ParameterKind { return d.ParameterKinds }

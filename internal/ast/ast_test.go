package ast

import (
	"testing"

	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/paramkind"
	"github.com/hornlang/hornc/internal/token"
)

func TestAllParametersStructHasNoSynthetic(t *testing.T) {
	d := &StructDefn{
		Name:           ident.Intern("Foo"),
		ParameterKinds: []ParameterKind{paramkind.Ty(ident.Intern("T"))},
	}
	got := AllParameters(d)
	if len(got) != 1 {
		t.Fatalf("AllParameters len = %d, want 1", len(got))
	}
	if got[0].Value != ident.Intern("T") {
		t.Errorf("AllParameters[0] = %v, want T", got[0].Value)
	}
}

func TestAllParametersTraitPrependsSelf(t *testing.T) {
	d := &TraitDefn{
		Name:           ident.Intern("Bar"),
		ParameterKinds: []ParameterKind{paramkind.Ty(ident.Intern("T"))},
	}
	got := AllParameters(d)
	if len(got) != 2 {
		t.Fatalf("AllParameters len = %d, want 2", len(got))
	}
	if ident.String(got[0].Value) != "Self" {
		t.Errorf("AllParameters[0] = %q, want Self", ident.String(got[0].Value))
	}
	if got[1].Value != ident.Intern("T") {
		t.Errorf("AllParameters[1] = %v, want T", got[1].Value)
	}
}

func TestAllParametersDoesNotMutateDeclared(t *testing.T) {
	d := &TraitDefn{Name: ident.Intern("Baz")}
	got := AllParameters(d)
	if len(got) != 1 {
		t.Fatalf("AllParameters len = %d, want 1", len(got))
	}
	if len(d.ParameterKinds) != 0 {
		t.Errorf("DeclaredParameters mutated: %v", d.ParameterKinds)
	}
}

func TestItemPosMatchesToken(t *testing.T) {
	var items []Item = []Item{
		&StructDefn{Token: token.Position{Line: 1, Column: 1}},
		&TraitDefn{Token: token.Position{Line: 2, Column: 1}},
		&Impl{Token: token.Position{Line: 3, Column: 1}},
		&Clause{Token: token.Position{Line: 4, Column: 1}},
	}
	for i, it := range items {
		if it.Pos().Line != i+1 {
			t.Errorf("item %d Pos().Line = %d, want %d", i, it.Pos().Line, i+1)
		}
	}
}

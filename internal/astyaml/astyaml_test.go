package astyaml

import (
	"testing"

	"github.com/hornlang/hornc/internal/ast"
)

func TestLoadProgramStructAndTrait(t *testing.T) {
	src := `
items:
  - kind: struct
    name: Foo
    params:
      - name: T
        kind: ty
    fields:
      - name: value
        type: {kind: id, name: T}
  - kind: trait
    name: Bar
    assoc_types:
      - name: Item
`
	program, err := LoadProgram([]byte(src))
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if len(program.Items) != 2 {
		t.Fatalf("Items len = %d, want 2", len(program.Items))
	}
	s, ok := program.Items[0].(*ast.StructDefn)
	if !ok {
		t.Fatalf("Items[0] is %T, want *ast.StructDefn", program.Items[0])
	}
	if len(s.ParameterKinds) != 1 || !s.ParameterKinds[0].IsTy() {
		t.Errorf("unexpected struct params: %+v", s.ParameterKinds)
	}
	if len(s.Fields) != 1 {
		t.Fatalf("Fields len = %d, want 1", len(s.Fields))
	}
	tr, ok := program.Items[1].(*ast.TraitDefn)
	if !ok {
		t.Fatalf("Items[1] is %T, want *ast.TraitDefn", program.Items[1])
	}
	if len(tr.AssocTyDefns) != 1 {
		t.Errorf("AssocTyDefns len = %d, want 1", len(tr.AssocTyDefns))
	}
}

func TestLoadProgramImplAndClause(t *testing.T) {
	src := `
items:
  - kind: struct
    name: Foo
  - kind: trait
    name: Bar
  - kind: impl
    trait_ref:
      trait: Bar
      args:
        - {kind: ty, type: {kind: id, name: Foo}}
  - kind: clause
    consequence:
      kind: holds
      where_clause:
        kind: implemented
        trait_ref:
          trait: Bar
          args:
            - {kind: ty, type: {kind: id, name: Foo}}
`
	program, err := LoadProgram([]byte(src))
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if len(program.Items) != 4 {
		t.Fatalf("Items len = %d, want 4", len(program.Items))
	}
	impl, ok := program.Items[2].(*ast.Impl)
	if !ok {
		t.Fatalf("Items[2] is %T, want *ast.Impl", program.Items[2])
	}
	if !impl.TraitRef.Positive {
		t.Errorf("expected a positive impl by default")
	}
	clause, ok := program.Items[3].(*ast.Clause)
	if !ok {
		t.Fatalf("Items[3] is %T, want *ast.Clause", program.Items[3])
	}
	if _, ok := clause.Consequence.(*ast.Holds); !ok {
		t.Errorf("Consequence is %T, want *ast.Holds", clause.Consequence)
	}
}

func TestLoadProgramUnknownItemKind(t *testing.T) {
	_, err := LoadProgram([]byte("items:\n  - kind: nonsense\n"))
	if err == nil {
		t.Fatal("LoadProgram: expected an error for an unknown item kind")
	}
}

func TestLoadProgramEmptyDocument(t *testing.T) {
	program, err := LoadProgram([]byte(""))
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if len(program.Items) != 0 {
		t.Errorf("expected an empty program, got %d items", len(program.Items))
	}
}

func TestLoadProgramNegativeImplPolarity(t *testing.T) {
	src := `
items:
  - kind: struct
    name: Foo
  - kind: trait
    name: Bar
  - kind: impl
    positive: false
    trait_ref:
      trait: Bar
      args:
        - {kind: ty, type: {kind: id, name: Foo}}
`
	program, err := LoadProgram([]byte(src))
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	impl := program.Items[2].(*ast.Impl)
	if impl.TraitRef.Positive {
		t.Errorf("expected a negative impl")
	}
}

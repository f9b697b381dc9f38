package lowering

import (
	"strings"
	"testing"

	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/paramkind"
)

func n(name string) ident.ID { return ident.Intern(name) }

func tyParam(t ast.Ty) ast.Parameter { return ast.TyParameter{Ty: t} }

func idTy(name string) ast.Ty { return &ast.IdTy{Name: n(name)} }

func traitRef(trait string, args ...ast.Parameter) *ast.TraitRef {
	return &ast.TraitRef{TraitName: n(trait), Args: args}
}

func solverChoice() ir.SolverChoice { return ir.SolverChoice{Name: "recursive", MaxSize: 10} }

// S1-ish: a struct, a trait, and an impl all lower cleanly, with ItemIds
// allocated in source order.
func TestLowerStructTraitImpl(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{
				Name:           n("Foo"),
				ParameterKinds: []ast.ParameterKind{paramkind.Ty(n("T"))},
			},
			&ast.TraitDefn{
				Name:           n("Bar"),
				ParameterKinds: nil,
			},
			&ast.Impl{
				TraitRef: ast.PolarizedTraitRef{
					Positive: true,
					TraitRef: traitRef("Bar", tyParam(&ast.ApplyTy{Name: n("Foo"), Args: []ast.Parameter{tyParam(idTy("i32-like"))}})),
				},
			},
		},
	}
	// give the impl's argument to Foo a nullary struct to apply to
	program.Items = append([]ast.Item{&ast.StructDefn{Name: n("i32-like")}}, program.Items...)

	out, err := Lower(program, solverChoice())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if len(out.StructData) != 2 {
		t.Errorf("StructData len = %d, want 2", len(out.StructData))
	}
	if len(out.TraitData) != 1 {
		t.Errorf("TraitData len = %d, want 1", len(out.TraitData))
	}
	if len(out.ImplData) != 1 {
		t.Errorf("ImplData len = %d, want 1", len(out.ImplData))
	}
	fooId := out.TypeIds[n("Foo")]
	if fooId.Index() != 1 {
		t.Errorf("Foo ItemId = %d, want 1 (second declared)", fooId.Index())
	}
}

// S7: a #[fundamental] struct with more than one type parameter is rejected.
func TestLowerFundamentalStructArityViolation(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{
				Name: n("Pair"),
				ParameterKinds: []ast.ParameterKind{
					paramkind.Ty(n("T")), paramkind.Ty(n("U")),
				},
				Flags: ast.StructFlags{Fundamental: true},
			},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected a fundamental-arity error, got nil")
	}
	if !strings.Contains(err.Error(), "L014") {
		t.Errorf("Error() = %q, want it to mention L014", err.Error())
	}
}

// S8: a negative impl that defines associated values is rejected.
func TestLowerNegativeImplWithAssociatedValues(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Foo")},
			&ast.TraitDefn{
				Name: n("Bar"),
				AssocTyDefns: []*ast.AssocTyDefn{
					{Name: n("Assoc")},
				},
			},
			&ast.Impl{
				TraitRef: ast.PolarizedTraitRef{
					Positive: false,
					TraitRef: traitRef("Bar", tyParam(idTy("Foo"))),
				},
				AssocTyValues: []*ast.AssocTyValue{
					{Name: n("Assoc"), Value: idTy("Foo")},
				},
			},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected a negative-impl-associated-values error, got nil")
	}
	if !strings.Contains(err.Error(), "L016") {
		t.Errorf("Error() = %q, want it to mention L016", err.Error())
	}
}

// S10: a custom clause's conditions are reversed from source order.
func TestLowerClauseReversesConditions(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Foo")},
			&ast.TraitDefn{Name: n("A")},
			&ast.TraitDefn{Name: n("B")},
			&ast.TraitDefn{Name: n("C")},
			&ast.Clause{
				Consequence: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("A", tyParam(idTy("Foo")))}},
				Conditions: []ast.Goal{
					&ast.LeafGoalNode{Leaf: ast.DomainGoalLeaf{Goal: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("A", tyParam(idTy("Foo")))}}}},
					&ast.LeafGoalNode{Leaf: ast.DomainGoalLeaf{Goal: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("B", tyParam(idTy("Foo")))}}}},
					&ast.LeafGoalNode{Leaf: ast.DomainGoalLeaf{Goal: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("C", tyParam(idTy("Foo")))}}}},
				},
			},
		},
	}
	out, err := Lower(program, solverChoice())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if len(out.CustomClauses) != 1 {
		t.Fatalf("CustomClauses len = %d, want 1", len(out.CustomClauses))
	}
	conds := out.CustomClauses[0].Value.Conditions
	if len(conds) != 3 {
		t.Fatalf("Conditions len = %d, want 3", len(conds))
	}
	traitIdOf := func(g ir.Goal) ir.ItemId {
		leaf := g.(ir.LeafGoalNode).Leaf.(ir.DomainGoalLeaf)
		holds := leaf.Goal.(ir.Holds)
		return holds.WhereClause.(ir.Implemented).TraitRef.TraitId
	}
	wantOrder := []ident.ID{n("C"), n("B"), n("A")}
	for i, want := range wantOrder {
		got := traitIdOf(conds[i])
		if got != out.TypeIds[want] {
			t.Errorf("condition[%d] trait = %v, want %s's id", i, got, ident.String(want))
		}
	}
}

// Unselected projection resolution: ambiguous when two traits defining the
// same associated type name are both textually referenced (via a full
// TraitRef, in a where-clause) within the same item.
func TestLowerUnselectedProjectionAmbiguous(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Foo")},
			&ast.TraitDefn{Name: n("A"), AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}}},
			&ast.TraitDefn{Name: n("B"), AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}}},
			&ast.StructDefn{
				Name: n("Uses"),
				Fields: []ast.Field{
					{Name: n("x"), Ty: &ast.UnselectedProjectionTyNode{Name: n("Item")}},
				},
				WhereClauses: []ast.QuantifiedWhereClause{
					{WhereClause: &ast.Implemented{TraitRef: traitRef("A", tyParam(idTy("Foo")))}},
					{WhereClause: &ast.Implemented{TraitRef: traitRef("B", tyParam(idTy("Foo")))}},
				},
			},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected an ambiguous-associated-type error, got nil")
	}
	if !strings.Contains(err.Error(), "L017") {
		t.Errorf("Error() = %q, want it to mention L017", err.Error())
	}
}

// Unselected projection resolution: a trait never textually referenced
// within the current item is not in scope, even if it's referenced elsewhere
// in the program — traits_in_scope does not leak across items (§4.1, §5).
func TestLowerUnselectedProjectionNotInScopeAcrossItems(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Foo")},
			&ast.TraitDefn{Name: n("A"), AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}}},
			&ast.TraitDefn{Name: n("B"), AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}}},
			// References A, bringing it into scope for *this* item only.
			&ast.StructDefn{
				Name: n("Tagged"),
				WhereClauses: []ast.QuantifiedWhereClause{
					{WhereClause: &ast.Implemented{TraitRef: traitRef("A", tyParam(idTy("Foo")))}},
				},
			},
			// Never references A or B itself, so Item must resolve unambiguously
			// against neither — it's simply missing, not ambiguous.
			&ast.StructDefn{
				Name: n("Uses"),
				Fields: []ast.Field{
					{Name: n("x"), Ty: &ast.UnselectedProjectionTyNode{Name: n("Item")}},
				},
			},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected a missing-associated-type error, got nil")
	}
	if !strings.Contains(err.Error(), "L018") {
		t.Errorf("Error() = %q, want it to mention L018", err.Error())
	}
}

// Unselected projection resolution: missing when no trait in scope defines
// the name at all.
func TestLowerUnselectedProjectionMissing(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{
				Name: n("Uses"),
				Fields: []ast.Field{
					{Name: n("x"), Ty: &ast.UnselectedProjectionTyNode{Name: n("Nope")}},
				},
			},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected a missing-associated-type error, got nil")
	}
	if !strings.Contains(err.Error(), "L018") {
		t.Errorf("Error() = %q, want it to mention L018", err.Error())
	}
}

// Auto traits may not declare parameters, where-clauses, or associated types.
func TestLowerAutoTraitViolations(t *testing.T) {
	cases := []struct {
		name string
		defn *ast.TraitDefn
		code string
	}{
		{
			name: "parameters",
			defn: &ast.TraitDefn{
				Name:           n("Auto1"),
				ParameterKinds: []ast.ParameterKind{paramkind.Ty(n("T"))},
				Flags:          ast.TraitFlags{Auto: true},
			},
			code: "L010",
		},
		{
			name: "where clauses",
			defn: &ast.TraitDefn{
				Name: n("Auto2"),
				WhereClauses: []ast.QuantifiedWhereClause{
					{WhereClause: &ast.Implemented{TraitRef: traitRef("Auto2", tyParam(idTy("Auto2")))}},
				},
				Flags: ast.TraitFlags{Auto: true},
			},
			code: "L011",
		},
		{
			name: "associated types",
			defn: &ast.TraitDefn{
				Name:         n("Auto3"),
				AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}},
				Flags:        ast.TraitFlags{Auto: true},
			},
			code: "L012",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			program := &ast.Program{Items: []ast.Item{tc.defn}}
			_, err := Lower(program, solverChoice())
			if err == nil {
				t.Fatalf("Lower: expected an auto-trait violation, got nil")
			}
			if !strings.Contains(err.Error(), tc.code) {
				t.Errorf("Error() = %q, want it to mention %s", err.Error(), tc.code)
			}
		})
	}
}

// Duplicate item names are rejected at allocation time, before any body is
// lowered.
func TestLowerDuplicateItemName(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Dup")},
			&ast.StructDefn{Name: n("Dup")},
		},
	}
	_, err := Lower(program, solverChoice())
	if err == nil {
		t.Fatal("Lower: expected a duplicate-item-name error, got nil")
	}
	if !strings.Contains(err.Error(), "L021") {
		t.Errorf("Error() = %q, want it to mention L021", err.Error())
	}
}

// A well-formed ProjectionEq where-clause hypothesis on an Implies goal
// elaborates to exactly two FromEnv clauses: the projection and the owning
// trait's Implemented.
func TestLowerImpliesGoalElaboratesProjectionEqHypothesis(t *testing.T) {
	program := &ast.Program{
		Items: []ast.Item{
			&ast.StructDefn{Name: n("Foo")},
			&ast.TraitDefn{Name: n("Iterator"), AssocTyDefns: []*ast.AssocTyDefn{{Name: n("Item")}}},
			&ast.Clause{
				Consequence: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("Iterator", tyParam(idTy("Foo")))}},
				Conditions: []ast.Goal{
					&ast.ImpliesGoal{
						Hypotheses: []ast.WhereClause{
							&ast.ProjectionEq{
								Projection: &ast.ProjectionTyNode{
									TraitRef: traitRef("Iterator", tyParam(idTy("Foo"))),
									Name:     n("Item"),
								},
								Ty: idTy("Foo"),
							},
						},
						Goal: &ast.LeafGoalNode{Leaf: ast.DomainGoalLeaf{Goal: &ast.Holds{WhereClause: &ast.Implemented{TraitRef: traitRef("Iterator", tyParam(idTy("Foo")))}}}},
					},
				},
			},
		},
	}
	out, err := Lower(program, solverChoice())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	clause := out.CustomClauses[0].Value
	implies, ok := clause.Conditions[0].(ir.ImpliesGoal)
	if !ok {
		t.Fatalf("Conditions[0] is %T, want ir.ImpliesGoal", clause.Conditions[0])
	}
	if len(implies.Hypotheses) != 2 {
		t.Fatalf("Hypotheses len = %d, want 2 (FromEnv projection + FromEnv trait ref)", len(implies.Hypotheses))
	}
}

func TestLowerEmptyProgram(t *testing.T) {
	out, err := Lower(&ast.Program{}, solverChoice())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if len(out.StructData) != 0 || len(out.TraitData) != 0 {
		t.Errorf("expected an empty Program, got %+v", out)
	}
}

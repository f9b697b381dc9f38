package lowering

import (
	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/pipeline"
)

// state is the value threaded through the driver's pipeline.Pipeline: each
// stage reads what earlier stages produced and fills in its own piece.
type state struct {
	out               *ir.Program
	structs           []*ast.StructDefn
	traits            []*ast.TraitDefn
	impls             []*ast.Impl
	clauses           []*ast.Clause
	assocTyIdsByTrait map[ir.ItemId][]ir.ItemId
	env               Env
}

// Lower runs the full lowering pipeline over a parsed program: two
// allocation passes (item ids, then associated-type ids), two lowering
// passes (type kinds, then item bodies), followed by the external
// collaborators the solver needs a Program handed off to (§4.2, §4.11).
func Lower(program *ast.Program, solverChoice ir.SolverChoice) (*ir.Program, error) {
	out := ir.NewProgram()
	out.SolverChoice = solverChoice
	structs, traits, impls, clauses := partitionItems(program.Items)

	st := &state{out: out, structs: structs, traits: traits, impls: impls, clauses: clauses}

	stages := pipeline.New[*state](
		pipeline.ProcessorFunc[*state](allocateItemIdsStage),
		pipeline.ProcessorFunc[*state](allocateAssociatedTyIdsStage),
		pipeline.ProcessorFunc[*state](lowerTypeKindsStage),
		pipeline.ProcessorFunc[*state](lowerLangItemsStage),
		pipeline.ProcessorFunc[*state](buildEnvStage),
		pipeline.ProcessorFunc[*state](lowerItemBodiesStage),
		pipeline.ProcessorFunc[*state](externalCollaboratorsStage),
	)
	result := stages.Run(&pipeline.PipelineContext[*state]{Value: st})
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Value.out, nil
}

func allocateItemIdsStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	ctx.Err = allocateItemIds(st.out, st.structs, st.traits)
	return ctx
}

func allocateAssociatedTyIdsStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	byTrait, err := allocateAssociatedTyIds(st.out, st.traits)
	st.assocTyIdsByTrait = byTrait
	ctx.Err = err
	return ctx
}

func lowerTypeKindsStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	lowerTypeKinds(st.out, st.structs, st.traits)
	return ctx
}

func lowerLangItemsStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	ctx.Err = lowerLangItems(st.out, st.traits)
	return ctx
}

func buildEnvStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	// traits_in_scope starts empty here: it is populated per item, by
	// LowerTraitRef's side effect as each item's body is actually lowered,
	// not seeded in bulk from the whole program (§4.1, §4.6).
	st.env = NewEnv(st.out.TypeIds, st.out.TypeKinds, st.out.AssociatedTyInfos)
	return ctx
}

func lowerItemBodiesStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	ctx.Err = lowerItemBodies(st.out, st.env, st.structs, st.traits, st.impls, st.clauses, st.assocTyIdsByTrait)
	return ctx
}

func externalCollaboratorsStage(ctx *pipeline.PipelineContext[*state]) *pipeline.PipelineContext[*state] {
	st := ctx.Value
	AddDefaultImpls(st.out)
	RecordSpecializationPriorities(st.out)
	ctx.Err = VerifyWellFormedness(st.out)
	return ctx
}

func partitionItems(items []ast.Item) (structs []*ast.StructDefn, traits []*ast.TraitDefn, impls []*ast.Impl, clauses []*ast.Clause) {
	for _, item := range items {
		switch item := item.(type) {
		case *ast.StructDefn:
			structs = append(structs, item)
		case *ast.TraitDefn:
			traits = append(traits, item)
		case *ast.Impl:
			impls = append(impls, item)
		case *ast.Clause:
			clauses = append(clauses, item)
		}
	}
	return
}

// allocateItemIds is pass 1: every struct and trait gets a dense ItemId —
// all structs first, in source order, then all traits, in source order
// (§4.2). Impls and clauses get none here.
func allocateItemIds(out *ir.Program, structs []*ast.StructDefn, traits []*ast.TraitDefn) error {
	next := 0
	alloc := func(name ident.ID, pos func() ast.Node) error {
		if _, dup := out.TypeIds[name]; dup {
			return errDuplicateItemName(pos().Pos(), name)
		}
		out.TypeIds[name] = ir.NewItemId(next)
		next++
		return nil
	}
	for _, s := range structs {
		if err := alloc(s.Name, func() ast.Node { return s }); err != nil {
			return err
		}
	}
	for _, t := range traits {
		if err := alloc(t.Name, func() ast.Node { return t }); err != nil {
			return err
		}
	}
	return nil
}

// allocateAssociatedTyIds is pass 2: every associated-type definition gets
// its own ItemId and AssociatedTyInfo record, keyed by (trait id, name).
func allocateAssociatedTyIds(out *ir.Program, traits []*ast.TraitDefn) (map[ir.ItemId][]ir.ItemId, error) {
	next := len(out.TypeIds)
	byTrait := make(map[ir.ItemId][]ir.ItemId)
	for _, t := range traits {
		traitId := out.TypeIds[t.Name]
		for _, assocTy := range t.AssocTyDefns {
			key := ir.AssocTyKey{TraitId: traitId, Name: assocTy.Name}
			if _, dup := out.AssociatedTyInfos[key]; dup {
				return nil, errDuplicateItemName(assocTy.Token, assocTy.Name)
			}
			id := ir.NewItemId(next)
			next++
			out.AssociatedTyInfos[key] = &ir.AssociatedTyInfo{
				Id:                 id,
				TraitId:            traitId,
				AddlParameterKinds: assocTy.ParameterKinds,
			}
			byTrait[traitId] = append(byTrait[traitId], id)
		}
	}
	return byTrait, nil
}

// lowerTypeKinds is pass 3: TypeKind records need no Env, since arity is
// determined directly from the declared parameter-kind lists.
func lowerTypeKinds(out *ir.Program, structs []*ast.StructDefn, traits []*ast.TraitDefn) {
	for _, s := range structs {
		id := out.TypeIds[s.Name]
		out.TypeKinds[id] = &ir.TypeKind{
			Sort:    ir.SortStruct,
			Name:    s.Name,
			Binders: ir.NewBinders(anonymizeIr(s.ParameterKinds), struct{}{}),
		}
	}
	for _, t := range traits {
		id := out.TypeIds[t.Name]
		out.TypeKinds[id] = &ir.TypeKind{
			Sort:    ir.SortTrait,
			Name:    t.Name,
			Binders: ir.NewBinders(anonymizeIr(t.ParameterKinds), struct{}{}),
		}
	}
}

// lowerLangItems registers well-known traits (currently just Deref),
// rejecting a second trait claiming the same lang item (§4.2).
func lowerLangItems(out *ir.Program, traits []*ast.TraitDefn) error {
	for _, t := range traits {
		if !t.Flags.Deref {
			continue
		}
		if _, dup := out.LangItems[ir.LangItemDerefTrait]; dup {
			return errDuplicateLangItem(t.Token, "Deref")
		}
		out.LangItems[ir.LangItemDerefTrait] = out.TypeIds[t.Name]
	}
	return nil
}

// lowerItemBodies is pass 4: everything that actually needs name/kind
// resolution and binder management against the fully populated Env.
func lowerItemBodies(
	out *ir.Program,
	env Env,
	structs []*ast.StructDefn,
	traits []*ast.TraitDefn,
	impls []*ast.Impl,
	clauses []*ast.Clause,
	assocTyIdsByTrait map[ir.ItemId][]ir.ItemId,
) error {
	// Each top-level item below gets its own fresh traits_in_scope: the set is
	// only ever textually populated by TraitRef lowering within the current
	// item's own body, and must not leak from (or into) any other item
	// (§4.1, §5). A trait definition together with its associated-type
	// definitions counts as one item, since they share a lifetime.
	for _, s := range structs {
		id := out.TypeIds[s.Name]
		itemEnv := env.WithFreshTraitsInScope()
		datum, err := LowerStructDefn(itemEnv, id, s)
		if err != nil {
			return err
		}
		out.StructData[id] = datum
	}

	for _, t := range traits {
		traitId := out.TypeIds[t.Name]
		itemEnv := env.WithFreshTraitsInScope()
		traitEnvParams := ast.AllParameters(t)
		for _, assocTy := range t.AssocTyDefns {
			info, _ := itemEnv.AssociatedTyInfo(traitId, assocTy.Name)
			datum, err := LowerAssocTyDefn(itemEnv, traitId, info.Id, traitEnvParams, assocTy)
			if err != nil {
				return err
			}
			out.AssociatedTyData[info.Id] = datum
		}
		datum, err := LowerTraitDefn(itemEnv, traitId, t, assocTyIdsByTrait[traitId])
		if err != nil {
			return err
		}
		out.TraitData[traitId] = datum
	}

	// Impls have no ItemId of their own in this IR (nothing else refers to
	// one by id), so they're stored under synthetic ids past the end of the
	// named-item range, purely to give them a stable map key.
	for i, impl := range impls {
		itemEnv := env.WithFreshTraitsInScope()
		datum, err := LowerImpl(itemEnv, impl)
		if err != nil {
			return err
		}
		out.ImplData[ir.NewItemId(len(out.TypeIds)+i)] = datum
	}

	for _, c := range clauses {
		itemEnv := env.WithFreshTraitsInScope()
		lowered, err := LowerClause(itemEnv, c)
		if err != nil {
			return err
		}
		out.CustomClauses = append(out.CustomClauses, lowered...)
	}

	return nil
}

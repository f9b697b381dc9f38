package lowering

import (
	"sort"

	"github.com/hornlang/hornc/internal/ir"
)

// AddDefaultImpls is the driver's default-impl synthesis pass. Lowering
// proper never produces DefaultImplDatum values; this pass is where they
// would be added.
//
// It leaves out.DefaultImplData untouched: nothing downstream
// of lowering in this repository's scope consumes a default impl yet, and
// synthesizing one meaningfully requires the struct-field auto-trait
// propagation rules the (external) solver owns, not lowering. A richer
// default-method model would give this a real body; today it is a
// deliberate no-op placeholder kept as its own pass so that the driver's
// pass ordering — and the eventual implementation — don't move.
func AddDefaultImpls(program *ir.Program) {
	_ = program
}

// RecordSpecializationPriorities assigns a deterministic specialization
// priority to every impl: later-declared impls are preferred over
// earlier-declared ones when more than one impl could apply, matching
// allocation (i.e. source) order rather than requiring a real partial-order
// computation over where-clauses (out of scope here; the solver owns
// actual specialization resolution).
func RecordSpecializationPriorities(program *ir.Program) {
	ids := make([]ir.ItemId, 0, len(program.ImplData))
	for id := range program.ImplData {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a].Index() < ids[b].Index() })
	for i, id := range ids {
		program.ImplData[id].Binders.Value.Priority = i
	}
}

// VerifyWellFormedness checks the structural invariant the rest of this
// package relies on but can't check locally while still in the middle of
// lowering a single item: every ItemId referenced from a fully lowered
// Program actually names a trait of the right sort. This is a minimal
// stand-in for the solver's real well-formedness checking (which also
// validates where-clause satisfiability, out of scope here).
func VerifyWellFormedness(program *ir.Program) error {
	for id, impl := range program.ImplData {
		traitId := impl.Binders.Value.TraitRef.TraitRef.TraitId
		if _, ok := program.TraitData[traitId]; !ok {
			return errUnresolvedTraitReference(id, traitId)
		}
	}
	for id, assocTy := range program.AssociatedTyData {
		if _, ok := program.TraitData[assocTy.TraitId]; !ok {
			return errUnresolvedTraitReference(id, assocTy.TraitId)
		}
	}
	return nil
}

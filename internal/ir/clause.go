package ir

// ProgramClauseImplication is `Consequence :- Conditions` (§4.9). Conditions
// are stored in solver pop order: rightmost-written-condition first, so the
// driver reverses a clause's Conditions exactly once, at lowering time
// (custom clauses only — implication goals built by the driver are already
// in the right order).
type ProgramClauseImplication struct {
	Consequence DomainGoal
	Conditions  []Goal
}

// ProgramClause is a (possibly quantified) implication.
type ProgramClause = Binders[ProgramClauseImplication]

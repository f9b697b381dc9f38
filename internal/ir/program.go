package ir

// SolverChoice configures the (external, out-of-scope) solver the driver
// hands the lowered Program to. Lowering itself is solver-agnostic; this
// only travels alongside the Program so the CLI/session layer can report
// what it asked for.
type SolverChoice struct {
	Name            string
	MaxSize         int
	ExpectedAnswers int
}

// Program is the complete lowered output of the lowering pass (§3).
type Program struct {
	TypeIds           TypeIds
	TypeKinds         TypeKinds
	AssociatedTyInfos AssociatedTyInfos

	StructData        map[ItemId]*StructDatum
	TraitData         map[ItemId]*TraitDatum
	ImplData          map[ItemId]*ImplDatum
	AssociatedTyData  map[ItemId]*AssociatedTyDatum
	DefaultImplData   []*DefaultImplDatum
	CustomClauses     []ProgramClause
	LangItems         LangItems

	SolverChoice SolverChoice
}

// NewProgram returns an empty Program with all maps allocated.
func NewProgram() *Program {
	return &Program{
		TypeIds:           make(TypeIds),
		TypeKinds:         make(TypeKinds),
		AssociatedTyInfos: make(AssociatedTyInfos),
		StructData:        make(map[ItemId]*StructDatum),
		TraitData:         make(map[ItemId]*TraitDatum),
		ImplData:          make(map[ItemId]*ImplDatum),
		AssociatedTyData:  make(map[ItemId]*AssociatedTyDatum),
		LangItems:         make(LangItems),
	}
}

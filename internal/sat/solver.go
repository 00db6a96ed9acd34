package sat

// SolvingListener observes solve calls on a Solver, invoked immediately
// before and after each one. Used to log SAT solver invocations at the
// CLI's solve command.
type SolvingListener interface {
	SolvingStart(nVars, nClauses int)
	SolvingEnd(result SolvingResult)
}

// Solver is the abstraction shared by the in-process and external SAT
// backends. Clients must not assume either backend supports incremental
// solving across AddClause calls made after a Solve: the maximal-
// extension state machine always builds a fresh Solver per connected
// component and only ever adds clauses, never retracts them (retraction
// is simulated with selector literals).
type Solver interface {
	// AddClause adds a clause, interpreted as the disjunction of its
	// literals.
	AddClause(cl Clause)
	// Solve checks satisfiability of everything added so far.
	Solve() SolvingResult
	// SolveUnderAssumptions checks satisfiability of everything added
	// so far, plus the given literals asserted true for this call only.
	SolveUnderAssumptions(assumptions []Literal) SolvingResult
	// NVars returns the number of variables the solver knows about.
	NVars() int
	// Reserve is a hint that the caller intends to use up to n
	// variables; backends may use it to preallocate.
	Reserve(n int)
	// AddListener registers l to observe every subsequent Solve /
	// SolveUnderAssumptions call.
	AddListener(l SolvingListener)
}

// FactoryFn builds a fresh Solver. Used so semantics solvers can be
// parameterized over which backend (in-process or external) to use,
// threaded through from the CLI's command handlers.
type FactoryFn func() Solver

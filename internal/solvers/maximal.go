package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// MaximalExtensionState is one of the four states the maximal-extension
// state machine exposes to its callers.
type MaximalExtensionState int

const (
	// StateInit means no solution has been computed yet.
	StateInit MaximalExtensionState = iota
	// StateIntermediate means a model satisfying the encoded theory has
	// been found, but it is not yet known to be ⊆-maximal.
	StateIntermediate
	// StateMaximal means the current model is known to be ⊆-maximal.
	// TakeCurrent must be called exactly once before continuing.
	StateMaximal
	// StateNone means the theory (plus accumulated blocking clauses) is
	// unsatisfiable: enumeration is exhausted. Further ComputeNext
	// calls are idempotent.
	StateNone
)

// MaximalExtensionComputer enumerates ⊆-maximal models of a
// propositional theory by alternating SAT calls with blocking clauses
// keyed by fresh selector literals, rather than by coroutines or
// generators - clients pull results by calling ComputeNext and reading
// State explicitly. Growth is measured over targetLit(id), which is the
// argument's own membership literal for preferred/ideal, or its range
// literal for semi-stable/stage.
type MaximalExtensionComputer[T aa.LabelType] struct {
	af      *aa.AAF[T]
	solver  sat.Solver
	encoder encodings.ConstraintsEncoder[T]

	targetLit func(id int) sat.Literal
	nArgs     int

	state     MaximalExtensionState
	lastModel *sat.Assignment
	nextVar   sat.Variable
}

// NewMaximalExtensionComputer builds a computer over an AAF already
// encoded into solver by encoder. When useRange is true, growth is
// measured over the range variable block instead of over argument
// membership.
func NewMaximalExtensionComputer[T aa.LabelType](
	af *aa.AAF[T],
	solver sat.Solver,
	encoder encodings.ConstraintsEncoder[T],
	useRange bool,
) *MaximalExtensionComputer[T] {
	n := af.NArguments()
	var targetLit func(id int) sat.Literal
	var base sat.Variable
	if useRange {
		targetLit = func(id int) sat.Literal {
			return sat.NewLiteral(encodings.ArgIDToRangeVar(n, id), true)
		}
		base = sat.Variable(3*n + 1)
	} else {
		targetLit = func(id int) sat.Literal {
			arg, _ := af.ArgumentSet().GetByID(id)
			return encoder.ArgToLit(arg)
		}
		base = sat.Variable(2*n + 1)
	}
	return &MaximalExtensionComputer[T]{
		af:        af,
		solver:    solver,
		encoder:   encoder,
		targetLit: targetLit,
		nArgs:     n,
		state:     StateInit,
		nextVar:   base,
	}
}

func (m *MaximalExtensionComputer[T]) allocSelector() sat.Literal {
	v := m.nextVar
	m.nextVar++
	return sat.NewLiteral(v, true)
}

// State returns the computer's current state.
func (m *MaximalExtensionComputer[T]) State() MaximalExtensionState {
	return m.state
}

// Current decodes the last model found into an extension. Valid in
// StateIntermediate and StateMaximal.
func (m *MaximalExtensionComputer[T]) Current() []*aa.Argument[T] {
	if m.lastModel == nil {
		return nil
	}
	return m.encoder.AssignmentToExtension(m.lastModel, m.af)
}

// TakeCurrent returns the current (Maximal) extension and invalidates
// it, resetting the computer to search for the next, distinct maximal
// solution on subsequent ComputeNext calls.
func (m *MaximalExtensionComputer[T]) TakeCurrent() []*aa.Argument[T] {
	ext := m.Current()
	m.lastModel = nil
	if m.state == StateMaximal {
		m.state = StateInit
	}
	return ext
}

func (m *MaximalExtensionComputer[T]) splitIDs(model *sat.Assignment) (inIDs, outIDs []int) {
	for id := 0; id < m.nArgs; id++ {
		value, assigned := model.ValueOf(m.targetLit(id).Var())
		if assigned && value {
			inIDs = append(inIDs, id)
		} else {
			outIDs = append(outIDs, id)
		}
	}
	return inIDs, outIDs
}

// forbidSubsets adds a clause requiring every future model to set at
// least one of the target literals of outIDs, the ids left out of the
// maximal model just found. This rules out that model and every subset
// of it, so later rounds can only reach maximal models not yet seen.
func (m *MaximalExtensionComputer[T]) forbidSubsets(outIDs []int) {
	cl := make(sat.Clause, 0, len(outIDs))
	for _, id := range outIDs {
		cl = append(cl, m.targetLit(id))
	}
	m.solver.AddClause(cl)
}

// ComputeNext drives one round of the search.
func (m *MaximalExtensionComputer[T]) ComputeNext() {
	if m.state == StateNone {
		return
	}
	if m.lastModel == nil {
		result := m.solver.Solve()
		if result.Status == sat.Satisfiable {
			m.lastModel = result.Model
			m.state = StateIntermediate
		} else {
			m.state = StateNone
		}
		return
	}

	inIDs, outIDs := m.splitIDs(m.lastModel)
	selector := m.allocSelector()
	grow := sat.Clause{selector}
	for _, id := range outIDs {
		grow = append(grow, m.targetLit(id))
	}
	m.solver.AddClause(grow)

	assumptions := make([]sat.Literal, 0, len(inIDs)+1)
	assumptions = append(assumptions, selector.Negate())
	for _, id := range inIDs {
		assumptions = append(assumptions, m.targetLit(id))
	}

	result := m.solver.SolveUnderAssumptions(assumptions)
	switch result.Status {
	case sat.Satisfiable:
		m.lastModel = result.Model
		m.state = StateIntermediate
	case sat.Unsatisfiable:
		// Retire this round: asserting the selector true satisfies the
		// growth clause trivially from now on.
		m.solver.AddClause(sat.Clause{selector})
		m.forbidSubsets(outIDs)
		m.state = StateMaximal
	default:
		m.state = StateNone
	}
}

// ComputeMaximal drives ComputeNext until a maximal model is produced,
// or the search is exhausted (nil).
func (m *MaximalExtensionComputer[T]) ComputeMaximal() []*aa.Argument[T] {
	for {
		m.ComputeNext()
		switch m.state {
		case StateMaximal:
			ext := m.TakeCurrent()
			if ext == nil {
				ext = []*aa.Argument[T]{}
			}
			return ext
		case StateNone:
			return nil
		}
	}
}

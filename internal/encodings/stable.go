package encodings

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// StableConstraintsEncoder is complete semantics plus the constraint
// that every argument is either in the extension or attacked by it:
// x_a OR d_a for every a.
type StableConstraintsEncoder[T aa.LabelType] struct {
	CompleteConstraintsEncoder[T]
}

func encodeStabilityForArg[T aa.LabelType](solver sat.Solver, arg *aa.Argument[T]) {
	argVar := ArgIDToSolverVar(arg.ID())
	disjVar := argIDToDisjunctionVar(arg.ID())
	solver.AddClause(sat.Clause{lit(argVar, true), lit(disjVar, true)})
}

func (e StableConstraintsEncoder[T]) EncodeConstraints(af *aa.AAF[T], solver sat.Solver) {
	e.CompleteConstraintsEncoder.EncodeConstraints(af, solver)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeStabilityForArg(solver, arg)
	}
}

func (e StableConstraintsEncoder[T]) EncodeConstraintsAndRange(af *aa.AAF[T], solver sat.Solver) {
	e.CompleteConstraintsEncoder.EncodeConstraintsAndRange(af, solver)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeStabilityForArg(solver, arg)
	}
}

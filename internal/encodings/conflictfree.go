package encodings

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// ConflictFreeConstraintsEncoder encodes conflict-freeness alone (no
// attacker is itself attacked back into compliance): for every attack
// u -> v, -x_u OR -x_v. It still defines disjunction variables so range
// constraints can be layered on top, which is what the stage semantics
// needs: conflict-free sets, maximized by range rather than by the full
// complete/reinstatement encoding.
type ConflictFreeConstraintsEncoder[T aa.LabelType] struct{}

func encodeConflictFreeForArg[T aa.LabelType](af *aa.AAF[T], solver sat.Solver, arg *aa.Argument[T]) {
	argVar := ArgIDToSolverVar(arg.ID())
	for _, attackerID := range af.IterAttacksTo(arg.ID()) {
		attackerVar := ArgIDToSolverVar(attackerID)
		solver.AddClause(sat.Clause{lit(argVar, false), lit(attackerVar, false)})
	}
}

func (ConflictFreeConstraintsEncoder[T]) EncodeConstraints(af *aa.AAF[T], solver sat.Solver) {
	solver.Reserve(af.NArguments() << 1)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeConflictFreeForArg(af, solver, arg)
		encodeDisjunctionVar(af, solver, arg)
	}
}

func (ConflictFreeConstraintsEncoder[T]) EncodeConstraintsAndRange(af *aa.AAF[T], solver sat.Solver) {
	solver.Reserve(af.NArguments() * 3)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeConflictFreeForArg(af, solver, arg)
		encodeDisjunctionVar(af, solver, arg)
		encodeRangeConstraint(solver, arg, af.NArguments())
	}
}

func (ConflictFreeConstraintsEncoder[T]) FirstRangeVar(nArgs int) sat.Variable {
	return ArgIDToRangeVar(nArgs, 0)
}

func (ConflictFreeConstraintsEncoder[T]) AssignmentToExtension(assignment *sat.Assignment, af *aa.AAF[T]) []*aa.Argument[T] {
	return CompleteConstraintsEncoder[T]{}.AssignmentToExtension(assignment, af)
}

func (ConflictFreeConstraintsEncoder[T]) ArgToLit(arg *aa.Argument[T]) sat.Literal {
	return CompleteConstraintsEncoder[T]{}.ArgToLit(arg)
}

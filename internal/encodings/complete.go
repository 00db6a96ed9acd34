package encodings

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// CompleteConstraintsEncoder is the polynomial aux-var encoding of the
// complete semantics: for each argument a with attacker set
// A(a), a disjunction variable d_a <-> (some attacker of a is in the
// extension) lets admissibility and reinstatement both be expressed in
// clauses linear in the AAF's size.
//
// Variable layout, for an AAF with n arguments and argument id i in
// 0..n: membership x_i = 2(i+1), disjunction d_i = 2(i+1)-1. Range
// variables, when requested, occupy [2n+1, 3n]: r_i = 2n+i+1.
type CompleteConstraintsEncoder[T aa.LabelType] struct{}

// ArgIDToSolverVar returns the membership variable x_i for argument id.
func ArgIDToSolverVar(id int) sat.Variable {
	return sat.Variable((id + 1) << 1)
}

// argIDToDisjunctionVar returns the disjunction variable d_i for
// argument id.
func argIDToDisjunctionVar(id int) sat.Variable {
	return ArgIDToSolverVar(id) - 1
}

// ArgIDFromSolverVar is the inverse of ArgIDToSolverVar: it returns the
// argument id for an even variable, and false for any odd variable
// (disjunction variables have no argument of their own). An even
// variable above 2n, such as an even range variable, still yields an id,
// one that is n or more; callers drop such ids.
func ArgIDFromSolverVar(v sat.Variable) (int, bool) {
	if v&1 == 1 {
		return 0, false
	}
	return int(v>>1) - 1, true
}

// ArgIDToRangeVar returns the range variable r_i for argument id, given
// an AAF with nArgs arguments.
func ArgIDToRangeVar(nArgs, id int) sat.Variable {
	return sat.Variable((nArgs << 1) + id + 1)
}

func lit(v sat.Variable, positive bool) sat.Literal {
	return sat.NewLiteral(v, positive)
}

// encodeAttackConstraintsForArg asserts x_a <-> every attacker of a is
// attacked by the extension, i.e. x_a OR (for each attacker u, -d_u),
// together with the per-attacker implications x_a -> d_u.
func encodeAttackConstraintsForArg[T aa.LabelType](af *aa.AAF[T], solver sat.Solver, arg *aa.Argument[T]) {
	attackedVar := ArgIDToSolverVar(arg.ID())
	full := sat.Clause{lit(attackedVar, true)}
	for _, attackerID := range af.IterAttacksTo(arg.ID()) {
		attackerDisjVar := argIDToDisjunctionVar(attackerID)
		solver.AddClause(sat.Clause{lit(attackedVar, false), lit(attackerDisjVar, true)})
		full = append(full, lit(attackerDisjVar, false))
	}
	solver.AddClause(full)
}

// encodeDisjunctionVar asserts d_a <-> (some attacker of a is in the
// extension), together with admissibility's x_a -> -d_a.
func encodeDisjunctionVar[T aa.LabelType](af *aa.AAF[T], solver sat.Solver, arg *aa.Argument[T]) {
	attackedID := arg.ID()
	argVar := ArgIDToSolverVar(attackedID)
	disjVar := argIDToDisjunctionVar(attackedID)
	solver.AddClause(sat.Clause{lit(argVar, false), lit(disjVar, false)})
	full := sat.Clause{lit(disjVar, false)}
	for _, attackerID := range af.IterAttacksTo(attackedID) {
		attackerVar := ArgIDToSolverVar(attackerID)
		solver.AddClause(sat.Clause{lit(disjVar, true), lit(attackerVar, false)})
		full = append(full, lit(attackerVar, true))
	}
	solver.AddClause(full)
}

// encodeRangeConstraint asserts r_a <-> (x_a or d_a), i.e. a is in the
// range of the extension iff it is itself a member or one of its
// attackers is.
func encodeRangeConstraint[T aa.LabelType](solver sat.Solver, arg *aa.Argument[T], nArgs int) {
	rangeVar := ArgIDToRangeVar(nArgs, arg.ID())
	argVar := ArgIDToSolverVar(arg.ID())
	disjVar := argIDToDisjunctionVar(arg.ID())
	solver.AddClause(sat.Clause{lit(argVar, false), lit(rangeVar, true)})
	solver.AddClause(sat.Clause{lit(disjVar, false), lit(rangeVar, true)})
	solver.AddClause(sat.Clause{lit(rangeVar, false), lit(argVar, true), lit(disjVar, true)})
}

func (CompleteConstraintsEncoder[T]) EncodeConstraints(af *aa.AAF[T], solver sat.Solver) {
	solver.Reserve(af.NArguments() << 1)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeAttackConstraintsForArg(af, solver, arg)
		encodeDisjunctionVar(af, solver, arg)
	}
}

func (CompleteConstraintsEncoder[T]) EncodeConstraintsAndRange(af *aa.AAF[T], solver sat.Solver) {
	solver.Reserve(af.NArguments() * 3)
	for _, arg := range af.ArgumentSet().Iter() {
		encodeAttackConstraintsForArg(af, solver, arg)
		encodeDisjunctionVar(af, solver, arg)
		encodeRangeConstraint(solver, arg, af.NArguments())
	}
}

func (CompleteConstraintsEncoder[T]) FirstRangeVar(nArgs int) sat.Variable {
	return ArgIDToRangeVar(nArgs, 0)
}

func (CompleteConstraintsEncoder[T]) AssignmentToExtension(assignment *sat.Assignment, af *aa.AAF[T]) []*aa.Argument[T] {
	var ext []*aa.Argument[T]
	assignment.Iter(func(v sat.Variable, value bool, assigned bool) {
		if !assigned || !value {
			return
		}
		id, ok := ArgIDFromSolverVar(v)
		if !ok || id >= af.NArguments() {
			return
		}
		if arg, ok := af.ArgumentSet().GetByID(id); ok {
			ext = append(ext, arg)
		}
	})
	return ext
}

func (CompleteConstraintsEncoder[T]) ArgToLit(arg *aa.Argument[T]) sat.Literal {
	return lit(ArgIDToSolverVar(arg.ID()), true)
}

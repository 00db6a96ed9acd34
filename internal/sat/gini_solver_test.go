package sat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/sat"
)

func TestGiniSolverFindsAModelForASatisfiableInstance(t *testing.T) {
	solver := sat.NewGiniSolver()
	solver.AddClause(sat.Clause{sat.NewLiteral(1, true), sat.NewLiteral(2, true)})
	solver.AddClause(sat.Clause{sat.NewLiteral(1, false)})

	result := solver.Solve()
	require.Equal(t, sat.Satisfiable, result.Status)
	v2, assigned := result.Model.ValueOf(sat.Variable(2))
	require.True(t, assigned)
	assert.True(t, v2)
}

func TestGiniSolverReportsUnsatisfiable(t *testing.T) {
	solver := sat.NewGiniSolver()
	solver.AddClause(sat.Clause{sat.NewLiteral(1, true)})
	solver.AddClause(sat.Clause{sat.NewLiteral(1, false)})

	result := solver.Solve()
	assert.Equal(t, sat.Unsatisfiable, result.Status)
}

func TestGiniSolverHonoursPerCallAssumptions(t *testing.T) {
	solver := sat.NewGiniSolver()
	solver.AddClause(sat.Clause{sat.NewLiteral(1, true), sat.NewLiteral(2, true)})

	result := solver.SolveUnderAssumptions([]sat.Literal{sat.NewLiteral(1, false)})
	require.Equal(t, sat.Satisfiable, result.Status)
	v2, assigned := result.Model.ValueOf(sat.Variable(2))
	require.True(t, assigned)
	assert.True(t, v2)
}

type countingListener struct {
	starts, ends int
}

func (c *countingListener) SolvingStart(nVars, nClauses int) { c.starts++ }
func (c *countingListener) SolvingEnd(result sat.SolvingResult) { c.ends++ }

func TestSolverNotifiesListenersOnEverySolveCall(t *testing.T) {
	solver := sat.NewGiniSolver()
	listener := &countingListener{}
	solver.AddListener(listener)

	solver.AddClause(sat.Clause{sat.NewLiteral(1, true)})
	solver.Solve()
	solver.Solve()

	assert.Equal(t, 2, listener.starts)
	assert.Equal(t, 2, listener.ends)
}

package encodings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

func TestArgIDVariableMapRoundTrips(t *testing.T) {
	for id := 0; id < 16; id++ {
		v := encodings.ArgIDToSolverVar(id)
		got, ok := encodings.ArgIDFromSolverVar(v)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestArgIDFromSolverVarRejectsOddVariables(t *testing.T) {
	_, ok := encodings.ArgIDFromSolverVar(sat.Variable(1))
	assert.False(t, ok)
}

func buildMutualAttackAAF(t *testing.T) *aa.AAF[string] {
	t.Helper()
	af := aa.New[string]()
	for _, label := range []string{"a0", "a1", "a2", "a3"} {
		_, err := af.NewArgument(label)
		require.NoError(t, err)
	}
	for _, att := range [][2]string{{"a0", "a1"}, {"a0", "a2"}, {"a1", "a0"}, {"a1", "a2"}, {"a2", "a3"}, {"a3", "a2"}} {
		require.NoError(t, af.NewAttack(att[0], att[1]))
	}
	return af
}

func TestCompleteEncodingRoundTripIsAdmissible(t *testing.T) {
	af := buildMutualAttackAAF(t)
	encoder := encodings.CompleteConstraintsEncoder[string]{}
	solver := sat.NewGiniSolver()
	encoder.EncodeConstraints(af, solver)

	result := solver.Solve()
	require.Equal(t, sat.Satisfiable, result.Status)

	ext := encoder.AssignmentToExtension(result.Model, af)
	assertAdmissible(t, af, ext)
}

// assertAdmissible checks an extension is conflict-free (no member
// attacks another) and admissible (every attacker of a member is
// itself attacked by the extension).
func assertAdmissible[T aa.LabelType](t *testing.T, af *aa.AAF[T], ext []*aa.Argument[T]) {
	t.Helper()
	in := make(map[int]bool, len(ext))
	for _, a := range ext {
		in[a.ID()] = true
	}
	for _, a := range ext {
		for _, attackedID := range af.IterAttacksFrom(a.ID()) {
			assert.False(t, in[attackedID], "extension is not conflict-free")
		}
		for _, attackerID := range af.IterAttacksTo(a.ID()) {
			defended := false
			for _, counterID := range af.IterAttacksTo(attackerID) {
				if in[counterID] {
					defended = true
					break
				}
			}
			assert.True(t, defended, "extension does not defend %v against attacker", a.Label())
		}
	}
}

package solvers_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
	"github.com/alexjackson1/crustabri/internal/solvers"
)

func factory() sat.FactoryFn {
	return func() sat.Solver { return sat.NewGiniSolver() }
}

func labels(ext []*aa.Argument[string]) []string {
	out := make([]string, len(ext))
	for i, a := range ext {
		out[i] = a.Label()
	}
	sort.Strings(out)
	return out
}

func mustArg(t *testing.T, af *aa.AAF[string], label string) *aa.Argument[string] {
	t.Helper()
	arg, ok := af.ArgumentSet().GetByLabel(label)
	require.True(t, ok)
	return arg
}

func buildFramework(t *testing.T, labelsIn []string, attacks [][2]string) *aa.AAF[string] {
	t.Helper()
	af := aa.New[string]()
	for _, l := range labelsIn {
		_, err := af.NewArgument(l)
		require.NoError(t, err)
	}
	for _, att := range attacks {
		require.NoError(t, af.NewAttack(att[0], att[1]))
	}
	return af
}

// Scenario 1: line graph under grounded semantics.
func TestLineGraphGrounded(t *testing.T) {
	af := buildFramework(t,
		[]string{"a", "b", "c", "d", "e", "f"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"b", "d"}, {"c", "e"}, {"d", "e"}, {"e", "f"}},
	)
	solver := solvers.NewSolver(af, aa.GR, factory())

	assert.Equal(t, []string{"a", "c", "d", "f"}, labels(solver.ComputeOneExtension()))
	assert.True(t, solver.IsCredulouslyAccepted(mustArg(t, af, "a")))
	assert.True(t, solver.IsSkepticallyAccepted(mustArg(t, af, "a")))
	assert.False(t, solver.IsCredulouslyAccepted(mustArg(t, af, "b")))
}

// Scenario 2: mutual attack, two preferred extensions.
func TestMutualAttackPreferred(t *testing.T) {
	af := buildFramework(t,
		[]string{"a0", "a1", "a2", "a3"},
		[][2]string{{"a0", "a1"}, {"a0", "a2"}, {"a1", "a0"}, {"a1", "a2"}, {"a2", "a3"}, {"a3", "a2"}},
	)
	solver := solvers.NewSolver(af, aa.PR, factory())

	assert.True(t, solver.IsSkepticallyAccepted(mustArg(t, af, "a3")))
	assert.False(t, solver.IsSkepticallyAccepted(mustArg(t, af, "a0")))
	assert.True(t, solver.IsCredulouslyAccepted(mustArg(t, af, "a0")))

	ext := labels(solver.ComputeOneExtension())
	if len(ext) == 2 {
		assert.Contains(t, [][]string{{"a0", "a3"}, {"a1", "a3"}}, ext)
	}
}

// Scenario 3: odd self-attack cycle.
func TestOddCycleGroundedAndPreferred(t *testing.T) {
	af := buildFramework(t, []string{"a0"}, [][2]string{{"a0", "a0"}})

	grounded := solvers.NewSolver(af, aa.GR, factory())
	assert.False(t, grounded.IsCredulouslyAccepted(mustArg(t, af, "a0")))

	preferred := solvers.NewSolver(af, aa.PR, factory())
	assert.Empty(t, preferred.ComputeOneExtension())
	assert.False(t, preferred.IsSkepticallyAccepted(mustArg(t, af, "a0")))
}

// Scenario 4: stable existence.
func TestStableExistence(t *testing.T) {
	af := buildFramework(t, []string{"a0", "a1"}, [][2]string{{"a0", "a1"}})
	solver := solvers.NewSolver(af, aa.ST, factory())

	assert.Equal(t, []string{"a0"}, labels(solver.ComputeOneExtension()))
	assert.False(t, solver.IsCredulouslyAccepted(mustArg(t, af, "a1")))
	assert.True(t, solver.IsSkepticallyAccepted(mustArg(t, af, "a0")))
}

// Scenario 5: DS-PR certificate under connected-components decomposition.
func TestDSPreferredCertificateAcrossComponents(t *testing.T) {
	af := buildFramework(t,
		[]string{"a0", "a2", "a3", "a4", "a5"},
		[][2]string{{"a2", "a3"}, {"a2", "a4"}, {"a3", "a2"}, {"a3", "a4"}, {"a4", "a5"}},
	)
	solver := solvers.NewSolver(af, aa.PR, factory())

	accepted, certificate := solver.IsSkepticallyAcceptedWithCertificate(mustArg(t, af, "a2"))
	assert.False(t, accepted)
	got := labels(certificate)
	assert.Contains(t, [][]string{{"a0", "a2", "a5"}, {"a0", "a3", "a5"}}, got)

	accepted, certificate = solver.IsSkepticallyAcceptedWithCertificate(mustArg(t, af, "a0"))
	assert.True(t, accepted)
	assert.Nil(t, certificate)
}

func TestSemiStableAndStageProduceAdmissibleExtensions(t *testing.T) {
	af := buildFramework(t,
		[]string{"a0", "a1", "a2"},
		[][2]string{{"a0", "a1"}, {"a1", "a2"}, {"a2", "a0"}},
	)
	for _, semantics := range []aa.Semantics{aa.SST, aa.STG, aa.ID} {
		solver := solvers.NewSolver(af, semantics, factory())
		require.NotNil(t, solver)
		_ = solver.ComputeOneExtension()
	}
}

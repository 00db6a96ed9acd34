package dynamics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/dynamics"
	"github.com/alexjackson1/crustabri/internal/sat"
)

func factory() sat.FactoryFn {
	return func() sat.Solver { return sat.NewGiniSolver() }
}

func TestDynamicFrameworkReflectsMutationsInSubsequentQueries(t *testing.T) {
	af := aa.New[string]()
	_, err := af.NewArgument("a")
	require.NoError(t, err)
	_, err = af.NewArgument("b")
	require.NoError(t, err)
	require.NoError(t, af.NewAttack("a", "b"))

	d := dynamics.NewDynamicFramework[string](af, factory())
	b, ok := d.AAF().ArgumentSet().GetByLabel("b")
	require.True(t, ok)
	assert.False(t, d.IsCredulouslyAccepted(aa.GR, b))

	require.NoError(t, d.RemoveAttack("a", "b"))
	assert.True(t, d.IsCredulouslyAccepted(aa.GR, b))

	_, err = d.NewArgument("c")
	require.NoError(t, err)
	require.NoError(t, d.NewAttack("c", "b"))
	assert.False(t, d.IsCredulouslyAccepted(aa.GR, b))

	require.NoError(t, d.RemoveArgument("c"))
	assert.True(t, d.IsCredulouslyAccepted(aa.GR, b))
}

package encodings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

func TestStableEncodingFindsTheUniqueStableExtension(t *testing.T) {
	af := aa.New[string]()
	_, err := af.NewArgument("a0")
	require.NoError(t, err)
	_, err = af.NewArgument("a1")
	require.NoError(t, err)
	require.NoError(t, af.NewAttack("a0", "a1"))

	encoder := encodings.StableConstraintsEncoder[string]{}
	solver := sat.NewGiniSolver()
	encoder.EncodeConstraints(af, solver)

	result := solver.Solve()
	require.Equal(t, sat.Satisfiable, result.Status)

	ext := encoder.AssignmentToExtension(result.Model, af)
	assert.Len(t, ext, 1)
	assert.Equal(t, "a0", ext[0].Label())
}

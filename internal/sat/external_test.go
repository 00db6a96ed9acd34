package sat_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/sat"
)

// Scenario 6: an external "solver" that ignores its input and always
// reports the same model.
func TestExternalSolverParsesAnEchoedModel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the echo script assumes a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "fake-solver.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf 's SATISFIABLE\\nv 1 2 0\\n'\n"), 0o755))

	solver := sat.NewExternalSolver(script, nil)
	solver.AddClause(sat.Clause{sat.NewLiteral(1, true), sat.NewLiteral(2, true)})

	result := solver.Solve()
	require.Equal(t, sat.Satisfiable, result.Status)
	assert.Equal(t, 2, result.Model.NVars())

	v1, assigned := result.Model.ValueOf(sat.Variable(1))
	require.True(t, assigned)
	assert.True(t, v1)

	v2, assigned := result.Model.ValueOf(sat.Variable(2))
	require.True(t, assigned)
	assert.True(t, v2)
}

func TestExternalSolverReportsUnknownWhenTheChildNeverEmitsAStatusLine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the echo script assumes a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "silent-solver.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 1\n"), 0o755))

	solver := sat.NewExternalSolver(script, nil)
	solver.AddClause(sat.Clause{sat.NewLiteral(1, true)})

	result := solver.Solve()
	assert.Equal(t, sat.Unknown, result.Status)
}

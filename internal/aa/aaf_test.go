package aa_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
)

func labels(ext []*aa.Argument[string]) []string {
	out := make([]string, len(ext))
	for i, a := range ext {
		out[i] = a.Label()
	}
	sort.Strings(out)
	return out
}

func buildLineGraph(t *testing.T) *aa.AAF[string] {
	t.Helper()
	af := aa.New[string]()
	for _, label := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := af.NewArgument(label)
		require.NoError(t, err)
	}
	for _, att := range [][2]string{{"a", "b"}, {"b", "c"}, {"b", "d"}, {"c", "e"}, {"d", "e"}, {"e", "f"}} {
		require.NoError(t, af.NewAttack(att[0], att[1]))
	}
	return af
}

func TestGroundedExtensionLineGraph(t *testing.T) {
	af := buildLineGraph(t)
	ext := aa.GroundedExtension(af)
	assert.Equal(t, []string{"a", "c", "d", "f"}, labels(ext))
}

func TestGroundedExtensionOddCycle(t *testing.T) {
	af := aa.New[string]()
	_, err := af.NewArgument("a0")
	require.NoError(t, err)
	require.NoError(t, af.NewAttack("a0", "a0"))

	ext := aa.GroundedExtension(af)
	assert.Empty(t, ext)
}

func TestRemoveArgumentDropsIncidentAttacks(t *testing.T) {
	af := buildLineGraph(t)
	require.NoError(t, af.RemoveArgument("b"))

	_, ok := af.ArgumentSet().GetByLabel("b")
	assert.False(t, ok)

	c, ok := af.ArgumentSet().GetByLabel("c")
	require.True(t, ok)
	assert.Zero(t, af.NAttacksTo(c.ID()))
}

func TestDuplicateLabelRejected(t *testing.T) {
	af := aa.New[string]()
	_, err := af.NewArgument("a")
	require.NoError(t, err)
	_, err = af.NewArgument("a")
	assert.Error(t, err)
}

package aa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
)

func TestConnectedComponentsPartitionTheFramework(t *testing.T) {
	af := aa.New[string]()
	for _, label := range []string{"a0", "a2", "a3", "a4", "a5"} {
		_, err := af.NewArgument(label)
		require.NoError(t, err)
	}
	for _, att := range [][2]string{{"a2", "a3"}, {"a2", "a4"}, {"a3", "a2"}, {"a3", "a4"}, {"a4", "a5"}} {
		require.NoError(t, af.NewAttack(att[0], att[1]))
	}

	components := aa.IterConnectedComponents(af)

	seen := make(map[string]bool)
	for _, cc := range components {
		for _, arg := range cc.ArgumentSet().Iter() {
			assert.False(t, seen[arg.Label()], "label %q covered by more than one component", arg.Label())
			seen[arg.Label()] = true
		}
	}
	assert.Len(t, seen, af.NArguments())

	var isolated, connected int
	for _, cc := range components {
		switch cc.NArguments() {
		case 1:
			isolated++
		case 4:
			connected++
		default:
			t.Fatalf("unexpected component size %d", cc.NArguments())
		}
	}
	assert.Equal(t, 1, isolated)
	assert.Equal(t, 1, connected)
}

func TestConnectedComponentOfCoversAFullyConnectedFramework(t *testing.T) {
	af := buildLineGraph(t)
	a, ok := af.ArgumentSet().GetByLabel("a")
	require.True(t, ok)

	cc := aa.ConnectedComponentOf(af, a)
	assert.Equal(t, af.NArguments(), cc.NArguments())
}

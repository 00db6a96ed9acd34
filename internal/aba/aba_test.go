package aba_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aba"
)

func TestReadIccma23ABAParsesAssumptionsContrariesAndRules(t *testing.T) {
	input := strings.Join([]string{
		"p aba 4",
		"a 1",
		"a 2",
		"c 1 3",
		"c 2 4",
		"r 3 1",
		"",
	}, "\n")

	f, err := aba.ReadIccma23ABA(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, f.IsAssumption("1"))
	assert.True(t, f.IsAssumption("2"))
	contrary, ok := f.Contrary("1")
	require.True(t, ok)
	assert.Equal(t, "3", contrary)
	require.Len(t, f.Rules(), 1)
	assert.Equal(t, "3", f.Rules()[0].Head)
	assert.Equal(t, []string{"1"}, f.Rules()[0].Body)
}

func TestReadIccma23ABARejectsContraryOnNonAssumption(t *testing.T) {
	input := "p aba 2\nc 1 2\n"
	_, err := aba.ReadIccma23ABA(strings.NewReader(input))
	assert.Error(t, err)
}

// A flat ABA framework where assumption 1's contrary is derived from a
// rule whose body is assumption 2 alone should instantiate into an AAF
// with a single attack 2 -> 1.
func TestInstantiateBuildsAttacksFromAllAssumptionBodies(t *testing.T) {
	f := aba.NewFramework()
	f.AddAssumption("1", "not1")
	f.AddAssumption("2", "not2")
	f.AddRule("not1", []string{"2"})

	instantiation, err := aba.Instantiate(f)
	require.NoError(t, err)

	af := instantiation.AAF()
	assert.Equal(t, 2, af.NArguments())

	one, ok := af.ArgumentSet().GetByLabel("1")
	require.True(t, ok)
	assert.Equal(t, 1, af.NAttacksTo(one.ID()))

	two, ok := af.ArgumentSet().GetByLabel("2")
	require.True(t, ok)
	assert.Zero(t, af.NAttacksTo(two.ID()))

	atom, ok := instantiation.InstantiatedArgToAssumption(two)
	require.True(t, ok)
	assert.Equal(t, "2", atom)
}

func TestInstantiateIgnoresRulesWithNonAssumptionBodyAtoms(t *testing.T) {
	f := aba.NewFramework()
	f.AddAssumption("1", "not1")
	f.AddRule("not1", []string{"p"})

	instantiation, err := aba.Instantiate(f)
	require.NoError(t, err)

	af := instantiation.AAF()
	var total int
	for _, attack := range af.AllAttacks() {
		total++
		_ = attack
	}
	assert.Zero(t, total)
}

func sortedStrings(xs []string) []string {
	out := append([]string(nil), xs...)
	sort.Strings(out)
	return out
}

func TestFrameworkAssumptionsAreReturnedUnordered(t *testing.T) {
	f := aba.NewFramework()
	f.AddAssumption("b", "nb")
	f.AddAssumption("a", "na")
	assert.Equal(t, []string{"a", "b"}, sortedStrings(f.Assumptions()))
}

package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreGrammarIsClean(t *testing.T) {
	g := Core()
	require.NotNil(t, g)
	assert.NoError(t, g.Validate())
	assert.Empty(t, g.Findings())
	assert.Equal(t, Rule("grammar"), g.Root())
}

func TestCoreGrammarFullyReachable(t *testing.T) {
	assert.Empty(t, Core().Unreachable(""))
}

func TestCoreGrammarRecursion(t *testing.T) {
	clusters := Core().RecursionClusters()
	require.NotEmpty(t, clusters)

	families := map[Rule]bool{}
	for _, cluster := range clusters {
		for _, name := range cluster {
			families[name] = true
		}
	}
	// the list-shaped rules are all self-recursive
	for _, name := range []Rule{"grammar", "variant list", "variant", "literal text", "ident tail"} {
		assert.True(t, families[name], "expected %q in recursion metadata", name)
	}
	// non-recursive rules stay out
	for _, name := range []Rule{"rule", "atom", "terminal", "letter", "digit"} {
		assert.False(t, families[name], "did not expect %q in recursion metadata", name)
	}
}

func TestCoreGrammarRoundTrips(t *testing.T) {
	g := MustCompile(GrammarGrammar())
	r := MustCompile(g.String())
	assert.True(t, DiffGrammars(g, r).Equal())
}

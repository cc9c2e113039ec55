package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/bnf/parser"
)

func TestGrammarAccumulation(t *testing.T) {
	g := New()
	g.Add("a", parser.Scanner{}, Variant{Terminal{Literal: "x"}})
	g.Add("b", parser.Scanner{}, Variant{NonterminalRef{Name: "a"}})
	g.Add("a", parser.Scanner{}, Variant{Terminal{Literal: "y"}})

	// declaration order of names is preserved; merged variants accumulate
	assert.Equal(t, []Rule{"a", "b"}, g.Rules())
	require.Len(t, g.Variants("a"), 2)
	assert.Equal(t, "x", g.Variants("a")[0][0].(Terminal).Literal)
	assert.Equal(t, "y", g.Variants("a")[1][0].(Terminal).Literal)
	assert.Len(t, g.DeclSites("a"), 2)
	assert.Equal(t, Rule("a"), g.Root())
}

func TestGrammarMergeFromSource(t *testing.T) {
	g, diags := ParseString("<a> ::= \"x\"\n\n<a> ::= \"y\" | \"z\"")
	require.Empty(t, diags)
	assert.Equal(t, []Rule{"a"}, g.Rules())
	require.Len(t, g.Variants("a"), 3)
	assert.Equal(t, "x", g.Variants("a")[0][0].(Terminal).Literal)
	assert.Equal(t, "y", g.Variants("a")[1][0].(Terminal).Literal)
	assert.Equal(t, "z", g.Variants("a")[2][0].(Terminal).Literal)
}

func TestVariantOrderPreserved(t *testing.T) {
	g, diags := ParseString(`<a> ::= "x" | "x" | "y"`)
	require.Empty(t, diags)
	// no deduplication
	require.Len(t, g.Variants("a"), 3)
	assert.True(t, g.Variants("a")[0].Equal(g.Variants("a")[1]))
}

func TestAtomEquality(t *testing.T) {
	assert.True(t, Terminal{Literal: "x"}.Equal(Terminal{Literal: "x"}))
	assert.False(t, Terminal{Literal: "x"}.Equal(Terminal{Literal: "y"}))
	assert.False(t, Terminal{Literal: "a"}.Equal(NonterminalRef{Name: "a"}))
	assert.True(t, NonterminalRef{Name: "a"}.Equal(NonterminalRef{Name: "a"}))

	// equality is structural: source locations do not participate
	g1, _ := ParseString(`<a> ::= "x"`)
	g2, _ := ParseString("\n\n<a> ::=   \"x\"")
	assert.True(t, DiffGrammars(g1, g2).Equal())
}

func TestEmptyGrammar(t *testing.T) {
	g, diags := ParseString("")
	require.Empty(t, diags)
	assert.Empty(t, g.Rules())
	assert.Equal(t, Rule(""), g.Root())
}

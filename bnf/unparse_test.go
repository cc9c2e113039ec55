package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalForm(t *testing.T) {
	g, diags := ParseString("<a> ::= \"x\"\n | \"y\" <b>\n\n<b> ::= \"\"")
	require.Empty(t, diags)
	assert.Equal(t, "<a> ::= \"x\" | \"y\" <b>\n\n<b> ::= \"\"\n", g.String())
}

func TestCanonicalFormMergesStatements(t *testing.T) {
	g, diags := ParseString("<a> ::= \"x\"\n\n<a> ::= \"y\"")
	require.Empty(t, diags)
	assert.Equal(t, "<a> ::= \"x\" | \"y\"\n", g.String())
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		`<n> ::= "x"`,
		`<a> ::= ""`,
		"<a> ::= \"x y\tz\" | <b c>\n\n<b c> ::= <a>",
		"<a> ::= \"x\"\n | \"y\"\n | \"z\"",
		GrammarGrammar(),
	} {
		g, diags := ParseString(src)
		require.Empty(t, diags, "source: %s", src)
		reparsed, diags := ParseString(g.String())
		require.Empty(t, diags, "canonical: %s", g.String())
		assert.True(t, DiffGrammars(g, reparsed).Equal(), "source: %s", src)
	}
}

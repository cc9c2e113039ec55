package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, input string) ([]StmtNode, Diags) {
	t.Helper()
	return Parse(NewScanner(input))
}

func TestParseSingleRule(t *testing.T) {
	stmts, diags := parseString(t, `<n> ::= "x"`)
	require.Empty(t, diags)
	require.Len(t, stmts, 1)
	assert.Equal(t, "n", stmts[0].Name)
	require.Len(t, stmts[0].Variants, 1)
	require.Len(t, stmts[0].Variants[0].Atoms, 1)
	atom := stmts[0].Variants[0].Atoms[0]
	assert.Equal(t, TerminalAtom, atom.Kind)
	assert.Equal(t, "x", atom.Text)
}

func TestParseEmptyLiteral(t *testing.T) {
	stmts, diags := parseString(t, `<a> ::= ""`)
	require.Empty(t, diags)
	require.Len(t, stmts, 1)
	require.Len(t, stmts[0].Variants, 1)
	require.Len(t, stmts[0].Variants[0].Atoms, 1)
	assert.Equal(t, TerminalAtom, stmts[0].Variants[0].Atoms[0].Kind)
	assert.Equal(t, "", stmts[0].Variants[0].Atoms[0].Text)
}

func TestParsePipeContinuation(t *testing.T) {
	// a pipe starting a new physical line continues the same list
	sameLine, diags := parseString(t, `<a> ::= "x" | "y"`)
	require.Empty(t, diags)
	nextLine, diags := parseString(t, "<a> ::= \"x\"\n | \"y\"")
	require.Empty(t, diags)

	require.Len(t, sameLine, 1)
	require.Len(t, nextLine, 1)
	require.Len(t, sameLine[0].Variants, 2)
	require.Len(t, nextLine[0].Variants, 2)
	for i, v := range sameLine[0].Variants {
		w := nextLine[0].Variants[i]
		require.Len(t, w.Atoms, len(v.Atoms))
		for j, a := range v.Atoms {
			assert.Equal(t, a.Kind, w.Atoms[j].Kind)
			assert.Equal(t, a.Text, w.Atoms[j].Text)
		}
	}
	assert.Equal(t, "x", sameLine[0].Variants[0].Atoms[0].Text)
	assert.Equal(t, "y", sameLine[0].Variants[1].Atoms[0].Text)
}

func TestParseVariantSpansLines(t *testing.T) {
	// no pipe, no blank line, no header: the atom run continues
	stmts, diags := parseString(t, "<a> ::= \"x\"\n\"y\"")
	require.Empty(t, diags)
	require.Len(t, stmts, 1)
	require.Len(t, stmts[0].Variants, 1)
	require.Len(t, stmts[0].Variants[0].Atoms, 2)
}

func TestParseBlankLineEndsList(t *testing.T) {
	stmts, diags := parseString(t, "<a> ::= \"x\"\n\n<b> ::= \"y\"")
	require.Empty(t, diags)
	require.Len(t, stmts, 2)
	assert.Equal(t, "a", stmts[0].Name)
	assert.Equal(t, "b", stmts[1].Name)
	require.Len(t, stmts[0].Variants, 1)
}

func TestParseHeaderLookaheadEndsList(t *testing.T) {
	// no blank line between rules: the name ::= shape ends the first list
	stmts, diags := parseString(t, "<a> ::= <x>\n<b> ::= \"y\"")
	require.Empty(t, diags)
	require.Len(t, stmts, 2)
	require.Len(t, stmts[0].Variants, 1)
	require.Len(t, stmts[0].Variants[0].Atoms, 1)
	assert.Equal(t, NonterminalAtom, stmts[0].Variants[0].Atoms[0].Kind)
	assert.Equal(t, "x", stmts[0].Variants[0].Atoms[0].Text)
}

func TestParseMissingAssignment(t *testing.T) {
	stmts, diags := parseString(t, "<a> \"x\"\n<b> ::= \"y\"")
	require.Len(t, diags, 1)
	assert.Equal(t, MissingAssignment, diags[0].Kind)
	// recovery resumes at the next header
	require.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].Name)
}

func TestParseEmptyVariantList(t *testing.T) {
	stmts, diags := parseString(t, "<a> ::=\n\n<b> ::= \"y\"")
	require.Len(t, diags, 1)
	assert.Equal(t, EmptyVariantList, diags[0].Kind)
	// parsing continues and reports later rules in the same text
	require.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].Name)
}

func TestParseEmptyVariantListAtEOF(t *testing.T) {
	stmts, diags := parseString(t, "<a> ::=")
	require.Len(t, diags, 1)
	assert.Equal(t, EmptyVariantList, diags[0].Kind)
	assert.Empty(t, stmts)
}

func TestParseLeadingPipe(t *testing.T) {
	_, diags := parseString(t, `<a> ::= | "x"`)
	require.NotEmpty(t, diags)
	assert.Equal(t, UnexpectedInput, diags[0].Kind)
}

func TestParseStrayTokensRecover(t *testing.T) {
	stmts, diags := parseString(t, "\"x\" ::= \"y\"\n\n<b> ::= \"z\"")
	require.NotEmpty(t, diags)
	assert.Equal(t, UnexpectedInput, diags[0].Kind)
	require.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].Name)
}

func TestParseMergeStatementsKeptSeparate(t *testing.T) {
	// the parser hands back one statement per header; merging is the
	// builder's job
	stmts, diags := parseString(t, "<a> ::= \"x\"\n\n<a> ::= \"y\"")
	require.Empty(t, diags)
	require.Len(t, stmts, 2)
	assert.Equal(t, "a", stmts[0].Name)
	assert.Equal(t, "a", stmts[1].Name)
}

package parser

import "fmt"

// TokenKind discriminates the lexical atoms of the notation.
type TokenKind int

const (
	// TokenTerminal is a quoted literal. Val holds the interior of the
	// quotes, which may be empty.
	TokenTerminal TokenKind = iota

	// TokenNonterminal is a <name> reference. Val holds the identifier with
	// boundary layout trimmed and interior spaces kept.
	TokenNonterminal

	// TokenPipe separates variants within one alternation list.
	TokenPipe

	// TokenAssign is the ::= operator.
	TokenAssign

	// TokenNewline marks the end of a physical line. Newlines stay in the
	// stream: the parser needs them to spot blank lines and pipe
	// continuations.
	TokenNewline
)

func (k TokenKind) String() string {
	switch k {
	case TokenTerminal:
		return "terminal"
	case TokenNonterminal:
		return "nonterminal"
	case TokenPipe:
		return "pipe"
	case TokenAssign:
		return "assign"
	case TokenNewline:
		return "newline"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is one lexical atom together with the source slice it was cut from.
type Token struct {
	Kind TokenKind
	Val  string
	Src  Scanner
}

func (t Token) String() string {
	switch t.Kind {
	case TokenTerminal:
		return fmt.Sprintf("terminal(%q)", t.Val)
	case TokenNonterminal:
		return fmt.Sprintf("nonterminal(%s)", t.Val)
	case TokenNewline:
		return `\n`
	}
	return t.Src.String()
}

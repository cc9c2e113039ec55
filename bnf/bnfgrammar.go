package bnf

import "fmt"

// The notation described in itself. The structural characters (angle
// brackets, pipe, quote, the assignment operator) cannot appear inside
// terminal literals, so the token-level rules for them are deliberately
// self-referential placeholders; the validator only demands that referenced
// names are defined, never that they bottom out.
var bnfGrammarSrc = `<grammar> ::= <rule> | <rule> <grammar>

<rule> ::= <nonterminal> <assign> <variant list>

<variant list> ::= <variant>
                 | <variant> <pipe> <variant list>

<variant> ::= <atom> | <atom> <variant>

<atom> ::= <terminal> | <nonterminal>

<terminal> ::= <quote> <literal text> <quote>

<literal text> ::= "" | <literal char> <literal text>

<literal char> ::= <letter> | <digit> | " " | "	"

<nonterminal> ::= <open angle> <identifier> <close angle>

<identifier> ::= <ident start> | <ident start> <ident tail>

<ident tail> ::= <ident char> | <ident char> <ident tail>

<ident start> ::= <letter> | <underscore>

<ident char> ::= <letter> | <digit> | <underscore> | " "

<assign> ::= <colon> <colon> <equal>

<letter> ::= "a" | "b" | "c" | "d" | "e" | "f" | "g" | "h" | "i" | "j" | "k" | "l" | "m"
           | "n" | "o" | "p" | "q" | "r" | "s" | "t" | "u" | "v" | "w" | "x" | "y" | "z"
           | "A" | "B" | "C" | "D" | "E" | "F" | "G" | "H" | "I" | "J" | "K" | "L" | "M"
           | "N" | "O" | "P" | "Q" | "R" | "S" | "T" | "U" | "V" | "W" | "X" | "Y" | "Z"

<digit> ::= "0" | "1" | "2" | "3" | "4" | "5" | "6" | "7" | "8" | "9"

<pipe> ::= <pipe>

<quote> ::= <quote>

<open angle> ::= <open angle>

<close angle> ::= <close angle>

<colon> ::= <colon>

<equal> ::= <equal>

<underscore> ::= <underscore>
`

// GrammarGrammar returns the notation's own grammar source.
func GrammarGrammar() string {
	return bnfGrammarSrc
}

// Build the grammar grammar from bnfGrammarSrc and check that its canonical
// form parses back to the same model.
var core = func() *Grammar {
	g := MustCompile(bnfGrammarSrc)
	r := MustCompile(g.String())
	if diff := DiffGrammars(g, r); !diff.Equal() {
		panic(fmt.Errorf("core grammar does not round-trip: %s", diff))
	}
	return g
}()

func Core() *Grammar {
	return core
}

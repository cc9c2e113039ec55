package bnf

import (
	"fmt"

	"github.com/arr-ai/bnf/parser"
)

// MaxInput bounds the size of grammar text accepted before any scanning
// begins. Embedders wanting a different bound set it before parsing.
var MaxInput = 1 << 20

// Parse scans and parses one grammar text and accumulates its statements
// into a Grammar. The grammar is returned even when diags is non-empty, as
// a best-effort partial model for tooling that must continue.
func Parse(s *parser.Scanner) (*Grammar, parser.Diags) {
	if s.Len() > MaxInput {
		return nil, parser.Diags{{
			Kind: parser.InputTooLarge,
			Msg:  fmt.Sprintf("input is %d bytes, limit is %d", s.Len(), MaxInput),
			At:   *s.Slice(0, 0),
		}}
	}
	stmts, diags := parser.Parse(s)
	g := New()
	for _, stmt := range stmts {
		variants := make([]Variant, 0, len(stmt.Variants))
		for _, v := range stmt.Variants {
			variant := make(Variant, 0, len(v.Atoms))
			for _, a := range v.Atoms {
				switch a.Kind {
				case parser.TerminalAtom:
					variant = append(variant, Terminal{Literal: a.Text, Src: a.Src})
				case parser.NonterminalAtom:
					variant = append(variant, NonterminalRef{Name: Rule(a.Text), Src: a.Src})
				}
			}
			variants = append(variants, variant)
		}
		g.Add(Rule(stmt.Name), stmt.NameSrc, variants...)
	}
	return g, diags
}

// ParseString parses src as one grammar text.
func ParseString(src string) (*Grammar, parser.Diags) {
	return Parse(parser.NewScanner(src))
}

// Compile parses and validates src. On failure the partial grammar comes
// back alongside the error; warnings (unreachable rules, duplicate
// declarations) never make Compile fail.
func Compile(src string) (*Grammar, error) {
	g, diags := ParseString(src)
	if diags.HasFatal() {
		return g, diags
	}
	if err := g.Validate(); err != nil {
		return g, err
	}
	return g, nil
}

// MustCompile is Compile for grammars known to be good, panicking otherwise.
func MustCompile(src string) *Grammar {
	g, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return g
}

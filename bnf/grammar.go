// Package bnf holds the grammar model built from parsed rule statements and
// the passes that run over it: referential integrity, reachability and
// recursion metadata. A grammar is built once per parse and not mutated
// afterwards.
package bnf

import (
	"io"

	"github.com/arr-ai/bnf/parser"
)

// Rule names a nonterminal. Every reference is resolved by name lookup into
// the grammar, never by a structural link, so cyclic definitions never form
// a cyclic value graph.
type Rule string

// Atom is one element of a variant: a Terminal or a NonterminalRef.
// Equality is structural; source locations are carried for diagnostics but
// never compared.
type Atom interface {
	Equal(Atom) bool
	Located() parser.Scanner
	Unparse(w io.Writer) (n int, err error)
}

// Terminal matches a fixed character run. The literal may be empty.
type Terminal struct {
	Literal string
	Src     parser.Scanner
}

func (t Terminal) Equal(o Atom) bool {
	u, ok := o.(Terminal)
	return ok && u.Literal == t.Literal
}

func (t Terminal) Located() parser.Scanner { return t.Src }

// NonterminalRef is a named placeholder resolved via the grammar mapping.
type NonterminalRef struct {
	Name Rule
	Src  parser.Scanner
}

func (t NonterminalRef) Equal(o Atom) bool {
	u, ok := o.(NonterminalRef)
	return ok && u.Name == t.Name
}

func (t NonterminalRef) Located() parser.Scanner { return t.Src }

// Variant is one alternative production: an ordered, non-empty atom
// sequence.
type Variant []Atom

func (v Variant) Equal(o Variant) bool {
	if len(v) != len(o) {
		return false
	}
	for i, a := range v {
		if !a.Equal(o[i]) {
			return false
		}
	}
	return true
}

// Grammar maps nonterminal names to their accumulated variants, preserving
// declaration order. A name declared in several statements keeps every
// statement's variants, merged in declaration order.
type Grammar struct {
	names []Rule
	defs  map[Rule][]Variant
	decls map[Rule][]parser.Scanner // one site per declaring statement
}

func New() *Grammar {
	return &Grammar{
		defs:  map[Rule][]Variant{},
		decls: map[Rule][]parser.Scanner{},
	}
}

// Add appends one statement's variants to the entry for name, creating the
// entry on first occurrence. No validation happens here.
func (g *Grammar) Add(name Rule, at parser.Scanner, variants ...Variant) {
	if _, has := g.defs[name]; !has {
		g.names = append(g.names, name)
	}
	g.defs[name] = append(g.defs[name], variants...)
	g.decls[name] = append(g.decls[name], at)
}

// Rules returns the nonterminal names in declaration order.
func (g *Grammar) Rules() []Rule {
	return append([]Rule{}, g.names...)
}

func (g *Grammar) Has(name Rule) bool {
	_, has := g.defs[name]
	return has
}

// Variants returns the accumulated variants for name, in declaration order.
func (g *Grammar) Variants(name Rule) []Variant {
	return g.defs[name]
}

// Root is the first-declared rule, the default reachability root.
func (g *Grammar) Root() Rule {
	if len(g.names) == 0 {
		return ""
	}
	return g.names[0]
}

// DeclSites returns where each statement declaring name starts.
func (g *Grammar) DeclSites(name Rule) []parser.Scanner {
	return g.decls[name]
}

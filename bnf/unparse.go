package bnf

import (
	"fmt"
	"io"
	"strings"
)

// The canonical form: one statement per name in declaration order, variants
// separated by ` | `, atoms by a single space, a blank line between
// statements. Reparsing the canonical form yields a structurally equal
// grammar.

func (t Terminal) Unparse(w io.Writer) (n int, err error) {
	return fmt.Fprintf(w, `"%s"`, t.Literal)
}

func (t NonterminalRef) Unparse(w io.Writer) (n int, err error) {
	return fmt.Fprintf(w, "<%s>", t.Name)
}

func unparse(a Atom, w io.Writer, N *int) error {
	n, err := a.Unparse(w)
	if err == nil {
		*N += n
	}
	return err
}

func (v Variant) Unparse(w io.Writer) (n int, err error) {
	for i, atom := range v {
		if i > 0 {
			if err = write(w, " ", &n); err != nil {
				return
			}
		}
		if err = unparse(atom, w, &n); err != nil {
			return
		}
	}
	return n, nil
}

func (g *Grammar) Unparse(w io.Writer) (n int, err error) {
	for i, name := range g.names {
		if i > 0 {
			if err = write(w, "\n", &n); err != nil {
				return
			}
		}
		if err = write(w, fmt.Sprintf("<%s> ::= ", name), &n); err != nil {
			return
		}
		for j, variant := range g.defs[name] {
			if j > 0 {
				if err = write(w, " | ", &n); err != nil {
					return
				}
			}
			var vn int
			if vn, err = variant.Unparse(w); err != nil {
				return
			}
			n += vn
		}
		if err = write(w, "\n", &n); err != nil {
			return
		}
	}
	return n, nil
}

func (g *Grammar) String() string {
	var sb strings.Builder
	_, _ = g.Unparse(&sb)
	return sb.String()
}

func write(w io.Writer, s string, N *int) error {
	n, err := w.Write([]byte(s))
	if err == nil {
		*N += n
	}
	return err
}

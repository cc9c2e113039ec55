package bnf

import (
	"fmt"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"

	"github.com/arr-ai/bnf/gotree"
	"github.com/arr-ai/bnf/parser"
)

type validationErrorKind int

const (
	NoError validationErrorKind = iota
	UndefinedNonterminal
	UnreachableRule
	DuplicateDefinition
)

var validationErrorKindNames = map[validationErrorKind]string{
	NoError:              "NoError",
	UndefinedNonterminal: "UndefinedNonterminal",
	UnreachableRule:      "UnreachableRule",
	DuplicateDefinition:  "DuplicateDefinition",
}

func (k validationErrorKind) String() string {
	if name, has := validationErrorKindNames[k]; has {
		return name
	}
	return fmt.Sprintf("validationErrorKind(%d)", int(k))
}

func (k validationErrorKind) Code() string {
	return strcase.ToSnake(k.String())
}

type validationError struct {
	msg  string
	kind validationErrorKind
	at   parser.Scanner
}

func (e validationError) Error() string {
	if e.at.IsNil() {
		return fmt.Sprintf("%s: %s", e.kind.Code(), e.msg)
	}
	line, col := e.at.Position()
	if f := e.at.Filename(); f != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", f, line, col, e.kind.Code(), e.msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", line, col, e.kind.Code(), e.msg)
}

type validator struct {
	err []error
}

func (v *validator) Error() string {
	tree := gotree.New("validation failed")
	for _, err := range v.err {
		tree.Add(err.Error())
	}
	return "\n" + tree.Print()
}

// Findings runs the referential-integrity pass: every referenced name must
// be a grammar key. All findings are collected, none is fatal mid-pass.
func (g *Grammar) Findings() []error {
	var out []error
	for _, name := range g.names {
		for _, variant := range g.defs[name] {
			for _, atom := range variant {
				ref, ok := atom.(NonterminalRef)
				if !ok {
					continue
				}
				if !g.Has(ref.Name) {
					out = append(out, validationError{
						msg:  fmt.Sprintf("nonterminal <%s> is not defined", ref.Name),
						kind: UndefinedNonterminal,
						at:   ref.Src,
					})
				}
			}
		}
	}
	return out
}

// Validate reports the referential-integrity findings as one error, or nil
// when the grammar is clean. Downstream consumers may assume atom-level
// well-formedness once Validate returns nil.
func (g *Grammar) Validate() error {
	v := validator{err: g.Findings()}
	if len(v.err) > 0 {
		return &v
	}
	return nil
}

// Unreachable returns every rule not transitively referenced from root, in
// declaration order. An empty root designates the first-declared rule.
// Advisory only.
func (g *Grammar) Unreachable(root Rule) []Rule {
	if root == "" {
		root = g.Root()
	}
	seen := frozen.NewSet[string]()
	pending := []Rule{root}
	for len(pending) > 0 {
		name := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if seen.Has(string(name)) || !g.Has(name) {
			continue
		}
		seen = seen.With(string(name))
		for _, variant := range g.defs[name] {
			for _, atom := range variant {
				if ref, ok := atom.(NonterminalRef); ok {
					pending = append(pending, ref.Name)
				}
			}
		}
	}

	var out []Rule
	for _, name := range g.names {
		if !seen.Has(string(name)) {
			out = append(out, name)
		}
	}
	return out
}

// Warnings collects the advisory findings: rules unreachable from root and
// names declared by more than one statement. Never errors.
func (g *Grammar) Warnings(root Rule) []error {
	if root == "" {
		root = g.Root()
	}
	var out []error
	for _, name := range g.names {
		if sites := g.decls[name]; len(sites) > 1 {
			out = append(out, validationError{
				msg:  fmt.Sprintf("rule <%s> is declared %d times; variants merge in declaration order", name, len(sites)),
				kind: DuplicateDefinition,
				at:   sites[1],
			})
		}
	}
	for _, name := range g.Unreachable(root) {
		at := parser.Scanner{}
		if sites := g.decls[name]; len(sites) > 0 {
			at = sites[0]
		}
		out = append(out, validationError{
			msg:  fmt.Sprintf("rule <%s> is not reachable from <%s>", name, root),
			kind: UnreachableRule,
			at:   at,
		})
	}
	return out
}

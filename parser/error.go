package parser

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/bnf/gotree"
)

// DiagKind classifies a diagnostic raised while scanning or parsing a
// grammar text.
type DiagKind int

const (
	NoDiag DiagKind = iota
	UnterminatedLiteral
	UnterminatedNonterminal
	MissingAssignment
	EmptyVariantList
	UnexpectedInput
	InputTooLarge
)

var diagKindNames = map[DiagKind]string{
	NoDiag:                  "NoDiag",
	UnterminatedLiteral:     "UnterminatedLiteral",
	UnterminatedNonterminal: "UnterminatedNonterminal",
	MissingAssignment:       "MissingAssignment",
	EmptyVariantList:        "EmptyVariantList",
	UnexpectedInput:         "UnexpectedInput",
	InputTooLarge:           "InputTooLarge",
}

func (k DiagKind) String() string {
	if name, has := diagKindNames[k]; has {
		return name
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Code is the machine-readable form of the kind, e.g. "unterminated_literal".
func (k DiagKind) Code() string {
	return strcase.ToSnake(k.String())
}

// Diag is a positioned diagnostic. It records where in the source the
// problem starts; parsing carries on past it where it can.
type Diag struct {
	Kind DiagKind
	Msg  string
	At   Scanner
}

func diagf(kind DiagKind, at Scanner, format string, args ...interface{}) Diag {
	return Diag{Kind: kind, Msg: fmt.Sprintf(format, args...), At: at}
}

func (d Diag) Error() string {
	if d.At.IsNil() {
		return fmt.Sprintf("%s: %s", d.Kind.Code(), d.Msg)
	}
	line, col := d.At.Position()
	if f := d.At.Filename(); f != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", f, line, col, d.Kind.Code(), d.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", line, col, d.Kind.Code(), d.Msg)
}

// Diags is the collected diagnostic list for one parse.
type Diags []Diag

func (ds Diags) Error() string {
	tree := gotree.New("parse failed")
	for _, d := range ds {
		tree.Add(d.Error())
	}
	return "\n" + tree.Print()
}

// HasFatal reports whether any collected diagnostic is more than advisory.
// Every kind raised during scanning and parsing is fatal; the advisory kinds
// live with the validator.
func (ds Diags) HasFatal() bool {
	return len(ds) > 0
}

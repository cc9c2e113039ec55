package bnf

import (
	"fmt"
	"strings"
)

// GrammarDiff reports where two grammars differ structurally. Source
// locations never participate; declaration order does.
type GrammarDiff struct {
	OnlyInA []Rule
	OnlyInB []Rule
	Order   bool            // declaration order differs
	Rules   map[Rule]string // per-rule mismatch description
}

func (d GrammarDiff) Equal() bool {
	return len(d.OnlyInA) == 0 && len(d.OnlyInB) == 0 && !d.Order && len(d.Rules) == 0
}

func (d GrammarDiff) String() string {
	if d.Equal() {
		return "equal"
	}
	var parts []string
	if len(d.OnlyInA) > 0 {
		parts = append(parts, fmt.Sprintf("only in A: %v", d.OnlyInA))
	}
	if len(d.OnlyInB) > 0 {
		parts = append(parts, fmt.Sprintf("only in B: %v", d.OnlyInB))
	}
	if d.Order {
		parts = append(parts, "declaration order differs")
	}
	for rule, msg := range d.Rules {
		parts = append(parts, fmt.Sprintf("<%s>: %s", rule, msg))
	}
	return strings.Join(parts, "; ")
}

// DiffGrammars compares two grammars structurally.
func DiffGrammars(a, b *Grammar) GrammarDiff {
	diff := GrammarDiff{Rules: map[Rule]string{}}
	for _, rule := range a.names {
		if !b.Has(rule) {
			diff.OnlyInA = append(diff.OnlyInA, rule)
			continue
		}
		if msg := diffVariants(a.defs[rule], b.defs[rule]); msg != "" {
			diff.Rules[rule] = msg
		}
	}
	for _, rule := range b.names {
		if !a.Has(rule) {
			diff.OnlyInB = append(diff.OnlyInB, rule)
		}
	}
	if len(diff.OnlyInA) == 0 && len(diff.OnlyInB) == 0 {
		for i, rule := range a.names {
			if b.names[i] != rule {
				diff.Order = true
				break
			}
		}
	}
	return diff
}

func diffVariants(a, b []Variant) string {
	if len(a) != len(b) {
		return fmt.Sprintf("%d variants != %d variants", len(a), len(b))
	}
	for i, v := range a {
		if !v.Equal(b[i]) {
			return fmt.Sprintf("variant %d differs", i)
		}
	}
	return ""
}

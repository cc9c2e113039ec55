package bnf

import (
	"sort"

	"github.com/arr-ai/frozen"
)

/*
Recursion is legal and expected in this notation, so the grammar only
reports which rule families can reach themselves and lets downstream
consumers decide policy. A cluster is a set of mutually referencing rules,
or a single rule that references itself.
*/

// RecursionClusters computes the recursion metadata over the name-reference
// graph. Clusters come back ordered by their first-declared member, each
// cluster's members in declaration order.
func (g *Grammar) RecursionClusters() [][]Rule {
	refs := map[Rule]frozen.Set[string]{}
	for _, name := range g.names {
		td := frozen.NewSet[string]()
		for _, variant := range g.defs[name] {
			for _, atom := range variant {
				if ref, ok := atom.(NonterminalRef); ok && g.Has(ref.Name) {
					td = td.With(string(ref.Name))
				}
			}
		}
		refs[name] = td
	}

	t := &scc{
		refs:    refs,
		index:   map[Rule]int{},
		low:     map[Rule]int{},
		onStack: map[Rule]bool{},
	}
	for _, name := range g.names {
		if _, seen := t.index[name]; !seen {
			t.connect(name)
		}
	}

	decl := map[Rule]int{}
	for i, name := range g.names {
		decl[name] = i
	}
	for _, cluster := range t.out {
		sort.Slice(cluster, func(i, j int) bool { return decl[cluster[i]] < decl[cluster[j]] })
	}
	sort.Slice(t.out, func(i, j int) bool { return decl[t.out[i][0]] < decl[t.out[j][0]] })
	return t.out
}

// scc is Tarjan's strongly-connected-components walk over the reference
// graph. Components of one rule only count when the rule references itself.
type scc struct {
	refs    map[Rule]frozen.Set[string]
	index   map[Rule]int
	low     map[Rule]int
	onStack map[Rule]bool
	stack   []Rule
	next    int
	out     [][]Rule
}

func (t *scc) connect(name Rule) {
	t.index[name] = t.next
	t.low[name] = t.next
	t.next++
	t.stack = append(t.stack, name)
	t.onStack[name] = true

	for _, target := range sortedSet(t.refs[name]) {
		next := Rule(target)
		if _, seen := t.index[next]; !seen {
			t.connect(next)
			if t.low[next] < t.low[name] {
				t.low[name] = t.low[next]
			}
		} else if t.onStack[next] && t.index[next] < t.low[name] {
			t.low[name] = t.index[next]
		}
	}

	if t.low[name] != t.index[name] {
		return
	}
	var cluster []Rule
	for {
		n := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[n] = false
		cluster = append(cluster, n)
		if n == name {
			break
		}
	}
	if len(cluster) > 1 || t.refs[name].Has(string(name)) {
		t.out = append(t.out, cluster)
	}
}

func sortedSet(s frozen.Set[string]) []string {
	out := make([]string, 0, s.Count())
	out = append(out, s.Elements()...)
	sort.Strings(out)
	return out
}

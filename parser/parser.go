package parser

// AtomKind discriminates the two atom shapes of the notation.
type AtomKind int

const (
	TerminalAtom AtomKind = iota
	NonterminalAtom
)

// AtomNode is one parsed atom. Text holds the literal content for terminals
// and the identifier for nonterminal references.
type AtomNode struct {
	Kind AtomKind
	Text string
	Src  Scanner
}

// VariantNode is one alternative: an ordered, non-empty atom sequence.
type VariantNode struct {
	Atoms []AtomNode
}

// StmtNode is one parsed rule statement. A name may recur across statements;
// accumulation into a grammar is the builder's concern, not the parser's.
type StmtNode struct {
	Name     string
	NameSrc  Scanner
	Variants []VariantNode
}

// Parse scans and parses one grammar text. It always returns every statement
// it could make sense of: a malformed rule is reported and skipped, and
// parsing resumes at the next plausible rule boundary.
func Parse(s *Scanner) ([]StmtNode, Diags) {
	eof := *s.Slice(s.Len(), s.Len())
	tokens, diags := Tokenize(s)
	p := &parser{tokens: tokens, diags: diags, eof: eof}
	stmts := p.parseRules()
	return stmts, p.diags
}

type parser struct {
	tokens []Token
	pos    int
	diags  Diags
	eof    Scanner // empty scanner at end of input, for positioning
}

func (p *parser) headerAt(i int) bool {
	return i+1 < len(p.tokens) &&
		p.tokens[i].Kind == TokenNonterminal &&
		p.tokens[i+1].Kind == TokenAssign
}

// recover skips ahead to the next plausible rule boundary: a name ::= header
// or a blank line. One malformed rule must not suppress later diagnostics.
func (p *parser) recover() {
	for ; p.pos < len(p.tokens); p.pos++ {
		if p.headerAt(p.pos) {
			return
		}
		if p.tokens[p.pos].Kind == TokenNewline &&
			p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == TokenNewline {
			return
		}
	}
}

func (p *parser) parseRules() []StmtNode {
	var stmts []StmtNode
	for p.pos < len(p.tokens) {
		if p.tokens[p.pos].Kind == TokenNewline {
			p.pos++
			continue
		}
		if stmt, ok := p.parseRule(); ok {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *parser) parseRule() (out StmtNode, ok bool) {
	defer enterf("rule at token %d", p.pos).exitf("%v ok=%v", &out.Name, &ok)

	tok := p.tokens[p.pos]
	if tok.Kind != TokenNonterminal {
		p.diags = append(p.diags, diagf(UnexpectedInput, tok.Src,
			"expecting a rule header, got %s", tok))
		p.pos++
		p.recover()
		return out, false
	}
	p.pos++
	out.Name = tok.Val
	out.NameSrc = tok.Src

	if p.pos >= len(p.tokens) || p.tokens[p.pos].Kind != TokenAssign {
		at := p.eof
		if p.pos < len(p.tokens) {
			at = p.tokens[p.pos].Src
		}
		p.diags = append(p.diags, diagf(MissingAssignment, at,
			"rule %q is not followed by `::=`", out.Name))
		p.recover()
		return out, false
	}
	p.pos++

	out.Variants = p.parseVariantList()
	if len(out.Variants) == 0 {
		p.diags = append(p.diags, diagf(EmptyVariantList, tok.Src,
			"rule %q has no variants", out.Name))
		return out, false
	}
	return out, true
}

// parseVariantList consumes `variant (| variant)*`. Within the list a
// newline is layout; the list ends at a blank line, end of input, or
// lookahead onto a new name ::= header.
func (p *parser) parseVariantList() (variants []VariantNode) {
	defer enterf("variant list at token %d", p.pos).exitf("%v", &variants)

	var cur []AtomNode
	flush := func() {
		if len(cur) > 0 {
			variants = append(variants, VariantNode{Atoms: cur})
			cur = nil
		}
	}
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Kind {
		case TokenTerminal:
			cur = append(cur, AtomNode{Kind: TerminalAtom, Text: tok.Val, Src: tok.Src})
			p.pos++
		case TokenNonterminal:
			if p.headerAt(p.pos) {
				flush()
				return variants
			}
			cur = append(cur, AtomNode{Kind: NonterminalAtom, Text: tok.Val, Src: tok.Src})
			p.pos++
		case TokenPipe:
			if len(cur) == 0 {
				p.diags = append(p.diags, diagf(UnexpectedInput, tok.Src,
					"expecting an atom before `|`"))
			}
			flush()
			p.pos++
		case TokenNewline:
			if p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == TokenNewline {
				// blank line; leave the newlines for the rule loop
				flush()
				return variants
			}
			p.pos++
		case TokenAssign:
			p.diags = append(p.diags, diagf(UnexpectedInput, tok.Src,
				"`::=` interrupts a variant"))
			flush()
			p.pos++
			p.recover()
			return variants
		}
	}
	flush()
	return variants
}

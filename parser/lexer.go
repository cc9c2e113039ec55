package parser

// The notation overloads whitespace: spaces between atoms are layout, while
// spaces inside a quoted literal or strictly between two identifier
// characters of one <name> are content. The tokenizer resolves each run of
// spaces by ordered choice: the content-consuming reading is taken only when
// the character after the run is not the closing delimiter.

func isLayout(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isLiteralChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == ' ' || c == '\t'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// Tokenize scans src into its lexical atoms in a single forward pass.
// Characters it cannot make sense of are reported and skipped so that the
// rest of the text still tokenizes.
func Tokenize(s *Scanner) ([]Token, Diags) {
	var tokens []Token
	var diags Diags
	var eaten Scanner
	for s.Len() > 0 {
		rest := s.String()
		switch c := rest[0]; {
		case c == '\n':
			s.Eat(1, &eaten)
			tokens = append(tokens, Token{Kind: TokenNewline, Src: eaten})
		case isLayout(c):
			i := 1
			for i < len(rest) && isLayout(rest[i]) {
				i++
			}
			*s = *s.Skip(i)
		case c == '|':
			s.Eat(1, &eaten)
			tokens = append(tokens, Token{Kind: TokenPipe, Src: eaten})
		case c == ':':
			if s.EatString("::=", &eaten) {
				tokens = append(tokens, Token{Kind: TokenAssign, Src: eaten})
			} else {
				diags = append(diags, diagf(UnexpectedInput, *s.Slice(0, 1),
					"expecting `::=`"))
				*s = *s.Skip(1)
			}
		case c == '"':
			tok, diag := eatTerminal(s)
			if diag.Kind != NoDiag {
				diags = append(diags, diag)
			} else {
				tokens = append(tokens, tok)
			}
		case c == '<':
			tok, diag := eatNonterminal(s)
			if diag.Kind != NoDiag {
				diags = append(diags, diag)
			} else {
				tokens = append(tokens, tok)
			}
		default:
			diags = append(diags, diagf(UnexpectedInput, *s.Slice(0, 1),
				"unexpected character %q", rune(c)))
			*s = *s.Skip(1)
		}
	}
	return tokens, diags
}

// eatTerminal scans a quoted literal. The interior admits letters, digits,
// spaces and tabs only; quote and backslash are never interior characters,
// so there is no escaping and the first quote ends the literal.
func eatTerminal(s *Scanner) (Token, Diag) {
	rest := s.String()
	i := 1
	for i < len(rest) && isLiteralChar(rest[i]) {
		i++
	}
	if i < len(rest) && rest[i] == '"' {
		var eaten Scanner
		s.Eat(i+1, &eaten)
		return Token{Kind: TokenTerminal, Val: rest[1:i], Src: eaten}, Diag{}
	}
	diag := diagf(UnterminatedLiteral, *s.Slice(0, i), "missing closing quote")
	*s = *s.Skip(i)
	return Token{}, diag
}

// eatNonterminal scans `<`, layout, an identifier, layout, `>`. Space runs
// strictly between identifier characters are part of the spelling; a run
// followed by `>` is layout. A run containing a tab never joins a name.
func eatNonterminal(s *Scanner) (Token, Diag) {
	rest := s.String()
	i := 1
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	if i >= len(rest) || !isIdentStart(rest[i]) {
		skip := i
		if skip < len(rest) && rest[skip] == '>' {
			skip++ // resync past an empty <>
		}
		diag := diagf(UnterminatedNonterminal, *s.Slice(0, skip),
			"expecting an identifier after `<`")
		*s = *s.Skip(skip)
		return Token{}, diag
	}

	nameStart := i
	nameEnd := i // one past the last character known to be content
scan:
	for i < len(rest) {
		switch c := rest[i]; {
		case isIdentChar(c):
			i++
			nameEnd = i
		case c == ' ' || c == '\t':
			j := i
			tabbed := false
			for j < len(rest) && (rest[j] == ' ' || rest[j] == '\t') {
				tabbed = tabbed || rest[j] == '\t'
				j++
			}
			i = j
			if !tabbed && j < len(rest) && isIdentChar(rest[j]) {
				// interior spaces between two identifier characters
				continue
			}
			// trailing layout before the closing delimiter
			break scan
		default:
			break scan
		}
	}

	if i < len(rest) && rest[i] == '>' {
		var eaten Scanner
		s.Eat(i+1, &eaten)
		return Token{Kind: TokenNonterminal, Val: rest[nameStart:nameEnd], Src: eaten}, Diag{}
	}
	diag := diagf(UnterminatedNonterminal, *s.Slice(0, i),
		"missing `>` after %q", rest[nameStart:nameEnd])
	*s = *s.Skip(i)
	return Token{}, diag
}

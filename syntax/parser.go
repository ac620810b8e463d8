package syntax

// parser is a recursive-descent parser with one token of lookahead.
//
// Grammar, lowest to highest precedence:
//
//	alternation   := concatenation ('|' concatenation)*
//	concatenation := repetition+
//	repetition    := atom ('*' | '+')?
//	atom          := literal | '\' any | '(' alternation ')'
type parser struct {
	pattern string
	lexer   *Lexer
	look    Token
	depth   int // currently open groups
}

// Parse parses a pattern into its syntax tree. It is a pure function:
// the same pattern always yields the same tree or the same error.
//
// The empty pattern is rejected, as are empty alternatives and empty
// groups; parsing must consume the entire input.
func Parse(pattern string) (*Regexp, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Pos: 0, Err: ErrEmptyPattern}
	}

	p := &parser{pattern: pattern, lexer: NewLexer(pattern)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	re, err := p.alternation()
	if err != nil {
		return nil, err
	}

	switch p.look.Kind {
	case TokenEOF:
		return re, nil
	case TokenRightParen:
		return nil, p.errAt(ErrUnmatchedParen)
	case TokenStar, TokenPlus:
		// a second postfix operator, as in a**
		return nil, p.errAt(ErrDanglingOperator)
	default:
		return nil, p.errAt(ErrTrailingInput)
	}
}

// advance moves the lookahead to the next token.
func (p *parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

// errAt builds a ParseError at the lookahead position.
func (p *parser) errAt(category error) error {
	return &ParseError{Pattern: p.pattern, Pos: p.look.Pos, Err: category}
}

// alternation := concatenation ('|' concatenation)*
//
// '|' is left-associative: a|b|c becomes Alternate(Alternate(a,b),c).
func (p *parser) alternation() (*Regexp, error) {
	re, err := p.concatenation()
	if err != nil {
		return nil, err
	}

	for p.look.Kind == TokenAlternate {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.concatenation()
		if err != nil {
			return nil, err
		}
		re = &Regexp{Op: OpAlternate, Sub: []*Regexp{re, rhs}}
	}
	return re, nil
}

// concatenation := repetition+
func (p *parser) concatenation() (*Regexp, error) {
	re, err := p.repetition()
	if err != nil {
		return nil, err
	}

	for p.atomAhead() {
		rhs, err := p.repetition()
		if err != nil {
			return nil, err
		}
		re = &Regexp{Op: OpConcat, Sub: []*Regexp{re, rhs}}
	}
	return re, nil
}

// atomAhead reports whether the lookahead can start an atom.
func (p *parser) atomAhead() bool {
	return p.look.Kind == TokenChar || p.look.Kind == TokenLeftParen
}

// repetition := atom ('*' | '+')?
func (p *parser) repetition() (*Regexp, error) {
	re, err := p.atom()
	if err != nil {
		return nil, err
	}

	switch p.look.Kind {
	case TokenStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		re = &Regexp{Op: OpStar, Sub: []*Regexp{re}}
	case TokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		re = &Regexp{Op: OpPlus, Sub: []*Regexp{re}}
	}
	return re, nil
}

// atom := literal | '(' alternation ')'
//
// Escapes never reach this level: the lexer already folded `\X` into a
// TokenChar carrying X.
func (p *parser) atom() (*Regexp, error) {
	switch p.look.Kind {
	case TokenChar:
		re := &Regexp{Op: OpLiteral, Char: p.look.Char}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return re, nil

	case TokenLeftParen:
		return p.group()

	case TokenStar, TokenPlus, TokenAlternate:
		return nil, p.errAt(ErrDanglingOperator)

	case TokenRightParen:
		if p.depth == 0 {
			return nil, p.errAt(ErrUnmatchedParen)
		}
		// an empty alternative inside a group, as in (a|)
		return nil, p.errAt(ErrDanglingOperator)

	case TokenEOF:
		// covers a trailing '|' and an unfinished group body
		return nil, p.errAt(ErrUnexpectedEOF)

	default:
		return nil, p.errAt(ErrTrailingInput)
	}
}

// group parses '(' alternation ')'. The group node survives into the
// tree but carries no matching semantics of its own.
func (p *parser) group() (*Regexp, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	p.depth++

	if p.look.Kind == TokenRightParen {
		return nil, p.errAt(ErrEmptyPattern)
	}

	sub, err := p.alternation()
	if err != nil {
		return nil, err
	}

	switch p.look.Kind {
	case TokenRightParen:
		if err := p.advance(); err != nil { // consume ')'
			return nil, err
		}
		p.depth--
		return &Regexp{Op: OpGroup, Sub: []*Regexp{sub}}, nil
	case TokenEOF:
		return nil, p.errAt(ErrUnmatchedParen)
	case TokenStar, TokenPlus:
		return nil, p.errAt(ErrDanglingOperator)
	default:
		return nil, p.errAt(ErrTrailingInput)
	}
}

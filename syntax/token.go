package syntax

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind uint8

const (
	// TokenChar is a literal character, bare or escaped with '\'.
	TokenChar TokenKind = iota

	// TokenAlternate is the '|' operator.
	TokenAlternate

	// TokenStar is the '*' operator.
	TokenStar

	// TokenPlus is the '+' operator.
	TokenPlus

	// TokenLeftParen is '('.
	TokenLeftParen

	// TokenRightParen is ')'.
	TokenRightParen

	// TokenEOF marks the end of the pattern.
	TokenEOF
)

// String returns a human-readable representation of the TokenKind
func (k TokenKind) String() string {
	switch k {
	case TokenChar:
		return "Character"
	case TokenAlternate:
		return "|"
	case TokenStar:
		return "*"
	case TokenPlus:
		return "+"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Token is a single lexical unit of a pattern.
type Token struct {
	Kind TokenKind
	Char rune // valid when Kind == TokenChar
	Pos  int  // rune offset in the pattern
}

// Lexer splits a pattern into tokens. The metacharacters are '\', '|',
// '*', '+', '(' and ')'; every other character is a literal, and a
// backslash turns the character after it into a literal unconditionally.
type Lexer struct {
	pattern string
	input   []rune
	pos     int
}

// NewLexer creates a lexer over pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{
		pattern: pattern,
		input:   []rune(pattern),
	}
}

// Next returns the next token. Once the input is exhausted it returns
// TokenEOF forever. A backslash with nothing to escape is an error.
func (l *Lexer) Next() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: l.pos}, nil
	}

	pos := l.pos
	r := l.input[l.pos]
	l.pos++

	switch r {
	case '\\':
		if l.pos >= len(l.input) {
			return Token{}, &ParseError{Pattern: l.pattern, Pos: pos, Err: ErrUnexpectedEOF}
		}
		c := l.input[l.pos]
		l.pos++
		return Token{Kind: TokenChar, Char: c, Pos: pos}, nil
	case '|':
		return Token{Kind: TokenAlternate, Pos: pos}, nil
	case '*':
		return Token{Kind: TokenStar, Pos: pos}, nil
	case '+':
		return Token{Kind: TokenPlus, Pos: pos}, nil
	case '(':
		return Token{Kind: TokenLeftParen, Pos: pos}, nil
	case ')':
		return Token{Kind: TokenRightParen, Pos: pos}, nil
	default:
		return Token{Kind: TokenChar, Char: r, Pos: pos}, nil
	}
}

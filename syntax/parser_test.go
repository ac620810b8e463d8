package syntax

import (
	"errors"
	"testing"
)

// TestParse_RoundTrip tests that String() reproduces the parsed pattern
func TestParse_RoundTrip(t *testing.T) {
	patterns := []string{
		"a",
		"ab",
		"a|b",
		"a|b|c",
		"a*",
		"a+",
		"(a)",
		"(ab)*c",
		"(a|b)+",
		"a(b|c)d",
		"(p(erl|ython|hp)|ruby)",
		`\(\+\)`,
		`a\|b`,
		`\\`,
		"(ab|ba)+",
		"山|田",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			re, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", pattern, err)
			}
			if got := re.String(); got != pattern {
				t.Errorf("String() = %q, want %q", got, pattern)
			}
		})
	}
}

// TestParse_Tree tests the exact shape of one representative tree
func TestParse_Tree(t *testing.T) {
	// a|(bc)* is Alternate(Literal(a), Star(Group(Concat(b, c))))
	re, err := Parse("a|(bc)*")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if re.Op != OpAlternate {
		t.Fatalf("root Op = %v, want Alternate", re.Op)
	}
	if lhs := re.Sub[0]; lhs.Op != OpLiteral || lhs.Char != 'a' {
		t.Errorf("lhs = %v %q, want Literal a", lhs.Op, lhs.Char)
	}

	star := re.Sub[1]
	if star.Op != OpStar {
		t.Fatalf("rhs Op = %v, want Star", star.Op)
	}
	group := star.Sub[0]
	if group.Op != OpGroup {
		t.Fatalf("star child Op = %v, want Group", group.Op)
	}
	concat := group.Sub[0]
	if concat.Op != OpConcat {
		t.Fatalf("group child Op = %v, want Concat", concat.Op)
	}
	if concat.Sub[0].Char != 'b' || concat.Sub[1].Char != 'c' {
		t.Errorf("concat children = %q %q, want b c", concat.Sub[0].Char, concat.Sub[1].Char)
	}
}

// TestParse_LeftAssociative tests that chains nest toward the left
func TestParse_LeftAssociative(t *testing.T) {
	re, err := Parse("a|b|c")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if re.Op != OpAlternate {
		t.Fatalf("root Op = %v, want Alternate", re.Op)
	}
	if re.Sub[0].Op != OpAlternate {
		t.Errorf("Sub[0].Op = %v, want Alternate (left-nested)", re.Sub[0].Op)
	}
	if re.Sub[1].Op != OpLiteral || re.Sub[1].Char != 'c' {
		t.Errorf("Sub[1] = %v %q, want Literal c", re.Sub[1].Op, re.Sub[1].Char)
	}
}

// TestParse_Errors tests the error category and position for each way a
// pattern can be malformed
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
		pos     int
	}{
		{"", ErrEmptyPattern, 0},
		{"()", ErrEmptyPattern, 1},
		{"a()", ErrEmptyPattern, 2},
		{"(", ErrUnexpectedEOF, 1},
		{"a|", ErrUnexpectedEOF, 2},
		{`a\`, ErrUnexpectedEOF, 1},
		{"(a", ErrUnmatchedParen, 2},
		{"(a|b", ErrUnmatchedParen, 4},
		{"a)", ErrUnmatchedParen, 1},
		{")h", ErrUnmatchedParen, 0},
		{"*a", ErrDanglingOperator, 0},
		{"+", ErrDanglingOperator, 0},
		{"|a", ErrDanglingOperator, 0},
		{"a||b", ErrDanglingOperator, 2},
		{"(a|)", ErrDanglingOperator, 3},
		{"a**", ErrDanglingOperator, 2},
		{"a*+", ErrDanglingOperator, 2},
		{"e(*)f", ErrDanglingOperator, 2},
		{"i|*", ErrDanglingOperator, 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.pattern, re)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if parseErr.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", parseErr.Pos, tt.pos)
			}
			if parseErr.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", parseErr.Pattern, tt.pattern)
			}
		})
	}
}

// TestParse_Deterministic tests that repeated parses agree
func TestParse_Deterministic(t *testing.T) {
	first, err := Parse("(a|b)*c+")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	second, err := Parse("(a|b)*c+")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("parses disagree: %q vs %q", first, second)
	}
}

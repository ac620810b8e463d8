// Package literal detects patterns that are a pure alternation of
// literal strings, the one shape this engine can accelerate without
// running its DFA.
package literal

import (
	"github.com/coregx/redfa/syntax"
)

// Alternates reports whether re is an alternation of literal strings
// (a single literal string counts as a one-armed alternation) and
// returns the alternatives in pattern order. Any star, plus, or other
// non-literal structure anywhere in the tree disqualifies the pattern.
//
// Example: `perl|python|ruby` yields ["perl", "python", "ruby"], while
// `p(erl|hp)` and `a*|b` yield nothing.
func Alternates(re *syntax.Regexp) ([]string, bool) {
	var alts []string
	if !collect(re, &alts) {
		return nil, false
	}
	return alts, true
}

// collect appends the literal alternatives of re to alts, descending
// through groups and nested alternations.
func collect(re *syntax.Regexp, alts *[]string) bool {
	switch re.Op {
	case syntax.OpGroup:
		return collect(re.Sub[0], alts)
	case syntax.OpAlternate:
		return collect(re.Sub[0], alts) && collect(re.Sub[1], alts)
	default:
		s, ok := literalString(re)
		if !ok {
			return false
		}
		*alts = append(*alts, s)
		return true
	}
}

// literalString flattens a concatenation of literals into one string.
func literalString(re *syntax.Regexp) (string, bool) {
	switch re.Op {
	case syntax.OpLiteral:
		return string(re.Char), true
	case syntax.OpGroup:
		return literalString(re.Sub[0])
	case syntax.OpConcat:
		left, ok := literalString(re.Sub[0])
		if !ok {
			return "", false
		}
		right, ok := literalString(re.Sub[1])
		if !ok {
			return "", false
		}
		return left + right, true
	default:
		return "", false
	}
}

// Package redfa compiles a restricted regular-expression syntax into a
// deterministic finite automaton (DFA) and decides whether a string
// belongs to the pattern's language in its entirety.
//
// The pattern mini-language: literal Unicode characters, `\X` escaping
// any character X to a literal, `A|B` alternation, `A*` zero-or-more,
// `A+` one-or-more, `(A)` grouping; concatenation is implicit. There are
// no character classes, anchors, captures or counted repetitions, and
// matching is exact-language membership rather than substring search.
//
// Basic usage:
//
//	re, err := redfa.Compile(`p(erl|ython|hp)|ruby`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("python") // true
//	re.MatchString("python3") // false
//
// Compilation runs the whole pipeline eagerly (parse, Thompson NFA,
// subset-construction DFA), so every later match costs one transition
// lookup per input rune regardless of pattern complexity. The flip side
// is compile-time cost: adversarial patterns can blow the DFA state
// count up exponentially, which is a documented limitation rather than
// a handled error.
//
// A compiled Regex is immutable and safe for concurrent use.
package redfa

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/literal"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

// Regex represents a compiled pattern. It owns the pattern's DFA for its
// entire lifetime and never mutates it, so a single Regex may be shared
// freely across goroutines.
type Regex struct {
	pattern string
	dfa     *dfa.DFA

	// ac short-circuits pure literal alternations like foo|bar|baz.
	// A find spanning the whole input accepts immediately; no find at
	// all rejects immediately; anything in between falls back to the
	// DFA, which keeps the fast path exact under any match preference
	// the automaton implements.
	ac *ahocorasick.Automaton
}

// Compile compiles a pattern.
//
// Malformed syntax is reported as a *CompileError wrapping one of the
// syntax package's error categories; the automaton construction stages
// cannot fail.
func Compile(pattern string) (*Regex, error) {
	re, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	r := &Regex{
		pattern: pattern,
		dfa:     dfa.Build(nfa.Compile(re)),
	}

	if alts, ok := literal.Alternates(re); ok && len(alts) >= 2 {
		r.ac = buildLiteralAutomaton(alts)
	}
	return r, nil
}

// MustCompile compiles a pattern and panics if it fails.
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("redfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// buildLiteralAutomaton builds the Aho-Corasick fast path for a literal
// alternation. Returns nil when the automaton cannot be built; matching
// then simply always uses the DFA.
func buildLiteralAutomaton(alts []string) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, alt := range alts {
		builder.AddPattern([]byte(alt))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// MatchString reports whether s, in its entirety, is in the pattern's
// language. It is total and pure: any string yields a boolean, with no
// error cases and no side effects.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Match reports whether b, decoded as UTF-8, is in the pattern's
// language.
func (r *Regex) Match(b []byte) bool {
	if r.ac != nil && len(b) > 0 {
		m := r.ac.Find(b, 0)
		if m == nil {
			// no alternative occurs anywhere in b, so none equals b
			return false
		}
		if m.Start == 0 && m.End == len(b) {
			return true
		}
	}
	return r.dfa.Match(b)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Package dfa converts NFAs into deterministic finite automata via
// subset construction and runs them for whole-string matching.
//
// The whole DFA is built eagerly at compile time: matching afterwards is
// one transition lookup per input rune, linear in the input length and
// independent of pattern complexity. The price is the classic powerset
// blow-up: the state count is worst-case exponential in the NFA size,
// and no mitigation (lazy construction, minimization) is attempted.
package dfa

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/coregx/redfa/nfa"
)

// StateID uniquely identifies a DFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// Special state constants
const (
	// InvalidState represents an invalid/uninitialized state ID
	InvalidState StateID = 0xFFFFFFFF

	// DeadState is the implicit non-accepting sink reached on any symbol
	// with no recorded transition. It is never materialized: reaching it
	// simply fails the match.
	DeadState StateID = 0xFFFFFFFE

	// StartState is always state ID 0 (the initial state)
	StartState StateID = 0
)

// State represents a DFA state: at most one transition per observed
// symbol, an accept flag, and the set of NFA states it stands for (its
// label, kept sorted).
type State struct {
	id          StateID
	transitions map[rune]StateID
	isMatch     bool
	nfaStates   []nfa.StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsMatch returns true if this is an accepting state
func (s *State) IsMatch() bool {
	return s.isMatch
}

// Transition returns the target state for symbol r.
// The second result is false when the symbol routes to the dead state.
func (s *State) Transition(r rune) (StateID, bool) {
	next, ok := s.transitions[r]
	return next, ok
}

// TransitionRunes returns the symbols with recorded transitions, sorted.
func (s *State) TransitionRunes() []rune {
	runes := make([]rune, 0, len(s.transitions))
	for r := range s.transitions {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// NFAStates returns the sorted NFA state set this DFA state represents.
// The returned slice is shared and must not be modified.
func (s *State) NFAStates() []nfa.StateID {
	return s.nfaStates
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("DFAState(id=%d, isMatch=%v, transitions=%d, nfaStates=%v)",
		s.id, s.isMatch, len(s.transitions), s.nfaStates)
}

// DFA is a deterministic finite automaton produced by Build.
// It is immutable and safe to share across concurrent readers: matching
// keeps all mutable state on the call's own stack.
type DFA struct {
	// states contains all DFA states indexed by StateID
	states []State

	start StateID

	// alphabet is the sorted set of symbols discovered while building
	alphabet []rune
}

// Start returns the starting state ID of the DFA
func (d *DFA) Start() StateID {
	return d.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (d *DFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(d.states) {
		return nil
	}
	return &d.states[id]
}

// Len returns the total number of states in the DFA
func (d *DFA) Len() int {
	return len(d.states)
}

// Alphabet returns the symbols discovered while building, sorted.
// The returned slice is shared and must not be modified.
func (d *DFA) Alphabet() []rune {
	return d.alphabet
}

// MatchString reports whether s, in its entirety, is accepted.
//
// The automaton starts in the start state and follows one recorded
// transition per rune of s; a symbol with no recorded transition lands
// in the dead state and fails the match immediately. After the last rune
// the result is the current state's accept flag. Matching is implicitly
// anchored at both ends; there is no substring search.
func (d *DFA) MatchString(s string) bool {
	cur := d.start
	for _, r := range s {
		next, ok := d.states[cur].transitions[r]
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].isMatch
}

// Match is MatchString over a byte slice decoded as UTF-8.
func (d *DFA) Match(b []byte) bool {
	cur := d.start
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		i += size
		next, ok := d.states[cur].transitions[r]
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].isMatch
}

// String returns a human-readable representation of the DFA
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, alphabet: %d}",
		len(d.states), d.start, len(d.alphabet))
}

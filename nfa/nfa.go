// Package nfa compiles parsed patterns into nondeterministic finite
// automata with epsilon transitions using Thompson's construction.
package nfa

import (
	"fmt"
	"slices"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// State represents a single NFA state with its transitions.
//
// A state carries at most one rune-labeled transition plus any number of
// epsilon transitions; Thompson fragments never need more than that.
type State struct {
	id StateID

	// rune-labeled transition, valid when hasRune
	r       rune
	hasRune bool
	next    StateID

	// epsilon transition targets
	epsilons []StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Rune returns the rune-labeled transition as (symbol, target, true).
// Returns (0, InvalidState, false) when the state has none.
func (s *State) Rune() (rune, StateID, bool) {
	if !s.hasRune {
		return 0, InvalidState, false
	}
	return s.r, s.next, true
}

// Epsilons returns the epsilon transition targets.
// The returned slice is shared and must not be modified.
func (s *State) Epsilons() []StateID {
	return s.epsilons
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	if s.hasRune {
		return fmt.Sprintf("State(%d, %q -> %d, eps=%v)", s.id, s.r, s.next, s.epsilons)
	}
	return fmt.Sprintf("State(%d, eps=%v)", s.id, s.epsilons)
}

// NFA represents a compiled Thompson NFA.
//
// It has exactly one start state and one accept state, every state is
// reachable from the start, and the automaton is immutable once returned
// by Compile.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	start  StateID
	accept StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// Accept returns the accepting state ID of the NFA
func (n *NFA) Accept() StateID {
	return n.accept
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Len returns the total number of states in the NFA
func (n *NFA) Len() int {
	return len(n.states)
}

// Alphabet returns the distinct runes labeling any transition, sorted.
// This is the input alphabet the DFA builder determinizes over.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for i := range n.states {
		if n.states[i].hasRune {
			seen[n.states[i].r] = struct{}{}
		}
	}

	alphabet := make([]rune, 0, len(seen))
	for r := range seen {
		alphabet = append(alphabet, r)
	}
	slices.Sort(alphabet)
	return alphabet
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %d}", len(n.states), n.start, n.accept)
}

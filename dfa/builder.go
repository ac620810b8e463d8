package dfa

import (
	"slices"

	"github.com/coregx/redfa/nfa"
)

// Builder performs eager subset (powerset) construction over an NFA.
type Builder struct {
	nfa *nfa.NFA
}

// Build determinizes n. It is total: construction cannot fail, though
// the resulting state count is worst-case exponential in the NFA size.
func Build(n *nfa.NFA) *DFA {
	b := &Builder{nfa: n}
	return b.build()
}

// build runs the worklist algorithm: seed with the epsilon-closure of
// the NFA start state, then for each unprocessed DFA state and each
// alphabet symbol compute closure(move(label, symbol)). An empty result
// records no transition (the symbol falls through to the dead state); a
// new label allocates the next dense DFA id and is enqueued.
func (b *Builder) build() *DFA {
	alphabet := b.nfa.Alphabet()

	startLabel := b.epsilonClosure([]nfa.StateID{b.nfa.Start()})
	states := []State{{
		id:          StartState,
		transitions: make(map[rune]StateID),
		isMatch:     b.containsAccept(startLabel),
		nfaStates:   startLabel,
	}}
	seen := map[string]StateID{stateKey(startLabel): StartState}

	queue := []StateID{StartState}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, r := range alphabet {
			label := b.move(states[cur].nfaStates, r)
			if len(label) == 0 {
				continue
			}

			key := stateKey(label)
			id, ok := seen[key]
			if !ok {
				id = StateID(len(states))
				states = append(states, State{
					id:          id,
					transitions: make(map[rune]StateID),
					isMatch:     b.containsAccept(label),
					nfaStates:   label,
				})
				seen[key] = id
				queue = append(queue, id)
			}
			states[cur].transitions[r] = id
		}
	}

	return &DFA{states: states, start: StartState, alphabet: alphabet}
}

// epsilonClosure computes the smallest superset of states closed under
// epsilon transitions, as a fixed point: repeatedly follow every epsilon
// edge out of the set until nothing new is reachable. The result is
// sorted so labels are canonical.
func (b *Builder) epsilonClosure(states []nfa.StateID) []nfa.StateID {
	closure := make(map[nfa.StateID]struct{}, len(states)*2)
	stack := make([]nfa.StateID, 0, len(states)*2)
	for _, sid := range states {
		closure[sid] = struct{}{}
		stack = append(stack, sid)
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range b.nfa.State(cur).Epsilons() {
			if _, ok := closure[next]; !ok {
				closure[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	return sortedLabel(closure)
}

// move computes closure(move(states, r)): every NFA state reachable from
// the set by consuming r, expanded by epsilon transitions. Returns nil
// when no state in the set transitions on r.
func (b *Builder) move(states []nfa.StateID, r rune) []nfa.StateID {
	var targets []nfa.StateID
	for _, sid := range states {
		if sym, next, ok := b.nfa.State(sid).Rune(); ok && sym == r {
			targets = append(targets, next)
		}
	}
	if len(targets) == 0 {
		return nil
	}
	return b.epsilonClosure(targets)
}

// containsAccept returns true if the label contains the NFA accept state
func (b *Builder) containsAccept(label []nfa.StateID) bool {
	for _, sid := range label {
		if sid == b.nfa.Accept() {
			return true
		}
	}
	return false
}

func sortedLabel(set map[nfa.StateID]struct{}) []nfa.StateID {
	label := make([]nfa.StateID, 0, len(set))
	for sid := range set {
		label = append(label, sid)
	}
	slices.Sort(label)
	return label
}

// stateKey encodes a sorted label as a map key. The encoding is the
// label itself (4 bytes per state id), so equal keys mean equal labels:
// unlike a hash there are no collisions to resolve.
func stateKey(label []nfa.StateID) string {
	buf := make([]byte, 0, len(label)*4)
	for _, sid := range label {
		buf = append(buf, byte(sid), byte(sid>>8), byte(sid>>16), byte(sid>>24))
	}
	return string(buf)
}

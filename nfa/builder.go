package nfa

// Builder constructs NFAs incrementally. The compiler allocates states
// through it and wires them per the Thompson construction rules.
type Builder struct {
	states []State
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return &Builder{
		states: make([]State, 0, 16),
	}
}

// AddState allocates a fresh state with no transitions and returns its ID
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:   id,
		next: InvalidState,
	})
	return id
}

// SetRune gives from a rune-labeled transition to. A state holds at most
// one rune transition; setting a second is a bug in the compiler, so it
// panics rather than silently rewiring.
func (b *Builder) SetRune(from StateID, r rune, to StateID) {
	s := &b.states[from]
	if s.hasRune {
		panic("nfa: state already has a rune transition")
	}
	s.r = r
	s.next = to
	s.hasRune = true
}

// AddEpsilon adds an epsilon transition from -> to
func (b *Builder) AddEpsilon(from, to StateID) {
	s := &b.states[from]
	s.epsilons = append(s.epsilons, to)
}

// Len returns the number of states allocated so far
func (b *Builder) Len() int {
	return len(b.states)
}

// Build finalizes and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build(start, accept StateID) *NFA {
	return &NFA{
		states: b.states,
		start:  start,
		accept: accept,
	}
}

package nfa

import "testing"

// TestBuilder_AddState tests dense sequential ID allocation
func TestBuilder_AddState(t *testing.T) {
	b := NewBuilder()
	for want := StateID(0); want < 5; want++ {
		if got := b.AddState(); got != want {
			t.Errorf("AddState() = %d, want %d", got, want)
		}
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}

// TestBuilder_SetRune tests that a second rune transition panics
func TestBuilder_SetRune(t *testing.T) {
	b := NewBuilder()
	from := b.AddState()
	to := b.AddState()
	b.SetRune(from, 'a', to)

	defer func() {
		if recover() == nil {
			t.Error("second SetRune on the same state did not panic")
		}
	}()
	b.SetRune(from, 'b', to)
}

// TestBuilder_Build tests that the built NFA reflects the wiring
func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()
	start := b.AddState()
	accept := b.AddState()
	b.SetRune(start, 'x', accept)
	b.AddEpsilon(accept, start)

	n := b.Build(start, accept)
	if n.Start() != start || n.Accept() != accept {
		t.Errorf("Start/Accept = %d/%d, want %d/%d", n.Start(), n.Accept(), start, accept)
	}
	if r, next, ok := n.State(start).Rune(); !ok || r != 'x' || next != accept {
		t.Errorf("start rune = %q->%d ok=%v, want 'x'->%d", r, next, ok, accept)
	}
	if eps := n.State(accept).Epsilons(); len(eps) != 1 || eps[0] != start {
		t.Errorf("accept epsilons = %v, want [%d]", eps, start)
	}
}

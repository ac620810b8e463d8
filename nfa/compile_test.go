package nfa

import (
	"slices"
	"testing"

	"github.com/coregx/redfa/syntax"
)

func mustParse(t *testing.T, pattern string) *syntax.Regexp {
	t.Helper()
	re, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return re
}

// TestCompile_Literal tests the two-state fragment for a single rune
func TestCompile_Literal(t *testing.T) {
	n := Compile(mustParse(t, "a"))

	if n.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", n.Len())
	}

	start := n.State(n.Start())
	r, next, ok := start.Rune()
	if !ok {
		t.Fatal("start state has no rune transition")
	}
	if r != 'a' {
		t.Errorf("rune = %q, want 'a'", r)
	}
	if next != n.Accept() {
		t.Errorf("rune target = %d, want accept %d", next, n.Accept())
	}
	if len(start.Epsilons()) != 0 {
		t.Errorf("start has epsilon transitions %v, want none", start.Epsilons())
	}

	accept := n.State(n.Accept())
	if _, _, ok := accept.Rune(); ok {
		t.Error("accept state has a rune transition, want none")
	}
}

// TestCompile_Concat tests that concatenation joins fragments with a
// single epsilon edge
func TestCompile_Concat(t *testing.T) {
	n := Compile(mustParse(t, "ab"))

	if n.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", n.Len())
	}

	// follow a from the start, then the epsilon, then b
	_, mid, ok := n.State(n.Start()).Rune()
	if !ok {
		t.Fatal("start state has no rune transition")
	}

	eps := n.State(mid).Epsilons()
	if len(eps) != 1 {
		t.Fatalf("joining state has %d epsilons, want 1", len(eps))
	}

	r, last, ok := n.State(eps[0]).Rune()
	if !ok || r != 'b' {
		t.Fatalf("second fragment rune = %q ok=%v, want 'b'", r, ok)
	}
	if last != n.Accept() {
		t.Errorf("final target = %d, want accept %d", last, n.Accept())
	}
}

// TestCompile_Alternate tests the fork and join of an alternation
func TestCompile_Alternate(t *testing.T) {
	n := Compile(mustParse(t, "a|b"))

	if n.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", n.Len())
	}

	start := n.State(n.Start())
	if _, _, ok := start.Rune(); ok {
		t.Error("alternation start has a rune transition, want epsilons only")
	}
	if len(start.Epsilons()) != 2 {
		t.Fatalf("start has %d epsilons, want 2", len(start.Epsilons()))
	}

	// both branches read their rune and reach the shared accept
	var runes []rune
	for _, branch := range start.Epsilons() {
		r, next, ok := n.State(branch).Rune()
		if !ok {
			t.Fatalf("branch %d has no rune transition", branch)
		}
		runes = append(runes, r)

		eps := n.State(next).Epsilons()
		if len(eps) != 1 || eps[0] != n.Accept() {
			t.Errorf("branch accept epsilons = %v, want [%d]", eps, n.Accept())
		}
	}
	slices.Sort(runes)
	if !slices.Equal(runes, []rune{'a', 'b'}) {
		t.Errorf("branch runes = %q, want ab", string(runes))
	}
}

// TestCompile_Star tests the loop, entry and bypass edges of a star
func TestCompile_Star(t *testing.T) {
	n := Compile(mustParse(t, "a*"))

	if n.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", n.Len())
	}

	start := n.State(n.Start())
	eps := start.Epsilons()
	if len(eps) != 2 {
		t.Fatalf("start has %d epsilons, want 2 (enter and bypass)", len(eps))
	}
	if !slices.Contains(eps, n.Accept()) {
		t.Errorf("start epsilons %v do not bypass to accept %d", eps, n.Accept())
	}

	// the inner fragment's accept loops back and exits
	var inner StateID = InvalidState
	for _, id := range eps {
		if id != n.Accept() {
			inner = id
		}
	}
	_, innerAccept, ok := n.State(inner).Rune()
	if !ok {
		t.Fatal("inner fragment has no rune transition")
	}

	exitEps := n.State(innerAccept).Epsilons()
	if len(exitEps) != 2 {
		t.Fatalf("inner accept has %d epsilons, want 2 (exit and loop)", len(exitEps))
	}
	if !slices.Contains(exitEps, n.Accept()) {
		t.Errorf("inner accept %v does not exit to accept %d", exitEps, n.Accept())
	}
	if !slices.Contains(exitEps, inner) {
		t.Errorf("inner accept %v does not loop back to %d", exitEps, inner)
	}
}

// TestCompile_Plus tests that plus is star without the bypass edge
func TestCompile_Plus(t *testing.T) {
	n := Compile(mustParse(t, "a+"))

	if n.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", n.Len())
	}

	start := n.State(n.Start())
	eps := start.Epsilons()
	if len(eps) != 1 {
		t.Fatalf("start has %d epsilons, want 1 (no bypass)", len(eps))
	}
	if slices.Contains(eps, n.Accept()) {
		t.Error("plus start bypasses to accept, must consume at least one rune")
	}

	_, innerAccept, ok := n.State(eps[0]).Rune()
	if !ok {
		t.Fatal("inner fragment has no rune transition")
	}
	exitEps := n.State(innerAccept).Epsilons()
	if !slices.Contains(exitEps, n.Accept()) || !slices.Contains(exitEps, eps[0]) {
		t.Errorf("inner accept epsilons = %v, want exit %d and loop %d", exitEps, n.Accept(), eps[0])
	}
}

// TestCompile_GroupTransparent tests that grouping adds no states
func TestCompile_GroupTransparent(t *testing.T) {
	bare := Compile(mustParse(t, "ab"))
	grouped := Compile(mustParse(t, "(ab)"))
	nested := Compile(mustParse(t, "((ab))"))

	if grouped.Len() != bare.Len() {
		t.Errorf("(ab) has %d states, ab has %d", grouped.Len(), bare.Len())
	}
	if nested.Len() != bare.Len() {
		t.Errorf("((ab)) has %d states, ab has %d", nested.Len(), bare.Len())
	}
}

// TestNFA_Alphabet tests that the alphabet is distinct and sorted
func TestNFA_Alphabet(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"abba", "ab"},
		{"(b|a)*c+a", "abc"},
		{"田|山", "山田"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := Compile(mustParse(t, tt.pattern))
			if got := string(n.Alphabet()); got != tt.want {
				t.Errorf("Alphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNFA_StateBounds tests State's handling of out-of-range IDs
func TestNFA_StateBounds(t *testing.T) {
	n := Compile(mustParse(t, "a"))
	if s := n.State(InvalidState); s != nil {
		t.Errorf("State(InvalidState) = %v, want nil", s)
	}
	if s := n.State(StateID(n.Len())); s != nil {
		t.Errorf("State(%d) = %v, want nil", n.Len(), s)
	}
}

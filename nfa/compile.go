package nfa

import (
	"github.com/coregx/redfa/syntax"
)

// frag is the sub-automaton for one syntax tree node: a start and an
// accept state inside the shared state arena. Fragments compose by
// wiring these two states together and are discarded once the full NFA
// is assembled.
type frag struct {
	start  StateID
	accept StateID
}

// Compile translates a parsed pattern into an NFA using Thompson's
// construction. It is total: every tree produced by syntax.Parse
// compiles.
func Compile(re *syntax.Regexp) *NFA {
	c := &compiler{b: NewBuilder()}
	f := c.compile(re)
	return c.b.Build(f.start, f.accept)
}

// compiler walks the syntax tree bottom-up, building one fragment per
// node.
type compiler struct {
	b *Builder
}

func (c *compiler) compile(re *syntax.Regexp) frag {
	switch re.Op {
	case syntax.OpLiteral:
		return c.literal(re.Char)
	case syntax.OpConcat:
		return c.concat(c.compile(re.Sub[0]), c.compile(re.Sub[1]))
	case syntax.OpAlternate:
		return c.alternate(c.compile(re.Sub[0]), c.compile(re.Sub[1]))
	case syntax.OpStar:
		return c.repeat(c.compile(re.Sub[0]), true)
	case syntax.OpPlus:
		return c.repeat(c.compile(re.Sub[0]), false)
	case syntax.OpGroup:
		// grouping affects parsing precedence only, not automaton shape
		return c.compile(re.Sub[0])
	default:
		panic("nfa: unknown syntax op " + re.Op.String())
	}
}

// literal: start --r--> accept
func (c *compiler) literal(r rune) frag {
	start := c.b.AddState()
	accept := c.b.AddState()
	c.b.SetRune(start, r, accept)
	return frag{start, accept}
}

// concat: a.accept --eps--> b.start; the fragment runs a then b.
func (c *compiler) concat(a, b frag) frag {
	c.b.AddEpsilon(a.accept, b.start)
	return frag{a.start, b.accept}
}

// alternate: a fresh start forks into both fragments and both accepts
// join a fresh accept.
func (c *compiler) alternate(a, b frag) frag {
	start := c.b.AddState()
	accept := c.b.AddState()
	c.b.AddEpsilon(start, a.start)
	c.b.AddEpsilon(start, b.start)
	c.b.AddEpsilon(a.accept, accept)
	c.b.AddEpsilon(b.accept, accept)
	return frag{start, accept}
}

// repeat wires a loop around the fragment. withZero adds the bypass edge
// that lets the loop match the empty string: with it this is star, and
// without it plus, which must run the fragment at least once.
func (c *compiler) repeat(a frag, withZero bool) frag {
	start := c.b.AddState()
	accept := c.b.AddState()
	c.b.AddEpsilon(start, a.start)
	c.b.AddEpsilon(a.accept, accept)
	c.b.AddEpsilon(a.accept, a.start)
	if withZero {
		c.b.AddEpsilon(start, accept)
	}
	return frag{start, accept}
}

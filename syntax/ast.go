package syntax

import (
	"fmt"
	"strings"
)

// Op is the operator tag of a Regexp node.
type Op uint8

const (
	// OpLiteral matches a single rune (Char field)
	OpLiteral Op = iota

	// OpConcat matches Sub[0] followed by Sub[1]
	OpConcat

	// OpAlternate matches Sub[0] or Sub[1]
	OpAlternate

	// OpStar matches zero or more repetitions of Sub[0]
	OpStar

	// OpPlus matches one or more repetitions of Sub[0]
	OpPlus

	// OpGroup matches Sub[0]; it exists for parsing precedence only
	OpGroup
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	case OpGroup:
		return "Group"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Regexp is a node of a parsed pattern.
//
// Literal nodes carry their rune in Char and have no children; OpStar,
// OpPlus and OpGroup have exactly one child; OpConcat and OpAlternate
// have exactly two, with longer sequences left-associated into nested
// nodes. A tree is immutable once returned by Parse.
type Regexp struct {
	Op   Op
	Char rune      // valid for OpLiteral
	Sub  []*Regexp // children; arity fixed by Op
}

// String renders the node back into pattern syntax, escaping
// metacharacters in literals. For trees produced by Parse this
// round-trips the source pattern.
func (re *Regexp) String() string {
	var b strings.Builder
	re.render(&b)
	return b.String()
}

func (re *Regexp) render(b *strings.Builder) {
	switch re.Op {
	case OpLiteral:
		if strings.ContainsRune(`\|*+()`, re.Char) {
			b.WriteByte('\\')
		}
		b.WriteRune(re.Char)
	case OpConcat:
		re.Sub[0].render(b)
		re.Sub[1].render(b)
	case OpAlternate:
		re.Sub[0].render(b)
		b.WriteByte('|')
		re.Sub[1].render(b)
	case OpStar:
		re.Sub[0].render(b)
		b.WriteByte('*')
	case OpPlus:
		re.Sub[0].render(b)
		b.WriteByte('+')
	case OpGroup:
		b.WriteByte('(')
		re.Sub[0].render(b)
		b.WriteByte(')')
	}
}

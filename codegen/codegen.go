// Package codegen renders a compiled DFA as a standalone Go source
// file.
//
// The generated file depends on nothing, not even this module: it holds
// a single exported function that walks the DFA's transition table via
// nested switch dispatch and reports whole-string acceptance, exactly
// like DFA.MatchString does at runtime. Output is deterministic: states
// are emitted in id order and transitions in rune order.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/redfa/dfa"
)

// Config controls the generated source.
type Config struct {
	// Pattern is the source pattern, recorded in the generated comments.
	Pattern string

	// Name is the exported matcher function name. Defaults to "Match".
	Name string

	// Package is the package clause of the generated file.
	// Defaults to "main".
	Package string
}

// Generator emits a whole-string matcher function for one DFA.
type Generator struct {
	config Config
	dfa    *dfa.DFA
	file   *jen.File
}

// New creates a generator for the given DFA.
func New(config Config, d *dfa.DFA) *Generator {
	if config.Name == "" {
		config.Name = "Match"
	}
	if config.Package == "" {
		config.Package = "main"
	}
	return &Generator{
		config: config,
		dfa:    d,
		file:   jen.NewFile(config.Package),
	}
}

// Generate builds the file contents. Call Render or Save afterwards.
func (g *Generator) Generate() {
	g.file.HeaderComment(fmt.Sprintf("Code generated by redfa from pattern %q. DO NOT EDIT.", g.config.Pattern))

	body := []jen.Code{
		jen.Id("state").Op(":=").Lit(int(g.dfa.Start())),
		jen.For(
			jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("input"),
		).Block(
			g.stepSwitch(),
		),
	}
	body = append(body, g.acceptCheck()...)

	g.file.Comment(fmt.Sprintf("%s reports whether input, in its entirety, matches %q.", g.config.Name, g.config.Pattern))
	g.file.Func().Id(g.config.Name).Params(
		jen.Id("input").String(),
	).Bool().Block(body...)
}

// stepSwitch dispatches on the current state, then on the input rune.
// States without outgoing transitions are folded into the default case,
// which plays the dead state: once there, the match can never succeed.
func (g *Generator) stepSwitch() jen.Code {
	var stateCases []jen.Code
	for id := 0; id < g.dfa.Len(); id++ {
		s := g.dfa.State(dfa.StateID(id))
		runes := s.TransitionRunes()
		if len(runes) == 0 {
			continue
		}

		var runeCases []jen.Code
		for _, r := range runes {
			next, _ := s.Transition(r)
			runeCases = append(runeCases, jen.Case(jen.LitRune(r)).Block(
				jen.Id("state").Op("=").Lit(int(next)),
			))
		}
		runeCases = append(runeCases, jen.Default().Block(
			jen.Return(jen.False()),
		))

		stateCases = append(stateCases, jen.Case(jen.Lit(id)).Block(
			jen.Switch(jen.Id("r")).Block(runeCases...),
		))
	}

	stateCases = append(stateCases, jen.Default().Block(
		jen.Return(jen.False()),
	))
	return jen.Switch(jen.Id("state")).Block(stateCases...)
}

// acceptCheck returns true exactly in the accepting states.
func (g *Generator) acceptCheck() []jen.Code {
	var accepting []jen.Code
	for id := 0; id < g.dfa.Len(); id++ {
		if g.dfa.State(dfa.StateID(id)).IsMatch() {
			accepting = append(accepting, jen.Lit(id))
		}
	}

	if len(accepting) == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}
	return []jen.Code{
		jen.Switch(jen.Id("state")).Block(
			jen.Case(accepting...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	}
}

// Render returns the generated source.
func (g *Generator) Render() (string, error) {
	var buf bytes.Buffer
	if err := g.file.Render(&buf); err != nil {
		return "", fmt.Errorf("render generated matcher: %w", err)
	}
	return buf.String(), nil
}

// Save writes the generated source to path.
func (g *Generator) Save(path string) error {
	return g.file.Save(path)
}

package main

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

var log = commonlog.GetLogger("redfa")

// compileStages runs the pipeline stage by stage so each stage's
// statistics can be logged under --verbose.
func compileStages(pattern string) (*dfa.DFA, error) {
	re, err := syntax.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	log.Debugf("parsed %q as %s", pattern, re)

	n := nfa.Compile(re)
	log.Debugf("NFA: %d states, alphabet size %d", n.Len(), len(n.Alphabet()))

	d := dfa.Build(n)
	log.Debugf("DFA: %d states", d.Len())
	return d, nil
}

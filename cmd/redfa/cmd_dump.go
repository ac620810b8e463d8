package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/redfa/dfa"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <pattern>",
		Short: "Print the DFA state table for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := compileStages(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("pattern %q: %d states, start %d\n", args[0], d.Len(), d.Start())
			for id := 0; id < d.Len(); id++ {
				s := d.State(dfa.StateID(id))
				marker := " "
				if s.IsMatch() {
					marker = "*"
				}
				fmt.Printf("%s%4d:", marker, id)
				for _, r := range s.TransitionRunes() {
					next, _ := s.Transition(r)
					fmt.Printf(" %q->%d", r, next)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/redfa"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <text>",
		Short: "Test whether text as a whole matches pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := redfa.Compile(args[0])
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}

			if re.MatchString(args[1]) {
				fmt.Println("match")
				return nil
			}
			fmt.Println("no match")
			os.Exit(1)
			return nil
		},
	}
}

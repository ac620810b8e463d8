package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "redfa",
		Short: "Whole-string regex matching via an eagerly built DFA",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := 0
			if verbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compile statistics")

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

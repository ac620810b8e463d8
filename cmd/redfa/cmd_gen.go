package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/redfa/codegen"
)

func newGenCmd() *cobra.Command {
	var name string
	var pkg string
	var output string

	cmd := &cobra.Command{
		Use:   "gen <pattern>",
		Short: "Generate a standalone Go matcher function for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := compileStages(args[0])
			if err != nil {
				return err
			}

			g := codegen.New(codegen.Config{
				Pattern: args[0],
				Name:    name,
				Package: pkg,
			}, d)
			g.Generate()

			if output == "" || output == "-" {
				src, err := g.Render()
				if err != nil {
					return err
				}
				fmt.Print(src)
				return nil
			}

			if err := g.Save(output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Infof("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Match", "generated function name")
	cmd.Flags().StringVar(&pkg, "package", "main", "package of the generated file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}

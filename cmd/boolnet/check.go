package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a run file and print the compiled update rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := g.load()
			if err != nil {
				return err
			}
			def, err := f.Network.Definition()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d nodes, strategy %s\n", def.Len(), f.Run.Strategy)
			for i, name := range def.Names() {
				fmt.Fprintf(out, "  %s' = %s\n", name, def.RuleString(i))
			}
			if len(f.Network.Pins) > 0 {
				names := make([]string, 0, len(f.Network.Pins))
				for name := range f.Network.Pins {
					names = append(names, name)
				}
				sort.Strings(names)
				fmt.Fprint(out, "pinned:")
				for _, name := range names {
					fmt.Fprintf(out, " %s=%t", name, f.Network.Pins[name])
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
}

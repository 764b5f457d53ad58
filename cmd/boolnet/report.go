package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/boolnet/basin"
	"github.com/katalvlaran/boolnet/engine"
)

// writeReport prints one line per attractor, then unresolved origins and node activity.
func writeReport(w io.Writer, rep *engine.Report) error {
	res := rep.Result
	fmt.Fprintf(w, "run %s: %d nodes, strategy %s, %s over %d initial states\n",
		rep.RunID, res.Nodes, rep.Strategy, res.Mode, res.Explored)
	if res.Mode == basin.Sampled {
		fmt.Fprintln(w, "basin fractions are estimates from the sample")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tLENGTH\tBASIN\tFRACTION\tSTATES")
	for _, e := range res.Entries {
		states := make([]string, len(e.Attractor.States))
		for i, s := range e.Attractor.States {
			states[i] = s.String()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\t%s\n",
			e.Attractor.Kind, e.Attractor.Len(), e.Count, 100*e.Fraction, strings.Join(states, " -> "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if n := rep.Unresolved(); n > 0 {
		fmt.Fprintf(w, "%d initial states reach no attractor inside the explored graph (try --closure)\n", n)
	}
	parts := make([]string, len(rep.Nodes))
	for i, name := range rep.Nodes {
		parts[i] = fmt.Sprintf("%s=%.3f", name, rep.Activity[i])
	}
	_, err := fmt.Fprintf(w, "node activity: %s\n", strings.Join(parts, " "))

	return err
}

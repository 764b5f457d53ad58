// Command boolnet finds the attractors of a synchronous Boolean network and
// measures their basins of attraction.
//
//	boolnet check -c run.yaml
//	boolnet run -c run.yaml [--strategy graph] [--sample-size 5000] [--json]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

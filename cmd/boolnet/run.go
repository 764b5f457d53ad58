package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/engine"
)

type runFlags struct {
	strategy   string
	seed       int64
	sampleSize int
	threshold  int
	workers    int
	closure    bool
	jsonOut    bool
	metricsOut string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Find attractors and basin sizes",
		Long: `Run the analysis described by the run file. Flags override the file and
BOOLNET_* environment variables.

Networks up to --threshold nodes are enumerated exhaustively and report exact
basin fractions; wider networks are sampled and report estimates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rf.run(cmd, g)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&rf.strategy, "strategy", "", "trajectory or graph")
	fl.Int64Var(&rf.seed, "seed", 0, "random seed for sampling")
	fl.IntVar(&rf.sampleSize, "sample-size", 0, "initial states to sample above the threshold")
	fl.IntVar(&rf.threshold, "threshold", 0, "widest network enumerated exhaustively, in nodes")
	fl.IntVar(&rf.workers, "workers", 0, "parallel tracers")
	fl.BoolVar(&rf.closure, "closure", false, "graph strategy: expand every reachable state")
	fl.BoolVar(&rf.jsonOut, "json", false, "print the report as JSON")
	fl.StringVar(&rf.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

// apply copies explicitly set flags onto cfg.
func (rf *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("strategy") {
		cfg.Strategy = config.Strategy(rf.strategy)
	}
	if fl.Changed("seed") {
		cfg.RandomSeed = rf.seed
	}
	if fl.Changed("sample-size") {
		cfg.SampleSize = rf.sampleSize
	}
	if fl.Changed("threshold") {
		cfg.ExhaustiveThresholdBits = rf.threshold
	}
	if fl.Changed("workers") {
		cfg.Workers = rf.workers
	}
	if fl.Changed("closure") {
		cfg.Closure = rf.closure
	}
}

func (rf *runFlags) run(cmd *cobra.Command, g *globalFlags) error {
	logger, err := g.logger(cmd)
	if err != nil {
		return err
	}
	f, err := g.load()
	if err != nil {
		return err
	}
	rf.apply(cmd, &f.Run)
	def, err := f.Network.Definition()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rep, err := engine.Run(cmd.Context(), def, f.Run,
		engine.WithLogger(logger),
		engine.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}
	if rf.metricsOut != "" {
		if err = prometheus.WriteToTextfile(rf.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if rf.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	return writeReport(cmd.OutOrStdout(), rep)
}

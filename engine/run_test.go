package engine_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/basin"
	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/engine"
	"github.com/katalvlaran/boolnet/initstate"
	"github.com/katalvlaran/boolnet/network"
	"github.com/katalvlaran/boolnet/trajectory"
)

func threeNode(t testing.TB) *network.Definition {
	t.Helper()
	def, err := network.Compile([]string{"A", "B", "C"}, []string{"A & !C", "A | C", "!B"})
	require.NoError(t, err)

	return def
}

func cfgWith(strategy config.Strategy, mutate ...func(*config.Config)) config.Config {
	c := config.Default()
	c.Strategy = strategy
	for _, m := range mutate {
		m(&c)
	}

	return c
}

type basinCount struct {
	Key   attractor.Key
	Count int64
}

func counts(r *engine.Report) []basinCount {
	out := make([]basinCount, len(r.Result.Entries))
	for i, e := range r.Result.Entries {
		out[i] = basinCount{e.Key, e.Count}
	}

	return out
}

var threeNodeBasins = []basinCount{
	{"000,001,011,010", 7},
	{"110", 1},
}

// TestRun_ThreeNode checks both strategies on the three-node network.
func TestRun_ThreeNode(t *testing.T) {
	for _, s := range []config.Strategy{config.StrategyTrajectory, config.StrategyGraph} {
		t.Run(string(s), func(t *testing.T) {
			rep, err := engine.Run(context.Background(), threeNode(t), cfgWith(s))
			require.NoError(t, err)
			assert.Equal(t, basin.Exhaustive, rep.Result.Mode)
			assert.Equal(t, threeNodeBasins, counts(rep))
			assert.Equal(t, int64(8), rep.Result.Resolved())
			assert.InDelta(t, 0.875, rep.Result.Entries[0].Fraction, 1e-12)
			assert.Equal(t, []string{"A", "B", "C"}, rep.Nodes)
			assert.Len(t, rep.Activity, 3)
			assert.NotEmpty(t, rep.RunID)
			assert.Zero(t, rep.Unresolved())
		})
	}
}

// TestRun_Negation covers the single-node oscillator under both strategies.
func TestRun_Negation(t *testing.T) {
	def, err := network.Compile(nil, []string{"not x0"})
	require.NoError(t, err)
	for _, s := range []config.Strategy{config.StrategyTrajectory, config.StrategyGraph} {
		rep, err := engine.Run(context.Background(), def, cfgWith(s))
		require.NoError(t, err)
		require.Len(t, rep.Result.Entries, 1, s)
		e := rep.Result.Entries[0]
		assert.Equal(t, attractor.Cycle, e.Attractor.Kind)
		assert.Equal(t, 2, e.Attractor.Len())
		assert.Equal(t, int64(2), e.Count)
		assert.InDelta(t, 1.0, e.Fraction, 1e-12)
	}
}

// TestRun_WorkersAgree runs the trajectory strategy with a worker pool.
func TestRun_WorkersAgree(t *testing.T) {
	def := ring(t, 10)
	one, err := engine.Run(context.Background(), def, cfgWith(config.StrategyTrajectory))
	require.NoError(t, err)
	many, err := engine.Run(context.Background(), def, cfgWith(config.StrategyTrajectory, func(c *config.Config) { c.Workers = 8 }))
	require.NoError(t, err)
	graph, err := engine.Run(context.Background(), def, cfgWith(config.StrategyGraph))
	require.NoError(t, err)

	assert.Equal(t, counts(one), counts(many))
	assert.Equal(t, counts(one), counts(graph))
	assert.Equal(t, int64(1024), one.Result.Resolved())
}

// TestRun_Idempotent repeats a sampled run with the same seed.
func TestRun_Idempotent(t *testing.T) {
	def := ring(t, 20)
	cfg := cfgWith(config.StrategyTrajectory, func(c *config.Config) {
		c.SampleSize = 200
		c.RandomSeed = 11
		c.Workers = 4
	})
	a, err := engine.Run(context.Background(), def, cfg)
	require.NoError(t, err)
	b, err := engine.Run(context.Background(), def, cfg)
	require.NoError(t, err)

	assert.Equal(t, basin.Sampled, a.Result.Mode)
	assert.Equal(t, int64(200), a.Result.Explored)
	assert.Equal(t, counts(a), counts(b))
	assert.NotEqual(t, a.RunID, b.RunID)
}

// TestRun_IdempotentExhaustive repeats exhaustive runs: identical attractors,
// counts and fractions every time, for both strategies.
func TestRun_IdempotentExhaustive(t *testing.T) {
	def := ring(t, 10)
	for _, strategy := range []config.Strategy{config.StrategyTrajectory, config.StrategyGraph} {
		cfg := cfgWith(strategy, func(c *config.Config) { c.Workers = 3 })
		a, err := engine.Run(context.Background(), def, cfg)
		require.NoError(t, err, strategy)
		b, err := engine.Run(context.Background(), def, cfg)
		require.NoError(t, err, strategy)

		assert.Equal(t, basin.Exhaustive, a.Result.Mode, strategy)
		assert.Equal(t, int64(1024), a.Result.Explored, strategy)
		assert.Equal(t, counts(a), counts(b), strategy)
		require.Len(t, b.Result.Entries, len(a.Result.Entries))
		for i := range a.Result.Entries {
			assert.Equal(t, a.Result.Entries[i].Fraction, b.Result.Entries[i].Fraction, strategy)
		}
	}
}

// TestRun_FullSampleMatchesExhaustive samples every state of a small network.
func TestRun_FullSampleMatchesExhaustive(t *testing.T) {
	cfg := cfgWith(config.StrategyTrajectory, func(c *config.Config) {
		c.ExhaustiveThresholdBits = 2
		c.SampleSize = 8
	})
	rep, err := engine.Run(context.Background(), threeNode(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, basin.Sampled, rep.Result.Mode)
	assert.Equal(t, threeNodeBasins, counts(rep))
}

// TestRun_SampleSizeTooLarge fails before any trace runs.
func TestRun_SampleSizeTooLarge(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := cfgWith(config.StrategyTrajectory, func(c *config.Config) {
		c.ExhaustiveThresholdBits = 2
		c.SampleSize = 9
	})
	rc, err := engine.NewRunContext(threeNode(t), cfg, engine.WithRegisterer(reg))
	require.NoError(t, err)
	_, err = rc.Run(context.Background())
	assert.ErrorIs(t, err, initstate.ErrSampleSize)
	assert.Zero(t, testutil.ToFloat64(rc.Metrics.TracesTotal))
}

// TestRun_GraphSampledUnresolved reports origins whose chain leaves the sampled graph.
func TestRun_GraphSampledUnresolved(t *testing.T) {
	def := ring(t, 16)
	base := func(c *config.Config) {
		c.ExhaustiveThresholdBits = 8
		c.SampleSize = 50
		c.RandomSeed = 5
	}
	open, err := engine.Run(context.Background(), def, cfgWith(config.StrategyGraph, base))
	require.NoError(t, err)
	assert.Equal(t, basin.Sampled, open.Result.Mode)
	assert.Equal(t, int64(50), open.Result.Explored)
	assert.Equal(t, open.Result.Explored, open.Result.Resolved()+int64(open.Unresolved()))
	assert.Positive(t, open.Unresolved())

	data, err := json.Marshal(open)
	require.NoError(t, err)
	var encoded struct {
		Result struct {
			Unresolved []struct {
				Origin string `json:"origin"`
				Reason string `json:"reason"`
			} `json:"unresolved"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &encoded))
	require.Len(t, encoded.Result.Unresolved, open.Unresolved())
	for _, u := range encoded.Result.Unresolved {
		assert.Len(t, u.Origin, 16)
		assert.Contains(t, u.Reason, "leaves the graph")
	}

	closed, err := engine.Run(context.Background(), def, cfgWith(config.StrategyGraph, base, func(c *config.Config) { c.Closure = true }))
	require.NoError(t, err)
	assert.Zero(t, closed.Unresolved())
	assert.Equal(t, int64(50), closed.Result.Resolved())

	traced, err := engine.Run(context.Background(), def, cfgWith(config.StrategyTrajectory, base))
	require.NoError(t, err)
	assert.Equal(t, counts(traced), counts(closed))
}

// TestRun_Metrics checks the collectors on a private registry.
func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rc, err := engine.NewRunContext(threeNode(t), cfgWith(config.StrategyTrajectory), engine.WithRegisterer(reg))
	require.NoError(t, err)
	_, err = rc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8.0, testutil.ToFloat64(rc.Metrics.TracesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(rc.Metrics.Attractors.WithLabelValues("fixed_point")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rc.Metrics.Attractors.WithLabelValues("cycle")))
	n, err := testutil.GatherAndCount(reg, "boolnet_trajectory_traces_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestRun_Logging emits structured start and finish records.
func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := engine.Run(context.Background(), threeNode(t), cfgWith(config.StrategyGraph), engine.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "attractor discovered")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "run_id=")
}

// TestRun_Errors covers cancellation, trajectory bounds and bad input.
func TestRun_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Run(ctx, threeNode(t), cfgWith(config.StrategyTrajectory))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = engine.Run(ctx, threeNode(t), cfgWith(config.StrategyGraph))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = engine.Run(context.Background(), threeNode(t), cfgWith(config.StrategyTrajectory, func(c *config.Config) { c.MaxTrajectory = 2 }))
	assert.ErrorIs(t, err, trajectory.ErrMaxSteps)

	_, err = engine.Run(context.Background(), nil, config.Default())
	assert.ErrorIs(t, err, engine.ErrDefinitionNil)

	_, err = engine.Run(context.Background(), threeNode(t), cfgWith("magic"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

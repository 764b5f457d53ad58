package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/basin"
	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/initstate"
	"github.com/katalvlaran/boolnet/network"
	"github.com/katalvlaran/boolnet/state"
	"github.com/katalvlaran/boolnet/stg"
	"github.com/katalvlaran/boolnet/trajectory"
)

// ErrUnknownStrategy is returned for a strategy other than trajectory or graph.
var ErrUnknownStrategy = errors.New("engine: unknown strategy")

// Run analyses def under cfg in a fresh RunContext.
func Run(ctx context.Context, def *network.Definition, cfg config.Config, opts ...Option) (*Report, error) {
	rc, err := NewRunContext(def, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return rc.Run(ctx)
}

// Run executes the configured strategy and finalizes the registry.
// A RunContext is meant to be run once; a second Run adds to the same registry.
func (rc *RunContext) Run(ctx context.Context) (*Report, error) {
	cfg := rc.Config
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	start := time.Now()

	gen, err := initstate.Generate(rc.Def.Len(), initstate.Auto,
		initstate.WithThreshold(cfg.ExhaustiveThresholdBits),
		initstate.WithSampleSize(cfg.SampleSize),
		initstate.WithSeed(cfg.RandomSeed),
	)
	if err != nil {
		return nil, fmt.Errorf("engine: initial states: %w", err)
	}
	mode := basin.Sampled
	if gen.Exhaustive() {
		mode = basin.Exhaustive
	}
	rc.Logger.Info("run started",
		"nodes", rc.Def.Len(),
		"strategy", cfg.Strategy,
		"mode", mode,
		"initial_states", gen.Len(),
	)

	switch cfg.Strategy {
	case config.StrategyTrajectory:
		err = rc.runTrajectories(ctx, gen)
	case config.StrategyGraph:
		err = rc.runGraph(ctx, gen)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
	if err != nil {
		rc.Logger.Error("run failed", "err", err)
		return nil, err
	}

	res, err := rc.Registry.Finalize(mode)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	elapsed := time.Since(start)
	rc.observe(res, elapsed)

	return &Report{
		RunID:    rc.ID.String(),
		Strategy: cfg.Strategy,
		Nodes:    rc.Def.Names(),
		Result:   res,
		Activity: basin.NodeActivity(res),
		Elapsed:  elapsed,
	}, nil
}

// runTrajectories traces every initial state, up to Workers at a time.
func (rc *RunContext) runTrajectories(ctx context.Context, gen initstate.Generator) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.Config.Workers)
	for s, ok := gen.Next(); ok; s, ok = gen.Next() {
		if gctx.Err() != nil {
			break
		}
		s := s
		g.Go(func() error { return rc.traceOne(gctx, s) })
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (rc *RunContext) traceOne(ctx context.Context, s state.State) error {
	res, err := trajectory.Trace(rc.Def, s,
		trajectory.WithContext(ctx),
		trajectory.WithMaxSteps(rc.Config.MaxTrajectory),
	)
	if err != nil {
		return fmt.Errorf("engine: trace %s: %w", s, err)
	}
	rc.Metrics.RecordTrace(len(res.Path), res.TransientLength())

	return rc.register(res.Attractor)
}

// runGraph builds the STG over the initial states and labels each of them.
func (rc *RunContext) runGraph(ctx context.Context, gen initstate.Generator) error {
	opts := []stg.Option{stg.WithContext(ctx)}
	if rc.Config.Closure {
		opts = append(opts, stg.WithClosure())
	}
	g, err := stg.Build(rc.Def, gen, opts...)
	if err != nil {
		return fmt.Errorf("engine: build graph: %w", err)
	}
	rc.Metrics.GraphVertices.Set(float64(g.Len()))
	rc.Logger.Debug("graph built", "vertices", g.Len(), "edges", g.EdgeCount(), "closed", g.Closed())

	atts, err := stg.FindAttractors(g)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	basins, err := stg.ComputeBasins(g, atts)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	for _, src := range g.Sources() {
		a, err := basins.AttractorOf(src)
		var unreachable *stg.UnreachableAttractorError
		switch {
		case errors.As(err, &unreachable):
			if err = rc.Registry.MarkUnresolved(src, unreachable); err != nil {
				return fmt.Errorf("engine: %w", err)
			}
			rc.Metrics.UnresolvedTotal.Inc()
			rc.Logger.Debug("unresolved initial state", "state", src.String(), "exit", unreachable.Exit.String())
			continue
		case err != nil:
			return fmt.Errorf("engine: %w", err)
		}
		if err = rc.register(a); err != nil {
			return err
		}
	}

	return nil
}

func (rc *RunContext) register(a attractor.Attractor) error {
	count, err := rc.Registry.Register(a)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if count == 1 {
		rc.Logger.Debug("attractor discovered", "kind", a.Kind.String(), "length", a.Len(), "key", string(a.Key()))
	}

	return nil
}

func (rc *RunContext) observe(res basin.Result, elapsed time.Duration) {
	var fixed, cycles int
	for _, e := range res.Entries {
		if e.Attractor.Kind == attractor.FixedPoint {
			fixed++
		} else {
			cycles++
		}
	}
	rc.Metrics.Attractors.WithLabelValues(attractor.FixedPoint.String()).Set(float64(fixed))
	rc.Metrics.Attractors.WithLabelValues(attractor.Cycle.String()).Set(float64(cycles))
	rc.Metrics.RunDuration.WithLabelValues(string(rc.Config.Strategy), res.Mode.String()).Observe(elapsed.Seconds())

	if n := len(res.Unresolved); n > 0 {
		rc.Logger.Warn("initial states without a reachable attractor", "unresolved", n, "explored", res.Explored)
	}
	rc.Logger.Info("run finished",
		"attractors", len(res.Entries),
		"fixed_points", fixed,
		"cycles", cycles,
		"explored", res.Explored,
		"elapsed", elapsed,
	)
}

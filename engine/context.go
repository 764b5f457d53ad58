package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/boolnet/basin"
	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/network"
)

// ErrDefinitionNil is returned if a nil network definition is passed.
var ErrDefinitionNil = errors.New("engine: network definition is nil")

// Option configures a RunContext.
type Option func(*Options)

// Options holds the ambient dependencies of a run.
type Options struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Metrics    *Metrics
}

// DefaultOptions returns a discarding logger and unregistered metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
}

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers a fresh metrics set with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithMetrics reuses an existing metrics set, for several runs reporting to one registry.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// RunContext holds the state of one run.
type RunContext struct {
	ID       uuid.UUID
	Def      *network.Definition
	Config   config.Config
	Registry *basin.Registry
	Logger   *slog.Logger
	Metrics  *Metrics
}

// NewRunContext validates cfg and prepares an empty run.
func NewRunContext(def *network.Definition, cfg config.Config, opts ...Option) (*RunContext, error) {
	if def == nil {
		return nil, ErrDefinitionNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	reg, err := basin.NewRegistry(def.Len())
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	m := o.Metrics
	if m == nil {
		m = NewMetrics(o.Registerer)
	}
	id := uuid.New()

	return &RunContext{
		ID:       id,
		Def:      def,
		Config:   cfg,
		Registry: reg,
		Logger:   o.Logger.With("run_id", id.String()),
		Metrics:  m,
	}, nil
}

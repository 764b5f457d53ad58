package stg

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/boolnet/state"
)

// Sentinel errors for STG construction and analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("stg: graph is nil")

	// ErrNoSource is returned when Build receives no states.
	ErrNoSource = errors.New("stg: no source states")

	// ErrWidthMismatch is returned when states of different widths meet.
	ErrWidthMismatch = errors.New("stg: state width mismatch")

	// ErrTooLarge is returned when the graph outgrows WithMaxVertices.
	ErrTooLarge = errors.New("stg: vertex limit exceeded")

	// ErrAttractorMissing is returned when a walk closes a cycle that is not
	// among the attractors handed to ComputeBasins.
	ErrAttractorMissing = errors.New("stg: cycle missing from attractor list")

	// ErrUnreachableAttractor is the sentinel behind *UnreachableAttractorError.
	ErrUnreachableAttractor = errors.New("stg: no attractor reachable within explored graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stg: invalid option supplied")
)

// UnreachableAttractorError reports a vertex whose successor chain reaches a
// frontier state, one that was never expanded, before reaching any attractor.
type UnreachableAttractorError struct {
	Node state.State
	Exit state.State
}

func (e *UnreachableAttractorError) Error() string {
	return fmt.Sprintf("stg: no attractor reachable from %s: successor chain leaves the graph at %s", e.Node, e.Exit)
}

// Unwrap lets errors.Is match ErrUnreachableAttractor.
func (e *UnreachableAttractorError) Unwrap() error { return ErrUnreachableAttractor }

// Stepper computes the synchronous successor of a state.
type Stepper interface {
	Apply(s state.State) (state.State, error)
}

// Source yields the states Build starts from. initstate generators satisfy it.
type Source interface {
	Next() (state.State, bool)
}

// Option configures Build.
type Option func(*Options)

// Options holds parameters for Build.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Closure expands frontier vertices until none remain.
	Closure bool

	// MaxVertices, if > 0, bounds the vertex count.
	MaxVertices int

	err error
}

// DefaultOptions returns background context, no closure and no vertex limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithClosure makes Build expand every reachable state.
func WithClosure() Option {
	return func(o *Options) { o.Closure = true }
}

// WithMaxVertices bounds graph size; 0 disables the bound, negative is invalid.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVertices cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVertices = n
	}
}

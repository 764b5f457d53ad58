package trajectory

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/state"
)

// Sentinel errors for trajectory tracing.
var (
	// ErrStepperNil is returned if a nil Stepper is passed.
	ErrStepperNil = errors.New("trajectory: stepper is nil")

	// ErrInitialEmpty is returned for a zero-width initial state.
	ErrInitialEmpty = errors.New("trajectory: initial state is empty")

	// ErrMaxSteps is returned when a trace exceeds WithMaxSteps.
	ErrMaxSteps = errors.New("trajectory: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trajectory: invalid option supplied")
)

// Stepper computes the synchronous successor of a state.
// *network.Definition satisfies it.
type Stepper interface {
	Apply(s state.State) (state.State, error)
}

// StepFunc adapts a plain function to Stepper.
type StepFunc func(state.State) (state.State, error)

// Apply calls f(s).
func (f StepFunc) Apply(s state.State) (state.State, error) { return f(s) }

// Option configures Trace.
type Option func(*Options)

// Options holds parameters and callbacks for Trace.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of distinct states visited.
	MaxSteps int

	// OnStep is called for every state appended to the path, with its index.
	// Returning an error aborts the trace.
	OnStep func(s state.State, index int) error

	err error
}

// DefaultOptions returns background context, no step ceiling and a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(state.State, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the trace length.
//
//	n > 0: at most n distinct states
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a per-state callback.
func WithOnStep(fn func(s state.State, index int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result is the outcome of one trace.
//   - Path: every distinct state visited, in order, starting with the initial state.
//   - Entry: index in Path of the first attractor state reached.
//   - Attractor: the canonical attractor Path[Entry:] forms.
type Result struct {
	Path      []state.State
	Entry     int
	Attractor attractor.Attractor
}

// Initial returns the state the trace started from.
func (r Result) Initial() state.State { return r.Path[0] }

// Transient returns the states visited before the attractor was entered.
func (r Result) Transient() []state.State { return r.Path[:r.Entry] }

// TransientLength is the number of steps taken before entering the attractor.
func (r Result) TransientLength() int { return r.Entry }

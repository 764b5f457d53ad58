package trajectory

import (
	"fmt"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/state"
)

// tracer encapsulates mutable trace state.
type tracer struct {
	step Stepper
	opts Options
	seen map[state.Key]int
	path []state.State
}

// Trace runs step from initial until a state repeats and returns the path
// together with the canonical attractor it ends in.
// Returns ErrStepperNil, ErrInitialEmpty, ErrOptionViolation or ErrMaxSteps for
// invalid use, ctx.Err() on cancellation, and Stepper or OnStep errors wrapped.
func Trace(step Stepper, initial state.State, opts ...Option) (Result, error) {
	if step == nil {
		return Result{}, ErrStepperNil
	}
	if initial.IsZero() {
		return Result{}, ErrInitialEmpty
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	t := &tracer{
		step: step,
		opts: o,
		seen: make(map[state.Key]int),
	}
	entry, err := t.loop(initial)
	if err != nil {
		return Result{}, err
	}
	a, err := attractor.Canonicalize(t.path[entry:])
	if err != nil {
		return Result{}, fmt.Errorf("trajectory: canonicalize from %s: %w", initial, err)
	}

	return Result{Path: t.path, Entry: entry, Attractor: a}, nil
}

// loop appends states until one repeats and returns the index of its first occurrence.
func (t *tracer) loop(cur state.State) (int, error) {
	for {
		select {
		case <-t.opts.Ctx.Done():
			return 0, t.opts.Ctx.Err()
		default:
		}

		if at, ok := t.seen[cur.Key()]; ok {
			return at, nil
		}
		if err := t.visit(cur); err != nil {
			return 0, err
		}
		if t.opts.MaxSteps > 0 && len(t.path) > t.opts.MaxSteps {
			return 0, fmt.Errorf("%w: %d steps from %s", ErrMaxSteps, t.opts.MaxSteps, t.path[0])
		}

		next, err := t.step.Apply(cur)
		if err != nil {
			return 0, fmt.Errorf("trajectory: step from %s: %w", cur, err)
		}
		cur = next
	}
}

// visit records cur in the path and calls OnStep.
func (t *tracer) visit(cur state.State) error {
	idx := len(t.path)
	t.seen[cur.Key()] = idx
	t.path = append(t.path, cur)
	if err := t.opts.OnStep(cur, idx); err != nil {
		return fmt.Errorf("trajectory: OnStep error at %s: %w", cur, err)
	}

	return nil
}

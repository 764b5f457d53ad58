// Package trajectory follows a single initial state under synchronous update
// until a state repeats, and reports the attractor it fell into.
//
// What:
//
//   - Trace(step, initial, opts...) applies step repeatedly from initial,
//     remembering the position of every state seen in a hash map.
//   - The first state seen twice is the cycle entry; the states from its first
//     occurrence to the end of the path form the attractor, canonicalized.
//   - Everything before the entry is the transient.
//
// Why:
//
//   - The state space is finite and the update map is deterministic, so every
//     trajectory reaches a repeat within 2^N steps.
//   - A hash map keyed by state.Key gives O(1) membership per step instead of
//     a linear scan of the path.
//
// Complexity:
//
//   - Time:   O(L) Apply calls, L = transient + cycle length (≤ 2^N).
//   - Memory: O(L) states.
//
// Options:
//
//   - WithContext: cancellation, checked once per step.
//   - WithMaxSteps: optional hard ceiling; exceeding it returns ErrMaxSteps.
//     The default 0 means no ceiling beyond the 2^N bound.
//   - WithOnStep: callback per visited state; an error aborts the trace.
//
// Errors:
//
//   - ErrStepperNil, ErrInitialEmpty, ErrOptionViolation, ErrMaxSteps.
//   - Any error returned by the Stepper, wrapped with the failing state.
package trajectory

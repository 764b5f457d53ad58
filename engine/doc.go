// Package engine runs a complete attractor and basin analysis.
//
// A RunContext owns everything one run needs: its ID, the compiled network,
// the run configuration, a fresh basin registry, a logger and a metrics set.
// Nothing is shared between runs through package state, so independent runs
// may proceed concurrently.
//
// Run picks the initial states (exhaustive up to exhaustive_threshold_bits,
// sampled above) and then follows one of two strategies:
//
//   - trajectory: trace every initial state to its attractor. With workers > 1
//     the traces run on an errgroup limited to that many goroutines; the
//     registry's mutex is the only shared lock.
//   - graph: build the state transition graph over the initial states
//     (optionally closed under the update map), find its cycles and label
//     every vertex with its basin. Vertices whose successor chain leaves the
//     graph are reported as unresolved, never guessed.
//
// Both strategies produce identical attractor keys and basin counts over an
// exhaustive domain. The Report carries the mode (exhaustive or sampled)
// alongside the fractions.
package engine

// Package basin aggregates attractor discoveries into basin statistics.
//
// A Registry collects one registration per explored initial state. It is safe
// for concurrent use: tracers running on separate goroutines may call
// Register and MarkUnresolved at will. Records are kept in a red-black tree
// ordered by attractor key, so iteration order (and therefore every report)
// is deterministic regardless of discovery order.
//
// Finalize turns the registry into a Result:
//
//   - Mode Exhaustive: the explored domain was all 2^N states, Fraction is
//     Count / 2^N and the counts must sum to 2^N exactly.
//   - Mode Sampled: the domain was a sample, Fraction is Count / Explored and
//     is an estimate. The mode travels with the numbers so the two are never
//     confused.
//
// Unresolved origins (initial states whose attractor could not be reached
// inside an explored graph) are counted in Explored but in no Entry.
package basin

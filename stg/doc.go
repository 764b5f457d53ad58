// Package stg builds the state transition graph of a synchronous Boolean
// network and analyses it.
//
// The STG of a deterministic network is a functional graph: every expanded
// vertex has exactly one outgoing edge, to its synchronous successor. That
// shape keeps the analysis linear.
//
// What:
//
//   - Build inserts every source state, its successor and the edge between
//     them. Successors that were never expanded themselves form the frontier.
//     WithClosure keeps expanding the frontier until the vertex set is closed
//     under the update map (the reachable STG of the sources).
//   - FindAttractors walks the graph with three-colour marking and reports
//     every cycle (self-loops are fixed points) as a canonical attractor,
//     sorted by key.
//   - ComputeBasins assigns each vertex to the attractor its successor chain
//     reaches, memoizing every walk so each vertex is resolved once.
//
// Complexity:
//
//   - Build:          O(V) Apply calls, O(V) memory.
//   - FindAttractors: O(V + E + C log C) for C cycles.
//   - ComputeBasins:  O(V + E).
//
// Errors:
//
//   - ErrGraphNil, ErrNoSource, ErrWidthMismatch, ErrTooLarge, ErrOptionViolation.
//   - ErrAttractorMissing when a cycle in the graph is absent from the
//     attractor list given to ComputeBasins.
//   - *UnreachableAttractorError (wraps ErrUnreachableAttractor) for a vertex
//     whose chain leaves the explored graph. This is recoverable: the vertex
//     is reported as unresolved and the remaining vertices are still assigned.
package stg

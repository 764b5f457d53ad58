// Package attractor defines attractors of a synchronous Boolean network and
// their rotation-invariant canonical form.
//
// What:
//
//   - Attractor: a FixedPoint (one state S with F(S) = S) or a Cycle (k ≥ 2
//     distinct states, each the successor of the previous, the last wrapping
//     to the first).
//   - Canonicalize: rotates a discovered cycle to its minimal rotation under
//     state-key order, so one cycle entered at different phases yields one
//     Attractor and one Key.
//   - Key: the comma-joined "0101" renderings of the canonical sequence.
//
// Why rotations only:
//
//	A directed cycle A→B→C and its reversal C→B→A are different attractors:
//	they share a state set but not a successor relation. Only rotations are
//	equivalent, so unlike undirected cycle signatures no reversal is tried.
//
// Complexity:
//
//   - Canonicalize: O(L) via Booth's least-rotation algorithm (L = cycle length)
//   - Key:          O(L·N)
//
// Errors:
//
//   - ErrEmpty          no states were supplied
//   - ErrRepeatedState  the sequence repeats a state, so it is not a simple cycle
//   - ErrMixedWidth     states of different widths were supplied
package attractor

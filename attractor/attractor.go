package attractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/boolnet/state"
)

var (
	// ErrEmpty indicates Canonicalize received no states.
	ErrEmpty = errors.New("attractor: no states")

	// ErrRepeatedState indicates a cycle listed the same state twice.
	ErrRepeatedState = errors.New("attractor: repeated state in cycle")

	// ErrMixedWidth indicates the states do not share one width.
	ErrMixedWidth = errors.New("attractor: mixed state widths")
)

// Kind distinguishes fixed points from cycles.
type Kind int

const (
	FixedPoint Kind = iota // a single self-mapping state
	Cycle                  // two or more states visited in turn
)

// String returns "fixed_point" or "cycle".
func (k Kind) String() string {
	switch k {
	case FixedPoint:
		return "fixed_point"
	case Cycle:
		return "cycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText renders the kind for encoding/json.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Key identifies an attractor independently of the state it was entered at.
type Key string

// Attractor is a canonicalized fixed point or cycle.
// States[0] is the member with the smallest key; States[i+1] is the successor
// of States[i] and States[0] the successor of the last member.
type Attractor struct {
	Kind   Kind          `json:"kind"`
	States []state.State `json:"states"`
}

// Canonicalize builds the Attractor formed by states, listed in successor
// order starting anywhere on the cycle. The input slice is not modified.
func Canonicalize(states []state.State) (Attractor, error) {
	if len(states) == 0 {
		return Attractor{}, ErrEmpty
	}
	n := states[0].Len()
	keys := make([]state.Key, len(states))
	seen := make(map[state.Key]struct{}, len(states))
	for i, s := range states {
		if s.Len() != n {
			return Attractor{}, fmt.Errorf("%w: %d and %d", ErrMixedWidth, n, s.Len())
		}
		k := s.Key()
		if _, dup := seen[k]; dup {
			return Attractor{}, fmt.Errorf("%w: %s", ErrRepeatedState, s)
		}
		seen[k] = struct{}{}
		keys[i] = k
	}

	if len(states) == 1 {
		return Attractor{Kind: FixedPoint, States: []state.State{states[0]}}, nil
	}

	shift := MinimalRotationOffset(keys)
	out := make([]state.State, len(states))
	for i := range out {
		out[i] = states[(shift+i)%len(states)]
	}

	return Attractor{Kind: Cycle, States: out}, nil
}

// Len is the number of member states.
func (a Attractor) Len() int { return len(a.States) }

// Width is N, or 0 for the zero Attractor.
func (a Attractor) Width() int {
	if len(a.States) == 0 {
		return 0
	}

	return a.States[0].Len()
}

// Key renders the canonical sequence as "s0,s1,...". Because every member
// has the same width, the rendering is unambiguous.
func (a Attractor) Key() Key {
	parts := make([]string, len(a.States))
	for i, s := range a.States {
		parts[i] = s.String()
	}

	return Key(strings.Join(parts, ","))
}

// Contains reports whether s is a member of a.
func (a Attractor) Contains(s state.State) bool {
	for _, m := range a.States {
		if m.Equal(s) {
			return true
		}
	}

	return false
}

// Successor returns the member that follows s on the attractor.
func (a Attractor) Successor(s state.State) (state.State, bool) {
	for i, m := range a.States {
		if m.Equal(s) {
			return a.States[(i+1)%len(a.States)], true
		}
	}

	return state.State{}, false
}

// Activity returns, per node, the fraction of member states in which the node is on.
func (a Attractor) Activity() []float64 {
	w := a.Width()
	out := make([]float64, w)
	if w == 0 {
		return out
	}
	for _, s := range a.States {
		for i := 0; i < w; i++ {
			if s.Bit(i) {
				out[i]++
			}
		}
	}
	for i := range out {
		out[i] /= float64(len(a.States))
	}

	return out
}

// String renders the attractor as "kind: s0->s1->...".
func (a Attractor) String() string {
	parts := make([]string, len(a.States))
	for i, s := range a.States {
		parts[i] = s.String()
	}

	return a.Kind.String() + ": " + strings.Join(parts, "->")
}

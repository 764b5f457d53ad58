package basin

import (
	"fmt"

	"github.com/katalvlaran/boolnet/attractor"
)

// Mode tells how a Result's fractions were obtained.
type Mode int

const (
	Exhaustive Mode = iota // every state of the 2^N space explored
	Sampled                // a sample; fractions are estimates
)

// String returns "exhaustive" or "sampled".
func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Sampled:
		return "sampled"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText renders the mode name in JSON and YAML.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Entry is one attractor with its basin.
type Entry struct {
	Key       attractor.Key       `json:"key"`
	Attractor attractor.Attractor `json:"attractor"`
	Count     int64               `json:"count"`
	Fraction  float64             `json:"fraction"`
}

// Result is the finalized outcome of a run.
type Result struct {
	Mode       Mode         `json:"mode"`
	Nodes      int          `json:"nodes"`
	Explored   int64        `json:"explored"`
	Entries    []Entry      `json:"attractors"`
	Unresolved []Unresolved `json:"unresolved,omitempty"`
}

// Keys returns the attractor keys in ascending order.
func (r Result) Keys() []attractor.Key {
	out := make([]attractor.Key, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Key
	}

	return out
}

// Find returns the entry for key.
func (r Result) Find(key attractor.Key) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Key == key {
			return e, true
		}
	}

	return Entry{}, false
}

// Resolved is the sum of all entry counts.
func (r Result) Resolved() int64 {
	var total int64
	for _, e := range r.Entries {
		total += e.Count
	}

	return total
}

// NodeActivity returns, per node, the basin-weighted mean value of that node
// over the attractors: Σ Fraction × (share of attractor states with the node on).
func NodeActivity(r Result) []float64 {
	out := make([]float64, r.Nodes)
	for _, e := range r.Entries {
		for i, v := range e.Attractor.Activity() {
			out[i] += e.Fraction * v
		}
	}

	return out
}

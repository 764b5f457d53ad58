package basin

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/state"
)

// Sentinel errors for basin aggregation.
var (
	// ErrBadWidth indicates a non-positive node count.
	ErrBadWidth = errors.New("basin: node count must be positive")

	// ErrWidthMismatch indicates an attractor or state of the wrong width.
	ErrWidthMismatch = errors.New("basin: width mismatch")

	// ErrBadCount indicates a non-positive registration count.
	ErrBadCount = errors.New("basin: count must be positive")

	// ErrIncomplete indicates an exhaustive result whose counts do not cover 2^N.
	ErrIncomplete = errors.New("basin: exhaustive domain not fully covered")

	// ErrEmpty indicates Finalize on a registry with nothing explored.
	ErrEmpty = errors.New("basin: nothing explored")
)

// record is the tree value for one attractor.
type record struct {
	attractor attractor.Attractor
	count     int64
}

// Unresolved is an initial state whose attractor could not be determined.
type Unresolved struct {
	Origin state.State
	Err    error
}

// MarshalJSON renders the origin with the cause's message as "reason".
func (u Unresolved) MarshalJSON() ([]byte, error) {
	out := struct {
		Origin state.State `json:"origin"`
		Reason string      `json:"reason,omitempty"`
	}{Origin: u.Origin}
	if u.Err != nil {
		out.Reason = u.Err.Error()
	}

	return json.Marshal(out)
}

// Registry accumulates basin counts per canonical attractor.
type Registry struct {
	mu         sync.Mutex
	n          int
	tree       *redblacktree.Tree // attractor.Key -> *record
	explored   int64
	unresolved []Unresolved
}

// NewRegistry returns an empty registry for n-node networks.
func NewRegistry(n int) (*Registry, error) {
	if n <= 0 {
		return nil, ErrBadWidth
	}

	return &Registry{
		n: n,
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(attractor.Key), b.(attractor.Key))
		}),
	}, nil
}

// Width returns N.
func (r *Registry) Width() int { return r.n }

// Register records one initial state reaching a and returns a's updated count.
func (r *Registry) Register(a attractor.Attractor) (int64, error) {
	return r.RegisterN(a, 1)
}

// RegisterN records k initial states reaching a and returns a's updated count.
func (r *Registry) RegisterN(a attractor.Attractor, k int64) (int64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, k)
	}
	if a.Width() != r.n {
		return 0, fmt.Errorf("%w: attractor %s has width %d, want %d", ErrWidthMismatch, a.Key(), a.Width(), r.n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := a.Key()
	rec := r.lookup(key)
	if rec == nil {
		rec = &record{attractor: a}
		r.tree.Put(key, rec)
	}
	rec.count += k
	r.explored += k

	return rec.count, nil
}

// MarkUnresolved records an explored initial state with no known attractor.
func (r *Registry) MarkUnresolved(origin state.State, cause error) error {
	if origin.Len() != r.n {
		return fmt.Errorf("%w: state %s has width %d, want %d", ErrWidthMismatch, origin, origin.Len(), r.n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.unresolved = append(r.unresolved, Unresolved{Origin: origin, Err: cause})
	r.explored++

	return nil
}

// Lookup returns the attractor registered under key and its current count.
func (r *Registry) Lookup(key attractor.Key) (attractor.Attractor, int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.lookup(key)
	if rec == nil {
		return attractor.Attractor{}, 0, false
	}

	return rec.attractor, rec.count, true
}

// Len returns the number of distinct attractors seen so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tree.Size()
}

// Explored returns the number of initial states registered, resolved or not.
func (r *Registry) Explored() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.explored
}

func (r *Registry) lookup(key attractor.Key) *record {
	v, ok := r.tree.Get(key)
	if !ok {
		return nil
	}

	return v.(*record)
}

// Finalize computes per-attractor fractions under mode. The registry stays usable.
// Exhaustive mode requires N ≤ 62, no unresolved origins and counts summing to 2^N;
// otherwise ErrIncomplete.
func (r *Registry) Finalize(mode Mode) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.explored == 0 {
		return Result{}, ErrEmpty
	}
	denom := float64(r.explored)
	if mode == Exhaustive {
		if r.n > 62 {
			return Result{}, fmt.Errorf("%w: 2^%d states cannot be enumerated", ErrIncomplete, r.n)
		}
		space := int64(1) << uint(r.n)
		if len(r.unresolved) > 0 || r.explored != space {
			return Result{}, fmt.Errorf("%w: explored %d of %d, %d unresolved",
				ErrIncomplete, r.explored, space, len(r.unresolved))
		}
		denom = float64(space)
	}

	res := Result{
		Mode:       mode,
		Nodes:      r.n,
		Explored:   r.explored,
		Entries:    make([]Entry, 0, r.tree.Size()),
		Unresolved: append([]Unresolved(nil), r.unresolved...),
	}
	it := r.tree.Iterator()
	for it.Next() {
		rec := it.Value().(*record)
		res.Entries = append(res.Entries, Entry{
			Key:       it.Key().(attractor.Key),
			Attractor: rec.attractor,
			Count:     rec.count,
			Fraction:  float64(rec.count) / denom,
		})
	}

	return res, nil
}

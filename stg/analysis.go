package stg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/state"
)

// Vertex colours for FindAttractors.
const (
	white = iota // unvisited
	gray         // on the current walk
	black        // finished
)

// FindAttractors returns every cycle of g as a canonical attractor, sorted by key.
// Cycles are found by following each unvisited vertex's successor chain; a
// chain that runs into a gray vertex closes a new cycle, one that runs into
// a black or frontier vertex closes nothing.
func FindAttractors(g *Graph) ([]attractor.Attractor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	colour := make([]uint8, len(g.order))
	var path []int
	var out []attractor.Attractor
	for start := range g.order {
		if colour[start] != white {
			continue
		}
		path = path[:0]
		v := start
		for v != noEdge && colour[v] == white {
			colour[v] = gray
			path = append(path, v)
			v = g.succ[v]
		}
		if v != noEdge && colour[v] == gray {
			a, err := g.cycleFrom(path, v)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		for _, u := range path {
			colour[u] = black
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out, nil
}

// cycleFrom canonicalizes the suffix of path that starts at vertex at.
func (g *Graph) cycleFrom(path []int, at int) (attractor.Attractor, error) {
	idx := len(path) - 1
	for path[idx] != at {
		idx--
	}
	states := make([]state.State, 0, len(path)-idx)
	for _, u := range path[idx:] {
		states = append(states, g.order[u])
	}
	a, err := attractor.Canonicalize(states)
	if err != nil {
		return attractor.Attractor{}, fmt.Errorf("stg: cycle at %s: %w", g.order[at], err)
	}

	return a, nil
}

// Labels for ComputeBasins; values ≥ 0 index the attractor list.
const (
	unlabeled  = -1
	unresolved = -2
	onWalk     = -3
)

// Basins maps every vertex of a graph to its attractor.
type Basins struct {
	attractors []attractor.Attractor
	of         map[state.Key]int
	exits      map[state.Key]*UnreachableAttractorError
	sizes      []int64
}

// ComputeBasins labels each vertex of g with the attractor its successor chain
// reaches. Each walk stops at the first already-labelled vertex and then labels
// the whole walk, so the total work is O(V + E).
//
// Vertices whose chain reaches a frontier vertex first are unresolved; they
// are reported through Unresolved and AttractorOf, not as an error.
// A chain closing a cycle absent from attractors fails with ErrAttractorMissing.
func ComputeBasins(g *Graph, attractors []attractor.Attractor) (*Basins, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	label := make([]int, len(g.order))
	for i := range label {
		label[i] = unlabeled
	}
	for ai, a := range attractors {
		for _, s := range a.States {
			if i, ok := g.index[s.Key()]; ok {
				label[i] = ai
			}
		}
	}

	b := &Basins{
		attractors: append([]attractor.Attractor(nil), attractors...),
		of:         make(map[state.Key]int, len(g.order)),
		exits:      make(map[state.Key]*UnreachableAttractorError),
		sizes:      make([]int64, len(attractors)),
	}
	exitOf := make(map[int]int) // unresolved vertex -> frontier vertex its chain hits

	var walk []int
	for start := range g.order {
		if label[start] != unlabeled {
			continue
		}
		walk = walk[:0]
		v := start
		for v != noEdge && label[v] == unlabeled {
			label[v] = onWalk
			walk = append(walk, v)
			v = g.succ[v]
		}

		switch {
		case v != noEdge && label[v] == onWalk:
			return nil, fmt.Errorf("%w: cycle through %s", ErrAttractorMissing, g.order[v])
		case v == noEdge || label[v] == unresolved:
			// the last walk vertex is the frontier when v == noEdge
			exit := walk[len(walk)-1]
			if v != noEdge {
				exit = exitOf[v]
			}
			for _, u := range walk {
				label[u] = unresolved
				exitOf[u] = exit
			}
		default:
			for _, u := range walk {
				label[u] = label[v]
			}
		}
	}

	for i, l := range label {
		key := g.order[i].Key()
		if l == unresolved {
			b.exits[key] = &UnreachableAttractorError{Node: g.order[i], Exit: g.order[exitOf[i]]}
			continue
		}
		b.of[key] = l
		b.sizes[l]++
	}

	return b, nil
}

// AttractorOf returns the attractor s belongs to. For an unresolved vertex the
// error is its *UnreachableAttractorError; for a state outside the graph it is
// ErrUnreachableAttractor wrapped with the state.
func (b *Basins) AttractorOf(s state.State) (attractor.Attractor, error) {
	if i, ok := b.of[s.Key()]; ok {
		return b.attractors[i], nil
	}
	if e, ok := b.exits[s.Key()]; ok {
		return attractor.Attractor{}, e
	}

	return attractor.Attractor{}, fmt.Errorf("%w: %s is not a vertex", ErrUnreachableAttractor, s)
}

// Size returns the number of vertices in the basin of attractors[i].
func (b *Basins) Size(i int) int64 {
	if i < 0 || i >= len(b.sizes) {
		return 0
	}

	return b.sizes[i]
}

// Attractors returns the attractor list the basins were computed against.
func (b *Basins) Attractors() []attractor.Attractor {
	return append([]attractor.Attractor(nil), b.attractors...)
}

// Unresolved returns the unresolved vertices' errors ordered by state key.
func (b *Basins) Unresolved() []*UnreachableAttractorError {
	out := make([]*UnreachableAttractorError, 0, len(b.exits))
	for _, e := range b.exits {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node.Key() < out[j].Node.Key() })

	return out
}

package stg

import (
	"fmt"

	"github.com/katalvlaran/boolnet/state"
)

const noEdge = -1

// Graph is a state transition graph with at most one outgoing edge per vertex.
// Vertices are kept in insertion order; succ[i] is the position of vertex i's
// successor, or noEdge for a frontier vertex.
type Graph struct {
	n        int
	order    []state.State
	index    map[state.Key]int
	succ     []int
	isSource []bool
	sources  int
	edges    int
}

func newGraph(n int) *Graph {
	return &Graph{n: n, index: make(map[state.Key]int)}
}

// Build expands every state src yields and, with WithClosure, every state
// reachable from them.
func Build(step Stepper, src Source, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var g *Graph
	for s, ok := src.Next(); ok; s, ok = src.Next() {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if g == nil {
			g = newGraph(s.Len())
		}
		i, err := g.add(s, o.MaxVertices)
		if err != nil {
			return nil, err
		}
		if !g.isSource[i] {
			g.isSource[i] = true
			g.sources++
		}
		if err = g.expand(step, i, o.MaxVertices); err != nil {
			return nil, err
		}
	}
	if g == nil {
		return nil, ErrNoSource
	}

	if o.Closure {
		// expand appends, so the loop also reaches vertices added along the way
		for i := 0; i < len(g.order); i++ {
			if g.succ[i] != noEdge {
				continue
			}
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			if err := g.expand(step, i, o.MaxVertices); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// add inserts s if new and returns its position.
func (g *Graph) add(s state.State, limit int) (int, error) {
	if s.Len() != g.n {
		return 0, fmt.Errorf("%w: %s has width %d, want %d", ErrWidthMismatch, s, s.Len(), g.n)
	}
	if i, ok := g.index[s.Key()]; ok {
		return i, nil
	}
	if limit > 0 && len(g.order) >= limit {
		return 0, fmt.Errorf("%w: %d", ErrTooLarge, limit)
	}
	i := len(g.order)
	g.index[s.Key()] = i
	g.order = append(g.order, s)
	g.succ = append(g.succ, noEdge)
	g.isSource = append(g.isSource, false)

	return i, nil
}

// expand adds the edge from vertex i to its successor.
func (g *Graph) expand(step Stepper, i int, limit int) error {
	if g.succ[i] != noEdge {
		return nil
	}
	next, err := step.Apply(g.order[i])
	if err != nil {
		return fmt.Errorf("stg: step from %s: %w", g.order[i], err)
	}
	j, err := g.add(next, limit)
	if err != nil {
		return err
	}
	g.succ[i] = j
	g.edges++

	return nil
}

// Width returns N.
func (g *Graph) Width() int { return g.n }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of edges, equal to the number of expanded vertices.
func (g *Graph) EdgeCount() int { return g.edges }

// Closed reports whether every vertex has been expanded.
func (g *Graph) Closed() bool { return g.edges == len(g.order) }

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []state.State {
	return append([]state.State(nil), g.order...)
}

// Sources returns the states Build was given, in first-seen order.
func (g *Graph) Sources() []state.State {
	out := make([]state.State, 0, g.sources)
	for i, ok := range g.isSource {
		if ok {
			out = append(out, g.order[i])
		}
	}

	return out
}

// Has reports whether s is a vertex.
func (g *Graph) Has(s state.State) bool {
	_, ok := g.index[s.Key()]
	return ok
}

// Successor returns the successor of s, or false if s is absent or unexpanded.
func (g *Graph) Successor(s state.State) (state.State, bool) {
	i, ok := g.index[s.Key()]
	if !ok || g.succ[i] == noEdge {
		return state.State{}, false
	}

	return g.order[g.succ[i]], true
}

// Frontier returns the vertices that were reached but never expanded.
func (g *Graph) Frontier() []state.State {
	var out []state.State
	for i, j := range g.succ {
		if j == noEdge {
			out = append(out, g.order[i])
		}
	}

	return out
}

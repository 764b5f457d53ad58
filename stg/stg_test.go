package stg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/initstate"
	"github.com/katalvlaran/boolnet/network"
	"github.com/katalvlaran/boolnet/state"
	"github.com/katalvlaran/boolnet/stg"
)

// listSource yields a fixed list of states.
type listSource struct{ states []state.State }

func (l *listSource) Next() (state.State, bool) {
	if len(l.states) == 0 {
		return state.State{}, false
	}
	s := l.states[0]
	l.states = l.states[1:]

	return s, true
}

func from(ss ...string) *listSource {
	l := &listSource{}
	for _, s := range ss {
		l.states = append(l.states, state.MustParse(s))
	}

	return l
}

func threeNode(t *testing.T) *network.Definition {
	t.Helper()
	def, err := network.Compile(nil, []string{"x0 & !x2", "x0 | x2", "!x1"})
	require.NoError(t, err)

	return def
}

func exhaustiveGraph(t *testing.T, def *network.Definition) *stg.Graph {
	t.Helper()
	gen, err := initstate.NewExhaustive(def.Len())
	require.NoError(t, err)
	g, err := stg.Build(def, gen)
	require.NoError(t, err)

	return g
}

// TestBuild_Exhaustive builds the full three-node STG.
func TestBuild_Exhaustive(t *testing.T) {
	g := exhaustiveGraph(t, threeNode(t))
	assert.Equal(t, 8, g.Len())
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.Closed())
	assert.Empty(t, g.Frontier())
	assert.Len(t, g.Sources(), 8)

	next, ok := g.Successor(state.MustParse("100"))
	require.True(t, ok)
	assert.Equal(t, "111", next.String())
}

// TestFindAttractors_ThreeNode finds the fixed point and the 4-cycle.
func TestFindAttractors_ThreeNode(t *testing.T) {
	g := exhaustiveGraph(t, threeNode(t))
	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)
	require.Len(t, atts, 2)
	assert.Equal(t, attractor.Key("000,001,011,010"), atts[0].Key())
	assert.Equal(t, attractor.Cycle, atts[0].Kind)
	assert.Equal(t, attractor.Key("110"), atts[1].Key())
	assert.Equal(t, attractor.FixedPoint, atts[1].Kind)
}

// TestComputeBasins_ThreeNode sizes basins 7 and 1.
func TestComputeBasins_ThreeNode(t *testing.T) {
	g := exhaustiveGraph(t, threeNode(t))
	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)
	b, err := stg.ComputeBasins(g, atts)
	require.NoError(t, err)

	assert.Equal(t, int64(7), b.Size(0))
	assert.Equal(t, int64(1), b.Size(1))
	assert.Equal(t, int64(0), b.Size(5))
	assert.Empty(t, b.Unresolved())

	a, err := b.AttractorOf(state.MustParse("101"))
	require.NoError(t, err)
	assert.Equal(t, atts[0].Key(), a.Key())
	assert.Len(t, b.Attractors(), 2)
}

// TestComputeBasins_Negation covers the single-node oscillator.
func TestComputeBasins_Negation(t *testing.T) {
	def, err := network.Compile(nil, []string{"not x0"})
	require.NoError(t, err)
	g := exhaustiveGraph(t, def)
	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, 2, atts[0].Len())

	b, err := stg.ComputeBasins(g, atts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.Size(0))
}

// TestBuild_Closure expands a single sampled source to its reachable set.
func TestBuild_Closure(t *testing.T) {
	g, err := stg.Build(threeNode(t), from("100"), stg.WithClosure())
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.True(t, g.Closed())
	assert.Len(t, g.Sources(), 1)

	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, attractor.Key("000,001,011,010"), atts[0].Key())
}

// TestComputeBasins_Unresolved reports vertices whose chain leaves the graph.
func TestComputeBasins_Unresolved(t *testing.T) {
	g, err := stg.Build(threeNode(t), from("100", "110"))
	require.NoError(t, err)
	// 100 -> 111 (frontier), 110 -> 110
	assert.Equal(t, 3, g.Len())
	assert.False(t, g.Closed())
	require.Len(t, g.Frontier(), 1)
	assert.Equal(t, "111", g.Frontier()[0].String())

	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)
	require.Len(t, atts, 1)

	b, err := stg.ComputeBasins(g, atts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.Size(0))

	un := b.Unresolved()
	require.Len(t, un, 2)
	assert.Equal(t, "100", un[0].Node.String())
	assert.Equal(t, "111", un[0].Exit.String())
	assert.Equal(t, "111", un[1].Exit.String())

	_, err = b.AttractorOf(state.MustParse("100"))
	var ue *stg.UnreachableAttractorError
	require.ErrorAs(t, err, &ue)
	assert.ErrorIs(t, err, stg.ErrUnreachableAttractor)
	assert.Equal(t, "111", ue.Exit.String())

	_, err = b.AttractorOf(state.MustParse("000"))
	assert.ErrorIs(t, err, stg.ErrUnreachableAttractor)
}

// TestComputeBasins_MissingAttractor refuses an incomplete attractor list.
func TestComputeBasins_MissingAttractor(t *testing.T) {
	g := exhaustiveGraph(t, threeNode(t))
	atts, err := stg.FindAttractors(g)
	require.NoError(t, err)

	_, err = stg.ComputeBasins(g, atts[1:])
	assert.ErrorIs(t, err, stg.ErrAttractorMissing)
}

// TestBuild_Errors covers empty input, width mismatch, limits, options and cancellation.
func TestBuild_Errors(t *testing.T) {
	def := threeNode(t)

	_, err := stg.Build(def, from())
	assert.ErrorIs(t, err, stg.ErrNoSource)

	_, err = stg.Build(def, from("100", "10"))
	assert.ErrorIs(t, err, stg.ErrWidthMismatch)

	_, err = stg.Build(def, from("100"), stg.WithClosure(), stg.WithMaxVertices(4))
	assert.ErrorIs(t, err, stg.ErrTooLarge)

	_, err = stg.Build(def, from("100"), stg.WithMaxVertices(-1))
	assert.ErrorIs(t, err, stg.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = stg.Build(def, from("100"), stg.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	failing := stepFunc(func(state.State) (state.State, error) { return state.State{}, boom })
	_, err = stg.Build(failing, from("1"))
	assert.ErrorIs(t, err, boom)

	_, err = stg.FindAttractors(nil)
	assert.ErrorIs(t, err, stg.ErrGraphNil)
	_, err = stg.ComputeBasins(nil, nil)
	assert.ErrorIs(t, err, stg.ErrGraphNil)
}

type stepFunc func(state.State) (state.State, error)

func (f stepFunc) Apply(s state.State) (state.State, error) { return f(s) }

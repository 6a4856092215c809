package fa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/fa"
)

// abStar builds an automaton for a·b* : 0 -a-> 1, 1 -b-> 1.
func abStar(t *testing.T) *fa.Adjacency {
	t.Helper()
	n := fa.NewNFA(2)
	require.NoError(t, n.MarkStart(0))
	require.NoError(t, n.MarkFinal(1))
	require.NoError(t, n.AddTransition(0, "a", 1))
	require.NoError(t, n.AddTransition(1, "b", 1))

	adj, err := fa.FromNFA(n)
	require.NoError(t, err)

	return adj
}

func TestFromNFA_BadState(t *testing.T) {
	n := fa.NewNFA(1)
	require.ErrorIs(t, n.MarkStart(1), fa.ErrBadState)
	require.ErrorIs(t, n.MarkFinal(-1), fa.ErrBadState)
	require.ErrorIs(t, n.AddTransition(0, "a", 3), fa.ErrBadState)

	_, err := fa.FromNFA(nil)
	require.ErrorIs(t, err, fa.ErrNilAutomaton)
}

func TestAccepts(t *testing.T) {
	adj := abStar(t)

	for _, tc := range []struct {
		word []core.Symbol
		want bool
	}{
		{[]core.Symbol{"a"}, true},
		{[]core.Symbol{"a", "b"}, true},
		{[]core.Symbol{"a", "b", "b", "b"}, true},
		{nil, false},
		{[]core.Symbol{"b"}, false},
		{[]core.Symbol{"a", "a"}, false},
		{[]core.Symbol{"a", "c"}, false}, // unknown symbol kills the branch
	} {
		assert.Equal(t, tc.want, adj.Accepts(tc.word), "word %v", tc.word)
	}
}

func TestAccepts_Nondeterministic(t *testing.T) {
	// Two a-branches from 0; only one reaches the final state with "ab".
	n := fa.NewNFA(4)
	require.NoError(t, n.MarkStart(0))
	require.NoError(t, n.MarkFinal(3))
	require.NoError(t, n.AddTransition(0, "a", 1))
	require.NoError(t, n.AddTransition(0, "a", 2))
	require.NoError(t, n.AddTransition(2, "b", 3))

	adj, err := fa.FromNFA(n)
	require.NoError(t, err)
	assert.True(t, adj.Accepts([]core.Symbol{"a", "b"}))
	assert.False(t, adj.Accepts([]core.Symbol{"a", "a"}))
}

func TestIsEmpty(t *testing.T) {
	adj := abStar(t)
	empty, err := adj.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	// No transition matrices at all: empty by convention.
	bare := fa.NewNFA(1)
	require.NoError(t, bare.MarkStart(0))
	require.NoError(t, bare.MarkFinal(0))
	adjBare, err := fa.FromNFA(bare)
	require.NoError(t, err)
	empty, err = adjBare.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	// Final state unreachable from start.
	n := fa.NewNFA(3)
	require.NoError(t, n.MarkStart(0))
	require.NoError(t, n.MarkFinal(2))
	require.NoError(t, n.AddTransition(1, "a", 2))
	adjUn, err := fa.FromNFA(n)
	require.NoError(t, err)
	empty, err = adjUn.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestFromGraph_DefaultsAndFilters(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(10, 20, "a"))
	require.NoError(t, g.AddEdge(20, 30, "b"))

	// Empty start/final: every node is both.
	adj, err := fa.FromGraph(g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, adj.States())
	assert.Equal(t, []int{0, 1, 2}, adj.StartStates())
	assert.Equal(t, []int{0, 1, 2}, adj.FinalStates())
	assert.Equal(t, 10, adj.ID(0))
	assert.Equal(t, 30, adj.ID(2))

	// Unknown IDs are silently dropped from the requested sets.
	adj, err = fa.FromGraph(g, []int{10, 999}, []int{30})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, adj.StartStates())
	assert.Equal(t, []int{2}, adj.FinalStates())
	assert.True(t, adj.Accepts([]core.Symbol{"a", "b"}))
	assert.False(t, adj.Accepts([]core.Symbol{"a"}))

	_, err = fa.FromGraph(nil, nil, nil)
	require.ErrorIs(t, err, fa.ErrNilGraph)
}

func TestTransitiveClosure_Reflexive(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, "a"))
	g.AddNode(5)

	adj, err := fa.FromGraph(g, nil, nil)
	require.NoError(t, err)
	c, err := adj.TransitiveClosure()
	require.NoError(t, err)

	assert.True(t, c.Get(0, 0), "closure is reflexive")
	assert.True(t, c.Get(0, 1))
	assert.True(t, c.Get(2, 2), "isolated node reaches itself")
	assert.False(t, c.Get(1, 0))
}

func TestIntersect(t *testing.T) {
	// Graph automaton: cycle 0 -a-> 1 -a-> 0.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, "a"))
	require.NoError(t, g.AddEdge(1, 0, "a"))
	left, err := fa.FromGraph(g, nil, nil)
	require.NoError(t, err)

	right := abStar(t)

	prod, err := fa.Intersect(left, right)
	require.NoError(t, err)
	assert.Equal(t, 4, prod.States())
	// a·b* against an all-a cycle accepts exactly the single-letter word.
	assert.True(t, prod.Accepts([]core.Symbol{"a"}))
	assert.False(t, prod.Accepts([]core.Symbol{"a", "a"}))
	assert.False(t, prod.Accepts(nil))

	// Disjoint alphabets yield no transitions.
	h := core.NewGraph()
	require.NoError(t, h.AddEdge(0, 1, "z"))
	zOnly, err := fa.FromGraph(h, nil, nil)
	require.NoError(t, err)
	disjoint, err := fa.Intersect(zOnly, right)
	require.NoError(t, err)
	assert.Empty(t, disjoint.Symbols())
	empty, err := disjoint.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

package rsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/grammar"
	"github.com/katalvlaran/lvlpath/rsm"
)

func TestFromText_TrieShape(t *testing.T) {
	m, err := rsm.FromText("S -> a S b | a b")
	require.NoError(t, err)

	require.Equal(t, core.Symbol("S"), m.Start)
	require.Len(t, m.Boxes, 1)
	box := m.Boxes["S"]
	require.NotNil(t, box)

	// Alternatives a S b and a b share the leading `a` trie edge.
	s1, ok := box.Next[0]["a"]
	require.True(t, ok)
	sVar, ok := box.Next[s1]["S"]
	require.True(t, ok)
	sTerm, ok := box.Next[s1]["b"]
	require.True(t, ok)

	end, ok := box.Next[sVar]["b"]
	require.True(t, ok)
	assert.True(t, box.IsFinal(end))
	assert.True(t, box.IsFinal(sTerm))
	assert.False(t, box.IsFinal(0))
	assert.False(t, box.IsFinal(s1))
	assert.Equal(t, 5, box.States())

	assert.True(t, m.IsVariable("S"))
	assert.False(t, m.IsVariable("a"), "terminals key no box")
}

func TestFromText_EpsilonAlternative(t *testing.T) {
	m, err := rsm.FromText("S -> a S | epsilon")
	require.NoError(t, err)
	assert.True(t, m.Boxes["S"].IsFinal(0), "ε alternative finalizes the entry")
}

func TestFromGrammar_MultipleBoxes(t *testing.T) {
	g, err := grammar.Parse(`
		S -> A b
		A -> a | a A
	`)
	require.NoError(t, err)

	m, err := rsm.FromGrammar(g)
	require.NoError(t, err)
	require.Len(t, m.Boxes, 2)
	assert.True(t, m.IsVariable("A"))

	_, err = rsm.FromGrammar(nil)
	require.ErrorIs(t, err, rsm.ErrNilGrammar)
}

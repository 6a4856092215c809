package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/grammar"
)

func TestParse(t *testing.T) {
	g, err := grammar.Parse(`
		# balanced a..b words
		S -> a S b | a b
	`)
	require.NoError(t, err)

	assert.Equal(t, core.Symbol("S"), g.Start)
	assert.True(t, g.IsVariable("S"))
	assert.True(t, g.IsTerminal("a"))
	assert.True(t, g.IsTerminal("b"))
	require.Len(t, g.Productions, 2)
	assert.Equal(t, []core.Symbol{"a", "S", "b"}, g.Productions[0].Body)
}

func TestParse_EpsilonAndStartChoice(t *testing.T) {
	g, err := grammar.Parse("A -> a A | epsilon")
	require.NoError(t, err)
	assert.Equal(t, core.Symbol("A"), g.Start, "no S head: first head is start")
	require.Len(t, g.Productions, 2)
	assert.Empty(t, g.Productions[1].Body, "epsilon token is the empty body")

	g, err = grammar.Parse("Expr -> S\nS -> a")
	require.NoError(t, err)
	assert.Equal(t, grammar.DefaultStart, g.Start, "S heads a production: S is start")
}

func TestParse_Errors(t *testing.T) {
	_, err := grammar.Parse("S = a")
	require.ErrorIs(t, err, grammar.ErrParse)
	_, err = grammar.Parse("s -> a")
	require.ErrorIs(t, err, grammar.ErrParse, "lower-case head is not a variable")
	_, err = grammar.Parse("# only a comment")
	require.ErrorIs(t, err, grammar.ErrNoProductions)
}

func TestNullable(t *testing.T) {
	g, err := grammar.Parse(`
		S -> A B
		A -> epsilon
		B -> b | epsilon
		C -> c
	`)
	require.NoError(t, err)

	nullable := g.Nullable()
	assert.Contains(t, nullable, core.Symbol("S"), "nullability propagates through A B")
	assert.Contains(t, nullable, core.Symbol("A"))
	assert.Contains(t, nullable, core.Symbol("B"))
	assert.NotContains(t, nullable, core.Symbol("C"))
}

// requireWNFShape asserts the weak-normal-form contract: every production
// is A → a, A → B C, or A → ε.
func requireWNFShape(t *testing.T, g *grammar.CFG) {
	t.Helper()
	for _, p := range g.Productions {
		switch len(p.Body) {
		case 0:
			// ε production: fine, nullable head
		case 1:
			require.True(t, g.IsTerminal(p.Body[0]), "unit body %v must be a terminal", p.Body)
		case 2:
			require.True(t, g.IsVariable(p.Body[0]), "pair body %v must be variables", p.Body)
			require.True(t, g.IsVariable(p.Body[1]), "pair body %v must be variables", p.Body)
		default:
			t.Fatalf("body longer than 2 in WNF: %v", p.Body)
		}
	}
}

func TestWeakNormalForm_Shape(t *testing.T) {
	g, err := grammar.Parse("S -> a S b | a b")
	require.NoError(t, err)

	wnf := g.WeakNormalForm()
	requireWNFShape(t, wnf)
	assert.Equal(t, core.Symbol("S"), wnf.Start)
	assert.Empty(t, wnf.EpsilonHeads(), "no nullable variables here")
	assert.NotEmpty(t, wnf.PairRules())
	assert.Contains(t, wnf.TerminalRules(), core.Symbol("a"))
	assert.Contains(t, wnf.TerminalRules(), core.Symbol("b"))
}

func TestWeakNormalForm_KeepsOriginalNullability(t *testing.T) {
	// S derives ε only through the A B chain; plain CNF would lose it.
	g, err := grammar.Parse(`
		S -> A B
		A -> a | epsilon
		B -> b | epsilon
	`)
	require.NoError(t, err)

	wnf := g.WeakNormalForm()
	requireWNFShape(t, wnf)
	eps := wnf.EpsilonHeads()
	assert.Contains(t, eps, core.Symbol("S"))
	assert.Contains(t, eps, core.Symbol("A"))
	assert.Contains(t, eps, core.Symbol("B"))
}

func TestWeakNormalForm_LongBodyAndUnits(t *testing.T) {
	g, err := grammar.Parse(`
		S -> a B c d
		B -> C
		C -> b
	`)
	require.NoError(t, err)

	wnf := g.WeakNormalForm()
	requireWNFShape(t, wnf)

	// The grammar's only word is "a b c d"; terminal rules must cover all
	// four letters after lifting.
	rules := wnf.TerminalRules()
	for _, term := range []core.Symbol{"a", "b", "c", "d"} {
		assert.Contains(t, rules, term)
	}
}

func TestWeakNormalForm_RemovesUseless(t *testing.T) {
	g, err := grammar.Parse(`
		S -> a
		Dead -> b Dead
		Orphan -> c
	`)
	require.NoError(t, err)

	wnf := g.WeakNormalForm()
	requireWNFShape(t, wnf)
	assert.False(t, wnf.IsVariable("Dead"), "unproductive variable must be removed")
	assert.False(t, wnf.IsVariable("Orphan"), "unreachable variable must be removed")
	require.Len(t, wnf.Productions, 1)
	assert.Equal(t, core.Symbol("S"), wnf.Productions[0].Head)
}

func TestWeakNormalForm_UndefinedVariableIsUnproductive(t *testing.T) {
	g, err := grammar.Parse(`
		S -> a | b Ghost
	`)
	require.NoError(t, err)

	wnf := g.WeakNormalForm()
	requireWNFShape(t, wnf)
	assert.False(t, wnf.IsVariable("Ghost"))
	for _, p := range wnf.Productions {
		for _, s := range p.Body {
			assert.NotEqual(t, core.Symbol("Ghost"), s)
		}
	}
}

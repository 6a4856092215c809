// Package rsm: construction and lookup.

package rsm

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/grammar"
)

// Sentinel errors for RSM construction.
var (
	// ErrNilGrammar indicates a nil *grammar.CFG argument.
	ErrNilGrammar = errors.New("rsm: grammar is nil")

	// ErrNoBox indicates the initial variable has no box.
	ErrNoBox = errors.New("rsm: start variable has no box")
)

// State addresses one substate of one box: the variable naming the box
// and the substate index within it.
type State struct {
	Var core.Symbol
	Sub int
}

// Box is the DFA of a single variable, trie-shaped over its alternatives.
// Substate 0 is the entry.
type Box struct {
	// Var is the variable this box accepts.
	Var core.Symbol

	// Next maps each substate to its outgoing edges: symbol → substate.
	// The trie shape keeps it deterministic by construction.
	Next []map[core.Symbol]int

	// Final marks the accepting substates.
	Final map[int]struct{}
}

// IsFinal reports whether substate s accepts.
func (b *Box) IsFinal(s int) bool {
	_, ok := b.Final[s]

	return ok
}

// States returns the number of substates.
func (b *Box) States() int { return len(b.Next) }

// RSM is a recursive state machine: a box per variable plus the initial
// variable.
type RSM struct {
	Start core.Symbol
	Boxes map[core.Symbol]*Box
}

// IsVariable reports whether sym refers to a box of this machine; edge
// labels that do are recursive calls, all others are terminals.
func (m *RSM) IsVariable(sym core.Symbol) bool {
	_, ok := m.Boxes[sym]

	return ok
}

// newBox returns a box with just the entry substate.
func newBox(v core.Symbol) *Box {
	return &Box{
		Var:   v,
		Next:  []map[core.Symbol]int{make(map[core.Symbol]int)},
		Final: make(map[int]struct{}),
	}
}

// walk threads one alternative through the trie, adding substates as
// needed, and marks the end final. An empty body finalizes the entry.
func (b *Box) walk(body []core.Symbol) {
	at := 0
	for _, sym := range body {
		next, ok := b.Next[at][sym]
		if !ok {
			next = len(b.Next)
			b.Next = append(b.Next, make(map[core.Symbol]int))
			b.Next[at][sym] = next
		}
		at = next
	}
	b.Final[at] = struct{}{}
}

// FromGrammar builds the machine of a CFG as written: one box per
// variable that heads a production, fed every alternative of that
// variable. The grammar's start symbol becomes the initial variable.
func FromGrammar(g *grammar.CFG) (*RSM, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}
	m := &RSM{Start: g.Start, Boxes: make(map[core.Symbol]*Box)}
	for _, p := range g.Productions {
		box, ok := m.Boxes[p.Head]
		if !ok {
			box = newBox(p.Head)
			m.Boxes[p.Head] = box
		}
		box.walk(p.Body)
	}
	if _, ok := m.Boxes[m.Start]; !ok {
		return nil, ErrNoBox
	}

	return m, nil
}

// FromText parses grammar text and builds its machine.
func FromText(text string) (*RSM, error) {
	g, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}

	return FromGrammar(g)
}

// Package cfpq: the Hellings triple-set engine.

package cfpq

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/grammar"
)

// Sentinel errors shared by the CFPQ engines.
var (
	// ErrGraphNil is returned when a nil graph is queried.
	ErrGraphNil = errors.New("cfpq: graph is nil")

	// ErrGrammarNil is returned when a nil grammar is queried.
	ErrGrammarNil = errors.New("cfpq: grammar is nil")

	// ErrRSMNil is returned when a nil recursive state machine is queried.
	ErrRSMNil = errors.New("cfpq: rsm is nil")
)

// triple records that some path u→v derives from variable Sym.
type triple struct {
	u   int
	sym core.Symbol
	v   int
}

// reached is one endpoint-indexed view entry of the triple set.
type reached struct {
	sym  core.Symbol
	node int
}

// nodeFilter turns a requested node list into a membership test; an
// empty request admits everything.
func nodeFilter(req []int) func(int) bool {
	if len(req) == 0 {
		return func(int) bool { return true }
	}
	set := make(map[int]struct{}, len(req))
	for _, id := range req {
		set[id] = struct{}{}
	}

	return func(id int) bool {
		_, ok := set[id]

		return ok
	}
}

// Hellings answers the context-free path query by a worklist fixed point
// over derivation triples. The grammar is first brought to weak normal
// form; the result is every (u, v) with (u, Start, v) in the closed set,
// filtered by starts and finals when non-empty.
func Hellings(g *grammar.CFG, graph *core.Graph, starts, finals []int) (core.PairSet, error) {
	if graph == nil {
		return nil, ErrGraphNil
	}
	if g == nil {
		return nil, ErrGrammarNil
	}
	wnf := g.WeakNormalForm()
	termRules := wnf.TerminalRules()

	// Pair rules indexed by each body position for the two join
	// directions of the closure step.
	byLeft := make(map[core.Symbol][]grammar.PairRule)
	byRight := make(map[core.Symbol][]grammar.PairRule)
	for _, r := range wnf.PairRules() {
		byLeft[r.Left] = append(byLeft[r.Left], r)
		byRight[r.Right] = append(byRight[r.Right], r)
	}

	seen := make(map[triple]struct{})
	byFrom := make(map[int][]reached) // u → {(A, v) | (u, A, v) seen}
	byTo := make(map[int][]reached)   // v → {(A, u) | (u, A, v) seen}
	var work []triple

	add := func(t triple) {
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		byFrom[t.u] = append(byFrom[t.u], reached{sym: t.sym, node: t.v})
		byTo[t.v] = append(byTo[t.v], reached{sym: t.sym, node: t.u})
		work = append(work, t)
	}

	// Base: one triple per edge-matching terminal rule, one reflexive
	// triple per node and nullable variable.
	for _, e := range graph.Edges() {
		for _, head := range termRules[e.Label] {
			add(triple{u: e.From, sym: head, v: e.To})
		}
	}
	epsHeads := wnf.EpsilonHeads()
	for _, id := range graph.Nodes() {
		for head := range epsHeads {
			add(triple{u: id, sym: head, v: id})
		}
	}

	// Closure: joining the popped triple on both sides keeps the fixed
	// point independent of visitation order.
	var t triple
	for len(work) > 0 {
		t, work = work[len(work)-1], work[:len(work)-1]

		for _, r := range byLeft[t.sym] { // t as B in A → B C
			for _, nxt := range byFrom[t.v] {
				if nxt.sym == r.Right {
					add(triple{u: t.u, sym: r.Head, v: nxt.node})
				}
			}
		}
		for _, r := range byRight[t.sym] { // t as C in A → B C
			for _, prv := range byTo[t.u] {
				if prv.sym == r.Left {
					add(triple{u: prv.node, sym: r.Head, v: t.v})
				}
			}
		}
	}

	fromOK, toOK := nodeFilter(starts), nodeFilter(finals)
	result := make(core.PairSet)
	for t := range seen {
		if t.sym == wnf.Start && fromOK(t.u) && toOK(t.v) {
			result[core.Pair{From: t.u, To: t.v}] = struct{}{}
		}
	}

	return result, nil
}

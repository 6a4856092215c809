// Package fa: the adjacency-matrix automaton.
//
// Adjacency fixes a state enumeration once at construction and never
// mutates afterwards, so a single instance may back any number of
// concurrent queries.

package fa

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/matrix"
)

// Adjacency is a finite automaton in matrix form: one Boolean adjacency
// matrix per Symbol over a fixed state enumeration.
type Adjacency struct {
	n     int
	trans map[core.Symbol]*matrix.Bool
	start map[int]struct{}
	final map[int]struct{}
	ids   []int // state index → original node ID; nil means identity
}

// FromNFA enumerates the automaton's states as given and builds the
// per-symbol matrices.
// Complexity: O(|Trans|) plus matrix allocation.
func FromNFA(a *NFA) (*Adjacency, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	adj := &Adjacency{
		n:     a.States,
		trans: make(map[core.Symbol]*matrix.Bool),
		start: make(map[int]struct{}, len(a.Start)),
		final: make(map[int]struct{}, len(a.Final)),
	}
	for s := range a.Start {
		if err := a.checkState(s); err != nil {
			return nil, err
		}
		adj.start[s] = struct{}{}
	}
	for s := range a.Final {
		if err := a.checkState(s); err != nil {
			return nil, err
		}
		adj.final[s] = struct{}{}
	}
	for _, tr := range a.Trans {
		m, ok := adj.trans[tr.Label]
		if !ok {
			var err error
			if m, err = matrix.NewBool(a.States, a.States); err != nil {
				return nil, fmt.Errorf("fa: transition matrix: %w", err)
			}
			adj.trans[tr.Label] = m
		}
		if err := m.Set(tr.From, tr.To); err != nil {
			return nil, fmt.Errorf("fa: transition (%d,%q,%d): %w", tr.From, tr.Label, tr.To, err)
		}
	}

	return adj, nil
}

// FromGraph builds the automaton of a labeled graph: every node is a
// state (enumerated by ascending node ID), every edge a transition. When
// starts (or finals) is empty, every node is a start (final) state; IDs
// absent from the graph are silently dropped.
// Complexity: O(V log V + E).
func FromGraph(g *core.Graph, starts, finals []int) (*Adjacency, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Nodes()
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := &Adjacency{
		n:     len(ids),
		trans: make(map[core.Symbol]*matrix.Bool),
		start: pickStates(index, starts),
		final: pickStates(index, finals),
		ids:   ids,
	}
	for _, e := range g.Edges() {
		m, ok := adj.trans[e.Label]
		if !ok {
			var err error
			if m, err = matrix.NewBool(adj.n, adj.n); err != nil {
				return nil, fmt.Errorf("fa: transition matrix: %w", err)
			}
			adj.trans[e.Label] = m
		}
		// Indices exist for every graph edge endpoint.
		_ = m.Set(index[e.From], index[e.To])
	}

	return adj, nil
}

// pickStates maps the requested node IDs to indices; an empty request
// selects every state.
func pickStates(index map[int]int, req []int) map[int]struct{} {
	out := make(map[int]struct{})
	if len(req) == 0 {
		for _, i := range index {
			out[i] = struct{}{}
		}

		return out
	}
	for _, id := range req {
		if i, ok := index[id]; ok {
			out[i] = struct{}{}
		}
	}

	return out
}

// States returns the number of states.
func (a *Adjacency) States() int { return a.n }

// ID translates a state index back to its original node ID. Automata not
// derived from a graph use the identity mapping.
func (a *Adjacency) ID(i int) int {
	if a.ids == nil {
		return i
	}

	return a.ids[i]
}

// StartStates returns the start state indices in ascending order.
func (a *Adjacency) StartStates() []int { return sortedStates(a.start) }

// FinalStates returns the final state indices in ascending order.
func (a *Adjacency) FinalStates() []int { return sortedStates(a.final) }

// IsStart reports whether state index i is a start state.
func (a *Adjacency) IsStart(i int) bool {
	_, ok := a.start[i]

	return ok
}

// IsFinal reports whether state index i is a final state.
func (a *Adjacency) IsFinal(i int) bool {
	_, ok := a.final[i]

	return ok
}

// Symbols returns the symbols with a transition matrix, unordered.
func (a *Adjacency) Symbols() []core.Symbol {
	out := make([]core.Symbol, 0, len(a.trans))
	for s := range a.trans {
		out = append(out, s)
	}

	return out
}

// Matrix returns the transition matrix of sym, or (nil, false) when sym
// has no transitions (the all-false matrix by convention).
func (a *Adjacency) Matrix(sym core.Symbol) (*matrix.Bool, bool) {
	m, ok := a.trans[sym]

	return m, ok
}

func sortedStates(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// configuration is one branch of the Accepts DFS: the next word position
// to consume in a given state.
type configuration struct {
	pos   int
	state int
}

// Accepts reports whether the automaton accepts the word: some DFS branch
// consumes every symbol and ends in a final state. A symbol without a
// transition matrix kills its branch. Never errors.
// Complexity: O(|word|·N²) worst case.
func (a *Adjacency) Accepts(word []core.Symbol) bool {
	stack := make([]configuration, 0, len(a.start))
	for s := range a.start {
		stack = append(stack, configuration{pos: 0, state: s})
	}

	var cur configuration
	for len(stack) > 0 {
		cur, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if cur.pos == len(word) {
			if _, ok := a.final[cur.state]; ok {
				return true
			}
			continue
		}
		m, ok := a.trans[word[cur.pos]]
		if !ok {
			continue // dead branch: no transition on this symbol
		}
		_ = m.RowScan(cur.state, func(next int) bool {
			stack = append(stack, configuration{pos: cur.pos + 1, state: next})

			return true
		})
	}

	return false
}

// summed ORs every per-symbol matrix into one reachability matrix.
func (a *Adjacency) summed() (*matrix.Bool, error) {
	sum, err := matrix.NewBool(a.n, a.n)
	if err != nil {
		return nil, err
	}
	for _, m := range a.trans {
		if _, err = sum.Or(m); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// TransitiveClosure returns the reflexive-transitive closure of the
// union of all per-symbol matrices: cell (i, j) is true iff some (possibly
// empty) path of transitions leads from i to j.
// Complexity: O(N³/64).
func (a *Adjacency) TransitiveClosure() (*matrix.Bool, error) {
	sum, err := a.summed()
	if err != nil {
		return nil, fmt.Errorf("fa: closure: %w", err)
	}

	return sum.TransitiveClosure()
}

// IsEmpty reports whether the accepted language is empty. An automaton
// without any transition matrix is considered empty regardless of its
// start and final sets.
// Complexity: O(N³/64).
func (a *Adjacency) IsEmpty() (bool, error) {
	if len(a.trans) == 0 {
		return true, nil
	}
	closure, err := a.TransitiveClosure()
	if err != nil {
		return false, err
	}
	for s := range a.start {
		for f := range a.final {
			if closure.Get(s, f) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Intersect builds the Kronecker-product automaton of a and b: state pair
// (s1, s2) maps to index s1·b.States()+s2, transitions exist per shared
// symbol, and start/final sets are the pairwise products.
// Complexity: O(Σ_sym nnz(M¹)·N₂²/64).
func Intersect(a, b *Adjacency) (*Adjacency, error) {
	if a == nil || b == nil {
		return nil, ErrNilAutomaton
	}
	out := &Adjacency{
		n:     a.n * b.n,
		trans: make(map[core.Symbol]*matrix.Bool),
		start: make(map[int]struct{}, len(a.start)*len(b.start)),
		final: make(map[int]struct{}, len(a.final)*len(b.final)),
	}
	for sym, ma := range a.trans {
		mb, shared := b.trans[sym]
		if !shared {
			continue
		}
		k, err := ma.Kron(mb)
		if err != nil {
			return nil, fmt.Errorf("fa: intersect %q: %w", sym, err)
		}
		out.trans[sym] = k
	}
	for s1 := range a.start {
		for s2 := range b.start {
			out.start[s1*b.n+s2] = struct{}{}
		}
	}
	for f1 := range a.final {
		for f2 := range b.final {
			out.final[f1*b.n+f2] = struct{}{}
		}
	}

	return out, nil
}

// Package regex: Thompson construction and subset determinization.

package regex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/fa"
)

// thompson accumulates an epsilon-NFA during AST compilation.
type thompson struct {
	states int
	eps    map[int][]int
	sym    map[int]map[core.Symbol][]int
}

// frag is one compiled fragment: a single entry and a single exit state.
type frag struct {
	start, accept int
}

func (t *thompson) fresh() int {
	s := t.states
	t.states++

	return s
}

func (t *thompson) addEps(from, to int) {
	t.eps[from] = append(t.eps[from], to)
}

func (t *thompson) addSym(from int, s core.Symbol, to int) {
	m, ok := t.sym[from]
	if !ok {
		m = make(map[core.Symbol][]int)
		t.sym[from] = m
	}
	m[s] = append(m[s], to)
}

// compile lowers an AST node into a fragment, Thompson style: every
// construct costs at most two fresh states and epsilon glue.
func (t *thompson) compile(n node) frag {
	switch v := n.(type) {
	case emptyNode:
		return frag{start: t.fresh(), accept: t.fresh()} // no connection
	case epsNode:
		f := frag{start: t.fresh(), accept: t.fresh()}
		t.addEps(f.start, f.accept)

		return f
	case symNode:
		f := frag{start: t.fresh(), accept: t.fresh()}
		t.addSym(f.start, v.sym, f.accept)

		return f
	case concatNode:
		l := t.compile(v.l)
		r := t.compile(v.r)
		t.addEps(l.accept, r.start)

		return frag{start: l.start, accept: r.accept}
	case unionNode:
		l := t.compile(v.l)
		r := t.compile(v.r)
		f := frag{start: t.fresh(), accept: t.fresh()}
		t.addEps(f.start, l.start)
		t.addEps(f.start, r.start)
		t.addEps(l.accept, f.accept)
		t.addEps(r.accept, f.accept)

		return f
	case starNode:
		x := t.compile(v.x)
		f := frag{start: t.fresh(), accept: t.fresh()}
		t.addEps(f.start, f.accept)
		t.addEps(f.start, x.start)
		t.addEps(x.accept, x.start)
		t.addEps(x.accept, f.accept)

		return f
	default:
		panic(fmt.Sprintf("regex: unknown AST node %T", n)) // unreachable by construction
	}
}

// closure expands a state set through epsilon edges, in place.
func (t *thompson) closure(set map[int]struct{}) {
	stack := make([]int, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	var s int
	for len(stack) > 0 {
		s, stack = stack[len(stack)-1], stack[:len(stack)-1]
		for _, to := range t.eps[s] {
			if _, seen := set[to]; !seen {
				set[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
}

// subsetKey canonicalizes a state set for the determinization table.
func subsetKey(set map[int]struct{}) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// determinize runs subset construction over the epsilon-NFA fragment and
// returns an equivalent DFA with state 0 as the single start. Only
// reachable subsets are generated, so no dead sink appears; a symbol with
// no outgoing edge simply has no transition.
func (t *thompson) determinize(f frag) (*fa.NFA, error) {
	startSet := map[int]struct{}{f.start: {}}
	t.closure(startSet)

	index := map[string]int{subsetKey(startSet): 0}
	subsets := []map[int]struct{}{startSet}

	dfa := fa.NewNFA(1)
	if err := dfa.MarkStart(0); err != nil {
		return nil, err
	}

	type arc struct {
		from int
		sym  core.Symbol
		to   int
	}
	var arcs []arc

	for at := 0; at < len(subsets); at++ {
		cur := subsets[at]
		// Collect per-symbol successor sets across the subset.
		bySym := make(map[core.Symbol]map[int]struct{})
		for s := range cur {
			for sym, dests := range t.sym[s] {
				set, ok := bySym[sym]
				if !ok {
					set = make(map[int]struct{})
					bySym[sym] = set
				}
				for _, d := range dests {
					set[d] = struct{}{}
				}
			}
		}
		for sym, next := range bySym {
			t.closure(next)
			key := subsetKey(next)
			to, ok := index[key]
			if !ok {
				to = len(subsets)
				index[key] = to
				subsets = append(subsets, next)
			}
			arcs = append(arcs, arc{from: at, sym: sym, to: to})
		}
	}

	dfa.States = len(subsets)
	for i, set := range subsets {
		if _, ok := set[f.accept]; ok {
			if err := dfa.MarkFinal(i); err != nil {
				return nil, err
			}
		}
	}
	for _, a := range arcs {
		if err := dfa.AddTransition(a.from, a.sym, a.to); err != nil {
			return nil, err
		}
	}

	return dfa, nil
}

// ToDFA compiles a pattern into a deterministic automaton without epsilon
// transitions. The empty pattern compiles to the empty language: a single
// non-final start state.
func ToDFA(pattern string) (*fa.NFA, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	t := &thompson{
		eps: make(map[int][]int),
		sym: make(map[int]map[core.Symbol][]int),
	}
	f := t.compile(ast)

	return t.determinize(f)
}

// ToAdjacency compiles a pattern straight to the adjacency-matrix form.
func ToAdjacency(pattern string) (*fa.Adjacency, error) {
	dfa, err := ToDFA(pattern)
	if err != nil {
		return nil, err
	}

	return fa.FromNFA(dfa)
}

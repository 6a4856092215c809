// Package cfpq: the Boolean-matrix engine.

package cfpq

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/grammar"
	"github.com/katalvlaran/lvlpath/matrix"
)

// Matrix answers the context-free path query with one Boolean matrix per
// nonterminal over the graph's node enumeration: M_A[u,v] holds iff some
// path u→v derives from A. The A → B C productions turn into Boolean
// products OR-ed into M_A until no matrix changes; the dirty flag is the
// change report of matrix.Bool.Or, which cannot miss a new bit whatever
// the production order.
func Matrix(g *grammar.CFG, graph *core.Graph, starts, finals []int) (core.PairSet, error) {
	if graph == nil {
		return nil, ErrGraphNil
	}
	if g == nil {
		return nil, ErrGrammarNil
	}
	wnf := g.WeakNormalForm()

	nodes := graph.Nodes()
	result := make(core.PairSet)
	n := len(nodes)
	if n == 0 {
		return result, nil
	}
	index := make(map[int]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	mats := make(map[core.Symbol]*matrix.Bool)
	mat := func(v core.Symbol) (*matrix.Bool, error) {
		m, ok := mats[v]
		if !ok {
			var err error
			if m, err = matrix.NewBool(n, n); err != nil {
				return nil, err
			}
			mats[v] = m
		}

		return m, nil
	}

	// Base: terminal rules over edges, nullable diagonals.
	termRules := wnf.TerminalRules()
	for _, e := range graph.Edges() {
		for _, head := range termRules[e.Label] {
			m, err := mat(head)
			if err != nil {
				return nil, err
			}
			if err = m.Set(index[e.From], index[e.To]); err != nil {
				return nil, fmt.Errorf("cfpq: matrix init: %w", err)
			}
		}
	}
	for head := range wnf.EpsilonHeads() {
		m, err := mat(head)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if err = m.Set(i, i); err != nil {
				return nil, fmt.Errorf("cfpq: matrix init: %w", err)
			}
		}
	}

	// Fixed point over the pair rules.
	pairRules := wnf.PairRules()
	for changed := true; changed; {
		changed = false
		for _, r := range pairRules {
			left, okL := mats[r.Left]
			right, okR := mats[r.Right]
			if !okL || !okR {
				continue // operand still all-false: the product is too
			}
			product, err := left.Mul(right)
			if err != nil {
				return nil, fmt.Errorf("cfpq: matrix step %v: %w", r, err)
			}
			head, err := mat(r.Head)
			if err != nil {
				return nil, err
			}
			grew, err := head.Or(product)
			if err != nil {
				return nil, fmt.Errorf("cfpq: matrix step %v: %w", r, err)
			}
			changed = changed || grew
		}
	}

	startMat, ok := mats[wnf.Start]
	if !ok {
		return result, nil
	}
	fromOK, toOK := nodeFilter(starts), nodeFilter(finals)
	for i := 0; i < n; i++ {
		if err := startMat.RowScan(i, func(j int) bool {
			if fromOK(nodes[i]) && toOK(nodes[j]) {
				result[core.Pair{From: nodes[i], To: nodes[j]}] = struct{}{}
			}

			return true
		}); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Package rpq: the multi-source BFS engine.
//
// The front is a (K·D) × (D+G) Boolean matrix: row block k is the
// "virtual automaton" of source k, whose left D columns pin the current
// DFA state and right G columns hold the graph states reached. The left
// part is re-asserted as a stacked identity before every step so that
// multiplying by a block-diagonal symbol matrix reports, in the left
// part, which DFA state each row moved to — that report drives the row
// realignment of the right part.

package rpq

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/fa"
	"github.com/katalvlaran/lvlpath/matrix"
	"github.com/katalvlaran/lvlpath/regex"
)

// msbfsWalker carries the per-query state of one MSBFS run.
type msbfsWalker struct {
	d, g      int            // DFA and graph state counts
	k         int            // number of sources
	startList []int          // source graph-state indices, block order
	united    []*matrix.Bool // block-diagonal symbol matrices, diag(dfa, graph)
	frontLeft *matrix.Bool   // (K·D) × D stacked identities, never mutated
	visited   *matrix.Bool   // (K·D) × G
}

// MSBFS answers the regular path query by simultaneous multi-source BFS
// over the implicit product automaton. Results equal Tensor's on every
// input; work scales with the states actually reached from the starts.
func MSBFS(pattern string, g *core.Graph, starts, finals []int) (core.PairSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dfaAdj, err := regex.ToAdjacency(pattern)
	if err != nil {
		return nil, err
	}
	graphAdj, err := fa.FromGraph(g, starts, finals)
	if err != nil {
		return nil, err
	}

	result := make(core.PairSet)
	if graphAdj.States() == 0 {
		return result, nil
	}

	w, err := newMsbfsWalker(dfaAdj, graphAdj)
	if err != nil {
		return nil, fmt.Errorf("rpq: msbfs: %w", err)
	}
	if err = w.run(dfaAdj); err != nil {
		return nil, fmt.Errorf("rpq: msbfs: %w", err)
	}

	return w.collect(dfaAdj, graphAdj, result)
}

// newMsbfsWalker assembles the block matrices and the initial front.
func newMsbfsWalker(dfaAdj, graphAdj *fa.Adjacency) (*msbfsWalker, error) {
	w := &msbfsWalker{
		d:         dfaAdj.States(),
		g:         graphAdj.States(),
		startList: graphAdj.StartStates(),
	}
	w.k = len(w.startList)
	if w.k == 0 {
		return w, nil
	}

	// Block-diagonal matrix per symbol shared by both automata.
	for _, sym := range dfaAdj.Symbols() {
		gm, shared := graphAdj.Matrix(sym)
		if !shared {
			continue
		}
		dm, _ := dfaAdj.Matrix(sym)
		u, err := matrix.BlockDiag(dm, gm)
		if err != nil {
			return nil, err
		}
		w.united = append(w.united, u)
	}

	var err error
	if w.frontLeft, err = matrix.NewBool(w.k*w.d, w.d); err != nil {
		return nil, err
	}
	for k := 0; k < w.k; k++ {
		for p := 0; p < w.d; p++ {
			if err = w.frontLeft.Set(k*w.d+p, p); err != nil {
				return nil, err
			}
		}
	}

	if w.visited, err = matrix.NewBool(w.k*w.d, w.g); err != nil {
		return nil, err
	}
	for k, src := range w.startList {
		for _, p := range dfaAdj.StartStates() {
			if err = w.visited.Set(k*w.d+p, src); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

// run iterates front propagation until no new cell appears.
func (w *msbfsWalker) run(dfaAdj *fa.Adjacency) error {
	if w.k == 0 {
		return nil
	}
	front := w.visited.Clone()

	for front.NNZ() > 0 {
		next, err := w.step(front)
		if err != nil {
			return err
		}
		// Keep only cells never seen, then fold them into visited.
		if err = next.AndNot(w.visited); err != nil {
			return err
		}
		if _, err = w.visited.Or(next); err != nil {
			return err
		}
		front = next
	}

	return nil
}

// step advances the front through every united symbol matrix and ORs the
// realigned contributions together.
func (w *msbfsWalker) step(frontRight *matrix.Bool) (*matrix.Bool, error) {
	next, err := matrix.NewBool(w.k*w.d, w.g)
	if err != nil {
		return nil, err
	}
	front, err := matrix.HStack(w.frontLeft, frontRight)
	if err != nil {
		return nil, err
	}

	for _, u := range w.united {
		mul, err := front.Mul(u)
		if err != nil {
			return nil, err
		}
		// A set cell (i, j) with j < D means row i's automaton is now in
		// DFA state j: its reached graph states belong to the row of the
		// same block whose identity column is j.
		for i := 0; i < w.k*w.d; i++ {
			var scanErr error
			if err = mul.RowScan(i, func(j int) bool {
				if j >= w.d {
					return false // right part reached: left part exhausted
				}
				scanErr = next.OrRowSlice(i/w.d*w.d+j, mul, i, w.d)

				return scanErr == nil
			}); err != nil {
				return nil, err
			}
			if scanErr != nil {
				return nil, scanErr
			}
		}
	}

	return next, nil
}

// collect extracts reachable pairs: for source k and DFA final f, the set
// columns of visited row k·D+f are the graph states closing an accepting
// product path from source k.
func (w *msbfsWalker) collect(dfaAdj, graphAdj *fa.Adjacency, result core.PairSet) (core.PairSet, error) {
	for k, src := range w.startList {
		for _, f := range dfaAdj.FinalStates() {
			if err := w.visited.RowScan(k*w.d+f, func(v int) bool {
				if graphAdj.IsFinal(v) {
					result[core.Pair{From: graphAdj.ID(src), To: graphAdj.ID(v)}] = struct{}{}
				}

				return true
			}); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

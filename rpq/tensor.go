// Package rpq: the tensor-product engine.

package rpq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/fa"
	"github.com/katalvlaran/lvlpath/regex"
)

// ErrGraphNil is returned when a nil graph is queried.
var ErrGraphNil = errors.New("rpq: graph is nil")

// Tensor answers the regular path query by automata intersection: a path
// u→v labeled by a word of the pattern's language exists iff the
// Kronecker product of the graph automaton and the regex DFA connects
// (u, start) to (v, final). Pattern parse errors surface verbatim.
func Tensor(pattern string, g *core.Graph, starts, finals []int) (core.PairSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	regexAdj, err := regex.ToAdjacency(pattern)
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

	product, err := fa.Intersect(graphAdj, regexAdj)
	if err != nil {
		return nil, err
	}
	closure, err := product.TransitiveClosure()
	if err != nil {
		return nil, fmt.Errorf("rpq: tensor closure: %w", err)
	}

	d := regexAdj.States()
	for _, u := range graphAdj.StartStates() {
		for _, v := range graphAdj.FinalStates() {
			for _, p := range regexAdj.StartStates() {
				for _, q := range regexAdj.FinalStates() {
					if closure.Get(u*d+p, v*d+q) {
						result[core.Pair{From: graphAdj.ID(u), To: graphAdj.ID(v)}] = struct{}{}
					}
				}
			}
		}
	}

	// The closure covers words of any length; the empty word additionally
	// relates every node that is both a start and a final to itself.
	if product.Accepts(nil) {
		for _, u := range graphAdj.StartStates() {
			if graphAdj.IsFinal(u) {
				result[core.Pair{From: graphAdj.ID(u), To: graphAdj.ID(u)}] = struct{}{}
			}
		}
	}

	return result, nil
}

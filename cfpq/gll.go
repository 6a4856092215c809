// Package cfpq: the GLL engine over a recursive state machine.
//
// The graph-structured stack (GSS) merges equivalent call histories:
// there is at most one GSS node per (RSM state, graph node), each owning
// its return edges and the set of graph nodes where its call has already
// returned. Descriptors (GSS node, RSM state, graph node) drive the
// worklist; a global dedup set bounds it by the finite descriptor space,
// which is what makes left recursion terminate.

package cfpq

import (
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/rsm"
)

// varEdge is one recursive call site in a box: enter the callee box at
// entry, resume the caller at ret after the callee pops.
type varEdge struct {
	entry rsm.State
	ret   rsm.State
}

// stateData is the per-RSM-state tabulation consulted on every step.
type stateData struct {
	term  map[core.Symbol]rsm.State
	vars  []varEdge
	final bool
}

// gssNode is one merged call frame.
type gssNode struct {
	node  int                                // graph node the call started at
	edges map[rsm.State]map[*gssNode]struct{} // return state → callers
	pops  map[int]struct{}                   // graph nodes where this call returned
}

// descriptor is one unit of parse work.
type descriptor struct {
	gss   *gssNode
	state rsm.State
	node  int
}

// gllSolver owns all mutable state of one GLL run.
type gllSolver struct {
	data    map[core.Symbol][]stateData
	edges   map[int]map[core.Symbol][]int
	gss     map[gssKey]*gssNode
	accept  *gssNode
	added   map[descriptor]struct{}
	work    []descriptor
	reached core.PairSet
}

type gssKey struct {
	state rsm.State
	node  int
}

// acceptState is the pseudo return state of the outermost call.
var acceptState = rsm.State{Var: "$", Sub: -1}

// GLL answers the context-free path query by a generalized LL parse of
// the machine against the graph. No normal form is required; ambiguous
// and left-recursive grammars terminate through GSS memoization.
func GLL(m *rsm.RSM, graph *core.Graph, starts, finals []int) (core.PairSet, error) {
	if graph == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrRSMNil
	}

	s := &gllSolver{
		data:    tabulate(m),
		edges:   edgeTable(graph),
		gss:     make(map[gssKey]*gssNode),
		added:   make(map[descriptor]struct{}),
		reached: make(core.PairSet),
	}
	s.accept = s.node(acceptState, -1)

	if len(starts) == 0 {
		starts = graph.Nodes()
	}
	entry := rsm.State{Var: m.Start, Sub: 0}
	for _, u := range starts {
		if !graph.HasNode(u) {
			continue // unknown start IDs are inert
		}
		top := s.node(entry, u)
		s.link(top, acceptState, s.accept)
		s.enqueue(descriptor{gss: top, state: entry, node: u})
	}

	var d descriptor
	for len(s.work) > 0 {
		d, s.work = s.work[len(s.work)-1], s.work[:len(s.work)-1]
		s.step(d)
	}

	toOK := nodeFilter(finals)
	result := make(core.PairSet, len(s.reached))
	for p := range s.reached {
		if toOK(p.To) {
			result[p] = struct{}{}
		}
	}

	return result, nil
}

// tabulate flattens the machine into per-state terminal edges, call
// sites, and finality flags.
func tabulate(m *rsm.RSM) map[core.Symbol][]stateData {
	out := make(map[core.Symbol][]stateData, len(m.Boxes))
	for v, box := range m.Boxes {
		states := make([]stateData, box.States())
		for sub := range states {
			sd := stateData{
				term:  make(map[core.Symbol]rsm.State),
				final: box.IsFinal(sub),
			}
			for sym, next := range box.Next[sub] {
				if m.IsVariable(sym) {
					sd.vars = append(sd.vars, varEdge{
						entry: rsm.State{Var: sym, Sub: 0},
						ret:   rsm.State{Var: v, Sub: next},
					})
					continue
				}
				sd.term[sym] = rsm.State{Var: v, Sub: next}
			}
			states[sub] = sd
		}
		out[v] = states
	}

	return out
}

// edgeTable indexes the graph as node → label → successors.
func edgeTable(g *core.Graph) map[int]map[core.Symbol][]int {
	out := make(map[int]map[core.Symbol][]int)
	for _, e := range g.Edges() {
		bySym, ok := out[e.From]
		if !ok {
			bySym = make(map[core.Symbol][]int)
			out[e.From] = bySym
		}
		bySym[e.Label] = append(bySym[e.Label], e.To)
	}

	return out
}

// node returns the unique GSS node of (state, graph node), creating it on
// first use.
func (s *gllSolver) node(state rsm.State, n int) *gssNode {
	key := gssKey{state: state, node: n}
	g, ok := s.gss[key]
	if !ok {
		g = &gssNode{
			node:  n,
			edges: make(map[rsm.State]map[*gssNode]struct{}),
			pops:  make(map[int]struct{}),
		}
		s.gss[key] = g
	}

	return g
}

// link adds the return edge (ret → caller) to g. A new edge replays every
// pop g has already performed, so calls discovered late still see earlier
// returns.
func (s *gllSolver) link(g *gssNode, ret rsm.State, caller *gssNode) {
	callers, ok := g.edges[ret]
	if !ok {
		callers = make(map[*gssNode]struct{})
		g.edges[ret] = callers
	}
	if _, dup := callers[caller]; dup {
		return
	}
	callers[caller] = struct{}{}
	for p := range g.pops {
		s.emit(descriptor{gss: caller, state: ret, node: p}, g)
	}
}

// emit routes a produced descriptor: reaching the accept sentinel records
// a result pair for the call that started at popped.node; anything else
// joins the worklist once.
func (s *gllSolver) emit(d descriptor, popped *gssNode) {
	if d.gss == s.accept {
		s.reached[core.Pair{From: popped.node, To: d.node}] = struct{}{}

		return
	}
	s.enqueue(d)
}

// enqueue adds a descriptor unless it was ever added before.
func (s *gllSolver) enqueue(d descriptor) {
	if _, dup := s.added[d]; dup {
		return
	}
	s.added[d] = struct{}{}
	s.work = append(s.work, d)
}

// step processes one descriptor: shift terminals, expand call sites, and
// pop when the sub-state accepts.
func (s *gllSolver) step(d descriptor) {
	sd := s.data[d.state.Var][d.state.Sub]

	// Terminal step: follow matching graph edges.
	for sym, next := range sd.term {
		for _, n2 := range s.edges[d.node][sym] {
			s.enqueue(descriptor{gss: d.gss, state: next, node: n2})
		}
	}

	// Variable step: enter the callee box, wiring the return edge first
	// so pops already memoized flow back immediately.
	for _, ve := range sd.vars {
		callee := s.node(ve.entry, d.node)
		s.link(callee, ve.ret, d.gss)
		s.enqueue(descriptor{gss: callee, state: ve.entry, node: d.node})
	}

	// Pop step: first return of this call at d.node resumes every caller.
	if sd.final {
		if _, done := d.gss.pops[d.node]; !done {
			d.gss.pops[d.node] = struct{}{}
			for ret, callers := range d.gss.edges {
				for caller := range callers {
					s.emit(descriptor{gss: caller, state: ret, node: d.node}, d.gss)
				}
			}
		}
	}
}

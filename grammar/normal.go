// Package grammar: weak normal form transformation.
//
// Order matters: nullability is taken from the receiver before any
// rewriting, ε- and unit-elimination run on the original bodies, then
// terminals are lifted and long bodies binarized, ε-productions for the
// originally-nullable variables are re-added, and useless symbols are
// removed last.

package grammar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlpath/core"
)

// PairRule is one A → B C production of a weak-normal-form grammar.
type PairRule struct {
	Head, Left, Right core.Symbol
}

// WeakNormalForm returns an equivalent grammar whose productions are all
// A → a, A → B C, or A → ε with A nullable in the receiver. Useless
// symbols are removed; the start symbol is preserved.
func (g *CFG) WeakNormalForm() *CFG {
	nullable := g.Nullable()

	prods := epsilonEliminate(g.Productions, nullable)
	prods = unitEliminate(g, prods)
	prods = liftAndBinarize(g, prods)

	// Re-add ε for every originally-nullable variable; some normal-form
	// steps above dropped them on purpose.
	for v := range nullable {
		prods = append(prods, Production{Head: v})
	}
	prods = dedup(prods)
	prods = removeUseless(g, prods)

	wnf := &CFG{
		Start:     g.Start,
		Variables: map[core.Symbol]struct{}{g.Start: {}},
		Terminals: make(map[core.Symbol]struct{}),
	}
	wnf.Productions = prods
	for _, p := range prods {
		wnf.Variables[p.Head] = struct{}{}
	}
	for _, p := range prods {
		for _, s := range p.Body {
			if _, isVar := wnf.Variables[s]; !isVar {
				wnf.Terminals[s] = struct{}{}
			}
		}
	}

	return wnf
}

// epsilonEliminate expands every production over the optional presence of
// its nullable body symbols and drops the empty variants.
func epsilonEliminate(prods []Production, nullable map[core.Symbol]struct{}) []Production {
	var out []Production
	for _, p := range prods {
		var optional []int
		for i, s := range p.Body {
			if _, ok := nullable[s]; ok {
				optional = append(optional, i)
			}
		}
		for mask := 0; mask < 1<<len(optional); mask++ {
			drop := make(map[int]struct{}, len(optional))
			for bit, pos := range optional {
				if mask&(1<<bit) != 0 {
					drop[pos] = struct{}{}
				}
			}
			var body []core.Symbol
			for i, s := range p.Body {
				if _, skip := drop[i]; !skip {
					body = append(body, s)
				}
			}
			if len(body) == 0 {
				continue // ε variants are re-added from the nullable set
			}
			out = append(out, Production{Head: p.Head, Body: body})
		}
	}

	return out
}

// unitEliminate replaces chains A ⇒* B of single-variable productions
// with B's non-unit bodies under head A.
func unitEliminate(g *CFG, prods []Production) []Production {
	isUnit := func(p Production) bool {
		return len(p.Body) == 1 && g.IsVariable(p.Body[0])
	}

	// reach[A] = variables reachable from A through unit productions.
	reach := make(map[core.Symbol]map[core.Symbol]struct{})
	ensure := func(v core.Symbol) map[core.Symbol]struct{} {
		set, ok := reach[v]
		if !ok {
			set = map[core.Symbol]struct{}{v: {}}
			reach[v] = set
		}

		return set
	}
	for _, p := range prods {
		ensure(p.Head)
		if isUnit(p) {
			ensure(p.Head)[p.Body[0]] = struct{}{}
			ensure(p.Body[0])
		}
	}
	for changed := true; changed; {
		changed = false
		for a, set := range reach {
			for b := range set {
				for c := range reach[b] {
					if _, ok := set[c]; !ok {
						set[c] = struct{}{}
						changed = true
					}
				}
			}
			reach[a] = set
		}
	}

	byHead := make(map[core.Symbol][]Production)
	for _, p := range prods {
		if !isUnit(p) {
			byHead[p.Head] = append(byHead[p.Head], p)
		}
	}

	var out []Production
	for a, set := range reach {
		for b := range set {
			for _, p := range byHead[b] {
				out = append(out, Production{Head: a, Body: p.Body})
			}
		}
	}

	return out
}

// liftAndBinarize wraps terminals occurring in bodies of length two or
// more into fresh '#'-named variables and splits longer bodies into
// two-variable chains.
func liftAndBinarize(g *CFG, prods []Production) []Production {
	var out []Production
	wrapped := make(map[core.Symbol]core.Symbol)
	var splitN int

	wrap := func(term core.Symbol) core.Symbol {
		v, ok := wrapped[term]
		if !ok {
			v = core.Symbol("#" + string(term))
			wrapped[term] = v
			out = append(out, Production{Head: v, Body: []core.Symbol{term}})
		}

		return v
	}

	for _, p := range prods {
		if len(p.Body) < 2 {
			out = append(out, p)
			continue
		}
		body := make([]core.Symbol, len(p.Body))
		for i, s := range p.Body {
			if g.IsTerminal(s) {
				body[i] = wrap(s)
				continue
			}
			body[i] = s
		}
		head := p.Head
		for len(body) > 2 {
			splitN++
			fresh := core.Symbol(fmt.Sprintf("%s#%d", p.Head, splitN))
			out = append(out, Production{Head: head, Body: []core.Symbol{body[0], fresh}})
			head = fresh
			body = body[1:]
		}
		out = append(out, Production{Head: head, Body: body})
	}

	return out
}

// dedup collapses duplicate productions, keeping first occurrence order.
func dedup(prods []Production) []Production {
	seen := make(map[string]struct{}, len(prods))
	out := prods[:0:0]
	for _, p := range prods {
		parts := make([]string, 0, len(p.Body)+1)
		parts = append(parts, string(p.Head))
		for _, s := range p.Body {
			parts = append(parts, string(s))
		}
		key := strings.Join(parts, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

// removeUseless keeps only productions over productive variables that are
// reachable from the start symbol. A variable of the original grammar
// that heads no production is unproductive, so productions mentioning it
// drop out here.
func removeUseless(g *CFG, prods []Production) []Production {
	start := g.Start
	heads := make(map[core.Symbol]struct{})
	for _, p := range prods {
		heads[p.Head] = struct{}{}
	}
	isVar := func(s core.Symbol) bool {
		if _, ok := heads[s]; ok {
			return true
		}

		return g.IsVariable(s)
	}

	// Productive: derives some terminal word (ε included).
	productive := make(map[core.Symbol]struct{})
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			if _, done := productive[p.Head]; done {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if isVar(s) {
					if _, prod := productive[s]; !prod {
						ok = false
						break
					}
				}
			}
			if ok {
				productive[p.Head] = struct{}{}
				changed = true
			}
		}
	}

	// Reachable from start through productive productions only.
	reachable := map[core.Symbol]struct{}{start: {}}
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			if _, ok := reachable[p.Head]; !ok {
				continue
			}
			if _, prod := productive[p.Head]; !prod {
				continue
			}
			usable := true
			for _, s := range p.Body {
				if isVar(s) {
					if _, prod := productive[s]; !prod {
						usable = false
						break
					}
				}
			}
			if !usable {
				continue
			}
			for _, s := range p.Body {
				if isVar(s) {
					if _, seen := reachable[s]; !seen {
						reachable[s] = struct{}{}
						changed = true
					}
				}
			}
		}
	}

	var out []Production
	for _, p := range prods {
		if _, ok := reachable[p.Head]; !ok {
			continue
		}
		if _, ok := productive[p.Head]; !ok {
			continue
		}
		usable := true
		for _, s := range p.Body {
			if isVar(s) {
				if _, prod := productive[s]; !prod {
					usable = false
					break
				}
				if _, seen := reachable[s]; !seen {
					usable = false
					break
				}
			}
		}
		if usable {
			out = append(out, p)
		}
	}

	return out
}

// TerminalRules indexes A → a productions as terminal → heads. Meaningful
// on weak-normal-form grammars, where every length-one body over a
// terminal is such a rule.
func (g *CFG) TerminalRules() map[core.Symbol][]core.Symbol {
	out := make(map[core.Symbol][]core.Symbol)
	for _, p := range g.Productions {
		if len(p.Body) == 1 && g.IsTerminal(p.Body[0]) {
			out[p.Body[0]] = append(out[p.Body[0]], p.Head)
		}
	}

	return out
}

// PairRules lists the A → B C productions of a weak-normal-form grammar.
func (g *CFG) PairRules() []PairRule {
	var out []PairRule
	for _, p := range g.Productions {
		if len(p.Body) == 2 {
			out = append(out, PairRule{Head: p.Head, Left: p.Body[0], Right: p.Body[1]})
		}
	}

	return out
}

// EpsilonHeads returns the heads of A → ε productions.
func (g *CFG) EpsilonHeads() map[core.Symbol]struct{} {
	out := make(map[core.Symbol]struct{})
	for _, p := range g.Productions {
		if len(p.Body) == 0 {
			out[p.Head] = struct{}{}
		}
	}

	return out
}

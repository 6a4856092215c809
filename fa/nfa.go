// Package fa: the NFA value model.

package fa

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors for automaton construction.
var (
	// ErrBadState indicates a state index outside [0, States).
	ErrBadState = errors.New("fa: state index out of range")

	// ErrNilAutomaton indicates a nil *NFA or *Adjacency argument.
	ErrNilAutomaton = errors.New("fa: automaton is nil")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("fa: graph is nil")
)

// Transition is one labeled arc From→To between NFA states.
type Transition struct {
	From  int
	Label core.Symbol
	To    int
}

// NFA is a nondeterministic finite automaton over Symbol-labeled
// transitions, without epsilon edges. States are the indices [0, States).
type NFA struct {
	States int
	Start  map[int]struct{}
	Final  map[int]struct{}
	Trans  []Transition
}

// NewNFA returns an empty automaton with n states and no transitions.
func NewNFA(n int) *NFA {
	return &NFA{
		States: n,
		Start:  make(map[int]struct{}),
		Final:  make(map[int]struct{}),
	}
}

// checkState validates a single state index.
func (n *NFA) checkState(s int) error {
	if s < 0 || s >= n.States {
		return fmt.Errorf("state %d of %d: %w", s, n.States, ErrBadState)
	}

	return nil
}

// MarkStart adds s to the start set.
func (n *NFA) MarkStart(s int) error {
	if err := n.checkState(s); err != nil {
		return err
	}
	n.Start[s] = struct{}{}

	return nil
}

// MarkFinal adds s to the final set.
func (n *NFA) MarkFinal(s int) error {
	if err := n.checkState(s); err != nil {
		return err
	}
	n.Final[s] = struct{}{}

	return nil
}

// AddTransition appends the arc (from, label, to).
func (n *NFA) AddTransition(from int, label core.Symbol, to int) error {
	if err := n.checkState(from); err != nil {
		return err
	}
	if err := n.checkState(to); err != nil {
		return err
	}
	n.Trans = append(n.Trans, Transition{From: from, Label: label, To: to})

	return nil
}

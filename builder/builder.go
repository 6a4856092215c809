// Package builder: generator implementations.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors for graph generation.
var (
	// ErrBadSize indicates a non-positive node or edge count.
	ErrBadSize = errors.New("builder: size must be positive")

	// ErrNoLabels indicates an empty label list.
	ErrNoLabels = errors.New("builder: at least one label required")
)

// Path returns the line graph 0→1→…→n with n edges; edge i carries
// labels[i % len(labels)].
func Path(n int, labels ...core.Symbol) (*core.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrBadSize)
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, i+1, labels[i%len(labels)]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the cycle 0→1→…→n-1→0 with every edge labeled label.
func Cycle(n int, label core.Symbol) (*core.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Cycle(%d): %w", n, ErrBadSize)
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n, label); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// TwoCycles returns two cycles joined at node 0: 0→1→…→n→0 labeled la
// and 0→n+1→…→n+m→0 labeled lb.
func TwoCycles(n, m int, la, lb core.Symbol) (*core.Graph, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("TwoCycles(%d,%d): %w", n, m, ErrBadSize)
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, i+1, la); err != nil {
			return nil, err
		}
	}
	if err := g.AddEdge(n, 0, la); err != nil {
		return nil, err
	}
	prev := 0
	for i := n + 1; i <= n+m; i++ {
		if err := g.AddEdge(prev, i, lb); err != nil {
			return nil, err
		}
		prev = i
	}

	return g, g.AddEdge(prev, 0, lb)
}

package debruijn

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dbgcycles/words"
)

// ValidateCycle checks that c is a closed simple walk of g:
// at least two nodes, every node in g, consecutive nodes joined by an edge,
// c[0] == c[len(c)-1] and no other node repeated.
func (g *Graph) ValidateCycle(c words.Cycle) error {
	if len(c) < 2 {
		return fmt.Errorf("debruijn: ValidateCycle: %w", ErrEmptyCycle)
	}
	for i, node := range c {
		if !g.HasNode(node) {
			return fmt.Errorf("debruijn: ValidateCycle: node %d (%v): %w", i, node, ErrBadNode)
		}
	}
	if !words.Equal(c[0], c[len(c)-1]) {
		return fmt.Errorf("debruijn: ValidateCycle: %v != %v: %w", c[0], c[len(c)-1], ErrNotClosed)
	}

	seen := make(map[string]struct{}, len(c)-1)
	for i := 0; i < len(c)-1; i++ {
		if !g.HasEdge(c[i], c[i+1]) {
			return fmt.Errorf("debruijn: ValidateCycle: %v -> %v: %w", c[i], c[i+1], ErrMissingEdge)
		}
		key := c[i].Key()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("debruijn: ValidateCycle: node %v: %w", c[i], ErrNotSimple)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// SimpleCycles lists every simple cycle of g whose length (number of edges)
// is at most maxLen. Each cycle is closed (first node repeated at the end)
// and starts at its lexicographically smallest node. The result is sorted by
// length, then node by node.
//
// maxLen values above NodeCount are clamped, since no simple cycle is longer.
//
// Errors: ErrInvalidParameter when maxLen < 1; ctx.Err() on cancellation.
func (g *Graph) SimpleCycles(maxLen int, opts ...Option) ([]words.Cycle, error) {
	if maxLen < 1 {
		return nil, fmt.Errorf("debruijn: SimpleCycles(maxLen=%d): %w", maxLen, ErrInvalidParameter)
	}
	if maxLen > g.size {
		maxLen = g.size
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		g:       g,
		o:       o,
		maxLen:  maxLen,
		onPath:  make([]bool, g.size),
		path:    make([]int, 0, maxLen),
		results: nil,
	}

	// 1) Root a search at every node; the root is the smallest node of every
	//    cycle found from it, so each cycle is reported exactly once.
	for start := 0; start < g.size; start++ {
		if err := w.visit(start, start); err != nil {
			return nil, fmt.Errorf("debruijn: SimpleCycles: %w", err)
		}
	}

	// 2) Deterministic order.
	slices.SortFunc(w.results, words.CompareCycles)

	return w.results, nil
}

// walker carries the DFS state of one SimpleCycles call.
type walker struct {
	g       *Graph
	o       Options
	maxLen  int
	onPath  []bool
	path    []int
	results []words.Cycle
}

// visit pushes id, closes every edge back to start, and recurses into
// successors larger than start that are not already on the path.
func (w *walker) visit(start, id int) error {
	if err := w.o.Ctx.Err(); err != nil {
		return err
	}

	w.path = append(w.path, id)
	w.onPath[id] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.onPath[id] = false
	}()

	for _, nbr := range w.g.successors(id) {
		switch {
		case nbr == start:
			w.record()
		case nbr > start && !w.onPath[nbr] && len(w.path) < w.maxLen:
			if err := w.visit(start, nbr); err != nil {
				return err
			}
		}
	}

	return nil
}

// record appends the current path, closed at its first node.
func (w *walker) record() {
	c := make(words.Cycle, 0, len(w.path)+1)
	for _, id := range w.path {
		c = append(c, w.g.word(id))
	}
	c = append(c, w.g.word(w.path[0]))
	w.results = append(w.results, c)
}

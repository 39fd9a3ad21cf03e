package debruijn

import (
	"fmt"

	"github.com/katalvlaran/dbgcycles/words"
)

// Graph is the order-k de Bruijn graph over σ letters. Nodes are identified
// internally by their base-σ value, so node IDs follow lexicographic order.
// A Graph is immutable after New and safe for concurrent reads.
type Graph struct {
	order int
	sigma int
	size  int // σ^k
}

// New builds dBG(order, sigma).
//
// Errors: ErrInvalidParameter, ErrTooLarge (wrapped).
func New(order int, sigma uint8) (*Graph, error) {
	if order < 1 || sigma < 2 {
		return nil, fmt.Errorf("debruijn: New(order=%d, sigma=%d): %w", order, sigma, ErrInvalidParameter)
	}

	size := 1
	for i := 0; i < order; i++ {
		size *= int(sigma)
		if size > MaxNodes {
			return nil, fmt.Errorf("debruijn: New(order=%d, sigma=%d): %w", order, sigma, ErrTooLarge)
		}
	}

	return &Graph{order: order, sigma: int(sigma), size: size}, nil
}

// Order returns k, the node length.
func (g *Graph) Order() int { return g.order }

// Sigma returns the alphabet size.
func (g *Graph) Sigma() uint8 { return uint8(g.sigma) }

// NodeCount returns σ^k.
func (g *Graph) NodeCount() int { return g.size }

// EdgeCount returns σ^(k+1): every node has exactly σ successors.
func (g *Graph) EdgeCount() int { return g.size * g.sigma }

// Nodes returns every node in lexicographic order.
func (g *Graph) Nodes() []words.Word {
	out := make([]words.Word, g.size)
	for id := range out {
		out[id] = g.word(id)
	}

	return out
}

// HasNode reports whether w is a node of g.
func (g *Graph) HasNode(w words.Word) bool {
	_, ok := g.id(w)

	return ok
}

// HasEdge reports whether u→v is an edge: both are nodes and u[1:] == v[:k-1].
func (g *Graph) HasEdge(u, v words.Word) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}

	return words.Equal(u[1:], v[:g.order-1])
}

// Successors returns the σ out-neighbours of u in lexicographic order.
//
// Errors: ErrBadNode when u is not a node.
func (g *Graph) Successors(u words.Word) ([]words.Word, error) {
	id, ok := g.id(u)
	if !ok {
		return nil, fmt.Errorf("debruijn: Successors(%v): %w", u, ErrBadNode)
	}
	out := make([]words.Word, 0, g.sigma)
	for _, s := range g.successors(id) {
		out = append(out, g.word(s))
	}

	return out, nil
}

// successors returns the IDs reached from id: drop the leading letter,
// append each letter a. They are increasing in a.
func (g *Graph) successors(id int) []int {
	base := (id * g.sigma) % g.size
	out := make([]int, g.sigma)
	for a := range out {
		out[a] = base + a
	}

	return out
}

// id converts a node word to its base-σ value.
func (g *Graph) id(w words.Word) (int, bool) {
	if len(w) != g.order {
		return 0, false
	}
	id := 0
	for _, l := range w {
		if int(l) >= g.sigma {
			return 0, false
		}
		id = id*g.sigma + int(l)
	}

	return id, true
}

// word converts a base-σ value back to its node word.
func (g *Graph) word(id int) words.Word {
	w := make(words.Word, g.order)
	for i := g.order - 1; i >= 0; i-- {
		w[i] = words.Letter(id % g.sigma)
		id /= g.sigma
	}

	return w
}

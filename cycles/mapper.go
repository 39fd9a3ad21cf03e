package cycles

import "github.com/katalvlaran/dbgcycles/words"

// MapWordToCycle maps a perfect Lyndon word w of length ℓ to its simple cycle
// in dBG(k, σ): for i = 0..ℓ (inclusive) node i is w[(i+j) mod ℓ], j ∈ [0, k).
// The result has ℓ+1 nodes of length k; node 0 and node ℓ coincide.
//
// It applies uniformly when k ≥ ℓ (nodes wrap around w) and when k < ℓ
// (nodes are cyclic windows of w). An empty w or k < 1 yields nil.
//
// Complexity: O(ℓ·k) time and memory.
func MapWordToCycle(w words.Word, k int) words.Cycle {
	n := len(w)
	if n == 0 || k < 1 {
		return nil
	}

	cycle := make(words.Cycle, 0, n+1)
	for i := 0; i <= n; i++ {
		// Node starting at rotation i of w.
		node := make(words.Word, k)
		for j := 0; j < k; j++ {
			node[j] = w[(i+j)%n]
		}
		cycle = append(cycle, node)
	}

	return cycle
}

// WordOfCycle inverts MapWordToCycle up to the starting node: it reads the
// first letter of every node of c (closing repeat excluded) and returns the
// minimal rotation of that word. ok is false when c has no edge, holds an
// empty node, or the recovered word is not Lyndon (a periodic walk).
//
// For a simple cycle c of dBG(k, σ), MapWordToCycle(w, k) is c rotated to
// start at its smallest node.
func WordOfCycle(c words.Cycle) (w words.Word, ok bool) {
	if len(c) < 2 {
		return nil, false
	}
	letters := make(words.Word, 0, len(c)-1)
	for _, node := range c[:len(c)-1] {
		if len(node) == 0 {
			return nil, false
		}
		letters = append(letters, node[0])
	}
	w = words.MinimalRotation(letters)
	if !words.IsLyndon(w) {
		return nil, false
	}

	return w, true
}

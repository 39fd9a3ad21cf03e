// Package debruijn models the de Bruijn graph dBG(k, σ) explicitly and
// enumerates its simple cycles by depth-first search.
//
// What:
//
//   - Graph: the σ^k nodes (all k-long words, lexicographic order) and the
//     σ^(k+1) edges u→v where u[1:] == v[:k-1]. Self-loops exist on the σ
//     constant nodes. Iteration is deterministic.
//   - ValidateCycle: checks that a words.Cycle is a closed simple walk of the graph.
//   - SimpleCycles: brute-force DFS listing of every simple cycle of length
//     ≤ maxLen, each rotated to start at its smallest node.
//
// Why:
//
//   - An oracle independent from Lyndon words, used to cross-check the
//     cycles package and by the `dbgcycles verify` command.
//
// Complexity:
//
//   - New:          O(σ^k) time and memory.
//   - SimpleCycles: exponential in general; O(C·L) beyond the search itself
//     (C = #cycles, L = avg cycle length). Only meant for small graphs.
//
// Errors:
//
//   - ErrInvalidParameter  order < 1 or σ < 2
//   - ErrTooLarge          σ^k above MaxNodes
//   - ErrEmptyCycle, ErrNotClosed, ErrBadNode, ErrMissingEdge, ErrNotSimple
//     from ValidateCycle
//   - context errors       when SimpleCycles is cancelled via WithContext
package debruijn

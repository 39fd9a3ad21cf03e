// Package words defines the value types shared by every dbgcycles package:
// letters, words over a small alphabet, and cycles of the de Bruijn graph.
//
// What:
//
//   - Letter: a small non-negative integer in [0, σ).
//   - Word:   an ordered sequence of letters, compared lexicographically.
//   - Cycle:  an ordered sequence of k-long nodes, closed (first == last),
//     where consecutive nodes overlap in k−1 letters.
//
// Helpers:
//
//   - Compare / Equal / Clone / Less
//   - Rotate, MinimalRotation (Booth, O(n)), IsLyndon
//   - Key (map-friendly signature) and String ("0.1.1" dotted rendering)
//
// Words produced by the lyndon package are owned copies; callers may keep
// or mutate them freely.
package words

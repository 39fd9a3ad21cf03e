// Package cycles enumerates and counts simple cycles of bounded length in the
// de Bruijn graph dBG(k, σ) through their bijection with perfect Lyndon words.
//
// What:
//
//   - MapWordToCycle: turns a perfect Lyndon word of length ℓ into the ℓ+1
//     k-mer nodes of the corresponding closed walk.
//   - EnumFixedLength:   cycles of length exactly ℓ.
//   - EnumBoundedLength: cycles of every length ≤ ℓ, in the interleaved
//     lexicographic order of their Lyndon words (use SortByLength to group).
//   - EnumAll:           every simple cycle of dBG(k, σ) (bound σ^k).
//   - CountOnlyEnum:     cardinality by enumeration.
//   - CountWithFormula:  cardinality by closed form where one is known,
//     falling back to enumeration unless onlyFormula is set.
//
// Pipeline:
//
//	lyndon.Generator ──▶ perfect filter ──▶ MapWordToCycle ──▶ []words.Cycle
//
// The perfect filter is skipped when ℓ ≤ k: a Lyndon word is primitive, so its
// ℓ cyclic windows of length k ≥ ℓ start at pairwise distinct rotations and
// are pairwise distinct.
//
// Count keeps the provenance of every cardinality (proved formula,
// conjectured formula, enumeration, or no formula) so callers can render it.
//
// Errors:
//
//   - ErrInvalidParameter  length < 1, order < 1, σ outside [2, MaxSigma]
//   - ErrTooLarge          σ^k does not fit the platform int (EnumAll)
//   - formula errors       propagated (wrapped) from closed forms
//
// Complexity: dominated by the generator, O(n · #Lyndon words) letter writes,
// plus O(ℓ·k) per word for the perfect filter and mapping. Memory grows with
// the number of cycles returned; no internal cap is applied.
package cycles

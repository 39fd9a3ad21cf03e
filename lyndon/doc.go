// Package lyndon generates Lyndon words over the alphabet [0, maxLetter] in
// strictly increasing lexicographic order, using Duval's in-place successor
// algorithm.
//
// What:
//
//   - FixedLength mode: every Lyndon word of length exactly n, from 0^(n-1)1
//     (or 0 when n = 1) up to (maxLetter-1)·maxLetter^(n-1) (or maxLetter when n = 1).
//   - BoundedLength mode: every Lyndon word of length 1..n, interleaved in one
//     lexicographic order across lengths (not grouped by length), from 0 up to
//     the single letter maxLetter.
//
// Why:
//
//   - Perfect Lyndon words are in bijection with simple cycles of de Bruijn
//     graphs; the cycles package filters and maps this stream.
//
// Key Types:
//
//   - Mode:      FixedLength or BoundedLength, chosen once per generator.
//   - State:     explicit engine state (buffer, logical length, max letter, mode).
//   - Generator: owns a State plus a terminal exhausted flag; exposes Next and
//     a lazy iter.Seq via All. A generator is never reset: build a new one.
//
// Step(state) is the pure transition. It returns the successor word or
// ErrExhausted when the current word is the maximum one; ErrExhausted is the
// normal end of the sequence, not a failure.
//
// Complexity:
//
//   - Step: amortized O(n) letter writes per successor (constant amortized
//     in the number of words for the bounded variant).
//   - Memory: O(n) per generator; yielded words are independent copies.
//
// Reference: J.-P. Duval, "Génération d'une section des classes de conjugaison
// et arbre des mots de Lyndon de longueur bornée", TCS 60 (1988).
package lyndon

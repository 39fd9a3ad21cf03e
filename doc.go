// Package dbgcycles counts and enumerates the simple cycles of de Bruijn
// graphs through perfect Lyndon words.
//
// 🚀 What is dbgcycles?
//
//	A small, dependency-light library (plus CLI) built on one bijection:
//	the simple cycles of length ℓ in dBG(k, σ) are exactly the Lyndon words
//	of length ℓ over σ letters whose ℓ cyclic k-windows are pairwise distinct.
//		• Lyndon words: Duval's successor, fixed-length and bounded-length
//		• Perfectness filter and word-to-cycle mapping
//		• Enumeration and counting drivers with proved/conjectured formulas
//		• An explicit graph and DFS oracle to cross-check them
//
// Under the hood, everything is organized under these subpackages:
//
//	words/    — Letter, Word and Cycle values, rotations, Lyndon predicate
//	lyndon/   — lazy Lyndon word generator
//	perfect/  — perfectness predicates
//	formula/  — number-theoretic helpers and closed-form counts
//	cycles/   — mapper, enumeration and counting drivers, Count provenance
//	debruijn/ — explicit de Bruijn graph and brute-force simple cycles
//
// Quick example, the four simple cycles of length 7 in dBG(3, 2):
//
//	cs, _ := cycles.EnumFixedLength(7, 3, 2)
//	for _, c := range cs {
//		fmt.Println(c) // 0.0.0 --> 0.0.1 --> 0.1.0 --> ...
//	}
//
// The dbgcycles command (cmd/dbgcycles) exposes count, enum, conjecture and
// verify subcommands:
//
//	go install github.com/katalvlaran/dbgcycles/cmd/dbgcycles@latest
//	dbgcycles count -k 3 -l 6
package dbgcycles

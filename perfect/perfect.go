// Package perfect decides whether a word is perfect for a window size k:
// all of its len(w) cyclic k-mers are pairwise distinct.
//
// Perfect Lyndon words of length ℓ are exactly the words that map to simple
// cycles of length ℓ in the order-k de Bruijn graph.
//
// Complexity: O(ℓ·k) time, O(ℓ·k) memory for the k-mer set.
package perfect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dbgcycles/words"
)

var (
	// ErrEmptyWord indicates a zero-length word was passed to a predicate.
	ErrEmptyWord = errors.New("perfect: empty word")

	// ErrInvalidWindow indicates k < 1 or k > len(w).
	ErrInvalidWindow = errors.New("perfect: window size out of range")
)

// IsPerfect reports whether the len(w) cyclic windows (w·w)[i:i+k],
// i ∈ [0, len(w)), are pairwise distinct.
//
// Errors:
//   - ErrEmptyWord      when len(w) == 0.
//   - ErrInvalidWindow  when k < 1 or k > len(w).
func IsPerfect(w words.Word, k int) (bool, error) {
	// 1) Guard the domain: windows are read from the doubled word, so k ≤ len(w).
	if len(w) == 0 {
		return false, ErrEmptyWord
	}
	if k < 1 || k > len(w) {
		return false, fmt.Errorf("perfect: IsPerfect(len=%d, k=%d): %w", len(w), k, ErrInvalidWindow)
	}

	// 2) Build the doubled word once.
	doubled := make(words.Word, 0, 2*len(w))
	doubled = append(doubled, w...)
	doubled = append(doubled, w...)

	// 3) Collect k-mers into a set; stop at the first repeat.
	seen := make(map[string]struct{}, len(w))
	for i := 0; i < len(w); i++ {
		key := doubled[i : i+k].Key()
		if _, dup := seen[key]; dup {
			return false, nil
		}
		seen[key] = struct{}{}
	}

	return true, nil
}

// IsPerfectLyndon is IsPerfect specialised to Lyndon words: whenever
// len(w) ≤ k it returns true without looking at the letters, because the
// k-windows of a primitive word of length ≤ k are its distinct rotations
// (padded cyclically), hence pairwise distinct.
//
// NOTE: checking that w is indeed a Lyndon word is the caller's duty. For a
// non-Lyndon w the result of the len(w) ≤ k branch is unspecified; for
// len(w) > k the answer comes from IsPerfect and is exact for any word.
func IsPerfectLyndon(w words.Word, k int) (bool, error) {
	if len(w) == 0 {
		return false, ErrEmptyWord
	}
	if k < 1 {
		return false, fmt.Errorf("perfect: IsPerfectLyndon(len=%d, k=%d): %w", len(w), k, ErrInvalidWindow)
	}
	if len(w) <= k {
		return true, nil
	}

	return IsPerfect(w, k)
}

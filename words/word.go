package words

import (
	"strconv"
	"strings"
)

// Letter is a single symbol of the alphabet [0, σ).
type Letter = uint8

// Word is a finite sequence of letters. The zero value (nil) is the empty word.
type Word []Letter

// Cycle is a closed walk in a de Bruijn graph: every node has the same length k,
// node i's (k−1)-suffix equals node i+1's (k−1)-prefix, and the first node is
// repeated at the end.
type Cycle []Word

// Of builds a Word from integer literals. It is a convenience for tests and
// examples; values are truncated to Letter.
func Of(letters ...int) Word {
	w := make(Word, len(letters))
	for i, l := range letters {
		w[i] = Letter(l)
	}

	return w
}

// Repeat returns the word made of n copies of letter l.
func Repeat(l Letter, n int) Word {
	w := make(Word, n)
	for i := range w {
		w[i] = l
	}

	return w
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// Compare lexicographically compares a and b letter by letter.
// A proper prefix sorts before the longer word.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(min(len(a), len(b))).
func Compare(a, b Word) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1 // first differing letter a[i] < b[i]
		} else if a[i] > b[i] {
			return 1 // first differing letter a[i] > b[i]
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Equal reports whether a and b hold the same letters.
func Equal(a, b Word) bool { return Compare(a, b) == 0 }

// Less reports whether a sorts strictly before b.
func Less(a, b Word) bool { return Compare(a, b) < 0 }

// Key returns a compact string signature of w, suitable as a map key.
// Two words share a key iff they are Equal.
func (w Word) Key() string { return string(w) }

// String renders w with dot separators, e.g. "0.1.1".
func (w Word) String() string {
	parts := make([]string, len(w))
	for i, l := range w {
		parts[i] = strconv.Itoa(int(l))
	}

	return strings.Join(parts, ".")
}

// Len is the combinatorial length of the cycle (number of edges).
// The closing repeat of the start node is not counted.
func (c Cycle) Len() int {
	if len(c) == 0 {
		return 0
	}

	return len(c) - 1
}

// String renders c as "0.0.1 --> 0.1.0 --> ...".
func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, node := range c {
		parts[i] = node.String()
	}

	return strings.Join(parts, " --> ")
}

// CompareCycles orders cycles by length first, then node by node.
// This is the grouping order used when printing a whole de Bruijn graph.
func CompareCycles(a, b Cycle) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

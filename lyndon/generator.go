package lyndon

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dbgcycles/words"
)

// Generator yields Lyndon words in increasing lexicographic order.
// It is forward-only: once exhausted it stays exhausted.
type Generator struct {
	st        State
	exhausted bool
}

// NewSmallest creates a generator positioned on the smallest word of the
// requested family (see NewState). The first call to Next returns that word.
//
// Errors: ErrBadLength, ErrBadAlphabet, ErrUnknownMode (wrapped).
func NewSmallest(n int, maxLetter words.Letter, mode Mode) (*Generator, error) {
	st, err := NewState(n, maxLetter, mode)
	if err != nil {
		return nil, fmt.Errorf("lyndon: NewSmallest(n=%d, maxLetter=%d, %s): %w", n, maxLetter, mode, err)
	}

	return &Generator{st: st}, nil
}

// Word returns a copy of the word the generator currently points at.
func (g *Generator) Word() words.Word { return g.st.Word() }

// Mode reports the family this generator enumerates.
func (g *Generator) Mode() Mode { return g.st.mode }

// Exhausted reports whether the maximum word has already been yielded.
func (g *Generator) Exhausted() bool { return g.exhausted }

// Next returns the current word and advances to its successor.
// ok is false once the sequence is over.
func (g *Generator) Next() (w words.Word, ok bool) {
	if g.exhausted {
		return nil, false
	}
	w = g.st.Word()
	if _, err := Step(&g.st); err != nil {
		// Only ErrExhausted can come out of Step on a valid state.
		g.exhausted = true
	}

	return w, true
}

// All returns the remaining words as a lazy sequence. Breaking out of the
// range loop leaves the generator where it stopped.
func (g *Generator) All() iter.Seq[words.Word] {
	return func(yield func(words.Word) bool) {
		for {
			w, ok := g.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// Collect enumerates a whole family into a slice.
func Collect(n int, maxLetter words.Letter, mode Mode) ([]words.Word, error) {
	g, err := NewSmallest(n, maxLetter, mode)
	if err != nil {
		return nil, err
	}
	var out []words.Word
	for w := range g.All() {
		out = append(out, w)
	}

	return out, nil
}

// Step advances st to the next Lyndon word of its family and returns a copy of it.
// When the current word is the greatest one, Step returns ErrExhausted and
// leaves the current word untouched.
func Step(st *State) (words.Word, error) {
	var err error
	switch st.mode {
	case FixedLength:
		err = stepFixed(st)
	case BoundedLength:
		err = stepBounded(st)
	default:
		err = ErrUnknownMode
	}
	if err != nil {
		return nil, err
	}

	return st.Word(), nil
}

// stepFixed is Duval's successor restricted to length n = len(st.buf).
// Indices i and k count letters (1-based cursor positions): buf[i-1] is the
// letter at cursor i.
func stepFixed(st *State) error {
	buf, mx := st.buf, st.maxLetter
	n := len(buf)

	// 0) Length 1: the family is just 0, 1, …, maxLetter.
	if n == 1 {
		if buf[0] == mx {
			return ErrExhausted
		}
		buf[0]++

		return nil
	}

	// 1) Strip right trailing max letters.
	i := n
	for i > 0 && buf[i-1] == mx {
		i--
	}

	// 2) If the first letter would become maximal, the current word is already
	//    the greatest of its length.
	if i == 0 || (i == 1 && buf[0]+1 == mx) {
		return ErrExhausted
	}
	buf[i-1]++

	// 3) Repeat the buf[:i] pattern integrally as many times as fits.
	k := i
	for i < n-k {
		copy(buf[k:k+i], buf[:i])
		k += i
	}

	// 4) Repeat it non-integrally up to n, strip trailing max letters,
	//    increment, then tile the short pattern starting at k integrally.
	//    Stop once a tiling ends exactly at n. (i > k holds after each strip.)
	for i != n {
		copy(buf[k:n], buf[:n-k])
		i = n
		for buf[i-1] == mx {
			i--
		}
		buf[i-1]++
		d := i - k
		for d <= n-i {
			copy(buf[i:i+d], buf[k:k+d])
			i += d
		}
		k = i
	}

	return nil
}

// stepBounded is Duval's successor over all lengths ≤ n: replicate the current
// word cyclically over the buffer, strip trailing max letters, increment.
// The new logical length is the cursor reached.
func stepBounded(st *State) error {
	buf, mx := st.buf, st.maxLetter
	n, m := len(buf), st.length

	// 1) Conjugacy class representative: buf[j] = buf[j mod m].
	for j := m; j < n; j++ {
		buf[j] = buf[j%m]
	}

	// 2) Strip right trailing max letters.
	i := n
	for i > 0 && buf[i-1] == mx {
		i--
	}

	// 3) Everything was maximal: the current word is the single letter maxLetter.
	if i == 0 {
		return ErrExhausted
	}

	// 4) Increment and truncate.
	buf[i-1]++
	st.length = i

	return nil
}

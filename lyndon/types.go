package lyndon

import (
	"errors"

	"github.com/katalvlaran/dbgcycles/words"
)

// Mode selects which family of Lyndon words a generator enumerates.
type Mode uint8

const (
	// FixedLength enumerates Lyndon words of length exactly n.
	FixedLength Mode = iota
	// BoundedLength enumerates Lyndon words of every length in [1, n].
	BoundedLength
)

// String returns a short human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case FixedLength:
		return "fixed-length"
	case BoundedLength:
		return "bounded-length"
	default:
		return "unknown"
	}
}

var (
	// ErrExhausted signals that the current word is the greatest of its family:
	// there is no successor. It terminates a sequence normally.
	ErrExhausted = errors.New("lyndon: no successor")

	// ErrBadLength indicates a requested length (or bound) smaller than 1.
	ErrBadLength = errors.New("lyndon: length must be at least 1")

	// ErrBadAlphabet indicates maxLetter < 1, i.e. an alphabet of fewer than two letters.
	ErrBadAlphabet = errors.New("lyndon: alphabet needs at least two letters")

	// ErrUnknownMode indicates a Mode value outside FixedLength/BoundedLength.
	ErrUnknownMode = errors.New("lyndon: unknown mode")
)

// State is the mutable engine behind a Generator.
//
// Invariant: buf[:length] is a Lyndon word over [0, maxLetter] at every
// observable point. In FixedLength mode length == len(buf) always.
// Letters of buf beyond length are scratch space.
type State struct {
	buf       []words.Letter // working buffer, capacity n
	length    int            // logical length of the current word
	maxLetter words.Letter   // σ−1
	mode      Mode           // selected once at construction
}

// NewState returns the state holding the smallest Lyndon word of the requested
// family: 0^(n-1)1 (or 0 when n = 1) in FixedLength mode, 0 in BoundedLength mode.
func NewState(n int, maxLetter words.Letter, mode Mode) (State, error) {
	if n < 1 {
		return State{}, ErrBadLength
	}
	if maxLetter < 1 {
		return State{}, ErrBadAlphabet
	}

	st := State{
		buf:       make([]words.Letter, n),
		maxLetter: maxLetter,
		mode:      mode,
	}
	switch mode {
	case FixedLength:
		st.length = n
		if n > 1 {
			st.buf[n-1] = 1
		}
	case BoundedLength:
		st.length = 1
	default:
		return State{}, ErrUnknownMode
	}

	return st, nil
}

// Word returns an independent copy of the current Lyndon word.
func (s *State) Word() words.Word {
	out := make(words.Word, s.length)
	copy(out, s.buf[:s.length])

	return out
}

// Len returns the logical length of the current word.
func (s *State) Len() int { return s.length }

// Cap returns n, the fixed length or the length bound.
func (s *State) Cap() int { return len(s.buf) }

// MaxLetter returns the greatest letter of the alphabet.
func (s *State) MaxLetter() words.Letter { return s.maxLetter }

// Mode returns the mode the state was built with.
func (s *State) Mode() Mode { return s.mode }

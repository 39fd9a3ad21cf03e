package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dbgcycles/words"
)

// bruteMinRotation returns the minimal rotation by trying every shift.
func bruteMinRotation(w words.Word) words.Word {
	best := w.Clone()
	for i := 1; i < len(w); i++ {
		if r := words.Rotate(w, i); words.Less(r, best) {
			best = r
		}
	}

	return best
}

// TestRotate covers ordinary, wrapping and negative shifts.
func TestRotate(t *testing.T) {
	w := words.Of(0, 1, 2, 3)
	assert.Equal(t, words.Of(2, 3, 0, 1), words.Rotate(w, 2))
	assert.Equal(t, w, words.Rotate(w, 4))
	assert.Equal(t, words.Of(3, 0, 1, 2), words.Rotate(w, -1))
	assert.Equal(t, words.Word{}, words.Rotate(words.Word{}, 3))
}

// TestMinimalRotation_AgreesWithBruteForce checks Booth against an O(n²) scan
// over every ternary word of length 5.
func TestMinimalRotation_AgreesWithBruteForce(t *testing.T) {
	w := make(words.Word, 5)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(w) {
			assert.Equal(t, bruteMinRotation(w), words.MinimalRotation(w), "word %v", w)
			return
		}
		for l := words.Letter(0); l < 3; l++ {
			w[pos] = l
			walk(pos + 1)
		}
	}
	walk(0)
}

// TestIsLyndon covers primitive minimal words, periodic words and rotations.
func TestIsLyndon(t *testing.T) {
	cases := []struct {
		w    words.Word
		want bool
	}{
		{words.Of(0), true},
		{words.Of(2), true},
		{words.Of(0, 1), true},
		{words.Of(1, 0), false},
		{words.Of(0, 0), false},
		{words.Of(0, 1, 0, 1), false},
		{words.Of(0, 0, 1, 0, 1), true},
		{words.Of(0, 1, 0, 0, 1), false},
		{words.Of(1, 2, 2, 2), true},
		{words.Word{}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, words.IsLyndon(tc.w), "word %v", tc.w)
	}
}

// TestIsPrimitive distinguishes powers from primitive words.
func TestIsPrimitive(t *testing.T) {
	assert.True(t, words.IsPrimitive(words.Of(0, 1, 1)))
	assert.False(t, words.IsPrimitive(words.Of(1, 1, 1)))
	assert.False(t, words.IsPrimitive(words.Of(0, 1, 2, 0, 1, 2)))
	assert.False(t, words.IsPrimitive(words.Word{}))
}

package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dbgcycles/words"
)

// TestCompare covers letter-wise ordering and the prefix rule.
func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b words.Word
		want int
	}{
		{"equal", words.Of(0, 1, 1), words.Of(0, 1, 1), 0},
		{"first letter smaller", words.Of(0, 2), words.Of(1, 0), -1},
		{"later letter larger", words.Of(0, 1, 2), words.Of(0, 1, 1), 1},
		{"prefix sorts first", words.Of(0, 1), words.Of(0, 1, 1), -1},
		{"longer after prefix", words.Of(0, 0, 1), words.Of(0, 0), 1},
		{"empty vs non-empty", words.Word{}, words.Of(0), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, words.Compare(tc.a, tc.b))
			assert.Equal(t, -tc.want, words.Compare(tc.b, tc.a))
		})
	}
}

// TestClone_Independent verifies Clone does not alias the source buffer.
func TestClone_Independent(t *testing.T) {
	w := words.Of(0, 1, 2)
	c := w.Clone()
	c[0] = 2
	assert.Equal(t, words.Of(0, 1, 2), w)
	assert.Nil(t, words.Word(nil).Clone())
}

// TestKey_MatchesEquality checks that keys coincide exactly for equal words.
func TestKey_MatchesEquality(t *testing.T) {
	assert.Equal(t, words.Of(0, 1).Key(), words.Of(0, 1).Key())
	assert.NotEqual(t, words.Of(0, 1).Key(), words.Of(1, 0).Key())
	assert.NotEqual(t, words.Of(0).Key(), words.Of(0, 0).Key())
}

// TestString renders words and cycles the way the CLI prints them.
func TestString(t *testing.T) {
	assert.Equal(t, "0.1.1", words.Of(0, 1, 1).String())

	c := words.Cycle{words.Of(0, 1, 0), words.Of(1, 0, 1), words.Of(0, 1, 0)}
	assert.Equal(t, "0.1.0 --> 1.0.1 --> 0.1.0", c.String())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 0, words.Cycle{}.Len())
}

// TestCompareCycles orders by length before content.
func TestCompareCycles(t *testing.T) {
	short := words.Cycle{words.Of(1, 1), words.Of(1, 1)}
	long := words.Cycle{words.Of(0, 1), words.Of(1, 0), words.Of(0, 1)}
	assert.Equal(t, -1, words.CompareCycles(short, long))
	assert.Equal(t, 1, words.CompareCycles(long, short))
	assert.Equal(t, 0, words.CompareCycles(long, long))

	zero := words.Cycle{words.Of(0, 0), words.Of(0, 0)}
	assert.Equal(t, -1, words.CompareCycles(zero, short))
}

// TestRepeat builds constant words.
func TestRepeat(t *testing.T) {
	assert.Equal(t, words.Of(2, 2, 2), words.Repeat(2, 3))
	assert.Empty(t, words.Repeat(1, 0))
}

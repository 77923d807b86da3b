package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		// Segments keep their raw text, leading whitespace included.
		{"ls -l; pwd", []string{"ls -l", " pwd"}},
		{"echo a", []string{"echo a"}},
		// A quoted separator does not split.
		{`echo "a;b"`, []string{`echo "a;b"`}},
		{`echo 'a;b'`, []string{`echo 'a;b'`}},
		// An escaped separator does not split, and the escape survives
		// for the tokenizer.
		{`echo a\;b`, []string{`echo a\;b`}},
		// Empty segments are dropped.
		{"ls;;pwd", []string{"ls", "pwd"}},
		{"ls;", []string{"ls"}},
		{";", nil},
		{"; ;", nil},
		{"", nil},
		{"a;b;c", []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.input))
		})
	}
}

func TestSplit_unterminatedQuoteKeepsSegmentWhole(t *testing.T) {
	// The quote swallows the separator; Tokenize reports the error later.
	assert.Equal(t, []string{`echo "a; pwd`}, Split(`echo "a; pwd`))
}

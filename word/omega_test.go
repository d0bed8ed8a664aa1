package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/omegalearn/word"
)

// TestNewOmega_Canonical checks that equal infinite words get equal values.
func TestNewOmega_Canonical(t *testing.T) {
	cases := []struct {
		spoke, cycle string
		want         string
	}{
		{"", "a", "(a)"},
		{"", "aaa", "(a)"},
		{"a", "a", "(a)"},
		{"a", "ba", "(ab)"},
		{"ab", "ab", "(ab)"},
		{"ba", "abab", "ba(ab)"},
		{"b", "a", "b(a)"},
		{"aab", "b", "aa(b)"},
		{"", "abab", "(ab)"},
	}
	for _, tc := range cases {
		w, err := word.NewOmega(tc.spoke, tc.cycle)
		require.NoError(t, err)
		assert.Equal(t, tc.want, w.String(), "NewOmega(%q,%q)", tc.spoke, tc.cycle)
	}

	// Different representations of the same word compare equal.
	assert.Equal(t, word.MustOmega("ab", "ab"), word.Periodic("ba").Suffix(1))
	assert.True(t, word.MustOmega("a", "ba").Equal(word.Periodic("ab")))
}

// TestNewOmega_EmptyCycle verifies the sentinel for an empty cycle.
func TestNewOmega_EmptyCycle(t *testing.T) {
	_, err := word.NewOmega("ab", "")
	assert.ErrorIs(t, err, word.ErrEmptyCycle)
	assert.Panics(t, func() { word.MustOmega("", "") })
}

// TestOmega_AtPrefixSuffix walks the infinite expansion.
func TestOmega_AtPrefixSuffix(t *testing.T) {
	// ba·(ab)^ω = b a a b a b ...
	w := word.MustOmega("ba", "ab")
	assert.Equal(t, "ba(ab)", w.String())
	assert.Equal(t, "baabab", w.Prefix(6))
	assert.Equal(t, byte('b'), w.At(0))
	assert.Equal(t, byte('a'), w.At(2))
	assert.Equal(t, byte('b'), w.At(5))

	assert.Equal(t, "a(ab)", w.Suffix(1).String())
	assert.Equal(t, "(ab)", w.Suffix(2).String())
	assert.Equal(t, "(ba)", w.Suffix(3).String())
	assert.Equal(t, "(ab)", w.Suffix(4).String())
	assert.Equal(t, w, w.Suffix(0))
}

// TestParse covers the "spoke(cycle)" notation and its failure modes.
func TestParse(t *testing.T) {
	w, err := word.Parse(" a(b) ")
	require.NoError(t, err)
	assert.Equal(t, "a", w.Spoke())
	assert.Equal(t, "b", w.Cycle())

	w, err = word.Parse("(aab)")
	require.NoError(t, err)
	s, c := w.Len()
	assert.Equal(t, 0, s)
	assert.Equal(t, 3, c)

	for _, bad := range []string{"", "ab", "a(b", "a)b(", "a(b)c", "()", "a((b))"} {
		_, err := word.Parse(bad)
		assert.ErrorIs(t, err, word.ErrBadNotation, "Parse(%q)", bad)
	}
	assert.Panics(t, func() { word.MustParse("nope") })
}

// TestCompareLengthLex anchors the length-lexicographic order.
func TestCompareLengthLex(t *testing.T) {
	assert.Equal(t, -1, word.CompareLengthLex("b", "aa"))
	assert.Equal(t, 1, word.CompareLengthLex("aa", "b"))
	assert.Equal(t, -1, word.CompareLengthLex("ab", "ba"))
	assert.Equal(t, 0, word.CompareLengthLex("ab", "ab"))
}

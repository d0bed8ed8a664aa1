package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/omegalearn/word"
)

func TestNewAlphabet(t *testing.T) {
	a, err := word.NewAlphabet("cab")
	require.NoError(t, err)
	assert.Equal(t, "abc", a.String())
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, []byte("abc"), a.Symbols())
	assert.Equal(t, 1, a.Index('b'))
	assert.Equal(t, -1, a.Index('z'))
	assert.True(t, a.Equal(word.AlphabetOfSize(3)))

	_, err = word.NewAlphabet("")
	assert.ErrorIs(t, err, word.ErrEmptyAlphabet)
	_, err = word.NewAlphabet("aba")
	assert.ErrorIs(t, err, word.ErrDuplicateSymbol)
}

func TestAlphabetOfSize(t *testing.T) {
	assert.Equal(t, "ab", word.AlphabetOfSize(2).String())
	assert.Panics(t, func() { word.AlphabetOfSize(0) })
	assert.Panics(t, func() { word.AlphabetOfSize(27) })
}

func TestAlphabet_Validate(t *testing.T) {
	a := word.AlphabetOfSize(2)
	assert.NoError(t, a.Validate("abba"))
	assert.NoError(t, a.Validate(""))
	assert.ErrorIs(t, a.Validate("abc"), word.ErrSymbolNotInAlphabet)
}

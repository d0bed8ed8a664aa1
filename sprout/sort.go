package sprout

import (
	"slices"

	"github.com/katalvlaran/omegalearn/word"
)

// LengthLexicographicalSort returns a sorted copy of words: shorter first,
// equal lengths in byte order.
func LengthLexicographicalSort(words []string) []string {
	out := slices.Clone(words)
	slices.SortStableFunc(out, word.CompareLengthLex)

	return out
}

// leastPrefix returns the length-lexicographically least prefix.
func leastPrefix(prefixes []string) (string, bool) {
	if len(prefixes) == 0 {
		return "", false
	}

	return slices.MinFunc(prefixes, word.CompareLengthLex), true
}

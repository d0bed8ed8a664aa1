package word

import (
	"fmt"
	"slices"
	"strings"
)

// Alphabet is a finite, ordered set of symbols. The zero value is the empty
// alphabet and is only useful as a placeholder.
type Alphabet struct {
	symbols string // ascending byte order, no duplicates
}

// NewAlphabet builds an alphabet from the given symbols. Order of the input is
// irrelevant; the alphabet is always kept in ascending byte order.
func NewAlphabet(symbols string) (Alphabet, error) {
	if symbols == "" {
		return Alphabet{}, ErrEmptyAlphabet
	}
	buf := []byte(symbols)
	slices.Sort(buf)
	for i := 1; i < len(buf); i++ {
		if buf[i] == buf[i-1] {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, buf[i])
		}
	}

	return Alphabet{symbols: string(buf)}, nil
}

// AlphabetOfSize returns the alphabet of the first n lowercase letters.
// It panics unless 1 <= n <= 26.
func AlphabetOfSize(n int) Alphabet {
	if n < 1 || n > maxGeneratedSymbols {
		panic(fmt.Sprintf("word: alphabet size %d out of range [1,%d]", n, maxGeneratedSymbols))
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 'a' + byte(i)
	}

	return Alphabet{symbols: string(buf)}
}

// Size returns the number of symbols.
func (a Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the symbols in ascending order.
func (a Alphabet) Symbols() []Symbol { return []byte(a.symbols) }

// Contains reports whether s is a symbol of a.
func (a Alphabet) Contains(s Symbol) bool { return strings.IndexByte(a.symbols, s) >= 0 }

// Index returns the position of s in the symbol order, or -1.
func (a Alphabet) Index(s Symbol) int { return strings.IndexByte(a.symbols, s) }

// Equal reports whether both alphabets hold the same symbols.
func (a Alphabet) Equal(b Alphabet) bool { return a.symbols == b.symbols }

// String renders the symbols as one string, e.g. "ab".
func (a Alphabet) String() string { return a.symbols }

// Validate checks that every symbol of w belongs to a.
func (a Alphabet) Validate(w string) error {
	for i := 0; i < len(w); i++ {
		if !a.Contains(w[i]) {
			return fmt.Errorf("%w: %q at position %d of %q", ErrSymbolNotInAlphabet, w[i], i, w)
		}
	}

	return nil
}

// MarshalYAML renders the alphabet as its symbol string.
func (a Alphabet) MarshalYAML() (interface{}, error) { return a.symbols, nil }

package word

import "errors"

// Symbol is a single letter of an Alphabet.
type Symbol = byte

// Sentinel errors for word and alphabet construction.
var (
	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("word: alphabet is empty")

	// ErrDuplicateSymbol indicates the same symbol was listed twice.
	ErrDuplicateSymbol = errors.New("word: duplicate symbol in alphabet")

	// ErrSymbolNotInAlphabet indicates a word uses a symbol its alphabet lacks.
	ErrSymbolNotInAlphabet = errors.New("word: symbol not in alphabet")

	// ErrEmptyCycle indicates an omega word with an empty periodic part.
	ErrEmptyCycle = errors.New("word: cycle of an omega word is empty")

	// ErrBadNotation indicates a malformed "spoke(cycle)" string.
	ErrBadNotation = errors.New("word: malformed omega word notation")
)

// maxGeneratedSymbols bounds AlphabetOfSize to the letters a..z.
const maxGeneratedSymbols = 26

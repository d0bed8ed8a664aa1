// Package word models the inputs of ω-automata learning: finite alphabets of
// byte symbols, finite words over them, and ultimately periodic infinite words.
//
// What:
//
//   - Alphabet: an ordered, duplicate-free set of byte symbols. The order is the
//     byte order and is used everywhere a deterministic tie-break is needed
//     (edge enumeration, length-lexicographic sorting).
//   - Omega: an ultimately periodic word u·v^ω written "u(v)". Values are kept
//     in a canonical form (primitive cycle, shortest spoke), so two Omega values
//     are == exactly when they denote the same infinite word.
//   - CompareLengthLex: the length-lexicographic order on finite words.
//
// Complexity:
//
//   - NewOmega: O(|v|² + |u|·|v|) for primitive-root and spoke reduction.
//   - At/Suffix: O(1) and O(|u|+|v|²) respectively.
//
// Errors:
//
//   - ErrEmptyAlphabet        alphabet has no symbols
//   - ErrDuplicateSymbol      a symbol appears twice in an alphabet
//   - ErrSymbolNotInAlphabet  a word uses a symbol outside its alphabet
//   - ErrEmptyCycle           an omega word was given an empty cycle
//   - ErrBadNotation          Parse input is not of the form "u(v)"
package word

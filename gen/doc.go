// SPDX-License-Identifier: MIT
// Package gen produces reproducible random inputs for learning: complete
// deterministic target automata, ultimately periodic words, and samples
// labeled by a target.
//
// What:
//
//   - Automaton(kind, alphabet, states, opts...): uniform random successor
//     and color per (state, symbol) pair.
//   - Words(alphabet, n, opts...): n distinct canonical lasso words with
//     bounded spoke and cycle lengths.
//   - Sample(target, n, opts...): Words labeled by target.Accepts.
//
// Determinism:
//
//   - Every generator requires an explicit RNG (WithSeed or WithRand) and
//     draws in a fixed order: states ascending, symbols in alphabet order,
//     spoke symbols before cycle symbols. A fixed seed and option set always
//     yields the same output.
//
// Errors:
//
//   - ErrTooFewStates for an automaton with no states.
//   - ErrTooFewWords for a word or sample request with n < 1.
//   - ErrNeedRandSource when no RNG was supplied.
//   - ErrConstructFailed when the word space is too small for n distinct
//     words, or no fully reachable automaton was drawn, within the attempt
//     budget.
//
// Option constructors panic on meaningless values; generators never panic.
package gen

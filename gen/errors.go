// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the gen package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package gen

import "errors"

// ErrTooFewStates indicates an automaton request with fewer than one state.
var ErrTooFewStates = errors.New("gen: too few states")

// ErrTooFewWords indicates a word or sample request for fewer than one word.
var ErrTooFewWords = errors.New("gen: too few words")

// ErrNeedRandSource indicates a generator called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates that the attempt budget ran out before enough
// distinct words, or a fully reachable automaton, were drawn.
var ErrConstructFailed = errors.New("gen: construction failed")

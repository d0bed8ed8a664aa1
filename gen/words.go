// SPDX-License-Identifier: MIT
//
// words.go - random ultimately periodic words and labeled samples.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewWords); an RNG must be configured.
//   - Each draw picks the spoke length in [0, maxSpoke], the cycle length in
//     [1, maxCycle], then the symbols uniformly. Duplicates after
//     normalization are discarded, so results are distinct words.
//   - At most n·attempts draws are made (else ErrConstructFailed).

package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/word"
)

const (
	methodWords  = "Words"
	methodSample = "Sample"
)

// Words draws n distinct canonical words over alphabet, in draw order.
func Words(alphabet word.Alphabet, n int, opts ...Option) ([]word.Omega, error) {
	return words(methodWords, alphabet, n, newConfig(opts...))
}

// Sample draws n distinct words and labels each by whether target accepts it.
func Sample(target *automaton.Automaton, n int, opts ...Option) (*sample.OmegaSample, error) {
	ws, err := words(methodSample, target.Alphabet(), n, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	var pos, neg []word.Omega
	for _, w := range ws {
		if target.Accepts(w) {
			pos = append(pos, w)
		} else {
			neg = append(neg, w)
		}
	}

	return sample.New(target.Alphabet(), pos, neg)
}

func words(method string, alphabet word.Alphabet, n int, cfg config) ([]word.Omega, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewWords)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	symbols := alphabet.Symbols()
	draw := func(length int) string {
		var sb strings.Builder
		for i := 0; i < length; i++ {
			sb.WriteByte(symbols[cfg.rng.Intn(len(symbols))])
		}
		return sb.String()
	}

	out := make([]word.Omega, 0, n)
	seen := make(map[word.Omega]struct{}, n)
	for budget := n * cfg.attempts; len(out) < n; budget-- {
		if budget == 0 {
			return nil, fmt.Errorf("%s: %d of %d distinct words after %d draws: %w",
				method, len(out), n, n*cfg.attempts, ErrConstructFailed)
		}
		spoke := draw(cfg.rng.Intn(cfg.maxSpoke + 1))
		cycle := draw(1 + cfg.rng.Intn(cfg.maxCycle))
		// Symbols come from the alphabet and the cycle is non-empty.
		w := word.MustOmega(spoke, cycle)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out, nil
}

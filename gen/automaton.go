// SPDX-License-Identifier: MIT
//
// automaton.go - random complete deterministic automata.
//
// Contract:
//   - states ≥ 1 (else ErrTooFewStates).
//   - An RNG must be configured (else ErrNeedRandSource).
//   - For every state q ascending and symbol a in alphabet order, draw the
//     target uniformly from [0, states) and then the color: {Rejecting,
//     Accepting} for Büchi kinds, [0, colors) for parity.
//   - WithReachable: redraw up to attempts times until ts.Reachable covers
//     every state (else ErrConstructFailed).
//
// Complexity: O(attempts·states·|Σ|).

package gen

import (
	"fmt"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

const methodAutomaton = "Automaton"

// Automaton draws a complete deterministic automaton of the given kind.
// Some states may be unreachable from the initial one unless WithReachable
// is given.
func Automaton(kind automaton.Kind, alphabet word.Alphabet, states int, opts ...Option) (*automaton.Automaton, error) {
	cfg := newConfig(opts...)
	if states < 1 {
		return nil, fmt.Errorf("%s: states=%d: %w", methodAutomaton, states, ErrTooFewStates)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodAutomaton, ErrNeedRandSource)
	}
	if !cfg.reachable {
		return draw(cfg, kind, alphabet, states)
	}

	for i := 0; i < cfg.attempts; i++ {
		a, err := draw(cfg, kind, alphabet, states)
		if err != nil {
			return nil, err
		}
		if len(ts.Reachable(a.TransitionSystem())) == states {
			return a, nil
		}
	}

	return nil, fmt.Errorf("%s: no reachable draw in %d attempts: %w", methodAutomaton, cfg.attempts, ErrConstructFailed)
}

// draw picks one target and color per (state, symbol).
func draw(cfg config, kind automaton.Kind, alphabet word.Alphabet, states int) (*automaton.Automaton, error) {
	palette := 2
	if kind == automaton.MinEvenParity {
		palette = cfg.colors
	}
	edges := make([]ts.Edge, 0, states*alphabet.Size())
	for q := 0; q < states; q++ {
		for _, a := range alphabet.Symbols() {
			target := cfg.rng.Intn(states)
			color := cfg.rng.Intn(palette)
			edges = append(edges, ts.Edge{
				Source: ts.State(q),
				Symbol: a,
				Color:  ts.Color(color),
				Target: ts.State(target),
			})
		}
	}

	return automaton.FromEdges(kind, alphabet, edges)
}

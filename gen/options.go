// SPDX-License-Identifier: MIT
//
// options.go - functional options and resolved configuration.
//
// Defaults:
//   - rng       = nil (generators refuse to run without one)
//   - maxSpoke  = 3
//   - maxCycle  = 3
//   - colors    = 3   (parity colors 0..2; Büchi kinds always use 0..1)
//   - attempts  = 64  (draws per requested word or reachable automaton)
//   - reachable = false

package gen

import "math/rand"

const (
	defaultMaxSpoke = 3
	defaultMaxCycle = 3
	defaultColors   = 3
	defaultAttempts = 64
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	maxSpoke  int
	maxCycle  int
	colors    int
	attempts  int
	reachable bool
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,
		maxSpoke: defaultMaxSpoke,
		maxCycle: defaultMaxCycle,
		colors:   defaultColors,
		attempts: defaultAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed supplies a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxSpoke bounds spoke lengths to [0, n]. Panics if n < 0.
func WithMaxSpoke(n int) Option {
	if n < 0 {
		panic("gen: WithMaxSpoke(n<0)")
	}
	return func(c *config) {
		c.maxSpoke = n
	}
}

// WithMaxCycle bounds cycle lengths to [1, n]. Panics if n < 1.
func WithMaxCycle(n int) Option {
	if n < 1 {
		panic("gen: WithMaxCycle(n<1)")
	}
	return func(c *config) {
		c.maxCycle = n
	}
}

// WithColors sets the number of parity colors. Panics if k < 1.
func WithColors(k int) Option {
	if k < 1 {
		panic("gen: WithColors(k<1)")
	}
	return func(c *config) {
		c.colors = k
	}
}

// WithAttempts sets the number of draws allowed per requested word, and per
// automaton under WithReachable. Panics if n < 1.
func WithAttempts(n int) Option {
	if n < 1 {
		panic("gen: WithAttempts(n<1)")
	}
	return func(c *config) {
		c.attempts = n
	}
}

// WithReachable makes Automaton redraw until every state is reachable from
// the initial one.
func WithReachable() Option {
	return func(c *config) {
		c.reachable = true
	}
}

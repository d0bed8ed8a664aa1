// SPDX-License-Identifier: MIT
// Package ts_test contains shared fixtures for transition system tests.
//
// Purpose:
//   - Run every contract test against both backends.
//   - Build small systems from edge literals without repeating AddState calls.

package ts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// Common symbols used across ts tests.
const (
	SymA = byte('a')
	SymB = byte('b')
	SymZ = byte('z')
)

// backends lists every storage strategy under test.
var backends = []ts.Backend{ts.EdgeListsBackend, ts.LinkedListBackend}

// sigma is the binary alphabet {a, b}.
var sigma = word.AlphabetOfSize(2)

// build RETURNS a system on backend b with n states and the given edges.
func build(t *testing.T, b ts.Backend, n int, edges ...ts.Edge) ts.TransitionSystem {
	t.Helper()
	sys, err := ts.New(b, sigma, ts.Void)
	require.NoError(t, err)
	for sys.Size() < n {
		sys.AddState(ts.Void)
	}
	for _, e := range edges {
		require.NoError(t, sys.AddEdge(e), "AddEdge(%v)", e)
	}

	return sys
}

// edge is shorthand for a Void-colored edge.
func edge(from ts.State, a byte, to ts.State) ts.Edge {
	return ts.Edge{Source: from, Symbol: a, Color: ts.Void, Target: to}
}

// forEachBackend runs fn as a subtest per backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, b ts.Backend)) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) { fn(t, b) })
	}
}

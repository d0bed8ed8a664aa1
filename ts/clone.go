// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Whole-system helpers: Clone, Equal, IsDeterministic, IsComplete.

package ts

import "slices"

// Clone copies sys into a fresh EdgeLists system with identical states,
// colors, and edges.
//
// Complexity: O(V + E log E).
func Clone(sys TransitionSystem) *EdgeLists {
	out := &EdgeLists{alphabet: sys.Alphabet()}
	for _, q := range sys.StateIndices() {
		c, _ := sys.StateColor(q)
		out.AddState(c)
	}
	var e Edge
	for _, e = range sys.Edges() {
		// Endpoints and symbol were validated when e entered sys.
		out.out[e.Source] = append(out.out[e.Source], e)
		out.edges++
	}

	return out
}

// Equal reports whether a and b have the same alphabet, state colors, and
// edge multiset, regardless of backend.
func Equal(a, b TransitionSystem) bool {
	if !a.Alphabet().Equal(b.Alphabet()) || a.Size() != b.Size() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	for _, q := range a.StateIndices() {
		ca, _ := a.StateColor(q)
		cb, _ := b.StateColor(q)
		if ca != cb {
			return false
		}
	}

	return slices.Equal(a.Edges(), b.Edges())
}

// IsDeterministic reports whether every (state, symbol) pair has at most one
// outgoing edge.
//
// Complexity: O(E log E).
func IsDeterministic(sys TransitionSystem) bool {
	edges := sys.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i].Source == edges[i-1].Source && edges[i].Symbol == edges[i-1].Symbol {
			return false
		}
	}

	return true
}

// IsComplete reports whether every state has an edge for every symbol.
func IsComplete(sys TransitionSystem) bool {
	symbols := sys.Alphabet().Symbols()
	for _, q := range sys.StateIndices() {
		for _, a := range symbols {
			if _, ok := sys.Successor(q, a); !ok {
				return false
			}
		}
	}

	return true
}

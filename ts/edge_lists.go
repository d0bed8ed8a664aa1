// SPDX-License-Identifier: MIT
//
// File: edge_lists.go
// Role: EdgeLists backend: one slice of outgoing edges per state.
// Determinism:
//   - Edges inside a state's slice keep insertion order; queries sort copies.
//   - Appending a trial edge and removing it again restores the exact slice.

package ts

import (
	"slices"

	"github.com/katalvlaran/omegalearn/word"
)

// EdgeLists stores outgoing edges per state in insertion order.
type EdgeLists struct {
	alphabet word.Alphabet
	colors   []Color  // state index → color
	out      [][]Edge // state index → outgoing edges
	edges    int      // total edge count
}

// NewEdgeLists creates a system with exactly one state (the initial state)
// colored initialColor and no edges.
//
// Complexity: O(1).
func NewEdgeLists(alphabet word.Alphabet, initialColor Color) *EdgeLists {
	s := &EdgeLists{alphabet: alphabet}
	s.AddState(initialColor)

	return s
}

// Alphabet returns the fixed alphabet.
func (s *EdgeLists) Alphabet() word.Alphabet { return s.alphabet }

// Initial returns state 0.
func (s *EdgeLists) Initial() State { return 0 }

// Size returns the number of states. Complexity: O(1).
func (s *EdgeLists) Size() int { return len(s.colors) }

// StateColor returns the color of q.
func (s *EdgeLists) StateColor(q State) (Color, error) {
	if int(q) >= len(s.colors) {
		return Void, ErrStateNotFound
	}

	return s.colors[q], nil
}

// StateIndices returns 0..Size()-1. Complexity: O(V).
func (s *EdgeLists) StateIndices() []State {
	out := make([]State, len(s.colors))
	for i := range out {
		out[i] = State(i)
	}

	return out
}

// AddState appends a fresh state and returns its index.
// Complexity: O(1) amortized.
func (s *EdgeLists) AddState(color Color) State {
	s.colors = append(s.colors, color)
	s.out = append(s.out, nil)

	return State(len(s.colors) - 1)
}

// AddEdge appends e to the outgoing list of e.Source.
//
// Errors:
//   - ErrStateNotFound if either endpoint does not exist.
//   - ErrSymbolNotInAlphabet if e.Symbol is not in the alphabet.
//
// Complexity: O(1) amortized.
func (s *EdgeLists) AddEdge(e Edge) error {
	if err := validateEdge(s.alphabet, len(s.colors), e); err != nil {
		return err
	}
	s.out[e.Source] = append(s.out[e.Source], e)
	s.edges++

	return nil
}

// RemoveEdgesFromMatching deletes every edge leaving q on a, compacting the
// slice in place so the surviving edges keep their relative order.
//
// Complexity: O(out-degree(q)).
func (s *EdgeLists) RemoveEdgesFromMatching(q State, a word.Symbol) int {
	if int(q) >= len(s.out) {
		return 0
	}
	list := s.out[q]
	kept := list[:0]
	var e Edge
	for _, e = range list {
		if e.Symbol != a {
			kept = append(kept, e)
		}
	}
	removed := len(list) - len(kept)
	clear(list[len(kept):]) // drop stale tail values
	s.out[q] = kept
	s.edges -= removed

	return removed
}

// Successor returns the first inserted edge leaving q on a.
// Complexity: O(out-degree(q)).
func (s *EdgeLists) Successor(q State, a word.Symbol) (Edge, bool) {
	if int(q) >= len(s.out) {
		return Edge{}, false
	}
	for _, e := range s.out[q] {
		if e.Symbol == a {
			return e, true
		}
	}

	return Edge{}, false
}

// EdgesFrom returns a sorted copy of q's outgoing edges.
func (s *EdgeLists) EdgesFrom(q State) []Edge {
	if int(q) >= len(s.out) {
		return nil
	}
	out := slices.Clone(s.out[q])
	slices.SortStableFunc(out, compareEdges)

	return out
}

// Edges returns all edges sorted by (source, symbol, target, color).
// Complexity: O(E log E).
func (s *EdgeLists) Edges() []Edge {
	out := make([]Edge, 0, s.edges)
	for _, list := range s.out {
		out = append(out, list...)
	}
	slices.SortStableFunc(out, compareEdges)

	return out
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (s *EdgeLists) EdgeCount() int { return s.edges }

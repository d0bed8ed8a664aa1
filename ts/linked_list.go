// SPDX-License-Identifier: MIT
//
// File: linked_list.go
// Role: LinkedList backend: a single pooled edge arena, per-state doubly
//       linked chains in insertion order, and a free list of recycled slots.
// Determinism:
//   - Chains preserve insertion order, so Successor agrees with EdgeLists.
//   - Slot reuse is LIFO; slot numbers never leak through the API.

package ts

import (
	"slices"

	"github.com/katalvlaran/omegalearn/word"
)

// nilSlot marks the end of a chain or an empty free list.
const nilSlot = -1

// linkedEdge is one arena slot.
type linkedEdge struct {
	edge       Edge
	prev, next int32
}

// chain holds the first and last slot of a state's outgoing edges.
type chain struct {
	head, tail int32
}

// LinkedList stores all edges in one arena shared by every state.
type LinkedList struct {
	alphabet word.Alphabet
	colors   []Color
	chains   []chain
	pool     []linkedEdge
	free     int32 // head of the free-slot list (linked through next)
	edges    int
}

// NewLinkedList creates a system with exactly one state (the initial state)
// colored initialColor and no edges.
func NewLinkedList(alphabet word.Alphabet, initialColor Color) *LinkedList {
	s := &LinkedList{alphabet: alphabet, free: nilSlot}
	s.AddState(initialColor)

	return s
}

// Alphabet returns the fixed alphabet.
func (s *LinkedList) Alphabet() word.Alphabet { return s.alphabet }

// Initial returns state 0.
func (s *LinkedList) Initial() State { return 0 }

// Size returns the number of states.
func (s *LinkedList) Size() int { return len(s.colors) }

// StateColor returns the color of q.
func (s *LinkedList) StateColor(q State) (Color, error) {
	if int(q) >= len(s.colors) {
		return Void, ErrStateNotFound
	}

	return s.colors[q], nil
}

// StateIndices returns 0..Size()-1.
func (s *LinkedList) StateIndices() []State {
	out := make([]State, len(s.colors))
	for i := range out {
		out[i] = State(i)
	}

	return out
}

// AddState appends a fresh state with an empty chain.
func (s *LinkedList) AddState(color Color) State {
	s.colors = append(s.colors, color)
	s.chains = append(s.chains, chain{head: nilSlot, tail: nilSlot})

	return State(len(s.colors) - 1)
}

// AddEdge links e at the tail of its source chain, reusing a free slot when
// one is available.
//
// Complexity: O(1) amortized.
func (s *LinkedList) AddEdge(e Edge) error {
	if err := validateEdge(s.alphabet, len(s.colors), e); err != nil {
		return err
	}
	slot := s.alloc()
	c := &s.chains[e.Source]
	s.pool[slot] = linkedEdge{edge: e, prev: c.tail, next: nilSlot}
	if c.tail == nilSlot {
		c.head = slot
	} else {
		s.pool[c.tail].next = slot
	}
	c.tail = slot
	s.edges++

	return nil
}

// RemoveEdgesFromMatching unlinks every edge of q labeled a and returns the
// slots to the free list.
//
// Complexity: O(out-degree(q)).
func (s *LinkedList) RemoveEdgesFromMatching(q State, a word.Symbol) int {
	if int(q) >= len(s.chains) {
		return 0
	}
	removed := 0
	for slot := s.chains[q].head; slot != nilSlot; {
		next := s.pool[slot].next
		if s.pool[slot].edge.Symbol == a {
			s.unlink(q, slot)
			s.release(slot)
			removed++
		}
		slot = next
	}
	s.edges -= removed

	return removed
}

// Successor walks q's chain and returns the first edge labeled a.
func (s *LinkedList) Successor(q State, a word.Symbol) (Edge, bool) {
	if int(q) >= len(s.chains) {
		return Edge{}, false
	}
	for slot := s.chains[q].head; slot != nilSlot; slot = s.pool[slot].next {
		if s.pool[slot].edge.Symbol == a {
			return s.pool[slot].edge, true
		}
	}

	return Edge{}, false
}

// EdgesFrom returns q's outgoing edges, sorted.
func (s *LinkedList) EdgesFrom(q State) []Edge {
	if int(q) >= len(s.chains) {
		return nil
	}
	out := s.appendChain(nil, q)
	slices.SortStableFunc(out, compareEdges)

	return out
}

// Edges returns all edges sorted by (source, symbol, target, color).
func (s *LinkedList) Edges() []Edge {
	out := make([]Edge, 0, s.edges)
	for q := range s.chains {
		out = s.appendChain(out, State(q))
	}
	slices.SortStableFunc(out, compareEdges)

	return out
}

// EdgeCount returns the number of live edges.
func (s *LinkedList) EdgeCount() int { return s.edges }

// appendChain appends q's edges in chain order to dst.
func (s *LinkedList) appendChain(dst []Edge, q State) []Edge {
	for slot := s.chains[q].head; slot != nilSlot; slot = s.pool[slot].next {
		dst = append(dst, s.pool[slot].edge)
	}

	return dst
}

// alloc pops a free slot or grows the pool.
func (s *LinkedList) alloc() int32 {
	if s.free != nilSlot {
		slot := s.free
		s.free = s.pool[slot].next

		return slot
	}
	s.pool = append(s.pool, linkedEdge{})

	return int32(len(s.pool) - 1)
}

// release pushes slot onto the free list.
func (s *LinkedList) release(slot int32) {
	s.pool[slot] = linkedEdge{prev: nilSlot, next: s.free}
	s.free = slot
}

// unlink detaches slot from q's chain.
func (s *LinkedList) unlink(q State, slot int32) {
	c := &s.chains[q]
	le := s.pool[slot]
	if le.prev == nilSlot {
		c.head = le.next
	} else {
		s.pool[le.prev].next = le.next
	}
	if le.next == nilSlot {
		c.tail = le.prev
	} else {
		s.pool[le.next].prev = le.prev
	}
}

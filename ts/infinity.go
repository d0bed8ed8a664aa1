// SPDX-License-Identifier: MIT
//
// File: infinity.go
// Role: InfinitySet: the canonical set of edges a run visits infinitely often.

package ts

import (
	"slices"
	"strconv"
	"strings"
)

// InfinitySet is an immutable, sorted, duplicate-free set of edges with a
// precomputed key. Two sets with the same edges have the same Key.
type InfinitySet struct {
	edges []Edge
	key   string
}

// NewInfinitySet canonicalizes edges into a set. The input is not retained.
func NewInfinitySet(edges []Edge) InfinitySet {
	sorted := slices.Clone(edges)
	slices.SortFunc(sorted, compareEdges)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	for i, e := range sorted {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(e.Source), 10))
		b.WriteByte(e.Symbol)
		b.WriteString(strconv.Itoa(int(e.Color)))
		b.WriteByte('>')
		b.WriteString(strconv.FormatUint(uint64(e.Target), 10))
	}

	return InfinitySet{edges: sorted, key: b.String()}
}

// Key returns a string identifying the set.
func (s InfinitySet) Key() string { return s.key }

// Len returns the number of edges.
func (s InfinitySet) Len() int { return len(s.edges) }

// Edges returns a copy of the edges in sorted order.
func (s InfinitySet) Edges() []Edge { return slices.Clone(s.edges) }

// Contains reports whether e belongs to s. Complexity: O(log n).
func (s InfinitySet) Contains(e Edge) bool {
	_, ok := slices.BinarySearchFunc(s.edges, e, compareEdges)

	return ok
}

// SubsetOf reports whether every edge of s is in set.
func (s InfinitySet) SubsetOf(set map[Edge]struct{}) bool {
	for _, e := range s.edges {
		if _, ok := set[e]; !ok {
			return false
		}
	}

	return true
}

// Intersects reports whether s shares an edge with set.
func (s InfinitySet) Intersects(set map[Edge]struct{}) bool {
	for _, e := range s.edges {
		if _, ok := set[e]; ok {
			return true
		}
	}

	return false
}

// String renders the set as "{0 -a:0-> 1, ...}".
func (s InfinitySet) String() string {
	parts := make([]string, len(s.edges))
	for i, e := range s.edges {
		parts[i] = e.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

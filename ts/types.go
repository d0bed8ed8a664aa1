// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: State/Color/Edge value types, sentinel errors, the TransitionSystem
//       contract, and the backend selector.

package ts

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/omegalearn/word"
)

// Sentinel errors for transition system operations.
var (
	// ErrStateNotFound indicates a state index that was never created.
	ErrStateNotFound = errors.New("ts: state not found")

	// ErrSymbolNotInAlphabet indicates an edge symbol outside the alphabet.
	ErrSymbolNotInAlphabet = errors.New("ts: symbol not in alphabet")

	// ErrRunUndefined indicates a run reached a symbol with no outgoing edge.
	ErrRunUndefined = errors.New("ts: run undefined")

	// ErrUnknownBackend indicates an unsupported Backend value.
	ErrUnknownBackend = errors.New("ts: unknown backend")
)

// State is a dense state index. The initial state is always 0.
type State uint32

// Color annotates states and edges with acceptance information. Its meaning
// depends on the acceptance condition (unit, boolean, or parity priority).
type Color int

// Void is the neutral color used while the learner grows a system.
const Void Color = 0

// Edge is one transition Source --Symbol/Color--> Target.
type Edge struct {
	Source State
	Symbol word.Symbol
	Color  Color
	Target State
}

// String renders the edge as "0 -a:1-> 2".
func (e Edge) String() string {
	return fmt.Sprintf("%d -%c:%d-> %d", e.Source, e.Symbol, e.Color, e.Target)
}

// compareEdges orders edges by source, symbol, target, then color.
func compareEdges(a, b Edge) int {
	switch {
	case a.Source != b.Source:
		return cmp.Compare(a.Source, b.Source)
	case a.Symbol != b.Symbol:
		return cmp.Compare(a.Symbol, b.Symbol)
	case a.Target != b.Target:
		return cmp.Compare(a.Target, b.Target)
	default:
		return cmp.Compare(a.Color, b.Color)
	}
}

// TransitionSystem is the contract every storage backend satisfies.
//
// Determinism & ordering:
//   - StateIndices returns states in ascending creation order.
//   - EdgesFrom and Edges return edges sorted by (source, symbol, target, color).
//   - Successor returns the earliest inserted edge for (q, a) if a trial edge
//     coexists with it.
type TransitionSystem interface {
	// Alphabet returns the fixed alphabet of the system.
	Alphabet() word.Alphabet

	// Initial returns the distinguished initial state (always 0).
	Initial() State

	// Size returns the number of states.
	Size() int

	// StateColor returns the color of q, or ErrStateNotFound.
	StateColor(q State) (Color, error)

	// StateIndices returns all states in ascending creation order.
	StateIndices() []State

	// Successor returns the edge leaving q on a, if any.
	Successor(q State, a word.Symbol) (Edge, bool)

	// EdgesFrom returns the outgoing edges of q.
	EdgesFrom(q State) []Edge

	// Edges returns every edge of the system.
	Edges() []Edge

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// AddState appends a state with the given color and returns its index.
	AddState(color Color) State

	// AddEdge inserts e. A second edge on the same (source, symbol) is kept
	// until RemoveEdgesFromMatching clears that pair.
	AddEdge(e Edge) error

	// RemoveEdgesFromMatching deletes every edge leaving q on a and returns
	// how many were removed. Other edges are untouched.
	RemoveEdgesFromMatching(q State, a word.Symbol) int
}

// Backend selects a storage strategy for New.
type Backend int

const (
	// EdgeListsBackend stores one edge slice per state.
	EdgeListsBackend Backend = iota

	// LinkedListBackend stores all edges in one pooled arena.
	LinkedListBackend
)

// String returns the backend name used in flags and config files.
func (b Backend) String() string {
	switch b {
	case EdgeListsBackend:
		return "edgelists"
	case LinkedListBackend:
		return "linkedlist"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

func (b Backend) valid() bool { return b == EdgeListsBackend || b == LinkedListBackend }

// ParseBackend maps "edgelists" or "linkedlist" to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "edgelists", "":
		return EdgeListsBackend, nil
	case "linkedlist":
		return LinkedListBackend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// New creates a system for alphabet with a single initial state of the given
// color, stored in the chosen backend, or fails with ErrUnknownBackend.
func New(b Backend, alphabet word.Alphabet, initialColor Color) (TransitionSystem, error) {
	switch {
	case !b.valid():
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, b)
	case b == LinkedListBackend:
		return NewLinkedList(alphabet, initialColor), nil
	default:
		return NewEdgeLists(alphabet, initialColor), nil
	}
}

// validateEdge checks endpoints and symbol of e against a system of the given size.
func validateEdge(alphabet word.Alphabet, size int, e Edge) error {
	if int(e.Source) >= size {
		return fmt.Errorf("%w: source %d", ErrStateNotFound, e.Source)
	}
	if int(e.Target) >= size {
		return fmt.Errorf("%w: target %d", ErrStateNotFound, e.Target)
	}
	if !alphabet.Contains(e.Symbol) {
		return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, e.Symbol)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: runs.go
// Role: Deterministic run evaluation over any TransitionSystem: finite runs,
//       omega runs with lasso detection, and escape prefixes.

package ts

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/omegalearn/word"
)

// RunError reports the point where a run met an undefined transition.
//
// Fields:
//   - State: the state the run had reached.
//   - Position: index of the unmatched symbol in the (expanded) word.
//   - Prefix: the consumed symbols including the unmatched one, i.e. the
//     minimal undefined prefix.
type RunError struct {
	State    State
	Position int
	Prefix   string
}

// Error implements error.
func (e *RunError) Error() string {
	return fmt.Sprintf("ts: run undefined at state %d on prefix %q", e.State, e.Prefix)
}

// Is makes errors.Is(err, ErrRunUndefined) succeed.
func (e *RunError) Is(target error) bool { return target == ErrRunUndefined }

// Run is the outcome of a defined omega run.
//
// Reached is the state where the recurring loop of the lasso starts.
// Infinity holds the edges visited infinitely often.
type Run struct {
	Reached  State
	Infinity InfinitySet
}

// FiniteRun follows w from the initial state.
//
// Returns the reached state, or *RunError at the first symbol without a
// matching edge.
//
// Complexity: O(|w|·d) where d is the out-degree bound of the backend lookup.
func FiniteRun(sys TransitionSystem, w string) (State, error) {
	q := sys.Initial()
	for i := 0; i < len(w); i++ {
		e, ok := sys.Successor(q, w[i])
		if !ok {
			return q, &RunError{State: q, Position: i, Prefix: w[:i+1]}
		}
		q = e.Target
	}

	return q, nil
}

// OmegaRun consumes the spoke of w and then its cycle until the state at the
// start of a cycle traversal repeats. The edges between the two occurrences
// form the infinity set. Acceptance is not judged here.
//
// Returns *RunError at the first undefined transition.
//
// Complexity: O(|u| + |v|·|Q|) time, O(|v|·|Q|) memory for the trace.
func OmegaRun(sys TransitionSystem, w word.Omega) (Run, error) {
	spoke, cycle := w.Spoke(), w.Cycle()
	q := sys.Initial()
	pos := 0
	for ; pos < len(spoke); pos++ {
		e, ok := sys.Successor(q, spoke[pos])
		if !ok {
			return Run{}, escape(w, q, pos)
		}
		q = e.Target
	}

	seen := make(map[State]int, sys.Size()) // state at cycle start → trace offset
	var trace []Edge
	for {
		if start, ok := seen[q]; ok {
			return Run{Reached: q, Infinity: NewInfinitySet(trace[start:])}, nil
		}
		seen[q] = len(trace)
		for i := 0; i < len(cycle); i++ {
			e, ok := sys.Successor(q, cycle[i])
			if !ok {
				return Run{}, escape(w, q, pos)
			}
			trace = append(trace, e)
			q = e.Target
			pos++
		}
	}
}

// escape builds the RunError for an omega word stuck at position pos.
func escape(w word.Omega, q State, pos int) *RunError {
	return &RunError{State: q, Position: pos, Prefix: w.Prefix(pos + 1)}
}

// EscapePrefixes yields, for every word whose run is undefined somewhere, the
// minimal undefined prefix (up to and including the first unmatched symbol).
// Words whose omega run is fully defined contribute nothing.
func EscapePrefixes(sys TransitionSystem, words iter.Seq[word.Omega]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range words {
			_, err := OmegaRun(sys, w)
			re, ok := err.(*RunError)
			if !ok {
				continue
			}
			if !yield(re.Prefix) {
				return
			}
		}
	}
}

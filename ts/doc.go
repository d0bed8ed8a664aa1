// Package ts provides the mutable, deterministic transition system that the
// SPROUT learner grows, probes, and rolls back.
//
// A transition system T = (Q, Σ, δ, q0) here is pointed (q0 = state 0), grows
// monotonically in states, and is edge-addressable by (source, symbol):
//
//   - States are dense indices assigned in creation order and never reused.
//   - Every state and every edge carries a Color (acceptance annotation).
//   - Determinism: a settled system holds at most one edge per (source, symbol).
//     A second edge may exist transiently while a trial is being probed;
//     RemoveEdgesFromMatching restores determinism by exact inverse mutation.
//
// Backends (Backend):
//
//	– EdgeListsBackend
//	    Per-state slices of outgoing edges. Removal is O(out-degree).
//
//	– LinkedListBackend
//	    One pooled edge arena with per-state doubly linked chains and a free
//	    list; removed slots are recycled, so trial add/remove cycles allocate
//	    nothing once the pool is warm.
//
// Both backends satisfy the same TransitionSystem contract and are
// observationally identical; pick one with New(backend, ...).
//
// Runs (package functions over any TransitionSystem):
//
//	FiniteRun(sys, w)        (State, error)   // O(|w|)
//	OmegaRun(sys, w)         (Run, error)     // O(|u| + |v|·|Q|)
//	EscapePrefixes(sys, ws)  iter.Seq[string] // minimal undefined prefixes
//	AccessWords(sys)         []string         // length-lex least word per state
//
// A run that meets a symbol without an outgoing edge fails with *RunError,
// which matches ErrRunUndefined under errors.Is. That is the expected signal
// for escape detection, not a failure of the system.
//
// Concurrency:
//
//	Transition systems are not safe for concurrent mutation. Each learning run
//	owns its own instance.
//
// Errors:
//
//	ErrStateNotFound        – state index out of range
//	ErrSymbolNotInAlphabet  – edge symbol outside the alphabet
//	ErrRunUndefined         – a run met an undefined transition
package ts

// Package acceptance implements the consistency oracles that steer SPROUT.
//
// A Condition answers two questions about a partial transition system and the
// words of a sample that have not yet been settled:
//
//   - Consistent: can the edges be colored (now or after further growth) so
//     that every positive word is accepted and every negative word rejected?
//   - ConsistentAutomaton: produce such a coloring, complete the system with a
//     rejecting sink, and return the finalized automaton.
//
// Evaluation shared by all conditions:
//
//  1. Every word whose omega run is defined contributes its infinity set to
//     the positive or negative collection. The collections received from the
//     caller are extended, never mutated.
//  2. A word whose run escapes contributes (escape state, residual word). A
//     positive and a negative word meeting at the same pair can never be
//     separated, because any extension treats them identically.
//  3. The condition checks the collected infinity sets:
//     Buchi:         no positive set lies inside the union of negative sets.
//     CoBuchi:       no negative set lies inside the union of positive sets.
//     MinEvenParity: the peeling procedure colors every edge (see parity.go).
//
// Conditions are stateless values and safe for concurrent use; the systems
// and samples they inspect are not.
package acceptance

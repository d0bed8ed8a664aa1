// Package automaton provides immutable, complete, deterministic ω-automata
// with transition-based acceptance.
//
// An Automaton pairs a finalized transition system with a Kind:
//
//	- Buchi          accepts iff some edge colored Accepting recurs.
//	- CoBuchi        accepts iff every recurring edge is colored Accepting.
//	- MinEvenParity  accepts iff the least recurring color is even.
//
// Automata are built by the acceptance conditions at the end of learning, by
// FromEdges for literals, or decoded from YAML. They never change afterwards:
// every accessor returns copies.
package automaton

// Package sample holds the labeled training data of the learner: an alphabet
// and two disjoint lists of ultimately periodic words, positive (must be
// accepted) and negative (must be rejected).
//
// Iteration order is insertion order and is stable, which keeps the learner
// deterministic. A sample is mutable: the learner clones it and drops words
// whose runs are already fully defined (RemoveNonEscaping).
//
// Samples can be read from YAML:
//
//	alphabet: ab            # or: size: 2
//	positive: ["(a)", "a(b)"]
//	negative: ["(b)"]
package sample

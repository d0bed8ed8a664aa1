// Package omegalearn learns deterministic ω-automata from examples: finite
// samples of ultimately periodic words u·v^ω labeled positive or negative.
//
// 🚀 What is omegalearn?
//
//	A compact library and CLI around the SPROUT passive learner:
//		• Words & samples: canonical lasso words, labeled samples, YAML loading
//		• Transition systems: two interchangeable deterministic backends
//		• Acceptance: Büchi, co-Büchi and min-even parity consistency oracles
//		• Learning: threshold- and deadline-bounded greedy state growth
//		• Tooling: random targets and samples, a cobra CLI
//
// Packages:
//
//	word/        alphabets, ω-words u(v), normalization, length-lex order
//	sample/      OmegaSample, removal of settled words, YAML documents
//	ts/          TransitionSystem, EdgeLists & LinkedList backends, runs
//	automaton/   immutable finalized automata, acceptance, YAML
//	acceptance/  Condition oracles: Consistent, ConsistentAutomaton, defaults
//	sprout/      the learner: Sprout(ctx, sample, condition, opts...)
//	gen/         seeded random automata, words and labeled samples
//	cmd/sprout/  command line front end
//
// Quick example:
//
//	s := sample.MustNew(word.AlphabetOfSize(2),
//		[]word.Omega{word.MustParse("(a)"), word.MustParse("a(b)")},
//		[]word.Omega{word.MustParse("(b)")})
//	a, err := sprout.Sprout(ctx, s, acceptance.Buchi{})
//
//	    0 ──a──▶ 1 ⟲ b
//	    ▲────a───┘
//	    0 ──b──▶ sink
//
//	go install github.com/katalvlaran/omegalearn/cmd/sprout@latest
package omegalearn

// Package sprout implements SPROUT, a passive learner for deterministic
// ω-automata from labeled ultimately periodic words.
//
// The learner grows a transition system one edge at a time. Each round it
// takes the length-lexicographically least escape prefix u·a of the positive
// words still in the sample, locates the state reached by u, and tries to
// close the missing a-transition into every existing state in creation
// order. The first target the acceptance condition accepts as consistent is
// committed and every word whose run is now fully defined leaves the sample.
// When no existing state fits, a fresh state is created. Once no positive
// word escapes, the condition colors and completes the system.
//
// Termination:
//
//   - The prefix length is bounded by maxSpoke + maxCycle² + 1 over the
//     sample. Exceeding it yields *ThresholdError carrying a fallback
//     automaton and the partial system.
//   - The context is polled at the top of every round; WithTimeout derives a
//     deadline. Cancellation yields *TimeoutError with the partial system.
//
// Example:
//
//	s := sample.MustNew(word.AlphabetOfSize(2),
//		[]word.Omega{word.MustParse("(a)"), word.MustParse("a(b)")},
//		[]word.Omega{word.MustParse("(b)")})
//	a, err := sprout.Sprout(ctx, s, acceptance.Buchi{}, sprout.WithTimeout(time.Minute))
//
// A call is sequential and owns its copies of the sample and the system.
// Independent calls may run concurrently.
package sprout

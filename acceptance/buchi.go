package acceptance

import (
	"fmt"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// Buchi is the oracle for Büchi automata. An edge is Accepting iff it lies on
// no negative infinity set.
type Buchi struct{}

// Kind implements Condition.
func (Buchi) Kind() automaton.Kind { return automaton.Buchi }

// Consistent implements Condition.
func (Buchi) Consistent(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (bool, Sets, Sets) {
	ev := evaluate(sys, s, pos, neg)
	if ev.conflict || coveredBy(ev.pos, ev.neg.Union()) {
		return false, pos, neg
	}

	return true, ev.pos, ev.neg
}

// ConsistentAutomaton implements Condition.
func (b Buchi) ConsistentAutomaton(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (*automaton.Automaton, error) {
	ev := evaluate(sys, s, pos, neg)
	negative := ev.neg.Union()
	if ev.conflict || coveredBy(ev.pos, negative) {
		return nil, fmt.Errorf("%w: a positive word recurs only on negative edges", ErrInconsistent)
	}

	return finalize(b.Kind(), sys, func(e ts.Edge) ts.Color {
		if _, ok := negative[e]; ok {
			return automaton.Rejecting
		}
		return automaton.Accepting
	})
}

// DefaultAutomaton implements Condition.
func (b Buchi) DefaultAutomaton(s *sample.OmegaSample) *automaton.Automaton {
	return majority(b.Kind(), s)
}

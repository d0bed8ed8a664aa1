package acceptance

import (
	"fmt"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// CoBuchi is the oracle for co-Büchi automata, the dual of Buchi: an edge is
// Accepting iff it lies on some positive infinity set.
type CoBuchi struct{}

// Kind implements Condition.
func (CoBuchi) Kind() automaton.Kind { return automaton.CoBuchi }

// Consistent implements Condition.
func (CoBuchi) Consistent(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (bool, Sets, Sets) {
	ev := evaluate(sys, s, pos, neg)
	if ev.conflict || coveredBy(ev.neg, ev.pos.Union()) {
		return false, pos, neg
	}

	return true, ev.pos, ev.neg
}

// ConsistentAutomaton implements Condition.
func (c CoBuchi) ConsistentAutomaton(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (*automaton.Automaton, error) {
	ev := evaluate(sys, s, pos, neg)
	positive := ev.pos.Union()
	if ev.conflict || coveredBy(ev.neg, positive) {
		return nil, fmt.Errorf("%w: a negative word recurs only on positive edges", ErrInconsistent)
	}

	return finalize(c.Kind(), sys, func(e ts.Edge) ts.Color {
		if _, ok := positive[e]; ok {
			return automaton.Accepting
		}
		return automaton.Rejecting
	})
}

// DefaultAutomaton implements Condition.
func (c CoBuchi) DefaultAutomaton(s *sample.OmegaSample) *automaton.Automaton {
	return majority(c.Kind(), s)
}

package acceptance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// ErrInconsistent indicates that no coloring separates the sample.
var ErrInconsistent = errors.New("acceptance: sample is inconsistent with the transition system")

// Condition is a consistency oracle for one acceptance kind.
type Condition interface {
	// Kind reports the acceptance kind of the automata this condition builds.
	Kind() automaton.Kind

	// Consistent evaluates sys against s and the sets accumulated so far.
	// On success it returns the extended sets; otherwise pos and neg unchanged.
	Consistent(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (bool, Sets, Sets)

	// ConsistentAutomaton colors and completes sys. The result wraps
	// ErrInconsistent when no coloring exists.
	ConsistentAutomaton(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (*automaton.Automaton, error)

	// DefaultAutomaton is the one-state fallback used when learning gives up.
	DefaultAutomaton(s *sample.OmegaSample) *automaton.Automaton
}

// For returns the condition building automata of kind k.
func For(k automaton.Kind) (Condition, error) {
	switch k {
	case automaton.Buchi:
		return Buchi{}, nil
	case automaton.CoBuchi:
		return CoBuchi{}, nil
	case automaton.MinEvenParity:
		return MinEvenParity{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", automaton.ErrUnknownKind, int(k))
	}
}

// Parse resolves a condition by kind name (see automaton.ParseKind).
func Parse(name string) (Condition, error) {
	k, err := automaton.ParseKind(name)
	if err != nil {
		return nil, err
	}

	return For(k)
}

// Sets is a duplicate-free collection of infinity sets, compared by key.
type Sets []ts.InfinitySet

// With returns s extended by every set of more not already present.
// s itself is never modified.
func (s Sets) With(more ...ts.InfinitySet) Sets {
	seen := make(map[string]struct{}, len(s)+len(more))
	out := make(Sets, 0, len(s)+len(more))
	for _, set := range s {
		if _, dup := seen[set.Key()]; !dup {
			seen[set.Key()] = struct{}{}
			out = append(out, set)
		}
	}
	for _, set := range more {
		if _, dup := seen[set.Key()]; !dup {
			seen[set.Key()] = struct{}{}
			out = append(out, set)
		}
	}

	return out
}

// Contains reports whether an equal set is present.
func (s Sets) Contains(set ts.InfinitySet) bool {
	for _, x := range s {
		if x.Key() == set.Key() {
			return true
		}
	}

	return false
}

// Union returns every edge occurring in some set.
func (s Sets) Union() map[ts.Edge]struct{} {
	out := make(map[ts.Edge]struct{})
	for _, set := range s {
		for _, e := range set.Edges() {
			out[e] = struct{}{}
		}
	}

	return out
}

package acceptance

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// MinEvenParity is the oracle for min-even parity automata.
//
// Colors are assigned by peeling, from the least color upwards. At an even
// color k every uncolored edge that lies on no remaining negative set gets k,
// and positive sets touching such an edge are settled (their least color is
// k, so they accept). Odd colors do the same with the roles swapped. If two
// consecutive colors assign nothing while edges remain, every remaining edge
// is pinned by sets of both labels and no coloring exists.
type MinEvenParity struct{}

// Kind implements Condition.
func (MinEvenParity) Kind() automaton.Kind { return automaton.MinEvenParity }

// Consistent implements Condition.
func (MinEvenParity) Consistent(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (bool, Sets, Sets) {
	ev := evaluate(sys, s, pos, neg)
	if ev.conflict {
		return false, pos, neg
	}
	edges := ev.pos.With(ev.neg...).Union()
	if _, ok := peel(edges, ev.pos, ev.neg); !ok {
		return false, pos, neg
	}

	return true, ev.pos, ev.neg
}

// ConsistentAutomaton implements Condition.
func (p MinEvenParity) ConsistentAutomaton(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) (*automaton.Automaton, error) {
	ev := evaluate(sys, s, pos, neg)
	if ev.conflict {
		return nil, fmt.Errorf("%w: positive and negative words escape together", ErrInconsistent)
	}
	edges := make(map[ts.Edge]struct{}, sys.EdgeCount())
	for _, e := range sys.Edges() {
		edges[e] = struct{}{}
	}
	colors, ok := peel(edges, ev.pos, ev.neg)
	if !ok {
		return nil, fmt.Errorf("%w: no parity coloring exists", ErrInconsistent)
	}

	return finalize(p.Kind(), sys, func(e ts.Edge) ts.Color { return colors[e] })
}

// DefaultAutomaton implements Condition.
func (p MinEvenParity) DefaultAutomaton(s *sample.OmegaSample) *automaton.Automaton {
	return majority(p.Kind(), s)
}

// peel colors edges so that every positive set has an even and every
// negative set an odd least color. Edges on no set get color 0.
func peel(edges map[ts.Edge]struct{}, pos, neg Sets) (map[ts.Edge]ts.Color, bool) {
	colors := make(map[ts.Edge]ts.Color, len(edges))
	remaining := maps.Clone(edges)
	positives, negatives := slices.Clone(pos), slices.Clone(neg)
	idle := 0
	for k := ts.Color(0); len(remaining) > 0; k++ {
		even := k%2 == 0
		blocking := positives
		if even {
			blocking = negatives
		}
		blocked := blocking.Union()
		fresh := make(map[ts.Edge]struct{})
		for e := range remaining {
			if _, ok := blocked[e]; !ok {
				fresh[e] = struct{}{}
			}
		}
		if len(fresh) == 0 {
			if idle++; idle == 2 {
				return nil, false
			}
			continue
		}
		idle = 0
		for e := range fresh {
			colors[e] = k
			delete(remaining, e)
		}
		if even {
			positives = unsettled(positives, fresh)
		} else {
			negatives = unsettled(negatives, fresh)
		}
	}

	return colors, true
}

// unsettled drops the sets whose least color was just assigned.
func unsettled(sets Sets, fresh map[ts.Edge]struct{}) Sets {
	return slices.DeleteFunc(sets, func(set ts.InfinitySet) bool { return set.Intersects(fresh) })
}

package acceptance

import (
	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// verdictColor is the edge color making a loop accept or reject under kind.
func verdictColor(kind automaton.Kind, accept bool) ts.Color {
	switch {
	case kind == automaton.MinEvenParity && accept:
		return 0
	case kind == automaton.MinEvenParity:
		return 1
	case accept:
		return automaton.Accepting
	default:
		return automaton.Rejecting
	}
}

// finalize copies sys with edges recolored by color, routes every missing
// transition into one fresh rejecting sink, and builds the automaton.
// The sink is only created when some transition is missing.
func finalize(kind automaton.Kind, sys ts.TransitionSystem, color func(ts.Edge) ts.Color) (*automaton.Automaton, error) {
	c0, err := sys.StateColor(sys.Initial())
	if err != nil {
		return nil, err
	}
	out := ts.NewEdgeLists(sys.Alphabet(), c0)
	for _, q := range sys.StateIndices()[1:] {
		c, _ := sys.StateColor(q)
		out.AddState(c)
	}
	for _, e := range sys.Edges() {
		e.Color = color(e)
		if err = out.AddEdge(e); err != nil {
			return nil, err
		}
	}

	reject := verdictColor(kind, false)
	symbols := sys.Alphabet().Symbols()
	sink, hasSink := ts.State(0), false
	for _, q := range sys.StateIndices() {
		for _, a := range symbols {
			if _, ok := out.Successor(q, a); ok {
				continue
			}
			if !hasSink {
				sink, hasSink = out.AddState(ts.Void), true
			}
			if err = out.AddEdge(ts.Edge{Source: q, Symbol: a, Color: reject, Target: sink}); err != nil {
				return nil, err
			}
		}
	}
	if hasSink {
		for _, a := range symbols {
			if err = out.AddEdge(ts.Edge{Source: sink, Symbol: a, Color: reject, Target: sink}); err != nil {
				return nil, err
			}
		}
	}

	return automaton.New(kind, out)
}

// majority builds the one-state automaton accepting everything when the
// sample has at least as many positive as negative words, and nothing
// otherwise.
func majority(kind automaton.Kind, s *sample.OmegaSample) *automaton.Automaton {
	c := verdictColor(kind, s.PositiveLen() >= s.NegativeLen())
	sys := ts.NewEdgeLists(s.Alphabet(), ts.Void)
	for _, a := range s.Alphabet().Symbols() {
		// One state and a validated alphabet: AddEdge cannot fail.
		_ = sys.AddEdge(ts.Edge{Source: 0, Symbol: a, Color: c, Target: 0})
	}
	a, err := automaton.New(kind, sys)
	if err != nil {
		panic(err)
	}

	return a
}

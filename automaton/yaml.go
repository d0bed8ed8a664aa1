package automaton

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// document is the YAML layout of an automaton.
type document struct {
	Kind        string       `yaml:"kind"`
	Alphabet    string       `yaml:"alphabet"`
	States      int          `yaml:"states"`
	Transitions []transition `yaml:"transitions"`
}

type transition struct {
	From   uint32 `yaml:"from"`
	Symbol string `yaml:"symbol"`
	Color  int    `yaml:"color"`
	To     uint32 `yaml:"to"`
}

// MarshalYAML implements yaml.Marshaler.
func (a *Automaton) MarshalYAML() (interface{}, error) {
	doc := document{Kind: a.kind.String(), Alphabet: a.Alphabet().String(), States: a.Size()}
	for _, e := range a.Edges() {
		doc.Transitions = append(doc.Transitions, transition{
			From:   uint32(e.Source),
			Symbol: string(e.Symbol),
			Color:  int(e.Color),
			To:     uint32(e.Target),
		})
	}

	return doc, nil
}

// Decode reads one YAML automaton from r.
func Decode(r io.Reader) (*Automaton, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}
	alphabet, err := word.NewAlphabet(doc.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	edges := make([]ts.Edge, 0, len(doc.Transitions))
	for _, tr := range doc.Transitions {
		if len(tr.Symbol) != 1 {
			return nil, fmt.Errorf("%w: symbol %q is not a single byte", ErrBadDocument, tr.Symbol)
		}
		if int(tr.From) >= doc.States || int(tr.To) >= doc.States {
			return nil, fmt.Errorf("%w: transition %d -%s-> %d exceeds %d states", ErrBadDocument, tr.From, tr.Symbol, tr.To, doc.States)
		}
		edges = append(edges, ts.Edge{
			Source: ts.State(tr.From),
			Symbol: tr.Symbol[0],
			Color:  ts.Color(tr.Color),
			Target: ts.State(tr.To),
		})
	}

	return FromEdges(kind, alphabet, edges)
}

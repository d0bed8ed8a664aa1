package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// ExampleAutomaton_Accepts builds the Büchi automaton for "infinitely many a".
func ExampleAutomaton_Accepts() {
	a := automaton.MustFromEdges(automaton.Buchi, word.AlphabetOfSize(2), []ts.Edge{
		{Source: 0, Symbol: 'a', Color: automaton.Accepting, Target: 0},
		{Source: 0, Symbol: 'b', Color: automaton.Rejecting, Target: 0},
	})
	for _, w := range []string{"(ab)", "ab(b)"} {
		fmt.Println(w, a.Accepts(word.MustParse(w)))
	}
	// Output:
	// (ab) true
	// ab(b) false
}

package sprout_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/omegalearn/acceptance"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/sprout"
	"github.com/katalvlaran/omegalearn/word"
)

// ExampleSprout learns a Büchi automaton separating (a) and a(b) from (b).
func ExampleSprout() {
	s := sample.MustNew(word.AlphabetOfSize(2),
		[]word.Omega{word.MustParse("(a)"), word.MustParse("a(b)")},
		[]word.Omega{word.MustParse("(b)")},
	)
	a, err := sprout.Sprout(context.Background(), s, acceptance.Buchi{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)
	// Output:
	// buchi automaton over ab with 3 states
	// 0 -a:1-> 1
	// 0 -b:0-> 2
	// 1 -a:1-> 0
	// 1 -b:1-> 1
	// 2 -a:0-> 2
	// 2 -b:0-> 2
}

// ExampleThresholdError shows the diagnostics of a sample that outgrows its bound.
func ExampleThresholdError() {
	s := sample.MustNew(word.AlphabetOfSize(2),
		[]word.Omega{word.MustParse("(a)"), word.MustParse("(baaa)")},
		[]word.Omega{word.MustParse("(ba)"), word.MustParse("(baa)")},
	)
	_, err := sprout.Sprout(context.Background(), s, acceptance.MinEvenParity{})

	var te *sprout.ThresholdError
	if errors.As(err, &te) {
		fmt.Println("bound:", te.Bound)
		fmt.Println("partial states:", te.Partial.Size())
		fmt.Println("fallback states:", te.Fallback.Size())
	}
	// Output:
	// bound: 17
	// partial states: 6
	// fallback states: 1
}

// ExampleLengthLexicographicalSort orders by length, then by symbols.
func ExampleLengthLexicographicalSort() {
	fmt.Println(sprout.LengthLexicographicalSort([]string{"ca", "ac", "aaa", "b"}))
	// Output: [b ac ca aaa]
}

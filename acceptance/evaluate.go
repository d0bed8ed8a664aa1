package acceptance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// escapePoint identifies where a run leaves the system and what it still has
// to read.
type escapePoint struct {
	state ts.State
	rest  word.Omega
}

// evaluation is the shared result of running a sample through a system.
type evaluation struct {
	pos, neg Sets
	// conflict is set when a positive and a negative word escape at the same
	// point.
	conflict bool
}

// evaluate runs every word of s in sys and extends pos and neg.
func evaluate(sys ts.TransitionSystem, s *sample.OmegaSample, pos, neg Sets) evaluation {
	var posSets, negSets []ts.InfinitySet
	posEscapes := make(map[escapePoint]struct{})
	var negEscapes []escapePoint

	for w, label := range s.Words() {
		run, err := ts.OmegaRun(sys, w)
		if err != nil {
			re := runError(err)
			p := escapePoint{state: re.State, rest: w.Suffix(re.Position)}
			if label == sample.Positive {
				posEscapes[p] = struct{}{}
			} else {
				negEscapes = append(negEscapes, p)
			}
			continue
		}
		if label == sample.Positive {
			posSets = append(posSets, run.Infinity)
		} else {
			negSets = append(negSets, run.Infinity)
		}
	}

	ev := evaluation{pos: pos.With(posSets...), neg: neg.With(negSets...)}
	for _, p := range negEscapes {
		if _, ok := posEscapes[p]; ok {
			ev.conflict = true
			break
		}
	}

	return ev
}

// coveredBy reports whether some set of sets lies inside union.
func coveredBy(sets Sets, union map[ts.Edge]struct{}) bool {
	for _, set := range sets {
		if set.SubsetOf(union) {
			return true
		}
	}

	return false
}

// runError extracts the escape diagnostics of a failed run. OmegaRun fails
// only with *ts.RunError; anything else is a broken backend.
func runError(err error) *ts.RunError {
	var re *ts.RunError
	if !errors.As(err, &re) {
		panic(fmt.Sprintf("acceptance: run failed without escape point: %v", err))
	}

	return re
}

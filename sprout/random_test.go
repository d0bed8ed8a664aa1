package sprout_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/omegalearn/acceptance"
	"github.com/katalvlaran/omegalearn/gen"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/sprout"
	"github.com/katalvlaran/omegalearn/ts"
)

// maxThresholdHits bounds how many random samples may outgrow the threshold.
// Greedy growth converges on characteristic samples; small random ones can
// still miss it now and then.
const maxThresholdHits = 3

// TestSprout_RandomTargets VERIFIES that every learned automaton classifies
// its whole sample, on samples labeled by small random targets.
func TestSprout_RandomTargets(t *testing.T) {
	conditions := []acceptance.Condition{acceptance.Buchi{}, acceptance.CoBuchi{}, acceptance.MinEvenParity{}}
	hits := 0
	for seed := int64(1); seed <= 30; seed++ {
		cond := conditions[seed%3]
		t.Run(fmt.Sprintf("%s/seed=%d", cond.Kind(), seed), func(t *testing.T) {
			target, err := gen.Automaton(cond.Kind(), sigma, 2, gen.WithSeed(seed), gen.WithReachable())
			require.NoError(t, err)
			s, err := gen.Sample(target, 8, gen.WithSeed(seed))
			require.NoError(t, err)

			var st sprout.Stats
			a, err := sprout.Sprout(context.Background(), s, cond,
				sprout.WithBackend(backends[seed%2]), sprout.WithStats(&st))
			if errors.Is(err, sprout.ErrThreshold) {
				hits++
				t.Logf("sample %s outgrew its bound: %v", s, err)
				return
			}
			require.NoError(t, err)
			for w, label := range s.Words() {
				assert.Equal(t, label == sample.Positive, a.Accepts(w), "%s (%s)", w, label)
			}
			assert.True(t, ts.IsDeterministic(a.TransitionSystem()))
			assert.Equal(t, st.Trials, st.Rollbacks+st.Rounds-st.StatesCreated)
		})
	}
	assert.LessOrEqual(t, hits, maxThresholdHits, "threshold hits out of 30 samples")
}

package sprout

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/omegalearn/acceptance"
	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/ts"
)

// Sprout learns an automaton of cond's kind that accepts every positive and
// rejects every negative word of s. s is not modified.
//
// Errors:
//   - *ThresholdError (ErrThreshold) when an escape prefix outgrows Threshold(s).
//   - *TimeoutError (ErrTimeout) when ctx or WithTimeout expires first.
//   - ErrInvariant when a backend or condition breaks its contract.
//   - ErrNilArgument, ts.ErrUnknownBackend for bad arguments.
//
// Complexity: every trial re-runs the remaining sample, so a round costs
// O(|Q|) oracle calls of O(|S|·|Q|·L) each, for |S| words of length ≤ L.
func Sprout(ctx context.Context, s *sample.OmegaSample, cond acceptance.Condition, opts ...Option) (*automaton.Automaton, error) {
	if s == nil || cond == nil {
		return nil, ErrNilArgument
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sys, err := ts.New(o.Backend, s.Alphabet(), ts.Void)
	if err != nil {
		return nil, err
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	l := &learner{
		input:  s,
		sample: s.Clone(),
		cond:   cond,
		sys:    sys,
		bound:  Threshold(s),
		log: o.Logger.With(
			zap.String("run", o.RunID),
			zap.Stringer("condition", cond.Kind()),
			zap.Stringer("backend", o.Backend),
		),
	}
	l.stats.RunID = o.RunID
	l.stats.Threshold = l.bound

	start := time.Now()
	a, err := l.learn(ctx)
	l.stats.Elapsed = time.Since(start)
	if o.Stats != nil {
		*o.Stats = l.stats
	}

	return a, err
}

// learner is the state of one Sprout call.
type learner struct {
	input    *sample.OmegaSample
	sample   *sample.OmegaSample
	cond     acceptance.Condition
	sys      ts.TransitionSystem
	pos, neg acceptance.Sets
	bound    int
	log      *zap.Logger
	stats    Stats
}

// learn runs rounds until no positive word escapes.
func (l *learner) learn(ctx context.Context) (*automaton.Automaton, error) {
	l.log.Debug("learning started",
		zap.Int("threshold", l.bound),
		zap.Int("positive", l.sample.PositiveLen()),
		zap.Int("negative", l.sample.NegativeLen()),
	)
	for {
		prefix, ok := leastPrefix(slices.Collect(ts.EscapePrefixes(l.sys, l.sample.PositiveWords())))
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			l.log.Warn("learning stopped", zap.Int("size", l.sys.Size()), zap.Error(err))
			return nil, &TimeoutError{Partial: ts.Clone(l.sys), Cause: err}
		}
		l.stats.Rounds++

		u, a := prefix[:len(prefix)-1], prefix[len(prefix)-1]
		if len(u)-1 > l.bound {
			l.log.Warn("threshold exceeded",
				zap.String("prefix", prefix),
				zap.Int("threshold", l.bound),
				zap.Int("size", l.sys.Size()),
			)
			return nil, &ThresholdError{
				Bound:    l.bound,
				Prefix:   prefix,
				Fallback: l.cond.DefaultAutomaton(l.input),
				Partial:  ts.Clone(l.sys),
			}
		}
		if err := l.extend(u, a); err != nil {
			return nil, err
		}
	}

	a, err := l.cond.ConsistentAutomaton(l.sys, l.sample, l.pos, l.neg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	l.log.Info("learning finished",
		zap.Int("size", a.Size()),
		zap.Int("rounds", l.stats.Rounds),
		zap.Int("trials", l.stats.Trials),
	)

	return a, nil
}

// extend adds the missing a-transition after u: into the first existing
// state the condition accepts, or into a fresh state.
func (l *learner) extend(u string, a byte) error {
	source, err := ts.FiniteRun(l.sys, u)
	if err != nil {
		return fmt.Errorf("%w: escape prefix %q minus its last symbol: %w", ErrInvariant, u+string(a), err)
	}

	for _, target := range l.sys.StateIndices() {
		e := ts.Edge{Source: source, Symbol: a, Color: ts.Void, Target: target}
		if err = l.sys.AddEdge(e); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		l.stats.Trials++

		ok, pos, neg := l.cond.Consistent(l.sys, l.sample, l.pos, l.neg)
		if ok {
			l.pos, l.neg = pos, neg
			removed := l.sample.RemoveNonEscaping(l.sys)
			l.stats.WordsRemoved += removed
			l.log.Debug("edge committed",
				zap.String("prefix", u+string(a)),
				zap.Uint32("source", uint32(source)),
				zap.Uint32("target", uint32(target)),
				zap.Int("removed", removed),
			)
			return nil
		}

		if n := l.sys.RemoveEdgesFromMatching(source, a); n != 1 {
			return fmt.Errorf("%w: rollback of %v removed %d edges", ErrInvariant, e, n)
		}
		l.stats.Rollbacks++
	}

	target := l.sys.AddState(ts.Void)
	if err = l.sys.AddEdge(ts.Edge{Source: source, Symbol: a, Color: ts.Void, Target: target}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	l.stats.StatesCreated++
	l.log.Debug("state created",
		zap.String("prefix", u+string(a)),
		zap.Uint32("source", uint32(source)),
		zap.Uint32("target", uint32(target)),
		zap.Int("size", l.sys.Size()),
	)

	return nil
}

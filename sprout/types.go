package sprout

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/ts"
)

var (
	// ErrThreshold matches *ThresholdError.
	ErrThreshold = errors.New("sprout: size threshold exceeded")

	// ErrTimeout matches *TimeoutError.
	ErrTimeout = errors.New("sprout: timed out")

	// ErrInvariant indicates an internal consistency violation. It is never
	// expected and signals a bug in a backend or condition.
	ErrInvariant = errors.New("sprout: internal invariant violated")

	// ErrNilArgument indicates a nil sample or condition.
	ErrNilArgument = errors.New("sprout: nil sample or condition")
)

// ThresholdError reports an escape prefix longer than the size bound.
//
// Fields:
//   - Bound: maxSpoke + maxCycle² + 1 over the input sample.
//   - Prefix: the escape prefix that crossed the bound.
//   - Fallback: the condition's default automaton for the input sample.
//   - Partial: a copy of the system at the time of abort.
type ThresholdError struct {
	Bound    int
	Prefix   string
	Fallback *automaton.Automaton
	Partial  *ts.EdgeLists
}

// Error implements error.
func (e *ThresholdError) Error() string {
	return fmt.Sprintf("sprout: escape prefix of length %d exceeds threshold %d with %d states",
		len(e.Prefix), e.Bound, e.Partial.Size())
}

// Is makes errors.Is(err, ErrThreshold) succeed.
func (e *ThresholdError) Is(target error) bool { return target == ErrThreshold }

// TimeoutError reports that the context ended before learning converged.
// No automaton is produced; Partial is a copy of the system at abort time.
type TimeoutError struct {
	Partial *ts.EdgeLists
	Cause   error
}

// Error implements error.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("sprout: stopped with %d states: %v", e.Partial.Size(), e.Cause)
}

// Is makes errors.Is(err, ErrTimeout) succeed.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// Unwrap exposes the context error.
func (e *TimeoutError) Unwrap() error { return e.Cause }

// Stats collects counters of one Sprout call.
type Stats struct {
	RunID         string        // identifier attached to every log entry
	Threshold     int           // size bound of the input sample
	Rounds        int           // escape prefixes processed
	Trials        int           // trial edges submitted to the condition
	Rollbacks     int           // trial edges removed again
	StatesCreated int           // states added beyond the initial one
	WordsRemoved  int           // sample words settled by commits
	Elapsed       time.Duration // wall time of the call
}

// Option configures Sprout.
type Option func(*Options)

// Options holds the Sprout configuration.
type Options struct {
	// Timeout, if positive, bounds the wall time of the call on top of any
	// deadline carried by the context. Default 0 (context only).
	Timeout time.Duration

	// Logger receives round-level debug entries and a summary. Default no-op.
	Logger *zap.Logger

	// Backend selects the transition system storage. Default EdgeLists.
	Backend ts.Backend

	// RunID labels log entries. Default: a random UUID per call.
	RunID string

	// Stats, if non-nil, is overwritten with the counters of the call.
	Stats *Stats
}

// DefaultOptions returns Options with:
//   - no timeout beyond the context
//   - a no-op logger
//   - the EdgeLists backend
//   - a generated run ID
//   - no stats sink
func DefaultOptions() Options {
	return Options{
		Timeout: 0,
		Logger:  zap.NewNop(),
		Backend: ts.EdgeListsBackend,
		RunID:   "",
		Stats:   nil,
	}
}

// WithTimeout bounds the call duration. Non-positive values have no effect.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithLogger installs a structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBackend selects the transition system backend.
func WithBackend(b ts.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithRunID fixes the run identifier.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithStats requests the counters of the call.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

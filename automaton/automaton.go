package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// Automaton is an immutable, complete, deterministic ω-automaton.
type Automaton struct {
	kind Kind
	sys  *ts.EdgeLists
}

// New finalizes sys into an automaton of the given kind. sys is copied, so
// later mutations of sys do not affect the result.
//
// Errors:
//   - ErrUnknownKind, ErrNotDeterministic, ErrIncomplete.
func New(kind Kind, sys ts.TransitionSystem) (*Automaton, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if !ts.IsDeterministic(sys) {
		return nil, ErrNotDeterministic
	}
	if !ts.IsComplete(sys) {
		return nil, ErrIncomplete
	}

	return &Automaton{kind: kind, sys: ts.Clone(sys)}, nil
}

// FromEdges builds an automaton over alphabet from edge literals. The number
// of states is one more than the largest index mentioned; state 0 is initial
// and every state gets ts.Void as its color.
func FromEdges(kind Kind, alphabet word.Alphabet, edges []ts.Edge) (*Automaton, error) {
	n := 1
	for _, e := range edges {
		n = max(n, int(e.Source)+1, int(e.Target)+1)
	}
	sys := ts.NewEdgeLists(alphabet, ts.Void)
	for sys.Size() < n {
		sys.AddState(ts.Void)
	}
	for _, e := range edges {
		if err := sys.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return New(kind, sys)
}

// MustFromEdges is like FromEdges but panics on error.
func MustFromEdges(kind Kind, alphabet word.Alphabet, edges []ts.Edge) *Automaton {
	a, err := FromEdges(kind, alphabet, edges)
	if err != nil {
		panic(err)
	}

	return a
}

// Kind returns the acceptance kind.
func (a *Automaton) Kind() Kind { return a.kind }

// Alphabet returns the alphabet.
func (a *Automaton) Alphabet() word.Alphabet { return a.sys.Alphabet() }

// Size returns the number of states.
func (a *Automaton) Size() int { return a.sys.Size() }

// Initial returns the initial state.
func (a *Automaton) Initial() ts.State { return a.sys.Initial() }

// Edges returns every transition in sorted order.
func (a *Automaton) Edges() []ts.Edge { return a.sys.Edges() }

// Successor returns the transition leaving q on s.
func (a *Automaton) Successor(q ts.State, s word.Symbol) (ts.Edge, bool) {
	return a.sys.Successor(q, s)
}

// TransitionSystem returns a mutable copy of the underlying system.
func (a *Automaton) TransitionSystem() *ts.EdgeLists { return ts.Clone(a.sys) }

// Run returns the lasso of w. Symbols outside the alphabet yield an error.
func (a *Automaton) Run(w word.Omega) (ts.Run, error) {
	if err := a.Alphabet().Validate(w.Symbols()); err != nil {
		return ts.Run{}, err
	}

	return ts.OmegaRun(a.sys, w)
}

// Accepts reports whether the automaton accepts w. Words over foreign
// symbols are rejected.
func (a *Automaton) Accepts(w word.Omega) bool {
	run, err := a.Run(w)
	if err != nil {
		return false
	}

	return a.kind.Accepts(run.Infinity)
}

// Equal reports whether both automata have the same kind, alphabet, state
// colors, and transitions (same state numbering).
func (a *Automaton) Equal(b *Automaton) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.kind == b.kind && ts.Equal(a.sys, b.sys)
}

// String renders a header line followed by one transition per line.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s automaton over %s with %d states\n", a.kind, a.Alphabet(), a.Size())
	for i, e := range a.Edges() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.String())
	}

	return sb.String()
}

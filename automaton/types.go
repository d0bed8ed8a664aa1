package automaton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/omegalearn/ts"
)

// Sentinel errors for automaton construction and decoding.
var (
	// ErrNotDeterministic indicates two edges on one (state, symbol) pair.
	ErrNotDeterministic = errors.New("automaton: transition system is not deterministic")

	// ErrIncomplete indicates a (state, symbol) pair without an edge.
	ErrIncomplete = errors.New("automaton: transition system is not complete")

	// ErrUnknownKind indicates an unsupported acceptance kind.
	ErrUnknownKind = errors.New("automaton: unknown acceptance kind")

	// ErrBadDocument indicates a YAML automaton that cannot be decoded.
	ErrBadDocument = errors.New("automaton: bad document")
)

// Edge colors for Büchi and co-Büchi automata.
const (
	// Rejecting marks an edge outside the acceptance set.
	Rejecting ts.Color = 0

	// Accepting marks an edge inside the acceptance set.
	Accepting ts.Color = 1
)

// Kind is the acceptance condition of an automaton.
type Kind int

const (
	// Buchi: some Accepting edge is visited infinitely often.
	Buchi Kind = iota

	// CoBuchi: only Accepting edges are visited infinitely often.
	CoBuchi

	// MinEvenParity: the minimal color visited infinitely often is even.
	MinEvenParity
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case Buchi:
		return "buchi"
	case CoBuchi:
		return "cobuchi"
	case MinEvenParity:
		return "parity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a name to a Kind. Accepted spellings are case-insensitive:
// "buchi", "büchi", "cobuchi", "co-buchi", "parity", "min-even-parity".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "buchi", "büchi":
		return Buchi, nil
	case "cobuchi", "co-buchi", "co-büchi":
		return CoBuchi, nil
	case "parity", "min-even-parity":
		return MinEvenParity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool { return k >= Buchi && k <= MinEvenParity }

// Accepts evaluates k on the colors of an infinity set.
func (k Kind) Accepts(inf ts.InfinitySet) bool {
	edges := inf.Edges()
	switch k {
	case Buchi:
		for _, e := range edges {
			if e.Color == Accepting {
				return true
			}
		}
		return false
	case CoBuchi:
		for _, e := range edges {
			if e.Color != Accepting {
				return false
			}
		}
		return true
	case MinEvenParity:
		if len(edges) == 0 {
			return false
		}
		least := edges[0].Color
		for _, e := range edges[1:] {
			least = min(least, e.Color)
		}
		return least%2 == 0
	default:
		return false
	}
}

package word

import (
	"fmt"
	"strings"
)

// Omega is an ultimately periodic infinite word spoke·cycle^ω.
//
// Values built by NewOmega (or Parse) are canonical: the cycle is primitive and
// the spoke cannot be shortened by rotating the cycle. Canonical values can be
// compared with == and used as map keys. The zero value has an empty cycle and
// is not a valid word.
type Omega struct {
	spoke string
	cycle string
}

// NewOmega returns the canonical form of spoke·cycle^ω.
func NewOmega(spoke, cycle string) (Omega, error) {
	if cycle == "" {
		return Omega{}, ErrEmptyCycle
	}

	return normalize(spoke, cycle), nil
}

// MustOmega is like NewOmega but panics on an empty cycle.
func MustOmega(spoke, cycle string) Omega {
	w, err := NewOmega(spoke, cycle)
	if err != nil {
		panic(err)
	}

	return w
}

// Periodic returns cycle^ω.
func Periodic(cycle string) Omega { return MustOmega("", cycle) }

// Spoke returns the finite prefix of the canonical representation.
func (w Omega) Spoke() string { return w.spoke }

// Cycle returns the repeated part of the canonical representation.
func (w Omega) Cycle() string { return w.cycle }

// Len returns the spoke and cycle lengths.
func (w Omega) Len() (spoke, cycle int) { return len(w.spoke), len(w.cycle) }

// Equal reports whether w and v denote the same infinite word.
func (w Omega) Equal(v Omega) bool { return w == v }

// At returns the symbol at position i (0-based) of the infinite expansion.
func (w Omega) At(i int) Symbol {
	if i < len(w.spoke) {
		return w.spoke[i]
	}

	return w.cycle[(i-len(w.spoke))%len(w.cycle)]
}

// Prefix returns the first n symbols of the infinite expansion.
func (w Omega) Prefix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(w.At(i))
	}

	return b.String()
}

// Suffix returns the canonical word obtained by dropping the first i symbols.
func (w Omega) Suffix(i int) Omega {
	if i < len(w.spoke) {
		return normalize(w.spoke[i:], w.cycle)
	}
	k := (i - len(w.spoke)) % len(w.cycle)

	return normalize("", w.cycle[k:]+w.cycle[:k])
}

// Symbols returns spoke and cycle concatenated; every symbol of the infinite
// word occurs in it.
func (w Omega) Symbols() string { return w.spoke + w.cycle }

// String renders w as "spoke(cycle)".
func (w Omega) String() string { return w.spoke + "(" + w.cycle + ")" }

// MarshalYAML renders w in "spoke(cycle)" notation.
func (w Omega) MarshalYAML() (interface{}, error) { return w.String(), nil }

// Parse reads the "spoke(cycle)" notation, e.g. "(a)", "ab(ba)".
// Surrounding white space is ignored.
func Parse(s string) (Omega, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") || strings.Count(s, "(") != 1 || strings.Count(s, ")") != 1 {
		return Omega{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	w, err := NewOmega(s[:open], s[open+1:len(s)-1])
	if err != nil {
		return Omega{}, fmt.Errorf("%w: %q: %v", ErrBadNotation, s, err)
	}

	return w, nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) Omega {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return w
}

// normalize reduces the cycle to its primitive root and then moves trailing
// spoke symbols into the cycle while they match the cycle's last symbol.
func normalize(spoke, cycle string) Omega {
	cycle = primitiveRoot(cycle)
	for len(spoke) > 0 && spoke[len(spoke)-1] == cycle[len(cycle)-1] {
		spoke = spoke[:len(spoke)-1]
		cycle = cycle[len(cycle)-1:] + cycle[:len(cycle)-1]
	}

	return Omega{spoke: spoke, cycle: cycle}
}

// primitiveRoot returns the shortest r with s = r^k.
func primitiveRoot(s string) string {
	n := len(s)
	for k := 1; k < n; k++ {
		if n%k == 0 && strings.Repeat(s[:k], n/k) == s {
			return s[:k]
		}
	}

	return s
}

package sample

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

// ErrConflictingWord indicates a word labeled both positive and negative.
var ErrConflictingWord = errors.New("sample: word is both positive and negative")

// Label classifies a sample word.
type Label int

const (
	// Negative words must be rejected.
	Negative Label = iota
	// Positive words must be accepted.
	Positive
)

// String returns "positive" or "negative".
func (l Label) String() string {
	if l == Positive {
		return "positive"
	}

	return "negative"
}

// OmegaSample is an alphabet plus disjoint positive and negative word lists.
type OmegaSample struct {
	alphabet word.Alphabet
	positive []word.Omega
	negative []word.Omega
}

// New validates and builds a sample. Duplicates within one list are dropped
// (first occurrence wins); a word in both lists is rejected.
//
// Errors:
//   - word.ErrSymbolNotInAlphabet if a word leaves the alphabet.
//   - ErrConflictingWord if a word is both positive and negative.
func New(alphabet word.Alphabet, positive, negative []word.Omega) (*OmegaSample, error) {
	s := &OmegaSample{alphabet: alphabet}
	var err error
	if s.positive, err = collect(alphabet, positive); err != nil {
		return nil, err
	}
	if s.negative, err = collect(alphabet, negative); err != nil {
		return nil, err
	}
	for _, w := range s.negative {
		if slices.Contains(s.positive, w) {
			return nil, fmt.Errorf("%w: %s", ErrConflictingWord, w)
		}
	}

	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(alphabet word.Alphabet, positive, negative []word.Omega) *OmegaSample {
	s, err := New(alphabet, positive, negative)
	if err != nil {
		panic(err)
	}

	return s
}

func collect(alphabet word.Alphabet, words []word.Omega) ([]word.Omega, error) {
	out := make([]word.Omega, 0, len(words))
	for _, w := range words {
		if err := alphabet.Validate(w.Symbols()); err != nil {
			return nil, fmt.Errorf("sample: word %s: %w", w, err)
		}
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}

	return out, nil
}

// Alphabet returns the sample alphabet.
func (s *OmegaSample) Alphabet() word.Alphabet { return s.alphabet }

// PositiveWords iterates the positive words in insertion order.
func (s *OmegaSample) PositiveWords() iter.Seq[word.Omega] { return slices.Values(s.positive) }

// NegativeWords iterates the negative words in insertion order.
func (s *OmegaSample) NegativeWords() iter.Seq[word.Omega] { return slices.Values(s.negative) }

// Words iterates all words with their labels, positives first.
func (s *OmegaSample) Words() iter.Seq2[word.Omega, Label] {
	return func(yield func(word.Omega, Label) bool) {
		for _, w := range s.positive {
			if !yield(w, Positive) {
				return
			}
		}
		for _, w := range s.negative {
			if !yield(w, Negative) {
				return
			}
		}
	}
}

// Len returns the total number of words.
func (s *OmegaSample) Len() int { return len(s.positive) + len(s.negative) }

// PositiveLen returns the number of positive words.
func (s *OmegaSample) PositiveLen() int { return len(s.positive) }

// NegativeLen returns the number of negative words.
func (s *OmegaSample) NegativeLen() int { return len(s.negative) }

// Label returns the label of w and whether w is in the sample.
func (s *OmegaSample) Label(w word.Omega) (Label, bool) {
	switch {
	case slices.Contains(s.positive, w):
		return Positive, true
	case slices.Contains(s.negative, w):
		return Negative, true
	default:
		return Negative, false
	}
}

// Contains reports whether w is in either list.
func (s *OmegaSample) Contains(w word.Omega) bool {
	_, ok := s.Label(w)

	return ok
}

// Clone returns an independent copy.
func (s *OmegaSample) Clone() *OmegaSample {
	return &OmegaSample{
		alphabet: s.alphabet,
		positive: slices.Clone(s.positive),
		negative: slices.Clone(s.negative),
	}
}

// Remove deletes w from whichever list holds it. Absent words are ignored.
func (s *OmegaSample) Remove(w word.Omega) {
	if i := slices.Index(s.positive, w); i >= 0 {
		s.positive = slices.Delete(s.positive, i, i+1)
		return
	}
	if i := slices.Index(s.negative, w); i >= 0 {
		s.negative = slices.Delete(s.negative, i, i+1)
	}
}

// RemoveNonEscaping drops every word whose omega run in sys is defined end to
// end and returns how many were dropped. Such words no longer drive growth of
// sys; their infinity sets are tracked by the acceptance condition instead.
func (s *OmegaSample) RemoveNonEscaping(sys ts.TransitionSystem) int {
	before := s.Len()
	defined := func(w word.Omega) bool {
		_, err := ts.OmegaRun(sys, w)
		return err == nil
	}
	s.positive = slices.DeleteFunc(s.positive, defined)
	s.negative = slices.DeleteFunc(s.negative, defined)

	return before - s.Len()
}

// String renders the sample on one line, e.g. "+{(a), a(b)} -{(b)}".
func (s *OmegaSample) String() string {
	join := func(ws []word.Omega) string {
		parts := make([]string, len(ws))
		for i, w := range ws {
			parts[i] = w.String()
		}
		return strings.Join(parts, ", ")
	}

	return "+{" + join(s.positive) + "} -{" + join(s.negative) + "}"
}

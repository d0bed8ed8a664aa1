package sample

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omegalearn/word"
)

// ErrBadDocument indicates a sample document that cannot be turned into a sample.
var ErrBadDocument = errors.New("sample: bad document")

// document is the YAML layout of a sample file.
type document struct {
	Alphabet string   `yaml:"alphabet,omitempty"`
	Size     int      `yaml:"size,omitempty"`
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Load decodes one YAML sample document from r.
func Load(r io.Reader) (*OmegaSample, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return doc.build()
}

// LoadFile reads a YAML sample from path.
func LoadFile(path string) (*OmegaSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// MarshalYAML renders the sample in the same layout Load reads.
func (s *OmegaSample) MarshalYAML() (interface{}, error) {
	doc := document{Alphabet: s.alphabet.String()}
	for _, w := range s.positive {
		doc.Positive = append(doc.Positive, w.String())
	}
	for _, w := range s.negative {
		doc.Negative = append(doc.Negative, w.String())
	}

	return doc, nil
}

func (d document) build() (*OmegaSample, error) {
	var (
		alphabet word.Alphabet
		err      error
	)
	switch {
	case d.Alphabet != "" && d.Size != 0:
		return nil, fmt.Errorf("%w: both alphabet and size given", ErrBadDocument)
	case d.Alphabet != "":
		alphabet, err = word.NewAlphabet(d.Alphabet)
	case d.Size > 0 && d.Size <= 26:
		alphabet = word.AlphabetOfSize(d.Size)
	default:
		return nil, fmt.Errorf("%w: missing alphabet or size in [1,26]", ErrBadDocument)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	pos, err := parseAll(d.Positive)
	if err != nil {
		return nil, err
	}
	neg, err := parseAll(d.Negative)
	if err != nil {
		return nil, err
	}

	return New(alphabet, pos, neg)
}

func parseAll(texts []string) ([]word.Omega, error) {
	out := make([]word.Omega, 0, len(texts))
	for _, s := range texts {
		w, err := word.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		out = append(out, w)
	}

	return out, nil
}

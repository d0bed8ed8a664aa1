package automaton_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

var sigma = word.AlphabetOfSize(2)

func e(from ts.State, a byte, c ts.Color, to ts.State) ts.Edge {
	return ts.Edge{Source: from, Symbol: a, Color: c, Target: to}
}

// infinitelyManyA accepts words with infinitely many a's.
func infinitelyManyA(t *testing.T, kind automaton.Kind) *automaton.Automaton {
	t.Helper()
	a, err := automaton.FromEdges(kind, sigma, []ts.Edge{
		e(0, 'a', automaton.Accepting, 0),
		e(0, 'b', automaton.Rejecting, 0),
	})
	require.NoError(t, err)

	return a
}

func TestParseKind(t *testing.T) {
	cases := map[string]automaton.Kind{
		"buchi":            automaton.Buchi,
		"Büchi":            automaton.Buchi,
		"cobuchi":          automaton.CoBuchi,
		"co-buchi":         automaton.CoBuchi,
		"parity":           automaton.MinEvenParity,
		" min-even-parity": automaton.MinEvenParity,
	}
	for name, want := range cases {
		got, err := automaton.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := automaton.ParseKind("rabin")
	assert.ErrorIs(t, err, automaton.ErrUnknownKind)
	assert.Equal(t, "parity", automaton.MinEvenParity.String())
}

func TestNew_Validation(t *testing.T) {
	sys := ts.NewEdgeLists(sigma, ts.Void)
	require.NoError(t, sys.AddEdge(e(0, 'a', 0, 0)))
	_, err := automaton.New(automaton.Buchi, sys)
	assert.ErrorIs(t, err, automaton.ErrIncomplete)

	require.NoError(t, sys.AddEdge(e(0, 'b', 0, 0)))
	require.NoError(t, sys.AddEdge(e(0, 'b', 1, 0)))
	_, err = automaton.New(automaton.Buchi, sys)
	assert.ErrorIs(t, err, automaton.ErrNotDeterministic)

	_, err = automaton.New(automaton.Kind(9), sys)
	assert.ErrorIs(t, err, automaton.ErrUnknownKind)
}

// TestNew_Copies VERIFIES later mutations of the source system are invisible.
func TestNew_Copies(t *testing.T) {
	sys := ts.NewEdgeLists(sigma, ts.Void)
	require.NoError(t, sys.AddEdge(e(0, 'a', 1, 0)))
	require.NoError(t, sys.AddEdge(e(0, 'b', 0, 0)))
	a, err := automaton.New(automaton.Buchi, sys)
	require.NoError(t, err)

	sys.AddState(ts.Void)
	sys.RemoveEdgesFromMatching(0, 'a')
	assert.Equal(t, 1, a.Size())
	assert.Len(t, a.Edges(), 2)
}

func TestAccepts_Buchi(t *testing.T) {
	a := infinitelyManyA(t, automaton.Buchi)
	assert.True(t, a.Accepts(word.MustParse("(a)")))
	assert.True(t, a.Accepts(word.MustParse("bbb(ab)")))
	assert.False(t, a.Accepts(word.MustParse("a(b)")))
	assert.False(t, a.Accepts(word.MustParse("(c)")), "foreign symbols reject")
}

// TestAccepts_CoBuchi VERIFIES the same coloring means "finitely many b" under co-Büchi.
func TestAccepts_CoBuchi(t *testing.T) {
	a := infinitelyManyA(t, automaton.CoBuchi)
	assert.True(t, a.Accepts(word.MustParse("bbb(a)")))
	assert.False(t, a.Accepts(word.MustParse("(ab)")))
	assert.False(t, a.Accepts(word.MustParse("(b)")))
}

func TestAccepts_Parity(t *testing.T) {
	// Two states tracking the last symbol; a-edges color 2, b-edges color 1.
	a, err := automaton.FromEdges(automaton.MinEvenParity, sigma, []ts.Edge{
		e(0, 'a', 2, 0),
		e(0, 'b', 1, 1),
		e(1, 'a', 2, 0),
		e(1, 'b', 3, 1),
	})
	require.NoError(t, err)
	assert.True(t, a.Accepts(word.MustParse("bbb(a)")))
	assert.False(t, a.Accepts(word.MustParse("(ab)")), "least recurring color is 1")
	assert.False(t, a.Accepts(word.MustParse("(b)")), "loop on 1 colored 3")
	assert.False(t, a.Accepts(word.MustParse("a(bb)")), "same loop after a spoke")
}

func TestRun_ReportsLasso(t *testing.T) {
	a := infinitelyManyA(t, automaton.Buchi)
	run, err := a.Run(word.MustParse("b(ab)"))
	require.NoError(t, err)
	assert.Equal(t, ts.State(0), run.Reached)
	assert.Equal(t, 2, run.Infinity.Len())

	_, err = a.Run(word.MustParse("(z)"))
	assert.Error(t, err)
}

func TestEqualAndString(t *testing.T) {
	a := infinitelyManyA(t, automaton.Buchi)
	b := infinitelyManyA(t, automaton.Buchi)
	c := infinitelyManyA(t, automaton.CoBuchi)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "buchi automaton over ab with 1 states\n0 -a:1-> 0\n0 -b:0-> 0", a.String())
}

func TestTransitionSystem_IsCopy(t *testing.T) {
	a := infinitelyManyA(t, automaton.Buchi)
	sys := a.TransitionSystem()
	sys.RemoveEdgesFromMatching(0, 'a')
	_, ok := a.Successor(0, 'a')
	assert.True(t, ok)
}

func TestYAML_RoundTrip(t *testing.T) {
	a, err := automaton.FromEdges(automaton.MinEvenParity, sigma, []ts.Edge{
		e(0, 'a', 0, 0), e(0, 'b', 1, 1),
		e(1, 'a', 0, 0), e(1, 'b', 1, 1),
	})
	require.NoError(t, err)
	out, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: parity")

	back, err := automaton.Decode(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.True(t, a.Equal(back), "decoded:\n%s", back)
}

func TestDecode_Errors(t *testing.T) {
	const header = "kind: buchi\nalphabet: a\nstates: 1\n"
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "kind: rabin\nalphabet: a\nstates: 1\n", automaton.ErrUnknownKind},
		{"bad alphabet", "kind: buchi\nalphabet: aa\nstates: 1\n", automaton.ErrBadDocument},
		{"unknown field", header + "extra: 1\n", automaton.ErrBadDocument},
		{"long symbol", header + "transitions:\n  - {from: 0, symbol: ab, color: 0, to: 0}\n", automaton.ErrBadDocument},
		{"target out of range", header + "transitions:\n  - {from: 0, symbol: a, color: 0, to: 3}\n", automaton.ErrBadDocument},
		{"incomplete", "kind: buchi\nalphabet: ab\nstates: 1\ntransitions:\n  - {from: 0, symbol: a, color: 0, to: 0}\n", automaton.ErrIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := automaton.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

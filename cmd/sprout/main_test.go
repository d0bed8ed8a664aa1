package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/word"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	buchiSample = `alphabet: ab
positive: ["(a)", "a(b)"]
negative: ["(b)"]
`
	paritySample = `size: 2
positive: ["(a)", "(aab)"]
negative: ["(b)", "(abb)"]
`
	thresholdSample = `alphabet: ab
positive: ["(a)", "(baa)"]
negative: ["(ab)", "(ba)", "(babaa)", "(baaba)"]
`
)

// parsedReport mirrors report with the automaton kept as a raw node.
type parsedReport struct {
	File      string    `yaml:"file"`
	Run       string    `yaml:"run"`
	Status    string    `yaml:"status"`
	Error     string    `yaml:"error"`
	Rounds    int       `yaml:"rounds"`
	Elapsed   string    `yaml:"elapsed"`
	Automaton yaml.Node `yaml:"automaton"`
}

func (r parsedReport) automaton(t *testing.T) *automaton.Automaton {
	t.Helper()
	raw, err := yaml.Marshal(&r.Automaton)
	require.NoError(t, err)
	a, err := automaton.Decode(bytes.NewReader(raw))
	require.NoError(t, err, "automaton document:\n%s", raw)
	return a
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(zap.NewNop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decodeReports(t *testing.T, out string) []parsedReport {
	t.Helper()
	var reports []parsedReport
	dec := yaml.NewDecoder(strings.NewReader(out))
	for {
		var r parsedReport
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			return reports
		}
		require.NoError(t, err)
		reports = append(reports, r)
	}
}

func TestLearn_Buchi(t *testing.T) {
	path := writeFile(t, "buchi.yaml", buchiSample)
	out, err := execute(t, "learn", path, "--verify")
	require.NoError(t, err)

	reports := decodeReports(t, out)
	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, path, r.File)
	assert.Equal(t, statusLearned, r.Status)
	assert.Len(t, r.Run, 36)
	assert.Equal(t, 3, r.Rounds)

	a := r.automaton(t)
	assert.Equal(t, automaton.Buchi, a.Kind())
	assert.Equal(t, 3, a.Size())
	assert.True(t, a.Accepts(word.MustParse("a(b)")))
	assert.False(t, a.Accepts(word.MustParse("(b)")))
}

// TestLearn_ManyFiles VERIFIES argument order is kept and failures are reported per file.
func TestLearn_ManyFiles(t *testing.T) {
	good := writeFile(t, "good.yaml", buchiSample)
	bad := writeFile(t, "threshold.yaml", thresholdSample)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := execute(t, "learn", "-j", "2", good, bad, missing, good)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, err.Error(), "2 of 4")

	reports := decodeReports(t, out)
	require.Len(t, reports, 4)
	assert.Equal(t, []string{good, bad, missing, good},
		[]string{reports[0].File, reports[1].File, reports[2].File, reports[3].File})
	assert.Equal(t, statusLearned, reports[0].Status)
	assert.Equal(t, statusThreshold, reports[1].Status)
	assert.Contains(t, reports[1].Error, "threshold 26")
	assert.Equal(t, 1, reports[1].automaton(t).Size(), "fallback automaton printed")
	assert.Equal(t, statusFailed, reports[2].Status)
	assert.Equal(t, statusLearned, reports[3].Status)
	assert.NotEqual(t, reports[0].Run, reports[3].Run)
}

func TestLearn_LinkedListBackend(t *testing.T) {
	path := writeFile(t, "parity.yaml", paritySample)
	out, err := execute(t, "learn", "--condition", "parity", "--backend", "linkedlist", path)
	require.NoError(t, err)
	a := decodeReports(t, out)[0].automaton(t)
	assert.Equal(t, automaton.MinEvenParity, a.Kind())
	assert.Equal(t, 3, a.Size())
}

// TestLearn_Config VERIFIES config values apply unless a flag overrides them.
func TestLearn_Config(t *testing.T) {
	path := writeFile(t, "parity.yaml", paritySample)
	cfg := writeFile(t, "sprout.yaml", "condition: parity\ntimeout: 1m\nverify: true\nworkers: 1\n")

	out, err := execute(t, "learn", "--config", cfg, path)
	require.NoError(t, err)
	assert.Equal(t, automaton.MinEvenParity, decodeReports(t, out)[0].automaton(t).Kind())

	out, err = execute(t, "learn", "--config", cfg, "--condition", "buchi", path)
	require.NoError(t, err)
	assert.Equal(t, automaton.Buchi, decodeReports(t, out)[0].automaton(t).Kind())

	bad := writeFile(t, "bad.yaml", "condition: parity\nretries: 3\n")
	_, err = execute(t, "learn", "--config", bad, path)
	assert.ErrorIs(t, err, errBadConfig)
}

func TestLearn_BadFlags(t *testing.T) {
	path := writeFile(t, "buchi.yaml", buchiSample)
	_, err := execute(t, "learn", "--condition", "rabin", path)
	assert.ErrorIs(t, err, automaton.ErrUnknownKind)
	_, err = execute(t, "learn", "--backend", "matrix", path)
	assert.Error(t, err)
	_, err = execute(t, "learn")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, err := execute(t, "learn", writeFile(t, "buchi.yaml", buchiSample))
	require.NoError(t, err)
	raw, err := yaml.Marshal(decodeReports(t, out)[0].automaton(t))
	require.NoError(t, err)
	path := writeFile(t, "automaton.yaml", string(raw))

	// b(b) prints in canonical form.
	out, err = execute(t, "classify", path, "(a)", "(aba)", "b(b)")
	require.NoError(t, err)
	assert.Equal(t, "(a)\taccept\n(aba)\taccept\n(b)\treject\n", out)

	out, err = execute(t, "classify", "--access", path, "(a)")
	require.NoError(t, err)
	assert.Equal(t, "0\tε\n1\ta\n2\tb\n(a)\taccept\n", out)

	_, err = execute(t, "classify", path)
	assert.ErrorIs(t, err, errNoWords)
	_, err = execute(t, "classify", path, "(c)x")
	assert.ErrorIs(t, err, word.ErrBadNotation)
	_, err = execute(t, "classify", writeFile(t, "bad.yaml", "kind: buchi\n"), "(a)")
	assert.Error(t, err)
}

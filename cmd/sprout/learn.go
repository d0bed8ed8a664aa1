package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omegalearn/acceptance"
	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/sample"
	"github.com/katalvlaran/omegalearn/sprout"
	"github.com/katalvlaran/omegalearn/ts"
)

var (
	errFailed       = errors.New("sprout: some samples were not learned")
	errVerification = errors.New("sprout: learned automaton misclassifies a sample word")
)

// learnFlags holds the flags of the learn command.
type learnFlags struct {
	condition string
	backend   string
	timeout   time.Duration
	verify    bool
	workers   int
}

// report is the YAML document printed per input file.
type report struct {
	File      string               `yaml:"file"`
	Run       string               `yaml:"run"`
	Status    string               `yaml:"status"`
	Error     string               `yaml:"error,omitempty"`
	Rounds    int                  `yaml:"rounds"`
	Elapsed   string               `yaml:"elapsed"`
	Automaton *automaton.Automaton `yaml:"automaton,omitempty"`
}

const (
	statusLearned   = "learned"
	statusThreshold = "threshold"
	statusTimeout   = "timeout"
	statusFailed    = "failed"
)

func (c *cli) newLearnCmd() *cobra.Command {
	f := &learnFlags{}
	cmd := &cobra.Command{
		Use:   "learn FILE...",
		Short: "Learn one automaton per sample file",
		Long: `Runs SPROUT on every sample file concurrently and prints one YAML document
per file in argument order. When a sample outgrows its size threshold the
fallback automaton is printed and the command fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if err = applyConfig(cmd, cfg); err != nil {
				return err
			}
			return c.runLearn(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.condition, "condition", "c", "buchi", "Acceptance condition: buchi, cobuchi, or parity")
	cmd.Flags().StringVar(&f.backend, "backend", ts.EdgeListsBackend.String(), "Transition system backend: edgelists or linkedlist")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 10*time.Minute, "Budget per sample file (0 disables)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Check the learned automaton against the whole sample")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", runtime.GOMAXPROCS(0), "Sample files learned in parallel")

	return cmd
}

func (c *cli) runLearn(cmd *cobra.Command, f *learnFlags, files []string) error {
	cond, err := acceptance.Parse(f.condition)
	if err != nil {
		return err
	}
	backend, err := ts.ParseBackend(f.backend)
	if err != nil {
		return err
	}

	reports := make([]report, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(f.workers, 1))
	for i, path := range files {
		g.Go(func() error {
			// Failures are per file and reported in the output.
			reports[i] = c.learnFile(ctx, path, cond, backend, f)
			return nil
		})
	}
	_ = g.Wait()

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	failed := 0
	for _, r := range reports {
		if r.Status != statusLearned {
			failed++
		}
		if err = enc.Encode(r); err != nil {
			return err
		}
	}
	if err = enc.Close(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailed, failed, len(files))
	}

	return nil
}

// learnFile loads, learns, and optionally verifies one sample file.
func (c *cli) learnFile(ctx context.Context, path string, cond acceptance.Condition, backend ts.Backend, f *learnFlags) report {
	r := report{File: path, Run: uuid.NewString()}
	log := c.logger.With(zap.String("file", path))

	s, err := sample.LoadFile(path)
	if err != nil {
		log.Error("cannot load sample", zap.Error(err))
		r.Status, r.Error = statusFailed, err.Error()
		return r
	}

	var st sprout.Stats
	opts := []sprout.Option{
		sprout.WithLogger(log),
		sprout.WithBackend(backend),
		sprout.WithRunID(r.Run),
		sprout.WithStats(&st),
	}
	if f.timeout > 0 {
		opts = append(opts, sprout.WithTimeout(f.timeout))
	}
	a, err := sprout.Sprout(ctx, s, cond, opts...)
	r.Rounds, r.Elapsed = st.Rounds, st.Elapsed.String()

	var te *sprout.ThresholdError
	switch {
	case errors.As(err, &te):
		r.Status, r.Error, r.Automaton = statusThreshold, err.Error(), te.Fallback
		return r
	case errors.Is(err, sprout.ErrTimeout):
		r.Status, r.Error = statusTimeout, err.Error()
		return r
	case err != nil:
		r.Status, r.Error = statusFailed, err.Error()
		return r
	}

	r.Status, r.Automaton = statusLearned, a
	if f.verify {
		if err = verify(a, s); err != nil {
			log.Error("verification failed", zap.Error(err))
			r.Status, r.Error = statusFailed, err.Error()
		}
	}

	return r
}

// verify checks that a classifies every word of s by its label.
func verify(a *automaton.Automaton, s *sample.OmegaSample) error {
	for w, label := range s.Words() {
		if a.Accepts(w) != (label == sample.Positive) {
			return fmt.Errorf("%w: %s is %s", errVerification, w, label)
		}
	}

	return nil
}

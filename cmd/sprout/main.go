// Command sprout learns ω-automata from labeled sample files.
//
// Usage:
//
//	sprout learn samples/*.yaml --condition parity --timeout 2m
//	sprout classify automaton.yaml "a(b)" "(ab)"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the persistent flags and the logger shared by all commands.
type cli struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

// newRootCmd assembles the command tree. A non-nil logger replaces the one
// built from flags.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	c := &cli{logger: logger}
	root := &cobra.Command{
		Use:   "sprout",
		Short: "Passive learning of deterministic ω-automata",
		Long: `sprout learns Büchi, co-Büchi, and min-even parity automata from samples
of labeled ultimately periodic words written as spoke(cycle).

A sample file looks like:

  alphabet: ab
  positive: ["(a)", "a(b)"]
  negative: ["(b)"]`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			c.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with default flag values")

	root.AddCommand(c.newLearnCmd(), c.newClassifyCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

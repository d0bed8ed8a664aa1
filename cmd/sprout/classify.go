package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/omegalearn/automaton"
	"github.com/katalvlaran/omegalearn/ts"
	"github.com/katalvlaran/omegalearn/word"
)

var errNoWords = errors.New("no words to classify")

func (c *cli) newClassifyCmd() *cobra.Command {
	var access bool
	cmd := &cobra.Command{
		Use:   "classify AUTOMATON [WORD...]",
		Short: "Classify words with an automaton printed by learn",
		Long: `Reads an automaton document (the "automaton" value of a learn report saved
on its own) and prints "accept" or "reject" for every word. With --access it
first lists the least word reaching each state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !access {
				return errNoWords
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			a, err := automaton.Decode(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if access {
				printAccess(out, a)
			}
			for _, text := range args[1:] {
				w, err := word.Parse(text)
				if err != nil {
					return err
				}
				verdict := "reject"
				if a.Accepts(w) {
					verdict = "accept"
				}
				c.logger.Debug("classified", zap.String("word", w.String()), zap.String("verdict", verdict))
				fmt.Fprintf(out, "%s\t%s\n", w, verdict)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&access, "access", false, "print the length-lex least access word of every state")

	return cmd
}

// printAccess writes "state<TAB>word" lines; ε marks the empty word and "-"
// an unreachable state.
func printAccess(out io.Writer, a *automaton.Automaton) {
	words, _ := ts.AccessWords(a.TransitionSystem())
	reached := make([]bool, len(words))
	for _, q := range ts.Reachable(a.TransitionSystem()) {
		reached[q] = true
	}
	for q, w := range words {
		switch {
		case !reached[q]:
			w = "-"
		case w == "":
			w = "ε"
		}
		fmt.Fprintf(out, "%d\t%s\n", q, w)
	}
}

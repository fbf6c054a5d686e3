package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hint-server/internal/game"
)

type simulateOptions struct {
	answer string
	opener string
	seed   int64
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the engine play against a known answer",
		Long: `Plays a full game: the first guess is --opener (or the engine's own pick),
every later guess is the first top pick for the board so far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.answer, "answer", "a", "", "The hidden word")
	cmd.Flags().StringVarP(&opts.opener, "opener", "o", "", "First guess (default: engine pick)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for breaking top-pick ties (0 = random)")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func runSimulate(out io.Writer, root *rootOptions, opts *simulateOptions) error {
	dict, err := root.loadDict()
	if err != nil {
		return err
	}

	g, err := game.Play(opts.answer, dict, opts.opener, shufflerFor(opts.seed))
	if g != nil {
		for i, row := range g.Board {
			fmt.Fprintf(out, "%d  %s\n", i+1, row)
		}
	}
	if err != nil {
		if errors.Is(err, game.ErrNoCandidates) {
			log.Warn().Str("answer", opts.answer).Msg("answer is missing from the candidates")
		}
		return fmt.Errorf("simulate %q: %w", opts.answer, err)
	}

	if g.Won {
		fmt.Fprintf(out, "solved in %d/%d\n", len(g.Guesses), g.Rows)
	} else {
		fmt.Fprintf(out, "%s: answer was %s\n", g.State(), g.Answer)
	}
	return nil
}

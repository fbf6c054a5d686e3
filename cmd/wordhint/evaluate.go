package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hint-server/internal/game"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate GUESS ANSWER",
		Short: "Print the feedback a guess earns against an answer",
		Long:  `Output is WORD/STATES (g green, y yellow, x grey), ready to pass to hints --row.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := game.New(args[1], nil)
			if err != nil {
				return fmt.Errorf("answer %q: %w", args[1], err)
			}
			row, err := g.ApplyGuess(args[0], nil)
			if err != nil {
				return fmt.Errorf("guess %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), row)
			return nil
		},
	}
}

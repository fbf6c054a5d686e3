package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
)

// traceLimit caps the rejections printed by --trace.
const traceLimit = 10

type hintsOptions struct {
	rows      []string
	hideKnown bool
	seed      int64
	limit     int
	trace     bool
}

func newHintsCmd(root *rootOptions) *cobra.Command {
	opts := &hintsOptions{}
	cmd := &cobra.Command{
		Use:   "hints",
		Short: "Show candidates, letter stats and top picks for a board",
		Long: `Rows are given as WORD/STATES, one --row per guess, oldest first.
States: g green, y yellow, x grey, . unset. Unknown letters are "." or "_".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHints(cmd.OutOrStdout(), root, opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.rows, "row", "r", nil, "Board row, e.g. crane/gyx.. (repeatable)")
	cmd.Flags().BoolVar(&opts.hideKnown, "hide-known", false, "Leave known letters out of the stats")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for breaking top-pick ties (0 = random)")
	cmd.Flags().IntVar(&opts.limit, "limit", 45, "Maximum candidates to print (0 = all)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print why the first rejected words failed")
	return cmd
}

func runHints(out io.Writer, root *rootOptions, opts *hintsOptions) error {
	board, err := hint.ParseBoard(opts.rows...)
	if err != nil {
		return err
	}
	dict, err := root.loadDict()
	if err != nil {
		return err
	}

	var tr *hint.Trace
	if opts.trace {
		tr = &hint.Trace{Limit: traceLimit}
	}
	res := hint.Analyze(board, dict.Words(), hint.Options{
		HideKnown: opts.hideKnown,
		Rand:      shufflerFor(opts.seed),
		Trace:     tr,
	})
	log.Debug().Int("rows", len(board)).Int("matched", res.Matched).Msg("analyzed board")

	fmt.Fprintf(out, "narrowing to %d of %d words\n", res.Matched, res.Total)
	if res.Matched == 0 {
		fmt.Fprintln(out, "no words fit this board; check the colours")
	}

	if len(res.TopPicks) > 0 {
		picks := make([]string, len(res.TopPicks))
		for i, p := range res.TopPicks {
			picks[i] = fmt.Sprintf("%s (%d)", p.Word, p.Score)
		}
		fmt.Fprintf(out, "top picks: %s\n", strings.Join(picks, ", "))
	}

	if len(res.Stats) > 0 {
		fmt.Fprintln(out, "letters:")
		for _, st := range res.Stats {
			fmt.Fprintf(out, "  %s %5.1f%% %3d  %s\n", st.Letter, st.Percent, st.Count, st.Status)
		}
	}

	ranked := res.Ranked
	if opts.limit > 0 && len(ranked) > opts.limit {
		ranked = ranked[:opts.limit]
	}
	if len(ranked) > 0 {
		fmt.Fprintln(out, "candidates:")
		for _, r := range ranked {
			fmt.Fprintf(out, "  %s %3d\n", r.Word, r.Score)
		}
	}

	if tr != nil {
		fmt.Fprintf(out, "rejected %d words, first %d:\n", tr.Rejected, len(tr.Rejections))
		for _, rj := range tr.Rejections {
			fmt.Fprintf(out, "  %s\n", rj)
		}
	}
	return nil
}

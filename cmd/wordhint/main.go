// Package main implements wordhint, an offline front end to the hint engine.
//
// Commands:
//   - hints:    filter the dictionary for a board given as --row flags.
//   - simulate: let the engine play a full game against a known answer.
//   - evaluate: print the feedback row a guess earns against an answer.
//
// Usage:
//
//	wordhint hints --row crane/gyx.. --row curio/g.gxx
//	wordhint simulate --answer cigar --opener slate --seed 7
//	wordhint evaluate crane react
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
	"github.com/robalobadob/wordle/apps/hint-server/internal/words"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	wordsFile string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "wordhint",
		Short:         "Offline Wordle hints and self-play",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := zerolog.InfoLevel
			if opts.verbose {
				lvl = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(lvl)
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.wordsFile, "words", "", "Word list file (default: embedded list)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newHintsCmd(opts), newSimulateCmd(opts), newEvaluateCmd())
	return cmd
}

// loadDict resolves --words.
func (o *rootOptions) loadDict() (*words.Dictionary, error) {
	dict, err := words.Load(o.wordsFile)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	log.Debug().Int("words", dict.Len()).Str("file", o.wordsFile).Msg("dictionary loaded")
	return dict, nil
}

// shufflerFor returns a seeded source, or nil (process-wide source) for seed 0.
func shufflerFor(seed int64) hint.Shuffler {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// internal/game/engine.go
//
// Feedback engine and self-play loop.
// Responsibilities:
//   - Evaluate a guess against an answer using the two‑pass Wordle algorithm.
//   - Validate and apply guesses (length, alphabetic, dictionary membership).
//   - Play a full game by following the hint engine's top pick each turn.
//
// Notes:
//   - Marks are hint.State values so evaluated rows feed straight into
//     hint.Derive.
//   - Self-play is deterministic for a given dictionary and Shuffler.
package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
	"github.com/robalobadob/wordle/apps/hint-server/internal/words"
)

// DefaultRows is the number of guesses a game allows.
const DefaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInList    = errors.New("not in word list")
	ErrNoCandidates = errors.New("no candidates left")
)

// New constructs a game for answer, checked against dict.
func New(answer string, dict *words.Dictionary) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if len(answer) != hint.WordLen || !isAlpha(answer) {
		return nil, ErrInvalidGuess
	}
	if dict != nil && !dict.Contains(answer) {
		return nil, ErrNotInList
	}
	return &Game{Answer: answer, Rows: DefaultRows, Guesses: []string{}}, nil
}

// ApplyGuess validates and evaluates a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly 5 letters a–z.
//   - Guess must be in dict when dict is non-nil.
//
// State transitions:
//   - All cells green → Finished, Won.
//   - Else if the number of guesses reaches g.Rows → Finished (loss).
func (g *Game) ApplyGuess(guess string, dict *words.Dictionary) (hint.Row, error) {
	if g.Finished {
		return hint.Row{}, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != hint.WordLen || !isAlpha(guess) {
		return hint.Row{}, ErrInvalidGuess
	}
	if dict != nil && !dict.Contains(guess) {
		return hint.Row{}, ErrNotInList
	}

	row := Evaluate(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)
	g.Board = append(g.Board, row)

	if allGreen(row) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return row, nil
}

// Evaluate scores guess against answer and returns the row of feedback.
//
// Pass 1:
//   - Mark exact matches green.
//   - Count remaining (non‑green) answer letters.
//
// Pass 2:
//   - For each non‑green guess letter: if there is remaining count for that
//     letter, mark yellow and decrement; otherwise mark grey.
//
// This gives repeated letters the same treatment as the real game.
func Evaluate(answer, guess string) hint.Row {
	var row hint.Row
	var counts [26]int

	for i := 0; i < hint.WordLen; i++ {
		row[i].Letter = guess[i : i+1]
		if guess[i] == answer[i] {
			row[i].State = hint.StateGreen
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < hint.WordLen; i++ {
		if row[i].State == hint.StateGreen {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			row[i].State = hint.StateYellow
			counts[j]--
		} else {
			row[i].State = hint.StateGrey
		}
	}
	return row
}

// Play runs a full game against answer. The first guess is opener (or the
// engine's first top pick when empty); every later guess is the first top
// pick for the board so far.
func Play(answer string, dict *words.Dictionary, opener string, rng hint.Shuffler) (*Game, error) {
	if dict == nil {
		return nil, words.ErrEmpty
	}
	g, err := New(answer, dict)
	if err != nil {
		return nil, err
	}

	guess := opener
	for !g.Finished {
		if guess == "" {
			res := hint.Analyze(g.Board, dict.Words(), hint.Options{Rand: rng})
			if len(res.TopPicks) == 0 {
				return g, ErrNoCandidates
			}
			guess = res.TopPicks[0].Word
		}
		if _, err := g.ApplyGuess(guess, dict); err != nil {
			return g, err
		}
		guess = ""
	}
	return g, nil
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allGreen returns true if every cell is green.
func allGreen(row hint.Row) bool {
	for _, c := range row {
		if c.State != hint.StateGreen {
			return false
		}
	}
	return true
}

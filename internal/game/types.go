// internal/game/types.go
//
// Core type definitions for self-play.
// Defines:
//   - Game: state for a single game against a known answer, recorded as a
//     hint.Board so the hint engine can read it directly.

package game

import "github.com/robalobadob/wordle/apps/hint-server/internal/hint"

// Game holds the state of a single game session.
type Game struct {
	Answer   string     // The solution word (always lowercase).
	Rows     int        // Maximum number of guesses allowed (typically 6).
	Guesses  []string   // Guesses made so far (lowercased).
	Board    hint.Board // One evaluated row per guess.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.
}

// State reports a coarse string form of the game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

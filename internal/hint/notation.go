package hint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotation is wrapped by every board parsing error.
var ErrNotation = errors.New("bad board notation")

// ParseRow reads a row written as "WORD/states", e.g. "crane/gy.x-".
// WORD holds 5 letters where '.' or '_' is an empty cell. Each state
// character is g (green), y (yellow), x or - (grey) or . (unset).
func ParseRow(s string) (Row, error) {
	var row Row
	word, states, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return row, fmt.Errorf("%w: %q: missing '/'", ErrNotation, s)
	}
	if len(word) != WordLen || len(states) != WordLen {
		return row, fmt.Errorf("%w: %q: want %d letters and %d states", ErrNotation, s, WordLen, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch c := word[i]; {
		case c == '.' || c == '_':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			row[i].Letter = strings.ToLower(string(c))
		default:
			return row, fmt.Errorf("%w: %q: bad letter %q", ErrNotation, s, c)
		}
		switch states[i] {
		case 'g', 'G':
			row[i].State = StateGreen
		case 'y', 'Y':
			row[i].State = StateYellow
		case 'x', 'X', '-':
			row[i].State = StateGrey
		case '.':
			row[i].State = StateUnset
		default:
			return row, fmt.Errorf("%w: %q: bad state %q", ErrNotation, s, states[i])
		}
	}
	return row, nil
}

// ParseBoard parses each row in order.
func ParseBoard(rows ...string) (Board, error) {
	board := make(Board, 0, len(rows))
	for i, r := range rows {
		row, err := ParseRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		board = append(board, row)
	}
	return board, nil
}

var stateChars = [...]byte{StateUnset: '.', StateGrey: 'x', StateYellow: 'y', StateGreen: 'g'}

// String renders the row back in "word/states" form.
func (r Row) String() string {
	var word, states [WordLen]byte
	for i, c := range r {
		word[i] = '.'
		if l := c.letter(); l != 0 {
			word[i] = l
		}
		states[i] = '.'
		if int(c.State) < len(stateChars) {
			states[i] = stateChars[c.State]
		}
	}
	return string(word[:]) + "/" + string(states[:])
}

// internal/hint/types.go
//
// Core type definitions for the hint engine.
// Defines:
//   - State: per-cell feedback (unset/grey/yellow/green).
//   - Cell, Row, Board: the raw guess grid handed in by a caller.
//   - LetterSet: compact a–z set used by the constraint set.
//   - ConstraintSet: the normalized output of Derive.

package hint

import (
	"fmt"
	"math/bits"
	"strings"
)

// WordLen is the fixed word length the engine works with.
const WordLen = 5

// State is the feedback recorded for a single cell.
// The numeric order doubles as display priority: unset < grey < yellow < green.
type State uint8

const (
	StateUnset State = iota
	StateGrey
	StateYellow
	StateGreen
)

var stateNames = [...]string{"unset", "grey", "yellow", "green"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState maps a state name to a State. "gray" is accepted for grey,
// and the empty string means unset.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset":
		return StateUnset, nil
	case "grey", "gray":
		return StateGrey, nil
	case "yellow":
		return StateYellow, nil
	case "green":
		return StateGreen, nil
	}
	return StateUnset, fmt.Errorf("unknown state %q", s)
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Cell is one letter tile of a guess row.
type Cell struct {
	Letter string `json:"letter"`
	State  State  `json:"state"`
}

// letter returns the normalized letter of the cell, or 0 when the cell
// holds nothing usable (empty, more than one character, or outside a–z).
func (c Cell) letter() byte {
	s := strings.ToLower(strings.TrimSpace(c.Letter))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0
	}
	return s[0]
}

// Row is a single guess: exactly WordLen cells.
type Row [WordLen]Cell

// Board is the guess history in guess order.
type Board []Row

// LetterSet is a set of lowercase ASCII letters stored as a bitmask.
type LetterSet uint32

func bit(l byte) LetterSet {
	if l < 'a' || l > 'z' {
		return 0
	}
	return 1 << (l - 'a')
}

// NewLetterSet builds a set from the letters of s; other bytes are ignored.
func NewLetterSet(s string) LetterSet {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		set = set.Add(s[i])
	}
	return set
}

func (s LetterSet) Add(l byte) LetterSet          { return s | bit(l) }
func (s LetterSet) Has(l byte) bool               { b := bit(l); return b != 0 && s&b != 0 }
func (s LetterSet) Len() int                      { return bits.OnesCount32(uint32(s)) }
func (s LetterSet) Union(o LetterSet) LetterSet   { return s | o }
func (s LetterSet) Without(o LetterSet) LetterSet { return s &^ o }

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	for l := byte('a'); l <= 'z'; l++ {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

func (s LetterSet) String() string { return string(s.Letters()) }

// ContainsAny reports whether set holds at least one of the candidates.
func ContainsAny(set LetterSet, candidates ...byte) bool {
	for _, c := range candidates {
		if set.Has(c) {
			return true
		}
	}
	return false
}

// Counts tallies how often a letter was observed in each feedback state.
type Counts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Grey   int `json:"grey"`
}

// Placement is a yellow observation: Letter is in the word but not at NotAt.
type Placement struct {
	Letter byte
	NotAt  int
}

func (p Placement) String() string { return fmt.Sprintf("%c!%d", p.Letter, p.NotAt) }

// ConstraintSet is the normalized view of a board. Per-letter arrays are
// indexed by letter-'a'. A zero ConstraintSet accepts every word.
type ConstraintSet struct {
	Exact          [WordLen]byte // 0 = no green at that position
	Included       LetterSet
	Excluded       LetterSet
	Known          LetterSet
	Partial        []Placement
	LetterCounts   [26]Counts
	RequiredCounts [26]int // 0 = no entry
	LetterStatus   [26]State
}

// Status returns the highest-priority state observed for l.
func (cs *ConstraintSet) Status(l byte) State {
	if l < 'a' || l > 'z' {
		return StateUnset
	}
	return cs.LetterStatus[l-'a']
}

// Required returns the minimum multiplicity demonstrated for l (0 = none).
func (cs *ConstraintSet) Required(l byte) int {
	if l < 'a' || l > 'z' {
		return 0
	}
	return cs.RequiredCounts[l-'a']
}

// Count returns the per-state observation tally for l.
func (cs *ConstraintSet) Count(l byte) Counts {
	if l < 'a' || l > 'z' {
		return Counts{}
	}
	return cs.LetterCounts[l-'a']
}

// Empty reports whether the set carries no constraint at all.
func (cs *ConstraintSet) Empty() bool {
	return cs.Exact == [WordLen]byte{} && cs.Included == 0 && cs.Excluded == 0 && len(cs.Partial) == 0
}

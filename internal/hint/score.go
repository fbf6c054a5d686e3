package hint

import (
	"bytes"
	"sort"
)

// InvalidPositions lists, per position, the letters a yellow clue ruled out there.
type InvalidPositions [WordLen]LetterSet

// BuildInvalidPositions folds yellow placements into a per-position lookup.
func BuildInvalidPositions(partial []Placement) InvalidPositions {
	var inv InvalidPositions
	for _, p := range partial {
		if p.NotAt >= 0 && p.NotAt < WordLen {
			inv[p.NotAt] = inv[p.NotAt].Add(p.Letter)
		}
	}
	return inv
}

// Score rates how useful word is as the next guess. Each distinct letter
// earns +3 when it is a top letter; a known letter adds +5 on its green
// position, -2 where a yellow ruled it out and +2 anywhere else. The number
// of distinct letters is added at the end. Repeated letters score once.
func Score(word string, known LetterSet, exact [WordLen]byte, invalid InvalidPositions, top []byte) int {
	score := 0
	var used LetterSet
	n := len(word)
	if n > WordLen {
		n = WordLen
	}
	for i := 0; i < n; i++ {
		l := word[i]
		if used.Has(l) {
			continue
		}
		used = used.Add(l)

		if bytes.IndexByte(top, l) >= 0 {
			score += 3
		}
		if known.Has(l) {
			switch {
			case exact[i] == l:
				score += 5
			case invalid[i].Has(l):
				score -= 2
			default:
				score += 2
			}
		}
	}
	return score + used.Len()
}

// Ranked is a candidate with its score.
type Ranked struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Rank scores every word against cs and sorts highest first. Equal scores
// keep dictionary order.
func Rank(words []string, cs ConstraintSet, top []byte) []Ranked {
	invalid := BuildInvalidPositions(cs.Partial)
	out := make([]Ranked, len(words))
	for i, w := range words {
		out[i] = Ranked{Word: w, Score: Score(w, cs.Known, cs.Exact, invalid, top)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

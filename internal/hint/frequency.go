package hint

import (
	"math"
	"sort"
)

// topN is how many letters Frequencies reports.
const topN = 5

// LetterStat is the share of words containing a letter at least once.
type LetterStat struct {
	Letter  string  `json:"letter"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	Status  State   `json:"status"`
}

// Frequencies counts, for each letter, how many of words contain it and
// returns the five most common, highest first. Ties keep the order in which
// letters were first met. With hideKnown set, letters in known are skipped.
// Percentages are rounded to one decimal; no words means no stats.
func Frequencies(words []string, hideKnown bool, known LetterSet) []LetterStat {
	if len(words) == 0 {
		return []LetterStat{}
	}

	var counts [26]int
	order := make([]byte, 0, 26)
	for _, w := range words {
		var seen LetterSet
		for i := 0; i < len(w); i++ {
			l := w[i]
			if l < 'a' || l > 'z' || seen.Has(l) {
				continue
			}
			seen = seen.Add(l)
			if hideKnown && known.Has(l) {
				continue
			}
			if counts[l-'a'] == 0 {
				order = append(order, l)
			}
			counts[l-'a']++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]-'a'] > counts[order[j]-'a']
	})
	if len(order) > topN {
		order = order[:topN]
	}

	total := float64(len(words))
	out := make([]LetterStat, 0, len(order))
	for _, l := range order {
		n := counts[l-'a']
		out = append(out, LetterStat{
			Letter:  string(l),
			Count:   n,
			Percent: math.Round(float64(n)/total*1000) / 10,
		})
	}
	return out
}

// TopLetters returns the letters of Frequencies(words, false, 0) in rank order.
func TopLetters(words []string) []byte {
	stats := Frequencies(words, false, 0)
	out := make([]byte, 0, len(stats))
	for _, s := range stats {
		out = append(out, s.Letter[0])
	}
	return out
}

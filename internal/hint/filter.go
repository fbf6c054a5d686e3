package hint

import "fmt"

// Rule identifies which filter check rejected a word.
type Rule uint8

const (
	RuleExact         Rule = iota + 1 // green letter missing from its position
	RuleYellowMissing                 // yellow letter absent from the word
	RuleYellowPlaced                  // yellow letter sitting where it was ruled out
	RuleIncluded                      // known-present letter absent
	RuleExactCount                    // letter capped by grey, wrong multiplicity
	RuleMinCount                      // letter seen fewer times than demonstrated
	RuleExcluded                      // grey-only letter present
)

var ruleNames = [...]string{
	RuleExact:         "exact",
	RuleYellowMissing: "yellow_missing",
	RuleYellowPlaced:  "yellow_placed",
	RuleIncluded:      "included",
	RuleExactCount:    "exact_count",
	RuleMinCount:      "min_count",
	RuleExcluded:      "excluded",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) && ruleNames[r] != "" {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Rejection describes why a single word failed the filter.
type Rejection struct {
	Word   string `json:"word"`
	Rule   Rule   `json:"rule"`
	Letter string `json:"letter"`
	Pos    int    `json:"pos"`  // -1 when the rule is not positional
	Want   int    `json:"want"` // expected multiplicity for count rules
	Got    int    `json:"got"`
}

func (r Rejection) String() string {
	switch r.Rule {
	case RuleExact:
		got := ""
		if r.Pos >= 0 && r.Pos < len(r.Word) {
			got = r.Word[r.Pos : r.Pos+1]
		}
		return fmt.Sprintf("%s: expected %s at pos %d, got %s", r.Word, r.Letter, r.Pos, got)
	case RuleYellowMissing:
		return fmt.Sprintf("%s: missing yellow letter %s", r.Word, r.Letter)
	case RuleYellowPlaced:
		return fmt.Sprintf("%s: yellow letter %s appears at invalid position %d", r.Word, r.Letter, r.Pos)
	case RuleIncluded:
		return fmt.Sprintf("%s: missing included letter %s", r.Word, r.Letter)
	case RuleExactCount:
		return fmt.Sprintf("%s: letter %s must appear exactly %d times, found %d", r.Word, r.Letter, r.Want, r.Got)
	case RuleMinCount:
		return fmt.Sprintf("%s: letter %s must appear at least %d times, found %d", r.Word, r.Letter, r.Want, r.Got)
	case RuleExcluded:
		return fmt.Sprintf("%s: letter %s is grey and shouldn't appear", r.Word, r.Letter)
	}
	return fmt.Sprintf("%s: %s", r.Word, r.Rule)
}

// Trace collects filter rejections for debugging. Only the first Limit
// rejections are kept; Rejected counts all of them.
type Trace struct {
	Limit      int
	Rejected   int
	Rejections []Rejection
}

func (t *Trace) record(r Rejection) {
	if t == nil {
		return
	}
	if t.Rejected < t.Limit {
		t.Rejections = append(t.Rejections, r)
	}
	t.Rejected++
}

// Filter returns the words that satisfy every constraint in cs, in their
// original order. Words are expected to be lowercase.
func Filter(words []string, cs ConstraintSet) []string {
	return FilterTrace(words, cs, nil)
}

// FilterTrace is Filter with an optional rejection trace. A nil trace is
// allowed; the trace never influences the result.
func FilterTrace(words []string, cs ConstraintSet, tr *Trace) []string {
	// Grey letters with no green/yellow history must be absent entirely.
	var pureGrey LetterSet
	for _, l := range cs.Excluded.Letters() {
		if cs.Required(l) == 0 {
			pureGrey = pureGrey.Add(l)
		}
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if r, ok := check(w, &cs, pureGrey); !ok {
			tr.record(r)
			continue
		}
		out = append(out, w)
	}
	return out
}

// check applies the rules in order and stops at the first failure.
func check(word string, cs *ConstraintSet, pureGrey LetterSet) (Rejection, bool) {
	var counts [26]int
	var present LetterSet
	for i := 0; i < len(word); i++ {
		l := word[i]
		if l >= 'a' && l <= 'z' {
			counts[l-'a']++
			present = present.Add(l)
		}
	}
	reject := func(rule Rule, l byte, pos, want, got int) (Rejection, bool) {
		return Rejection{Word: word, Rule: rule, Letter: string(l), Pos: pos, Want: want, Got: got}, false
	}

	for i, l := range cs.Exact {
		if l != 0 && (i >= len(word) || word[i] != l) {
			return reject(RuleExact, l, i, 0, 0)
		}
	}

	for _, p := range cs.Partial {
		if !present.Has(p.Letter) {
			return reject(RuleYellowMissing, p.Letter, -1, 0, 0)
		}
		if p.NotAt < len(word) && word[p.NotAt] == p.Letter {
			return reject(RuleYellowPlaced, p.Letter, p.NotAt, 0, 0)
		}
	}

	if missing := cs.Included.Without(present); missing != 0 {
		return reject(RuleIncluded, missing.Letters()[0], -1, 0, 0)
	}

	for idx, req := range cs.RequiredCounts {
		if req == 0 {
			continue
		}
		l := byte('a' + idx)
		got := counts[idx]
		if cs.LetterCounts[idx].Grey > 0 {
			if got != req {
				return reject(RuleExactCount, l, -1, req, got)
			}
		} else if got < req {
			return reject(RuleMinCount, l, -1, req, got)
		}
	}

	if ContainsAny(pureGrey, []byte(word)...) {
		for i := 0; i < len(word); i++ {
			if pureGrey.Has(word[i]) {
				return reject(RuleExcluded, word[i], -1, 0, 0)
			}
		}
	}
	return Rejection{}, true
}

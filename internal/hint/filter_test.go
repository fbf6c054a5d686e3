package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_GreenPosition(t *testing.T) {
	cs := ConstraintSet{Exact: [WordLen]byte{'g'}}
	got := Filter([]string{"grape", "agree", "ghost", "piggy"}, cs)
	assert.Equal(t, []string{"grape", "ghost"}, got)
	for _, w := range got {
		assert.Equal(t, byte('g'), w[0])
	}
}

func TestFilter_YellowPlacement(t *testing.T) {
	cs := ConstraintSet{Partial: []Placement{{Letter: 'e', NotAt: 1}}}

	tests := []struct {
		word string
		keep bool
	}{
		{"eagle", true},  // e at 0 and 4
		{"deals", false}, // e only at the forbidden position
		{"brick", false}, // no e
		{"weave", false}, // e at 1 even though another e exists
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Filter([]string{tt.word}, cs)
			if tt.keep {
				assert.Equal(t, []string{tt.word}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilter_MultiplicityWithGrey(t *testing.T) {
	cs := Derive(mustBoard(t, "geese/.yy..", "theme/..x.."))
	require.Equal(t, Counts{Yellow: 2, Grey: 1}, cs.Count('e'))
	require.Equal(t, 2, cs.Required('e'))

	got := Filter([]string{"elder", "early", "emcee", "eerie", "elope"}, cs)
	assert.Equal(t, []string{"elder", "elope"}, got)
}

func TestFilter_MultiplicityWithoutGrey(t *testing.T) {
	// Two yellow e's and no grey e: at least two, no upper bound.
	cs := Derive(mustBoard(t, "geese/.yy.."))
	got := Filter([]string{"elder", "early", "emcee"}, cs)
	assert.Equal(t, []string{"elder", "emcee"}, got)
}

func TestFilter_GreyOnlyLetterAbsent(t *testing.T) {
	cs := Derive(mustBoard(t, "toast/x...."))
	assert.Equal(t, []string{"crane"}, Filter([]string{"crane", "tiger", "stare"}, cs))
}

func TestFilter_GreyAfterGreenCaps(t *testing.T) {
	// s green at 0, grey at 2 and 3: exactly one s, which is not a pure exclusion.
	cs := Derive(mustBoard(t, "sass./g.xx."))
	assert.Equal(t, 1, cs.Required('s'))
	got := Filter([]string{"stare", "sissy", "crane", "shops"}, cs)
	assert.Equal(t, []string{"stare"}, got)
}

func TestFilter_Contradiction(t *testing.T) {
	cs := Derive(mustBoard(t, "aaaaa/gxxxx", "bbbbb/yyyyy"))
	assert.Empty(t, Filter([]string{"abbbb", "abcde", "aaaaa"}, cs))
}

func TestFilter_EmptyDictionary(t *testing.T) {
	cs := Derive(mustBoard(t, "crane/gyxxx"))
	assert.Empty(t, Filter(nil, cs))
	assert.Empty(t, Filter([]string{}, cs))
}

func TestFilter_SubsequenceAndIdempotent(t *testing.T) {
	dict := []string{"crane", "crate", "trace", "caret", "react", "slate", "cater", "cubic", "civic"}
	cs := Derive(mustBoard(t, "crane/gx.xx"))

	first := Filter(dict, cs)
	assert.Equal(t, first, Filter(dict, cs))

	j := 0
	for _, w := range dict {
		if j < len(first) && first[j] == w {
			j++
		}
	}
	assert.Equal(t, len(first), j, "result must be a subsequence of the dictionary")
	assert.Equal(t, []string{"cubic", "civic"}, first)
}

func TestFilterTrace(t *testing.T) {
	cs := Derive(mustBoard(t, "crane/gyxxx"))
	dict := []string{"brick", "crisp", "curio", "cynic", "chore", "corgi"}

	tr := &Trace{Limit: 3}
	got := FilterTrace(dict, cs, tr)
	assert.Equal(t, Filter(dict, cs), got)
	assert.Equal(t, []string{"curio", "corgi"}, got)

	assert.Equal(t, 4, tr.Rejected)
	require.Len(t, tr.Rejections, 3)

	assert.Equal(t, Rejection{Word: "brick", Rule: RuleExact, Letter: "c", Pos: 0}, tr.Rejections[0])
	assert.Equal(t, "brick: expected c at pos 0, got b", tr.Rejections[0].String())

	assert.Equal(t, RuleYellowPlaced, tr.Rejections[1].Rule)
	assert.Equal(t, "crisp: yellow letter r appears at invalid position 1", tr.Rejections[1].String())

	assert.Equal(t, RuleYellowMissing, tr.Rejections[2].Rule)
	assert.Equal(t, "cynic: missing yellow letter r", tr.Rejections[2].String())
}

func TestFilterTrace_CountRules(t *testing.T) {
	cs := Derive(mustBoard(t, "geese/.yy..", "theme/..x.."))
	tr := &Trace{Limit: 10}
	FilterTrace([]string{"early", "emcee"}, cs, tr)
	require.Len(t, tr.Rejections, 2)
	assert.Equal(t, "early: letter e must appear exactly 2 times, found 1", tr.Rejections[0].String())
	assert.Equal(t, "emcee: letter e must appear exactly 2 times, found 3", tr.Rejections[1].String())

	cs = Derive(mustBoard(t, "toast/x...."))
	tr = &Trace{Limit: 10}
	FilterTrace([]string{"tiger"}, cs, tr)
	require.Len(t, tr.Rejections, 1)
	assert.Equal(t, RuleExcluded, tr.Rejections[0].Rule)
	assert.Equal(t, "tiger: letter t is grey and shouldn't appear", tr.Rejections[0].String())
}

func TestContainsAny(t *testing.T) {
	set := NewLetterSet("aeiou")
	assert.True(t, ContainsAny(set, 'x', 'y', 'e'))
	assert.False(t, ContainsAny(set, 'x', 'y', 'z'))
	assert.False(t, ContainsAny(set))
	assert.False(t, ContainsAny(0, 'a'))
}

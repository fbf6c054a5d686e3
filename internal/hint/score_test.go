package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_WorkedExample(t *testing.T) {
	// c:+2 r:+2 (known, not exact) a:+3 (top letter) + 5 distinct letters
	got := Score("crane", NewLetterSet("cr"), [WordLen]byte{}, InvalidPositions{}, []byte("a"))
	assert.Equal(t, 12, got)
}

func TestScore(t *testing.T) {
	known := NewLetterSet("cre")
	exact := [WordLen]byte{'c'}
	invalid := BuildInvalidPositions([]Placement{{Letter: 'r', NotAt: 1}})

	tests := []struct {
		name string
		word string
		top  string
		want int
	}{
		{"exact position bonus", "cobra", "", 5 + 2 + 5},
		{"yellow position penalty", "crest", "", 5 - 2 + 2 + 5},
		{"top letters", "stoma", "sta", 3 + 3 + 3 + 5},
		{"repeated letters score once", "error", "r", 2 + (3 - 2) + 3},
		{"nothing known", "fuzzy", "", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.word, known, exact, invalid, []byte(tt.top)))
		})
	}
}

func TestBuildInvalidPositions(t *testing.T) {
	inv := BuildInvalidPositions([]Placement{{'e', 1}, {'e', 1}, {'a', 1}, {'s', 4}, {'z', 9}})
	assert.Equal(t, NewLetterSet("ae"), inv[1])
	assert.Equal(t, NewLetterSet("s"), inv[4])
	assert.Equal(t, LetterSet(0), inv[0])
}

func TestRank_StableDescending(t *testing.T) {
	words := []string{"fuzzy", "crane", "slate", "trace", "jazzy"}
	ranked := Rank(words, ConstraintSet{}, []byte("a"))

	assert.Equal(t, []Ranked{
		{"crane", 8},
		{"slate", 8},
		{"trace", 8},
		{"jazzy", 7},
		{"fuzzy", 4},
	}, ranked)
}

func TestRank_UsesConstraints(t *testing.T) {
	cs := Derive(mustBoard(t, "crane/gyxxx"))
	ranked := Rank([]string{"curio", "corgi"}, cs, nil)
	// curio: c exact +5, r +2, 5 distinct; corgi: same letters scored alike
	assert.Equal(t, []Ranked{{"curio", 12}, {"corgi", 12}}, ranked)
	assert.Empty(t, Rank(nil, cs, nil))
}

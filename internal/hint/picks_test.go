package hint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopPicks_FewerThanThreeTied(t *testing.T) {
	tests := []struct {
		name   string
		ranked []Ranked
		want   []Ranked
	}{
		{"empty", nil, []Ranked{}},
		{"one", []Ranked{{"crane", 9}}, []Ranked{{"crane", 9}}},
		{
			"single best backfills",
			[]Ranked{{"a", 10}, {"b", 9}, {"c", 9}, {"d", 8}},
			[]Ranked{{"a", 10}, {"b", 9}, {"c", 9}},
		},
		{
			"two tied backfill next band",
			[]Ranked{{"a", 10}, {"b", 10}, {"c", 9}, {"d", 9}, {"e", 9}},
			[]Ranked{{"a", 10}, {"b", 10}, {"c", 9}},
		},
		{
			"exactly three tied",
			[]Ranked{{"a", 7}, {"b", 7}, {"c", 7}, {"d", 1}},
			[]Ranked{{"a", 7}, {"b", 7}, {"c", 7}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopPicks(tt.ranked, rand.New(rand.NewSource(1))))
		})
	}
}

func TestTopPicks_TieBreakIsUniform(t *testing.T) {
	ranked := []Ranked{{"alpha", 12}, {"bravo", 12}, {"charl", 12}, {"delta", 12}, {"echoe", 12}, {"foxtr", 3}}
	rng := rand.New(rand.NewSource(42))

	const trials = 5000
	seen := map[string]int{}
	for i := 0; i < trials; i++ {
		picks := TopPicks(ranked, rng)
		require.Len(t, picks, 3)

		distinct := map[string]bool{}
		for _, p := range picks {
			assert.Equal(t, 12, p.Score)
			distinct[p.Word] = true
			seen[p.Word]++
		}
		require.Len(t, distinct, 3)
	}

	// each of the five tied words is expected in 3/5 of the trials
	for _, w := range []string{"alpha", "bravo", "charl", "delta", "echoe"} {
		assert.InDelta(t, trials*3/5, seen[w], trials*0.05, w)
	}
	assert.Zero(t, seen["foxtr"])
}

func TestTopPicks_DeterministicWithSeed(t *testing.T) {
	ranked := []Ranked{{"a", 5}, {"b", 5}, {"c", 5}, {"d", 5}}
	first := TopPicks(ranked, rand.New(rand.NewSource(7)))
	second := TopPicks(ranked, rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
	assert.Equal(t, []Ranked{{"a", 5}, {"b", 5}, {"c", 5}, {"d", 5}}, ranked, "input must not be reordered")
}

func TestTopPicks_NilSource(t *testing.T) {
	ranked := []Ranked{{"a", 5}, {"b", 5}, {"c", 5}, {"d", 5}}
	assert.Len(t, TopPicks(ranked, nil), 3)
}

package hint

// Options tunes a single Analyze run.
type Options struct {
	// HideKnown drops letters already known from the frequency stats.
	HideKnown bool
	// Rand breaks ties among equally-best picks; nil uses a shared source.
	Rand Shuffler
	// Trace, when set, receives filter rejections.
	Trace *Trace
}

// Result is everything a caller needs to present one recompute.
type Result struct {
	Constraints ConstraintSet `json:"-"`
	Candidates  []string      `json:"candidates"`
	Stats       []LetterStat  `json:"stats"`
	Ranked      []Ranked      `json:"ranked"`
	TopPicks    []Ranked      `json:"topPicks"`
	Matched     int           `json:"matched"`
	Total       int           `json:"total"`
}

// Analyze runs the whole pipeline for one board snapshot: derive the
// constraints, filter dict, compute letter stats, rank the survivors by
// score and pick the highlights.
func Analyze(board Board, dict []string, opts Options) Result {
	cs := Derive(board)
	candidates := FilterTrace(dict, cs, opts.Trace)

	stats := Frequencies(candidates, opts.HideKnown, cs.Known)
	for i := range stats {
		stats[i].Status = cs.Status(stats[i].Letter[0])
	}

	ranked := Rank(candidates, cs, TopLetters(candidates))

	return Result{
		Constraints: cs,
		Candidates:  candidates,
		Stats:       stats,
		Ranked:      ranked,
		TopPicks:    TopPicks(ranked, opts.Rand),
		Matched:     len(candidates),
		Total:       len(dict),
	}
}

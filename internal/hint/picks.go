package hint

import (
	"math/rand"
	"sync"
	"time"
)

// maxPicks is the size of the highlight set.
const maxPicks = 3

// Shuffler permutes n elements uniformly. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedRand guards a shared *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

var defaultShuffler Shuffler = &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// TopPicks selects up to three highlights from a ranked list. When more than
// three words share the top score, three of them are sampled uniformly with
// rng; otherwise the first three ranked entries are returned. A nil rng uses
// a process-wide source.
func TopPicks(ranked []Ranked, rng Shuffler) []Ranked {
	if len(ranked) == 0 {
		return []Ranked{}
	}
	if rng == nil {
		rng = defaultShuffler
	}

	top := ranked[0].Score
	var tied []Ranked
	for _, r := range ranked {
		if r.Score == top {
			tied = append(tied, r)
		}
	}

	if len(tied) > maxPicks {
		rng.Shuffle(len(tied), func(i, j int) { tied[i], tied[j] = tied[j], tied[i] })
		return tied[:maxPicks]
	}

	n := len(ranked)
	if n > maxPicks {
		n = maxPicks
	}
	return append([]Ranked(nil), ranked[:n]...)
}

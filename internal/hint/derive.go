package hint

// Derive reduces a board snapshot to its ConstraintSet.
//
// Rows are read in guess order. Greens overwrite Exact (last writer wins)
// and are tallied once per (letter, position) across the whole board;
// yellows and greys are tallied on every observation. Green and yellow
// cells also feed a per-row counter, and after each row RequiredCounts
// keeps the largest multiplicity any single guess demonstrated.
func Derive(board Board) ConstraintSet {
	var cs ConstraintSet
	var greenSeen [WordLen]LetterSet

	for _, row := range board {
		var rowCounts [26]int

		for i, cell := range row {
			l := cell.letter()
			if l == 0 {
				continue
			}
			idx := l - 'a'

			if cell.State > cs.LetterStatus[idx] {
				cs.LetterStatus[idx] = cell.State
			}

			switch cell.State {
			case StateGreen:
				if !greenSeen[i].Has(l) {
					greenSeen[i] = greenSeen[i].Add(l)
					cs.LetterCounts[idx].Green++
				}
				cs.Exact[i] = l
				cs.Known = cs.Known.Add(l)
				rowCounts[idx]++
			case StateYellow:
				cs.LetterCounts[idx].Yellow++
				cs.Included = cs.Included.Add(l)
				cs.Known = cs.Known.Add(l)
				cs.Partial = append(cs.Partial, Placement{Letter: l, NotAt: i})
				rowCounts[idx]++
			case StateGrey:
				cs.LetterCounts[idx].Grey++
				cs.Excluded = cs.Excluded.Add(l)
			}
		}

		for idx, n := range rowCounts {
			if n > cs.RequiredCounts[idx] {
				cs.RequiredCounts[idx] = n
			}
		}
	}
	return cs
}

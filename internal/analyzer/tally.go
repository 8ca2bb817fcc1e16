package analyzer

import "sort"

// Tally counts word token occurrences. First-seen order is recorded so that
// ranking ties resolve by document order instead of map iteration order.
type Tally struct {
	counts map[string]int
	order  []string // distinct tokens in first-seen order
}

// WordCount is one ranked tally entry.
type WordCount struct {
	Word  string
	Count int
}

// NewTally builds a tally from the token sequence in a single pass.
func NewTally(words []string) *Tally {
	t := &Tally{counts: make(map[string]int)}
	for _, w := range words {
		if _, seen := t.counts[w]; !seen {
			t.order = append(t.order, w)
		}
		t.counts[w]++
	}
	return t
}

// Unique returns the number of distinct tokens.
func (t *Tally) Unique() int { return len(t.counts) }

// Count returns the occurrence count for a token, zero if absent.
func (t *Tally) Count(word string) int { return t.counts[word] }

// Top returns the n most frequent tokens, fewer if fewer exist. Ordering is
// by descending count; equal counts keep first-seen document order.
func (t *Tally) Top(n int) []WordCount {
	ranked := make([]WordCount, 0, len(t.order))
	for _, w := range t.order {
		ranked = append(ranked, WordCount{Word: w, Count: t.counts[w]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

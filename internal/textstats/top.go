package textstats

import (
	"cmp"
	"slices"
)

// SelectTop returns up to n entries ordered by count descending. Equal
// counts keep first-insertion order, so the word that appeared earlier in
// the input ranks higher.
func SelectTop(m *FrequencyMap, n int) []Entry {
	if m == nil || n <= 0 || m.Len() == 0 {
		return nil
	}
	ranked := slices.Clone(m.entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n >= len(ranked) {
		return ranked
	}
	return slices.Clone(ranked[:n])
}

package textstats

import "strings"

// AnalyzeNaive is the unoptimized reference analyzer used for benchmarking.
// Words are whitespace-separated fields with non-letters removed, so
// "don't" counts as "dont" here but as "don" and "t" in Analyze. The top
// list is built by rescanning all words once per rank, and letters and the
// longest word are found in separate passes over the text.
func AnalyzeNaive(text string, n int) Report {
	counts := map[string]int{}
	var order []string
	total := 0
	for _, line := range strings.Split(text, "\n") {
		for _, field := range strings.Fields(line) {
			clean := cleanField(field)
			if clean == "" {
				continue
			}
			if _, ok := counts[clean]; !ok {
				order = append(order, clean)
			}
			counts[clean]++
			total++
		}
	}

	var top []Entry
	for rank := 0; rank < n; rank++ {
		best := ""
		bestCount := 0
		for _, word := range order {
			chosen := false
			for _, e := range top {
				if e.Word == word {
					chosen = true
					break
				}
			}
			if !chosen && counts[word] > bestCount {
				best = word
				bestCount = counts[word]
			}
		}
		if bestCount == 0 {
			break
		}
		top = append(top, Entry{Word: best, Count: bestCount})
	}

	alpha := 0
	for _, line := range strings.Split(text, "\n") {
		for i := 0; i < len(line); i++ {
			if isAlpha(line[i]) {
				alpha++
			}
		}
	}

	longest := ""
	for _, line := range strings.Split(text, "\n") {
		for _, field := range strings.Fields(line) {
			if clean := cleanField(field); len(clean) > len(longest) {
				longest = clean
			}
		}
	}

	return NewReport(alpha, total, len(counts), top, longest)
}

func cleanField(field string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && isAlpha(byte(r)) {
			return r | 0x20
		}
		return -1
	}, field)
}

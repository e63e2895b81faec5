package textsource

import "strings"

// FilterFunc returns true when a vocabulary word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific vocabulary filter. "en" keeps
// only words that tokenize to exactly one ASCII word.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return isSingleASCIIWord
	default:
		return func(string) bool { return true }
	}
}

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func isSingleASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i] | 0x20
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

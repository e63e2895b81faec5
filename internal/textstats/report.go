package textstats

import (
	"encoding/json"
	"slices"
)

// Report is the immutable result of one analysis.
type Report struct {
	alpha   int
	words   int
	unique  int
	top     []Entry
	longest string
}

// NewReport assembles a Report. top is copied; an empty longest means the
// input contained no words.
func NewReport(alpha, words, unique int, top []Entry, longest string) Report {
	return Report{
		alpha:   alpha,
		words:   words,
		unique:  unique,
		top:     slices.Clone(top),
		longest: longest,
	}
}

// AlphaChars returns the number of ASCII letters in the input.
func (r Report) AlphaChars() int {
	return r.alpha
}

// Words returns the number of words, repeats included.
func (r Report) Words() int {
	return r.words
}

// UniqueWords returns the number of distinct words.
func (r Report) UniqueWords() int {
	return r.unique
}

// Top returns a copy of the ranked top list.
func (r Report) Top() []Entry {
	return slices.Clone(r.top)
}

// Longest returns the longest word, if any.
func (r Report) Longest() (string, bool) {
	return r.longest, r.longest != ""
}

// Equal reports whether both reports hold the same values, top order included.
func (r Report) Equal(other Report) bool {
	return r.alpha == other.alpha &&
		r.words == other.words &&
		r.unique == other.unique &&
		r.longest == other.longest &&
		slices.Equal(r.top, other.top)
}

type reportJSON struct {
	Words      int         `json:"words"`
	Unique     int         `json:"unique_words"`
	AlphaChars int         `json:"alpha_chars"`
	Longest    *string     `json:"longest"`
	Top        []entryJSON `json:"top"`
}

type entryJSON struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Words:      r.words,
		Unique:     r.unique,
		AlphaChars: r.alpha,
		Top:        make([]entryJSON, 0, len(r.top)),
	}
	if longest, ok := r.Longest(); ok {
		out.Longest = &longest
	}
	for _, e := range r.top {
		out.Top = append(out.Top, entryJSON{Word: e.Word, Count: e.Count})
	}
	return json.Marshal(out)
}

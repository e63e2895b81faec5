package textsource

import (
	"slices"
	"testing"
)

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") || !filter("Hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "abc1"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter([]string{"b", "x-y", "a"}, FilterForLang("EN"))
	if !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("unexpected filter result: %v", got)
	}
	if len(Filter([]string{"é"}, FilterForLang("fr"))) != 1 {
		t.Fatalf("expected unknown language to keep everything")
	}
}

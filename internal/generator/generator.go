// Package generator builds synthetic input text.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// DefaultVocab is the benchmark vocabulary cycled by Cycle.
var DefaultVocab = []string{
	"rust",
	"performance",
	"optimization",
	"memory",
	"speed",
	"efficiency",
	"benchmark",
	"algorithm",
	"data",
	"structure",
}

// Cycle repeats vocab round-robin until count words are emitted, separated
// by single spaces.
func Cycle(vocab []string, count int) []byte {
	if len(vocab) == 0 || count <= 0 {
		return nil
	}
	size := 0
	for i := 0; i < count; i++ {
		size += len(vocab[i%len(vocab)]) + 1
	}
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocab[i%len(vocab)])
	}
	return []byte(b.String())
}

// Generator produces randomized text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects words uniformly and applies caps/punctuation rules.
func (g *Generator) Generate(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result
}

// Text is Generate joined with single spaces.
func (g *Generator) Text(words []string, count int, capsPct, punctPct float64, punctSet []rune) []byte {
	return []byte(strings.Join(g.Generate(words, count, capsPct, punctPct, punctSet), " "))
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 || rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 || rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}

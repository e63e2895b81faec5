package textstats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleText = "The Quick fox jumps. The fox runs!"

func TestAnalyzeScenario(t *testing.T) {
	r := Analyze([]byte(sampleText), WithTopN(2))
	require.Equal(t, 7, r.Words())
	require.Equal(t, 5, r.UniqueWords())
	require.Equal(t, 26, r.AlphaChars())
	require.Equal(t, []Entry{{Word: "the", Count: 2}, {Word: "fox", Count: 2}}, r.Top())
	longest, ok := r.Longest()
	require.True(t, ok)
	require.Equal(t, "quick", longest)
}

func TestAnalyzeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "1234 !!! ??"} {
		r := Analyze([]byte(in))
		require.Equal(t, 0, r.Words())
		require.Equal(t, 0, r.AlphaChars())
		require.Equal(t, 0, r.UniqueWords())
		require.Empty(t, r.Top())
		_, ok := r.Longest()
		require.False(t, ok)
	}
}

func TestAnalyzeDefaultTopN(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteByte(' ')
	}
	r := Analyze([]byte(b.String()))
	require.Len(t, r.Top(), DefaultTopN)
	require.Equal(t, 15, r.UniqueWords())
}

func TestAnalyzeWordCountMatchesTokensAndCounts(t *testing.T) {
	inputs := []string{
		sampleText,
		"a a a b b c",
		"Mixed CASE mixed case, MiXeD!",
		"tabs\tand\nnewlines\r\nand 42 digits",
	}
	for _, in := range inputs {
		tokens := 0
		for range Words([]byte(in)) {
			tokens++
		}
		r := Analyze([]byte(in), WithTopN(1000))
		sum := 0
		for _, e := range r.Top() {
			sum += e.Count
		}
		require.Equal(t, tokens, r.Words(), in)
		require.Equal(t, sum, r.Words(), in)
	}
}

func TestAnalyzeAlphaIndependentOfBoundaries(t *testing.T) {
	in := "a1b2c3 D-E-F ünï"
	letters := 0
	for i := 0; i < len(in); i++ {
		c := in[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			letters++
		}
	}
	require.Equal(t, letters, Analyze([]byte(in)).AlphaChars())
}

func TestAnalyzeDeterministic(t *testing.T) {
	in := []byte(strings.Repeat("b a c a b d e f ", 50))
	first := Analyze(in)
	second := Analyze(in)
	require.True(t, first.Equal(second))
	require.Equal(t, first.Top(), second.Top())
}

func TestAnalyzeRoundTripKeys(t *testing.T) {
	in := []byte("Hello, world! It's a *fine* day-time; hello WORLD again.")
	var words []string
	for w := range Words(in) {
		words = append(words, w)
	}
	again := []byte(strings.Join(words, " "))

	keys := func(text []byte) map[string]bool {
		m, _ := accumulate(text)
		out := map[string]bool{}
		for _, e := range m.Entries() {
			out[e.Word] = true
		}
		return out
	}
	require.Equal(t, keys(in), keys(again))
}

func TestReportTopIsCopy(t *testing.T) {
	r := Analyze([]byte("a a b"))
	top := r.Top()
	top[0].Word = "mutated"
	require.Equal(t, "a", r.Top()[0].Word)
}

func TestReportJSON(t *testing.T) {
	data, err := json.Marshal(Analyze([]byte(sampleText), WithTopN(1)))
	require.NoError(t, err)
	require.JSONEq(t, `{"words":7,"unique_words":5,"alpha_chars":26,"longest":"quick","top":[{"word":"the","count":2}]}`, string(data))

	data, err = json.Marshal(Analyze(nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"words":0,"unique_words":0,"alpha_chars":0,"longest":null,"top":[]}`, string(data))
}

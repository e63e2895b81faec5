package textstats

// DefaultTopN is the top list size used when no option overrides it.
const DefaultTopN = 10

// Expected bytes per distinct word, used to presize maps.
const bytesPerUniqueWord = 64

type options struct {
	topN int
}

// Option configures Analyze and AnalyzeParallel.
type Option func(*options)

// WithTopN sets the maximum length of the top list. n <= 0 yields an empty list.
func WithTopN(n int) Option {
	return func(o *options) {
		o.topN = n
	}
}

func newOptions(opts []Option) options {
	o := options{topN: DefaultTopN}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Analyze tokenizes text once and returns its statistics.
func Analyze(text []byte, opts ...Option) Report {
	o := newOptions(opts)
	m, alpha := accumulate(text)
	return buildReport(m, alpha, o.topN)
}

func accumulate(text []byte) (*FrequencyMap, int) {
	m := NewFrequencyMap(len(text) / bytesPerUniqueWord)
	tok := NewTokenizer(text)
	for {
		word, ok := tok.Next()
		if !ok {
			break
		}
		m.Add(word)
	}
	return m, tok.Alpha()
}

func buildReport(m *FrequencyMap, alpha, topN int) Report {
	longest, _ := m.Longest()
	return NewReport(alpha, m.Total(), m.Len(), SelectTop(m, topN), longest)
}

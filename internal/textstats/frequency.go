package textstats

// Entry is a word and its number of occurrences.
type Entry struct {
	Word  string
	Count int
}

// FrequencyMap counts words in first-insertion order. The zero value is
// ready to use.
type FrequencyMap struct {
	entries []Entry
	index   map[string]int
	total   int
	// longest indexes entries; meaningless while entries is empty.
	longest int
}

// NewFrequencyMap returns a map sized for roughly sizeHint distinct words.
func NewFrequencyMap(sizeHint int) *FrequencyMap {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &FrequencyMap{
		entries: make([]Entry, 0, sizeHint),
		index:   make(map[string]int, sizeHint),
	}
}

// Add records one occurrence of word. The bytes are copied only the first
// time the word is seen; word may be reused by the caller afterwards.
func (m *FrequencyMap) Add(word []byte) {
	if len(word) == 0 {
		return
	}
	m.total = addCount(m.total, 1)
	if i, ok := m.index[string(word)]; ok {
		m.entries[i].Count = addCount(m.entries[i].Count, 1)
		return
	}
	m.insert(string(word), 1)
}

// Merge adds every count of src into m. Words unseen by m are appended in
// src order and share src's key storage.
func (m *FrequencyMap) Merge(src *FrequencyMap) {
	if src == nil {
		return
	}
	m.total = addCount(m.total, src.total)
	for _, e := range src.entries {
		if i, ok := m.index[e.Word]; ok {
			m.entries[i].Count = addCount(m.entries[i].Count, e.Count)
			continue
		}
		m.insert(e.Word, e.Count)
	}
}

func (m *FrequencyMap) insert(word string, count int) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[word] = len(m.entries)
	m.entries = append(m.entries, Entry{Word: word, Count: count})
	// Strictly longer only: the first word of a given length keeps the slot.
	if len(m.entries) == 1 || len(word) > len(m.entries[m.longest].Word) {
		m.longest = len(m.entries) - 1
	}
}

// Count returns the occurrences of word, or 0.
func (m *FrequencyMap) Count(word string) int {
	if i, ok := m.index[word]; ok {
		return m.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct words.
func (m *FrequencyMap) Len() int {
	return len(m.entries)
}

// Total returns the number of words added, repeats included.
func (m *FrequencyMap) Total() int {
	return m.total
}

// Entries returns the entries in first-insertion order. The slice is owned
// by the map and must not be modified.
func (m *FrequencyMap) Entries() []Entry {
	return m.entries
}

// Longest returns the longest word, the earliest one on ties.
func (m *FrequencyMap) Longest() (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	return m.entries[m.longest].Word, true
}

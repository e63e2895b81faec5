// Package textstats computes word frequency and character statistics over
// in-memory text.
package textstats

import "iter"

const initialWordCap = 32

// Tokenizer splits text into lowercase ASCII words. Every byte that is not
// an ASCII letter is a word boundary, including each byte of a multi-byte
// UTF-8 sequence.
type Tokenizer struct {
	text  []byte
	pos   int
	buf   []byte
	alpha int
}

// NewTokenizer returns a Tokenizer positioned at the start of text.
func NewTokenizer(text []byte) *Tokenizer {
	return &Tokenizer{text: text, buf: make([]byte, 0, initialWordCap)}
}

// Next returns the next word. The returned slice aliases the tokenizer's
// scratch buffer and is only valid until the following call.
func (t *Tokenizer) Next() ([]byte, bool) {
	t.buf = t.buf[:0]
	for t.pos < len(t.text) {
		b := t.text[t.pos]
		t.pos++
		if isAlpha(b) {
			t.buf = append(t.buf, b|0x20)
			t.alpha = addCount(t.alpha, 1)
			continue
		}
		if len(t.buf) > 0 {
			return t.buf, true
		}
	}
	if len(t.buf) > 0 {
		return t.buf, true
	}
	return nil, false
}

// Alpha returns the number of ASCII letters scanned so far.
func (t *Tokenizer) Alpha() int {
	return t.alpha
}

// Reset rewinds the tokenizer to the start of its input, keeping the buffer.
func (t *Tokenizer) Reset() {
	t.pos = 0
	t.alpha = 0
	t.buf = t.buf[:0]
}

// Words yields every word of text as an owned string.
func Words(text []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		tok := NewTokenizer(text)
		for {
			word, ok := tok.Next()
			if !ok || !yield(string(word)) {
				return
			}
		}
	}
}

func isAlpha(b byte) bool {
	lower := b | 0x20
	return lower >= 'a' && lower <= 'z'
}

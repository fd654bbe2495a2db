package token

// Tokenizer is a cursor over a delimited record. It yields tokens in
// order and does not go back except by [Tokenizer.Reset].
//
// A Tokenizer is not safe for concurrent use; it belongs to whoever is
// currently reading the record.
type Tokenizer struct {
	src   string
	delim byte

	pos   int // start of the next token in src
	index int // number of tokens returned so far
	done  bool
}

// NewTokenizer creates a Tokenizer over src splitting on delim. An empty
// src has no tokens, otherwise n unescaped delimiters produce n+1 tokens.
func NewTokenizer(src string, delim byte) *Tokenizer {
	return &Tokenizer{
		src:   src,
		delim: delim,
		done:  src == "",
	}
}

// HasMoreTokens reports whether NextToken would return a token.
func (t *Tokenizer) HasMoreTokens() bool {
	return !t.done
}

// Offset returns the byte offset in the source where the next token starts.
func (t *Tokenizer) Offset() int {
	return t.pos
}

// Index returns the number of tokens consumed so far.
func (t *Tokenizer) Index() int {
	return t.index
}

// Reset moves the cursor back to the start of the source.
func (t *Tokenizer) Reset() {
	t.pos = 0
	t.index = 0
	t.done = t.src == ""
}

// NextRawToken returns the next token with escapes left in place.
func (t *Tokenizer) NextRawToken() (string, error) {
	if t.done {
		return "", NewTokenizeErr(ErrExhausted, t.pos, t.index)
	}
	start := t.pos
	n := len(t.src)
	for i := start; i < n; i++ {
		switch t.src[i] {
		case EscapeChar:
			i++
		case t.delim:
			t.pos = i + 1
			t.index++
			return t.src[start:i], nil
		}
	}
	t.pos = n
	t.index++
	t.done = true
	return t.src[start:], nil
}

// NextToken returns the next token with escapes decoded.
func (t *Tokenizer) NextToken() (string, error) {
	off, idx := t.pos, t.index
	raw, err := t.NextRawToken()
	if err != nil {
		return "", err
	}
	v, err := Unescape(raw)
	if err != nil {
		return "", NewTokenizeErr(err, off, idx)
	}
	return v, nil
}

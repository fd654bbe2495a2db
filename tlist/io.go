package tlist

import (
	"io"
	"math"
	"strings"

	"github.com/signadot/tokline/debug"
	"github.com/signadot/tokline/token"
)

// ReadAll as a token count reads every remaining token.
const ReadAll = math.MaxInt

// Write writes the tokens to w, separated by token.Delim. Nulls are
// written as token.Null and every other token as its escaped encoding.
// Errors from the marshaller or from w are returned as is.
func (l *List) Write(state *MsgState, w io.Writer) error {
	return l.writeSink(state, token.NewSink(w, token.Delim, nil), l.m)
}

// WriteSink is like Write but writes to an existing sink, so that
// callers can track token offsets or put many records on one stream.
func (l *List) WriteSink(state *MsgState, s *token.Sink) error {
	return l.writeSink(state, s, l.m)
}

func (l *List) writeSink(state *MsgState, s *token.Sink, m Encoder) error {
	for i, tok := range l.tokens {
		if IsNull(tok) {
			if err := s.WriteNull(); err != nil {
				return err
			}
			continue
		}
		d, err := m.Encode(state, tok)
		if err != nil {
			return &TokenErr{Err: err, Index: i}
		}
		if debug.Write() {
			debug.Logf("write token %d %s %q\n", i, tok.Kind(), d)
		}
		if err := s.WriteValue(d); err != nil {
			return err
		}
	}
	return nil
}

// Marshal returns the wire form of the list.
func (l *List) Marshal(state *MsgState) (string, error) {
	return l.marshalWith(state, l.m)
}

func (l *List) marshalWith(state *MsgState, m Encoder) (string, error) {
	b := &strings.Builder{}
	if err := l.writeSink(state, token.NewSink(b, token.Delim, nil), m); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Read appends up to limit tokens read from tk. A raw token consisting of
// token.Null alone becomes a null, anything else is unescaped and
// decoded. Read may be called repeatedly on the same tokenizer to read a
// record in parts.
func (l *List) Read(state *MsgState, tk *token.Tokenizer, limit int) error {
	for n := 0; n < limit && tk.HasMoreTokens(); n++ {
		off, idx := tk.Offset(), tk.Index()
		raw, err := tk.NextRawToken()
		if err != nil {
			return err
		}
		if raw == token.NullToken {
			l.AddNull()
			continue
		}
		d, err := token.Unescape(raw)
		if err != nil {
			return token.NewTokenizeErr(err, off, idx)
		}
		tok, err := l.m.Decode(state, d)
		if err != nil {
			return &TokenErr{Err: err, Index: idx}
		}
		if debug.Read() {
			debug.Logf("read token %d %s %q\n", idx, tok.Kind(), d)
		}
		l.tokens = append(l.tokens, tok)
	}
	return nil
}

// Parse creates a List from data, reading at most limit tokens. When
// tokens remain the list keeps the cursor for FinishParsing, which
// lets a caller look at a header before decoding the body.
func Parse(state *MsgState, data string, limit int, opts ...ListOption) (*List, error) {
	l := NewList(opts...)
	tk := token.NewTokenizer(data, token.Delim)
	if err := l.Read(state, tk, limit); err != nil {
		return nil, err
	}
	if tk.HasMoreTokens() {
		l.tokenizer = tk
	}
	return l, nil
}

// Pending reports whether tokens are left for FinishParsing.
func (l *List) Pending() bool {
	return l.tokenizer != nil
}

// FinishParsing reads all tokens left unread by Parse. It does nothing
// if there are none.
func (l *List) FinishParsing(state *MsgState) error {
	if l.tokenizer == nil {
		return nil
	}
	tk := l.tokenizer
	l.tokenizer = nil
	return l.Read(state, tk, ReadAll)
}

// Demarshal appends every token of data.
func (l *List) Demarshal(state *MsgState, data string) error {
	return l.Read(state, token.NewTokenizer(data, token.Delim), ReadAll)
}

package token

import "io"

// TokenOffsetCallback is called when a token starts in the output
// stream, with the index of the token in the record and the absolute
// byte offset where it begins.
type TokenOffsetCallback func(index, offset int)

// Sink writes the tokens of a record to an io.Writer. It places
// delimiters between tokens and tracks absolute byte offsets. The
// writer belongs to the caller; Sink neither buffers nor closes it.
type Sink struct {
	writer io.Writer
	delim  byte

	offset int // current absolute byte offset in the output stream
	index  int // number of tokens started in the current record

	onTokenStart TokenOffsetCallback
}

// NewSink creates a Sink writing to w. If onTokenStart is not nil it is
// called before each token is written.
func NewSink(w io.Writer, delim byte, onTokenStart TokenOffsetCallback) *Sink {
	return &Sink{
		writer:       w,
		delim:        delim,
		onTokenStart: onTokenStart,
	}
}

// Offset returns the number of bytes written so far.
func (s *Sink) Offset() int {
	return s.offset
}

// Index returns the number of tokens written in the current record.
func (s *Sink) Index() int {
	return s.index
}

// WriteNull writes a null entry.
func (s *Sink) WriteNull() error {
	return s.WriteRaw(NullToken)
}

// WriteValue escapes v and writes it as the next token.
func (s *Sink) WriteValue(v string) error {
	return s.WriteRaw(Escape(v))
}

// WriteRaw writes raw as the next token without escaping it. Callers
// must make sure raw contains no unescaped reserved character.
func (s *Sink) WriteRaw(raw string) error {
	if s.index > 0 {
		if err := s.write([]byte{s.delim}); err != nil {
			return err
		}
	}
	if s.onTokenStart != nil {
		s.onTokenStart(s.index, s.offset)
	}
	s.index++
	return s.write([]byte(raw))
}

// EndRecord terminates the current record with an actual return and
// starts a new one.
func (s *Sink) EndRecord() error {
	s.index = 0
	return s.write([]byte{ActualReturn})
}

func (s *Sink) write(d []byte) error {
	n, err := s.writer.Write(d)
	s.offset += n
	if err != nil {
		return err
	}
	if n != len(d) {
		return io.ErrShortWrite
	}
	return nil
}


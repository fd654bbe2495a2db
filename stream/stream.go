// Package stream reads and writes sequences of tokenized lists, one
// record per line.
//
// Actual returns inside tokens are always escaped, so a record never
// spans more than one line.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tokline/tlist"
	"github.com/signadot/tokline/token"
)

// MaxRecordSize is the default limit on the length of a record.
const MaxRecordSize = 16 << 20

var ErrRecordTooLarge = errors.New("record too large")

// Encoder writes lists to an io.Writer.
type Encoder struct {
	sink     *token.Sink
	state    *tlist.MsgState
	onOffset token.TokenOffsetCallback
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// EncodeState sets the state passed to marshalers while encoding.
func EncodeState(s *tlist.MsgState) EncoderOption {
	return func(e *Encoder) {
		e.state = s
	}
}

// EncodeOffsets calls cb at the start of every token written.
func EncodeOffsets(cb token.TokenOffsetCallback) EncoderOption {
	return func(e *Encoder) {
		e.onOffset = cb
	}
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	e.sink = token.NewSink(w, token.Delim, e.onOffset)
	return e
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int {
	return e.sink.Offset()
}

// Encode writes l followed by an actual return.
func (e *Encoder) Encode(l *tlist.List) error {
	if err := l.WriteSink(e.state, e.sink); err != nil {
		return err
	}
	return e.sink.EndRecord()
}

// Decoder reads lists from an io.Reader.
type Decoder struct {
	r       *bufio.Reader
	state   *tlist.MsgState
	opts    []tlist.ListOption
	header  int
	maxSize int
	line    int
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// DecodeState sets the state passed to marshalers while decoding.
func DecodeState(s *tlist.MsgState) DecoderOption {
	return func(d *Decoder) {
		d.state = s
	}
}

// DecodeHeader makes Decode read only the first n tokens of each
// record. The rest is read by FinishParsing on the returned list.
func DecodeHeader(n int) DecoderOption {
	return func(d *Decoder) {
		d.header = n
	}
}

// DecodeList passes opts to every list the decoder creates.
func DecodeList(opts ...tlist.ListOption) DecoderOption {
	return func(d *Decoder) {
		d.opts = append(d.opts, opts...)
	}
}

// DecodeMaxRecordSize sets the maximum record length in bytes.
func DecodeMaxRecordSize(n int) DecoderOption {
	return func(d *Decoder) {
		d.maxSize = n
	}
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:       bufio.NewReader(r),
		header:  tlist.ReadAll,
		maxSize: MaxRecordSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Line returns the number of records read so far.
func (d *Decoder) Line() int {
	return d.line
}

// Decode reads the next record. It returns io.EOF when there are no
// more records. A final record with no trailing return is accepted. A
// record longer than the maximum size is skipped and reported as
// ErrRecordTooLarge; the following Decode reads the next record.
func (d *Decoder) Decode() (*tlist.List, error) {
	rec, err := d.readRecord()
	if errors.Is(err, ErrRecordTooLarge) {
		d.line++
		return nil, fmt.Errorf("line %d: %w", d.line, err)
	}
	if err != nil {
		return nil, err
	}
	d.line++
	l, err := tlist.Parse(d.state, rec, d.header, d.opts...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", d.line, err)
	}
	return l, nil
}

// readRecord returns the next record without its trailing return. The
// size limit applies to the record alone. Once it is exceeded the rest
// of the record is discarded.
func (d *Decoder) readRecord() (string, error) {
	b := &strings.Builder{}
	n := 0
	for {
		frag, err := d.r.ReadSlice(token.ActualReturn)
		full := errors.Is(err, bufio.ErrBufferFull)
		if err != nil && !full && !errors.Is(err, io.EOF) {
			return "", err
		}
		if err == nil {
			frag = frag[:len(frag)-1]
		}
		n += len(frag)
		if n <= d.maxSize {
			b.Write(frag)
		}
		if full {
			continue
		}
		switch {
		case n > d.maxSize:
			return "", ErrRecordTooLarge
		case err != nil && n == 0:
			return "", io.EOF
		}
		return b.String(), nil
	}
}

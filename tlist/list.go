package tlist

import (
	"github.com/signadot/tokline/token"
)

// List is an ordered queue of tokens which marshals to a single line.
//
// The format is positional: a reader removes tokens in exactly the order
// and with exactly the kinds the writer added them. A List is not safe
// for concurrent use and is meant to be used once, either filled and
// marshaled or parsed and drained.
type List struct {
	tokens  []Token
	removed int // tokens removed so far

	// tokenizer is the cursor left by Parse for FinishParsing
	tokenizer *token.Tokenizer

	m Marshaller
}

type ListOption func(*List)

// WithMarshaller makes the list encode and decode tokens with m instead
// of DefaultMarshaller.
func WithMarshaller(m Marshaller) ListOption {
	return func(l *List) { l.m = m }
}

// NewList creates an empty List.
func NewList(opts ...ListOption) *List {
	l := &List{m: DefaultMarshaller}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (*List) Kind() Kind { return ListKind }
func (*List) isToken()   {}

// Len returns the number of tokens not yet removed.
func (l *List) Len() int {
	return len(l.tokens)
}

// HasMoreTokens reports whether any token remains.
func (l *List) HasMoreTokens() bool {
	return len(l.tokens) > 0
}

// Tokens returns a copy of the remaining tokens.
func (l *List) Tokens() []Token {
	res := make([]Token, len(l.tokens))
	copy(res, l.tokens)
	return res
}

// Equal reports whether l and o hold equal remaining tokens in the same
// order.
func (l *List) Equal(o *List) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.tokens) != len(o.tokens) {
		return false
	}
	for i := range l.tokens {
		if !Equal(l.tokens[i], o.tokens[i]) {
			return false
		}
	}
	return true
}

// String renders the remaining tokens for people to read. Use Marshal
// for the wire form.
func (l *List) String() string {
	return Describe(l)
}

func (l *List) AddNull() {
	l.tokens = append(l.tokens, Null{})
}

// AddToken appends tok. A null tok, such as nil or a nil *List,
// appends Null.
func (l *List) AddToken(tok Token) {
	if IsNull(tok) {
		l.AddNull()
		return
	}
	l.tokens = append(l.tokens, tok)
}

// AddMarshaler appends m as an Object. A nil m appends a null.
func (l *List) AddMarshaler(m Marshaler) {
	if m == nil {
		l.AddNull()
		return
	}
	l.tokens = append(l.tokens, Object{Value: m})
}

func (l *List) AddString(v string) {
	l.AddToken(String(v))
}

func (l *List) AddStringPtr(v *string) {
	if v == nil {
		l.AddNull()
		return
	}
	l.AddString(*v)
}

func (l *List) AddInt32(v int32) {
	l.AddToken(Int32(v))
}

func (l *List) AddInt32Ptr(v *int32) {
	if v == nil {
		l.AddNull()
		return
	}
	l.AddInt32(*v)
}

func (l *List) AddInt64(v int64) {
	l.AddToken(Int64(v))
}

func (l *List) AddInt64Ptr(v *int64) {
	if v == nil {
		l.AddNull()
		return
	}
	l.AddInt64(*v)
}

func (l *List) AddFloat64(v float64) {
	l.AddToken(Float64(v))
}

func (l *List) AddBool(v bool) {
	l.AddToken(Bool(v))
}

// AddNameValue appends a NameValue. A nil value is stored as a null
// value, the entry itself is not null.
func (l *List) AddNameValue(name string, value Token) {
	l.AddToken(NewNameValue(name, value))
}

func (l *List) AddNameValueString(name, v string) {
	l.AddNameValue(name, String(v))
}

func (l *List) AddNameValueInt32(name string, v int32) {
	l.AddNameValue(name, Int32(v))
}

func (l *List) AddNameValueInt64(name string, v int64) {
	l.AddNameValue(name, Int64(v))
}

func (l *List) AddNameValueFloat64(name string, v float64) {
	l.AddNameValue(name, Float64(v))
}

func (l *List) AddNameValueBool(name string, v bool) {
	l.AddNameValue(name, Bool(v))
}

func (l *List) AddNameValueMarshaler(name string, m Marshaler) {
	if m == nil {
		l.AddNameValue(name, nil)
		return
	}
	l.AddNameValue(name, Object{Value: m})
}

// PeekToken returns the next token without removing it.
func (l *List) PeekToken() (Token, error) {
	if len(l.tokens) == 0 {
		return nil, &TokenErr{Err: ErrEmptyList, Index: l.removed}
	}
	return l.tokens[0], nil
}

// next removes and returns the next token, which must be of kind want or
// null. A null yields a nil Token. On error nothing is removed.
func (l *List) next(want Kind) (Token, error) {
	idx := l.removed
	if len(l.tokens) == 0 {
		return nil, &TokenErr{Err: ErrEmptyList, Index: idx}
	}
	tok := l.tokens[0]
	k := tok.Kind()
	if k != NullKind && want != anyKind && k != want {
		return nil, &TypeMismatchErr{Got: k, Want: want, Index: idx}
	}
	l.tokens[0] = nil
	l.tokens = l.tokens[1:]
	l.removed++
	if k == NullKind {
		return nil, nil
	}
	return tok, nil
}

// nextValue is like next but a null is an error.
func (l *List) nextValue(want Kind) (Token, error) {
	if len(l.tokens) > 0 && l.tokens[0].Kind() == NullKind {
		return nil, &TokenErr{Err: missingKindErr(want), Index: l.removed}
	}
	return l.next(want)
}

// RemoveToken removes the next token whatever its kind. A null yields
// nil.
func (l *List) RemoveToken() (Token, error) {
	tok, err := l.next(anyKind)
	return tok, err
}

// RemoveString removes the next token as a String. A null yields nil.
func (l *List) RemoveString() (*string, error) {
	tok, err := l.next(StringKind)
	if err != nil || tok == nil {
		return nil, err
	}
	s := string(tok.(String))
	return &s, nil
}

func (l *List) RemoveInt32() (int32, error) {
	tok, err := l.nextValue(Int32Kind)
	if err != nil {
		return 0, err
	}
	return int32(tok.(Int32)), nil
}

// RemoveInt32Ptr removes the next token as an Int32. A null yields nil.
func (l *List) RemoveInt32Ptr() (*int32, error) {
	tok, err := l.next(Int32Kind)
	if err != nil || tok == nil {
		return nil, err
	}
	v := int32(tok.(Int32))
	return &v, nil
}

func (l *List) RemoveInt64() (int64, error) {
	tok, err := l.nextValue(Int64Kind)
	if err != nil {
		return 0, err
	}
	return int64(tok.(Int64)), nil
}

// RemoveInt64Ptr removes the next token as an Int64. A null yields nil.
func (l *List) RemoveInt64Ptr() (*int64, error) {
	tok, err := l.next(Int64Kind)
	if err != nil || tok == nil {
		return nil, err
	}
	v := int64(tok.(Int64))
	return &v, nil
}

func (l *List) RemoveFloat64() (float64, error) {
	tok, err := l.nextValue(Float64Kind)
	if err != nil {
		return 0, err
	}
	return float64(tok.(Float64)), nil
}

func (l *List) RemoveBool() (bool, error) {
	tok, err := l.nextValue(BoolKind)
	if err != nil {
		return false, err
	}
	return bool(tok.(Bool)), nil
}

// RemoveNameValue removes the next token as a NameValue. A null yields
// nil.
func (l *List) RemoveNameValue() (*NameValue, error) {
	tok, err := l.next(NameValueKind)
	if err != nil || tok == nil {
		return nil, err
	}
	return tok.(*NameValue), nil
}

// RemoveList removes the next token as a nested List. A null yields nil.
func (l *List) RemoveList() (*List, error) {
	tok, err := l.next(ListKind)
	if err != nil || tok == nil {
		return nil, err
	}
	return tok.(*List), nil
}

// RemoveObject removes the next token as an Object and returns its
// Marshaler. A null yields nil.
func (l *List) RemoveObject() (Marshaler, error) {
	tok, err := l.next(ObjectKind)
	if err != nil || tok == nil {
		return nil, err
	}
	return tok.(Object).Value, nil
}

// RemoveAs removes the next token as an Object holding a T. A null
// yields the zero T.
func RemoveAs[T Marshaler](l *List) (T, error) {
	var zero T
	tok, err := l.PeekToken()
	if err != nil {
		return zero, err
	}
	if o, ok := tok.(Object); ok {
		if _, ok := o.Value.(T); !ok {
			return zero, &TokenErr{Err: marshalerTypeErr(o.Value, zero), Index: l.removed}
		}
	}
	m, err := l.RemoveObject()
	if err != nil || m == nil {
		return zero, err
	}
	return m.(T), nil
}

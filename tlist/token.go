package tlist

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Token is one typed value of a List. The set of variants is closed:
// Null, String, Int32, Int64, Float64, Bool, *NameValue, *List and
// Object.
type Token interface {
	Kind() Kind
	isToken()
}

type (
	Null    struct{}
	String  string
	Int32   int32
	Int64   int64
	Float64 float64
	Bool    bool
)

// Object holds a user defined Marshaler as a Token.
type Object struct {
	Value Marshaler
}

func (Null) Kind() Kind    { return NullKind }
func (String) Kind() Kind  { return StringKind }
func (Int32) Kind() Kind   { return Int32Kind }
func (Int64) Kind() Kind   { return Int64Kind }
func (Float64) Kind() Kind { return Float64Kind }
func (Bool) Kind() Kind    { return BoolKind }
func (Object) Kind() Kind  { return ObjectKind }

func (Null) isToken()    {}
func (String) isToken()  {}
func (Int32) isToken()   {}
func (Int64) isToken()   {}
func (Float64) isToken() {}
func (Bool) isToken()    {}
func (Object) isToken()  {}

// IsNull reports whether tok is nil or Null. A nil *NameValue, a nil
// *List and an Object without a value are null as well.
func IsNull(tok Token) bool {
	switch x := tok.(type) {
	case nil:
		return true
	case *NameValue:
		return x == nil
	case *List:
		return x == nil
	case Object:
		return x.Value == nil
	}
	return tok.Kind() == NullKind
}

// Equal reports whether a and b are the same kind with equal values.
// Float64 NaNs compare equal to each other.
func Equal(a, b Token) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Float64:
		y := b.(Float64)
		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}
		return x == y
	case *NameValue:
		return x.Equal(b.(*NameValue))
	case *List:
		return x.Equal(b.(*List))
	case Object:
		y := b.(Object)
		if x.Value == nil || y.Value == nil {
			return x.Value == nil && y.Value == nil
		}
		return x.Value.DataTag() == y.Value.DataTag() && reflect.DeepEqual(x.Value, y.Value)
	default:
		return a == b
	}
}

// Describe renders tok for people to read. It is not the wire form and
// need not be unique. Objects are rendered with MarshalToken(nil).
func Describe(tok Token) string {
	b := &strings.Builder{}
	describe(b, tok)
	return b.String()
}

func describe(b *strings.Builder, tok Token) {
	if IsNull(tok) {
		b.WriteString("null")
		return
	}
	switch x := tok.(type) {
	case String:
		b.WriteString(strconv.Quote(string(x)))
	case Int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case Int64:
		b.WriteString(strconv.FormatInt(int64(x), 10))
		b.WriteByte('L')
	case Float64:
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 64))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(x)))
	case *NameValue:
		b.WriteString(x.Name)
		b.WriteByte('=')
		describe(b, x.Value)
	case *List:
		b.WriteByte('[')
		for i, t := range x.tokens {
			if i > 0 {
				b.WriteString(", ")
			}
			describe(b, t)
		}
		b.WriteByte(']')
	case Object:
		if x.Value == nil {
			b.WriteString("null")
			return
		}
		b.WriteByte(x.Value.DataTag())
		b.WriteByte('(')
		if d, err := x.Value.MarshalToken(nil); err == nil {
			b.WriteString(strconv.Quote(d))
		} else {
			b.WriteString("<" + err.Error() + ">")
		}
		b.WriteByte(')')
	}
}

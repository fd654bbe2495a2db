package tlist

import (
	"strconv"

	"github.com/signadot/tokline/token"
)

// Type tags of the builtin token kinds. An encoded token is its type tag
// followed by its payload.
const (
	StringTag    = 's'
	Int32Tag     = 'i'
	Int64Tag     = 'l'
	Float64Tag   = 'd'
	BoolTag      = 'b'
	NameValueTag = 'v'
	ListTag      = 't'
)

const (
	boolTrue  = 'T'
	boolFalse = 'F'
)

func isBuiltinTag(tag byte) bool {
	switch tag {
	case StringTag, Int32Tag, Int64Tag, Float64Tag, BoolTag, NameValueTag, ListTag:
		return true
	}
	return false
}

// Encoder turns a non-null token into its unescaped string form.
type Encoder interface {
	Encode(state *MsgState, tok Token) (string, error)
}

// Decoder is the inverse of Encoder.
type Decoder interface {
	Decode(state *MsgState, data string) (Token, error)
}

type Marshaller interface {
	Encoder
	Decoder
}

// DefaultMarshaller handles the builtin kinds and registered Marshalers.
var DefaultMarshaller Marshaller = tagMarshaller{}

type tagMarshaller struct{}

func (m tagMarshaller) Encode(state *MsgState, tok Token) (string, error) {
	if IsNull(tok) {
		return "", encodeErr("null token")
	}
	switch x := tok.(type) {
	case String:
		return string(StringTag) + string(x), nil
	case Int32:
		return string(Int32Tag) + strconv.FormatInt(int64(x), 10), nil
	case Int64:
		return string(Int64Tag) + strconv.FormatInt(int64(x), 10), nil
	case Float64:
		return string(Float64Tag) + strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case Bool:
		if x {
			return string([]byte{BoolTag, boolTrue}), nil
		}
		return string([]byte{BoolTag, boolFalse}), nil
	case *NameValue:
		d, err := m.encodeNameValue(state, x)
		if err != nil {
			return "", err
		}
		return string(NameValueTag) + d, nil
	case *List:
		d, err := x.marshalWith(state, m)
		if err != nil {
			return "", err
		}
		return string(ListTag) + d, nil
	case Object:
		return m.encodeObject(state, x)
	default:
		return "", encodeErr("unsupported token kind %s", tok.Kind())
	}
}

func (m tagMarshaller) encodeNameValue(state *MsgState, nv *NameValue) (string, error) {
	if IsNull(nv.Value) {
		return token.Escape(nv.Name) + string(token.NameValueSep) + token.NullToken, nil
	}
	d, err := m.Encode(state, nv.Value)
	if err != nil {
		return "", err
	}
	return token.Escape(nv.Name) + string(token.NameValueSep) + token.Escape(d), nil
}

func (m tagMarshaller) encodeObject(state *MsgState, o Object) (string, error) {
	if o.Value == nil {
		return "", encodeErr("nil object")
	}
	tag := o.Value.DataTag()
	if Lookup(tag) == nil {
		return "", encodeErr("tag %q (%T) is not registered", tag, o.Value)
	}
	d, err := o.Value.MarshalToken(state)
	if err != nil {
		return "", encodeErr("%T: %v", o.Value, err)
	}
	return string(tag) + d, nil
}

func (m tagMarshaller) Decode(state *MsgState, data string) (Token, error) {
	if data == "" {
		return nil, decodeErr("empty token")
	}
	tag, payload := data[0], data[1:]
	switch tag {
	case StringTag:
		return String(payload), nil
	case Int32Tag:
		v, err := strconv.ParseInt(payload, 10, 32)
		if err != nil {
			return nil, decodeErr("int32 %q: %v", payload, err)
		}
		return Int32(v), nil
	case Int64Tag:
		v, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, decodeErr("int64 %q: %v", payload, err)
		}
		return Int64(v), nil
	case Float64Tag:
		v, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil, decodeErr("float64 %q: %v", payload, err)
		}
		return Float64(v), nil
	case BoolTag:
		switch payload {
		case string(boolTrue):
			return Bool(true), nil
		case string(boolFalse):
			return Bool(false), nil
		}
		return nil, decodeErr("bool %q", payload)
	case NameValueTag:
		return m.decodeNameValue(state, payload)
	case ListTag:
		l := NewList(WithMarshaller(m))
		if err := l.Demarshal(state, payload); err != nil {
			return nil, err
		}
		return l, nil
	default:
		return m.decodeObject(state, tag, payload)
	}
}

func (m tagMarshaller) decodeNameValue(state *MsgState, payload string) (*NameValue, error) {
	rawName, rawValue, found := token.SplitUnescaped(payload, token.NameValueSep)
	if !found {
		return nil, decodeErr("name/value %q: no separator", payload)
	}
	name, err := token.Unescape(rawName)
	if err != nil {
		return nil, decodeErr("name/value name %q: %v", rawName, err)
	}
	if rawValue == token.NullToken {
		return NewNameValue(name, nil), nil
	}
	d, err := token.Unescape(rawValue)
	if err != nil {
		return nil, decodeErr("name/value %q value: %v", name, err)
	}
	v, err := m.Decode(state, d)
	if err != nil {
		return nil, err
	}
	return NewNameValue(name, v), nil
}

func (m tagMarshaller) decodeObject(state *MsgState, tag byte, payload string) (Token, error) {
	f := Lookup(tag)
	if f == nil {
		return nil, decodeErr("unknown tag %q", tag)
	}
	v := f()
	if err := v.UnmarshalToken(state, payload); err != nil {
		return nil, decodeErr("%T: %v", v, err)
	}
	return Object{Value: v}, nil
}

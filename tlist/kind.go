package tlist

import "fmt"

// Kind identifies the variant of a Token.
type Kind int

const (
	NullKind Kind = iota
	StringKind
	Int32Kind
	Int64Kind
	Float64Kind
	BoolKind
	NameValueKind
	ListKind
	ObjectKind
)

// anyKind is accepted by removal in place of a concrete kind.
const anyKind Kind = -1

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:      "Null",
		StringKind:    "String",
		Int32Kind:     "Int32",
		Int64Kind:     "Int64",
		Float64Kind:   "Float64",
		BoolKind:      "Bool",
		NameValueKind: "NameValue",
		ListKind:      "List",
		ObjectKind:    "Object",
		anyKind:       "Any",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":      NullKind,
		"String":    StringKind,
		"Int32":     Int32Kind,
		"Int64":     Int64Kind,
		"Float64":   Float64Kind,
		"Bool":      BoolKind,
		"NameValue": NameValueKind,
		"List":      ListKind,
		"Object":    ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		StringKind,
		Int32Kind,
		Int64Kind,
		Float64Kind,
		BoolKind,
		NameValueKind,
		ListKind,
		ObjectKind,
	}
}

// IsScalar reports whether values of kind k carry no nested tokens.
func (k Kind) IsScalar() bool {
	switch k {
	case NameValueKind, ListKind, ObjectKind:
		return false
	default:
		return true
	}
}

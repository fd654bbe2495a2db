package tlist

// NameValue pairs a name with a typed value. It is itself a Token, so a
// List may carry keyed entries among its positional ones.
type NameValue struct {
	Name  string
	Value Token
}

// NewNameValue creates a NameValue. A null value, see IsNull, is
// stored as Null.
func NewNameValue(name string, value Token) *NameValue {
	if IsNull(value) {
		value = Null{}
	}
	return &NameValue{Name: name, Value: value}
}

func (*NameValue) Kind() Kind { return NameValueKind }
func (*NameValue) isToken()   {}

// ValueKind returns the kind of the value.
func (nv *NameValue) ValueKind() Kind {
	if IsNull(nv.Value) {
		return NullKind
	}
	return nv.Value.Kind()
}

func (nv *NameValue) IsNull() bool {
	return IsNull(nv.Value)
}

func (nv *NameValue) Equal(o *NameValue) bool {
	if nv == nil || o == nil {
		return nv == o
	}
	return nv.Name == o.Name && Equal(nv.Value, o.Value)
}

func (nv *NameValue) String() string {
	return Describe(nv)
}

func (nv *NameValue) value(want Kind) (Token, error) {
	if IsNull(nv.Value) {
		return nil, nil
	}
	if k := nv.Value.Kind(); k != want {
		return nil, &TypeMismatchErr{Got: k, Want: want, Index: -1}
	}
	return nv.Value, nil
}

// StringValue returns the string value, or nil when the value is null.
func (nv *NameValue) StringValue() (*string, error) {
	tok, err := nv.value(StringKind)
	if err != nil || tok == nil {
		return nil, err
	}
	s := string(tok.(String))
	return &s, nil
}

// Int32Ptr returns the Int32 value, or nil when the value is null.
func (nv *NameValue) Int32Ptr() (*int32, error) {
	tok, err := nv.value(Int32Kind)
	if err != nil || tok == nil {
		return nil, err
	}
	v := int32(tok.(Int32))
	return &v, nil
}

func (nv *NameValue) Int32Value() (int32, error) {
	p, err := nv.Int32Ptr()
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, missingErr(nv.Name, Int32Kind)
	}
	return *p, nil
}

// Int64Ptr returns the Int64 value, or nil when the value is null.
func (nv *NameValue) Int64Ptr() (*int64, error) {
	tok, err := nv.value(Int64Kind)
	if err != nil || tok == nil {
		return nil, err
	}
	v := int64(tok.(Int64))
	return &v, nil
}

func (nv *NameValue) Int64Value() (int64, error) {
	p, err := nv.Int64Ptr()
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, missingErr(nv.Name, Int64Kind)
	}
	return *p, nil
}

func (nv *NameValue) Float64Value() (float64, error) {
	tok, err := nv.value(Float64Kind)
	if err != nil {
		return 0, err
	}
	if tok == nil {
		return 0, missingErr(nv.Name, Float64Kind)
	}
	return float64(tok.(Float64)), nil
}

func (nv *NameValue) BoolValue() (bool, error) {
	tok, err := nv.value(BoolKind)
	if err != nil {
		return false, err
	}
	if tok == nil {
		return false, missingErr(nv.Name, BoolKind)
	}
	return bool(tok.(Bool)), nil
}

// ListValue returns the nested list, or nil when the value is null.
func (nv *NameValue) ListValue() (*List, error) {
	tok, err := nv.value(ListKind)
	if err != nil || tok == nil {
		return nil, err
	}
	return tok.(*List), nil
}

// ObjectValue returns the Marshaler value, or nil when the value is null.
func (nv *NameValue) ObjectValue() (Marshaler, error) {
	tok, err := nv.value(ObjectKind)
	if err != nil || tok == nil {
		return nil, err
	}
	return tok.(Object).Value, nil
}

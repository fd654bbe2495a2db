package tlist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNameValue_Scenario(t *testing.T) {
	l := NewList()
	l.AddNameValueInt32("count", 5)
	r, err := Parse(nil, mustMarshal(l, nil), ReadAll)
	if err != nil {
		t.Fatal(err)
	}
	nv, err := r.RemoveNameValue()
	if err != nil {
		t.Fatal(err)
	}
	if nv.Name != "count" {
		t.Errorf("got name %q", nv.Name)
	}
	if nv.ValueKind() != Int32Kind {
		t.Errorf("got kind %s", nv.ValueKind())
	}
	v, err := nv.Int32Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("got %d", v)
	}
}

func TestNameValue_Wire(t *testing.T) {
	type wireTest struct {
		nv   *NameValue
		want string
	}
	tests := []wireTest{
		{nv: NewNameValue("count", Int32(5)), want: `vcount\=i5`},
		{nv: NewNameValue("none", nil), want: `vnone\=\~`},
		{nv: NewNameValue("k", String("~")), want: `vk\=s\\\~`},
		{nv: NewNameValue("a=b", String("c")), want: `va\\\=b\=sc`},
	}
	for _, tt := range tests {
		l := NewList()
		l.AddToken(tt.nv)
		got := mustMarshal(l, nil)
		if got != tt.want {
			t.Errorf("%s: got %q want %q", tt.nv, got, tt.want)
			continue
		}
		r, err := Parse(nil, got, ReadAll)
		if err != nil {
			t.Errorf("%s: %v", tt.nv, err)
			continue
		}
		back, err := r.RemoveNameValue()
		if err != nil {
			t.Errorf("%s: %v", tt.nv, err)
			continue
		}
		if diff := cmp.Diff(tt.nv, back); diff != "" {
			t.Errorf("(-want +got)\n%s", diff)
		}
	}
}

func TestNameValue_NullValue(t *testing.T) {
	nv := NewNameValue("x", nil)
	if !nv.IsNull() || nv.ValueKind() != NullKind {
		t.Fatalf("expected null value, got %s", nv)
	}
	if p, err := nv.Int32Ptr(); err != nil || p != nil {
		t.Errorf("Int32Ptr: got %v %v", p, err)
	}
	if p, err := nv.Int64Ptr(); err != nil || p != nil {
		t.Errorf("Int64Ptr: got %v %v", p, err)
	}
	if s, err := nv.StringValue(); err != nil || s != nil {
		t.Errorf("StringValue: got %v %v", s, err)
	}
	if l, err := nv.ListValue(); err != nil || l != nil {
		t.Errorf("ListValue: got %v %v", l, err)
	}
	if m, err := nv.ObjectValue(); err != nil || m != nil {
		t.Errorf("ObjectValue: got %v %v", m, err)
	}
	if _, err := nv.Int32Value(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Int32Value: expected ErrMissingValue, got %v", err)
	}
	if _, err := nv.Int64Value(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Int64Value: expected ErrMissingValue, got %v", err)
	}
	if _, err := nv.Float64Value(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Float64Value: expected ErrMissingValue, got %v", err)
	}
	if _, err := nv.BoolValue(); !errors.Is(err, ErrMissingValue) {
		t.Errorf("BoolValue: expected ErrMissingValue, got %v", err)
	}
}

func TestNameValue_TypedAccess(t *testing.T) {
	nv := NewNameValue("s", String("v"))
	if _, err := nv.Int32Value(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
	s, err := nv.StringValue()
	if err != nil || *s != "v" {
		t.Errorf("got %v %v", s, err)
	}
	if b, err := NewNameValue("b", Bool(true)).BoolValue(); err != nil || !b {
		t.Errorf("got %v %v", b, err)
	}
	if f, err := NewNameValue("f", Float64(1.5)).Float64Value(); err != nil || f != 1.5 {
		t.Errorf("got %v %v", f, err)
	}
	if n, err := NewNameValue("n", Int64(-3)).Int64Value(); err != nil || n != -3 {
		t.Errorf("got %v %v", n, err)
	}
	m, err := NewNameValue("p", Object{Value: &point{X: 9}}).ObjectValue()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Marshaler(&point{X: 9}), m); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestNameValue_Nested(t *testing.T) {
	inner := NewList()
	inner.AddNameValueString("k", "v:w")
	l := NewList()
	l.AddNameValue("sub", inner)
	l.AddNameValueMarshaler("pt", &point{X: 5, Y: 6})
	l.AddNameValueMarshaler("nopt", nil)
	r, err := Parse(nil, mustMarshal(l, nil), ReadAll)
	if err != nil {
		t.Fatal(err)
	}
	nv, err := r.RemoveNameValue()
	if err != nil {
		t.Fatal(err)
	}
	sub, err := nv.ListValue()
	if err != nil {
		t.Fatal(err)
	}
	if !sub.Equal(inner) {
		t.Errorf("got %s want %s", sub, inner)
	}
	nv, err = r.RemoveNameValue()
	if err != nil {
		t.Fatal(err)
	}
	if m, err := nv.ObjectValue(); err != nil || !Equal(Object{Value: m}, Object{Value: &point{X: 5, Y: 6}}) {
		t.Errorf("got %v %v", m, err)
	}
	nv, err = r.RemoveNameValue()
	if err != nil {
		t.Fatal(err)
	}
	if !nv.IsNull() {
		t.Errorf("expected null value, got %s", nv)
	}
}

func TestNameValue_NullEntry(t *testing.T) {
	l := NewList()
	l.AddNull()
	nv, err := l.RemoveNameValue()
	if err != nil || nv != nil {
		t.Errorf("got %v %v", nv, err)
	}
}

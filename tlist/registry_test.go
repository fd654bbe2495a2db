package tlist

import (
	"errors"
	"testing"
)

func TestRegister_Rejects(t *testing.T) {
	newPoint := func() Marshaler { return &point{} }
	type regTest struct {
		name string
		tag  byte
		f    func() Marshaler
	}
	tests := []regTest{
		{name: "duplicate", tag: 'p', f: newPoint},
		{name: "builtin", tag: StringTag, f: newPoint},
		{name: "list tag", tag: ListTag, f: newPoint},
		{name: "control", tag: 0x01, f: newPoint},
		{name: "space", tag: ' ', f: newPoint},
		{name: "nil", tag: 'q', f: nil},
	}
	for _, tt := range tests {
		if err := Register(tt.tag, tt.f); !errors.Is(err, ErrRegistry) {
			t.Errorf("%s: expected ErrRegistry, got %v", tt.name, err)
		}
	}
	if Lookup('q') != nil {
		t.Error("nil constructor was registered")
	}
}

func TestRegister_LookupTags(t *testing.T) {
	if Lookup('p') == nil {
		t.Fatal("expected p to be registered")
	}
	if Lookup('z') != nil {
		t.Fatal("expected z to be unregistered")
	}
	tags := Tags()
	seen := map[byte]bool{}
	for i, tag := range tags {
		seen[tag] = true
		if i > 0 && tags[i-1] >= tag {
			t.Errorf("tags not sorted: %q", tags)
		}
	}
	if !seen['p'] || !seen['V'] {
		t.Errorf("got %q", tags)
	}
}

func TestMustRegister_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustRegister('p', func() Marshaler { return &point{} })
}

func TestKind_Text(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Complex")); err == nil {
		t.Error("expected error")
	}
	if Kind(99).String() != "<unknown kind>" {
		t.Errorf("got %s", Kind(99))
	}
}

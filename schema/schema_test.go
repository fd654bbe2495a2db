package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tokline/tlist"
)

const joinYAML = `
name: join
fields:
- name: kind
  kind: string
- name: player
  kind: long
- name: table
  kind: String
  nullable: true
- name: opts
  kind: namevalue
`

func joinList(table *string) *tlist.List {
	l := tlist.NewList()
	l.AddString("join")
	l.AddInt64(1001)
	l.AddStringPtr(table)
	l.AddNameValueBool("observe", false)
	return l
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(joinYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := &Schema{
		Name: "join",
		Fields: []Field{
			{Name: "kind", KindName: "string", Kind: tlist.StringKind},
			{Name: "player", KindName: "long", Kind: tlist.Int64Kind},
			{Name: "table", KindName: "String", Kind: tlist.StringKind, Nullable: true},
			{Name: "opts", KindName: "namevalue", Kind: tlist.NameValueKind},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	bad := map[string]string{
		"no name":       "fields:\n- name: a\n  kind: string\n",
		"unknown kind":  "name: x\nfields:\n- name: a\n  kind: complex\n",
		"field no name": "name: x\nfields:\n- kind: string\n",
		"duplicate":     "name: x\nfields:\n- name: a\n  kind: string\n- name: a\n  kind: int\n",
		"not yaml":      "name: [\n",
	}
	for name, d := range bad {
		if _, err := Parse([]byte(d)); !errors.Is(err, ErrSchema) {
			t.Errorf("%s: expected ErrSchema, got %v", name, err)
		}
	}
}

func TestCheck(t *testing.T) {
	s, err := Parse([]byte(joinYAML))
	if err != nil {
		t.Fatal(err)
	}
	table := "t7"
	for _, l := range []*tlist.List{joinList(&table), joinList(nil)} {
		if err := s.Check(l); err != nil {
			t.Errorf("%s: %v", l, err)
		}
	}

	short := tlist.NewList()
	short.AddString("join")
	if err := s.Check(short); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}

	wrong := tlist.NewList()
	wrong.AddString("join")
	wrong.AddInt32(1001)
	wrong.AddNull()
	wrong.AddNull()
	err = s.Check(wrong)
	if !errors.Is(err, tlist.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	var fe *FieldErr
	if !errors.As(err, &fe) || fe.Field != "player" || fe.Index != 1 {
		t.Errorf("got %v", err)
	}

	missing := tlist.NewList()
	missing.AddString("join")
	missing.AddInt64(1)
	missing.AddNull()
	missing.AddNull()
	err = s.Check(missing)
	if !errors.Is(err, tlist.ErrMissingValue) {
		t.Fatalf("expected ErrMissingValue, got %v", err)
	}
	if !errors.As(err, &fe) || fe.Field != "opts" || fe.Index != 3 {
		t.Errorf("got %v", err)
	}
}

func TestLabel(t *testing.T) {
	s, err := Parse([]byte(joinYAML))
	if err != nil {
		t.Fatal(err)
	}
	l := joinList(nil)
	labels, err := s.Label(l)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, lb := range labels {
		names = append(names, lb.Field.Name+"="+tlist.Describe(lb.Token))
	}
	want := []string{`kind="join"`, "player=1001L", "table=null", "opts=observe=false"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if l.Len() != 4 {
		t.Errorf("Label consumed tokens: %d left", l.Len())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "join.yaml")
	if err := os.WriteFile(p, []byte(joinYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "join" || len(s.Fields) != 4 {
		t.Errorf("got %+v", s)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yml":    "name: leave\nfields:\n- name: kind\n  kind: string\n",
		"a.yaml":   joinYAML,
		"notes.md": "not a schema",
	}
	for name, d := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(d), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	ss, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range ss {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"join", "leave"}, names); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	if err := os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("fields: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); !errors.Is(err, ErrSchema) {
		t.Errorf("expected ErrSchema, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	s, err := Parse([]byte(joinYAML))
	if err != nil {
		t.Fatal(err)
	}
	if err := Register(s); err != nil {
		t.Fatal(err)
	}
	if err := Register(s); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if err := Register(nil); err == nil {
		t.Error("expected nil registration to fail")
	}
	if Lookup("join") != s {
		t.Error("lookup failed")
	}
	if _, ok := All()["join"]; !ok {
		t.Error("All is missing join")
	}
	if diff := cmp.Diff([]string{"join"}, Names()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

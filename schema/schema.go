// Package schema describes the positional layout of tokenized lists.
//
// A list carries no field names, so a reader has to know which kind of
// token comes at which position. A Schema writes that knowledge down and
// can check a parsed list against it or label its tokens.
//
//	name: join
//	fields:
//	- name: kind
//	  kind: string
//	- name: player
//	  kind: int64
//	- name: table
//	  kind: string
//	  nullable: true
package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tokline/debug"
	"github.com/signadot/tokline/tlist"
)

var (
	ErrSchema = errors.New("schema error")
	ErrLength = errors.New("token count mismatch")
)

type Field struct {
	Name     string `yaml:"name"`
	KindName string `yaml:"kind"`
	Nullable bool   `yaml:"nullable,omitempty"`

	Kind tlist.Kind `yaml:"-"`
}

type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// ParseKind accepts the tlist.Kind names as well as lower case and
// Java style aliases.
func ParseKind(v string) (tlist.Kind, error) {
	k, ok := map[string]tlist.Kind{
		"string":    tlist.StringKind,
		"int32":     tlist.Int32Kind,
		"int":       tlist.Int32Kind,
		"integer":   tlist.Int32Kind,
		"int64":     tlist.Int64Kind,
		"long":      tlist.Int64Kind,
		"float64":   tlist.Float64Kind,
		"double":    tlist.Float64Kind,
		"bool":      tlist.BoolKind,
		"boolean":   tlist.BoolKind,
		"namevalue": tlist.NameValueKind,
		"list":      tlist.ListKind,
		"object":    tlist.ObjectKind,
	}[strings.ToLower(v)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown kind %q", ErrSchema, v)
	}
	return k, nil
}

// Parse decodes a YAML schema.
func Parse(d []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(d, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	if debug.Schema() {
		debug.Logf("parsed schema %q with %d fields\n", s.Name, len(s.Fields))
	}
	return s, nil
}

// Load reads and parses the YAML schema at path.
func Load(path string) (*Schema, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	s, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return s, nil
}

// LoadDir loads every .yaml and .yml file in dir, in name order.
func LoadDir(dir string) ([]*Schema, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		switch filepath.Ext(ent.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, ent.Name()))
		}
	}
	sort.Strings(paths)
	res := make([]*Schema, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

func (s *Schema) resolve() error {
	if s.Name == "" {
		return fmt.Errorf("%w: schema must have a name", ErrSchema)
	}
	seen := make(map[string]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w: field %d of %q has no name", ErrSchema, i, s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q in %q", ErrSchema, f.Name, s.Name)
		}
		seen[f.Name] = true
		k, err := ParseKind(f.KindName)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		f.Kind = k
	}
	return nil
}

// FieldErr reports a token which does not fit its field.
type FieldErr struct {
	Field string
	Index int
	Err   error
}

func (e *FieldErr) Unwrap() error {
	return e.Err
}

func (e *FieldErr) Error() string {
	return fmt.Sprintf("field %q (token %d): %s", e.Field, e.Index, e.Err.Error())
}

// Labeled is a token together with the field it was found at.
type Labeled struct {
	Field Field
	Token tlist.Token
}

// Label pairs the remaining tokens of l with the fields of s, checking
// kinds and nullability on the way. l is not modified.
func (s *Schema) Label(l *tlist.List) ([]Labeled, error) {
	toks := l.Tokens()
	if len(toks) != len(s.Fields) {
		return nil, fmt.Errorf("%w: %q has %d fields, got %d tokens", ErrLength, s.Name, len(s.Fields), len(toks))
	}
	res := make([]Labeled, len(toks))
	for i, tok := range toks {
		f := s.Fields[i]
		if err := f.check(i, tok); err != nil {
			return nil, err
		}
		res[i] = Labeled{Field: f, Token: tok}
	}
	return res, nil
}

// Check reports whether the remaining tokens of l match s.
func (s *Schema) Check(l *tlist.List) error {
	_, err := s.Label(l)
	return err
}

func (f Field) check(i int, tok tlist.Token) error {
	if tlist.IsNull(tok) {
		if f.Nullable {
			return nil
		}
		return &FieldErr{Field: f.Name, Index: i, Err: tlist.ErrMissingValue}
	}
	if k := tok.Kind(); k != f.Kind {
		return &FieldErr{Field: f.Name, Index: i, Err: &tlist.TypeMismatchErr{Got: k, Want: f.Kind, Index: i}}
	}
	return nil
}

package main

import (
	"strings"

	"github.com/signadot/tokline/tlist"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	KindColor ColorAttr = iota
	ValueColor
	FieldColor
	SepColor
)

type Colorable struct {
	Kind tlist.Kind
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range tlist.Kinds() {
		able := Colorable{Kind: k, Attr: KindColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range []tlist.Kind{tlist.Int32Kind, tlist.Int64Kind, tlist.Float64Kind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = tlist.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = tlist.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = tlist.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = tlist.NameValueKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Kind = tlist.ListKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Kind = tlist.ObjectKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string {
	return v
}

func (c *Colors) Color(k tlist.Kind, a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

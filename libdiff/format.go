package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tokline/tlist"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors holds optional functions used to color printed changes. A nil
// function leaves its text as is.
type Colors struct {
	Delete func(string, ...any) string
	Insert func(string, ...any) string
}

func (c *Colors) del(s string) string {
	if c == nil || c.Delete == nil {
		return s
	}
	return c.Delete("%s", s)
}

func (c *Colors) ins(s string) string {
	if c == nil || c.Insert == nil {
		return s
	}
	return c.Insert("%s", s)
}

// String renders c on one line, for example
//
//	~1 "table 7" -> "table 9" ("table [-7-]{+9+}")
func (c Change) String() string {
	return c.format(nil)
}

func (c Change) format(colors *Colors) string {
	b := &strings.Builder{}
	b.WriteByte(c.Op.Sign())
	switch c.Op {
	case Delete:
		fmt.Fprintf(b, "%d %s", c.From, colors.del(tlist.Describe(c.Old)))
	case Insert:
		fmt.Fprintf(b, "%d %s", c.To, colors.ins(tlist.Describe(c.New)))
	case Replace:
		fmt.Fprintf(b, "%d %s -> %s", c.From, colors.del(tlist.Describe(c.Old)), colors.ins(tlist.Describe(c.New)))
		if c.Text != nil {
			fmt.Fprintf(b, " (%q)", TextString(c.Text, nil))
		}
	}
	return b.String()
}

// TextString renders a character diff with deletions as [-text-] and
// insertions as {+text+}.
func TextString(diffs []diffpatch.Diff, colors *Colors) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString(colors.del("[-" + d.Text + "-]"))
		case diffpatch.DiffInsert:
			b.WriteString(colors.ins("{+" + d.Text + "+}"))
		}
	}
	return b.String()
}

// Write prints one change per line to w.
func Write(w io.Writer, cs []Change, colors *Colors) error {
	for _, c := range cs {
		if _, err := io.WriteString(w, c.format(colors)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

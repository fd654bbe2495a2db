// Package libdiff computes, prints, reverses and applies differences
// between tokenized lists.
package libdiff

import (
	"github.com/signadot/tokline/tlist"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two lists. From is the position in
// the old list and To the position in the new one; for an Insert From
// is the position the new token goes before.
type Change struct {
	Op   Op
	From int
	To   int

	Old tlist.Token
	New tlist.Token

	// Text is a character diff, set on replacements of one string by a
	// similar one.
	Text []diffpatch.Diff
}

// Diff returns the changes turning the remaining tokens of a into those
// of b, or nil if they are equal.
//
// Each token is summarized as a rune and the two rune sequences are
// aligned with a text diff, so a token inserted in the middle shows up
// as one Insert rather than as a run of replacements. A delete directly
// followed by an insert at the same place becomes a Replace.
func Diff(a, b *tlist.List) []Change {
	from, to := a.Tokens(), b.Tokens()
	m := map[string]rune{}
	diffs := diffpatch.New().DiffMainRunes(summarize(m, from), summarize(m, to), false)

	var res []Change
	fi, ti := 0, 0
	lastDel := -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
			lastDel = -1
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, From: fi, Old: from[fi]})
				fi++
			}
			lastDel = len(res) - n
		case diffpatch.DiffInsert:
			for j := range n {
				k := lastDel + j
				if lastDel >= 0 && k < len(res) && res[k].Op == Delete {
					res[k] = replace(res[k].From, ti, res[k].Old, to[ti])
				} else {
					res = append(res, Change{Op: Insert, From: fi, To: ti, New: to[ti]})
				}
				ti++
			}
			lastDel = -1
		}
	}
	return fixDeletePositions(res)
}

func replace(fi, ti int, old, nu tlist.Token) Change {
	c := Change{Op: Replace, From: fi, To: ti, Old: old, New: nu}
	os, ok1 := old.(tlist.String)
	ns, ok2 := nu.(tlist.String)
	if ok1 && ok2 {
		c.Text = DiffString(string(os), string(ns))
	}
	return c
}

// fixDeletePositions sets the To position of each remaining Delete to
// where the next token of the new list would be, after replacements
// have taken up some of the deleted positions.
func fixDeletePositions(cs []Change) []Change {
	shift := 0
	for i := range cs {
		c := &cs[i]
		switch c.Op {
		case Delete:
			c.To = c.From + shift
			shift--
		case Insert:
			shift++
		}
	}
	return cs
}

func summarize(m map[string]rune, toks []tlist.Token) []rune {
	rs := make([]rune, len(toks))
	for i, tok := range toks {
		sum := summary(tok)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summary is the escaped wire form of tok. Tokens which cannot be
// encoded, such as unregistered objects, fall back to Describe.
func summary(tok tlist.Token) string {
	if tlist.IsNull(tok) {
		return tlist.NullKind.String()
	}
	if d, err := tlist.DefaultMarshaller.Encode(nil, tok); err == nil {
		return "=" + d
	}
	return tok.Kind().String() + "-" + tlist.Describe(tok)
}

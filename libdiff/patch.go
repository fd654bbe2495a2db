package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/tokline/tlist"
)

var ErrConflict = errors.New("patch conflict")

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Patch applies changes, as returned by Diff, to the remaining tokens
// of l and returns the result as a new list. l is not modified. Every
// deleted or replaced token must be equal to the Old token of its
// change.
func Patch(l *tlist.List, changes []Change) (*tlist.List, error) {
	toks := l.Tokens()
	res := tlist.NewList()
	ai := 0
	for i := range changes {
		c := &changes[i]
		if c.From < ai || c.From > len(toks) {
			return nil, conflictf("change %d at %d out of order or range", i, c.From)
		}
		for ; ai < c.From; ai++ {
			res.AddToken(toks[ai])
		}
		switch c.Op {
		case Insert:
			res.AddToken(c.New)
			continue
		case Delete, Replace:
		default:
			return nil, conflictf("change %d: unknown op %s", i, c.Op)
		}
		if ai == len(toks) {
			return nil, conflictf("%s at %d past end of list", c.Op, c.From)
		}
		if !tlist.Equal(toks[ai], c.Old) {
			return nil, conflictf("%s at %d expected %s, got %s", c.Op, c.From, tlist.Describe(c.Old), tlist.Describe(toks[ai]))
		}
		ai++
		if c.Op == Delete {
			continue
		}
		nu := c.New
		if c.Text != nil {
			s, err := PatchString(string(c.Old.(tlist.String)), c.Text)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", c.From, err)
			}
			nu = tlist.String(s)
		}
		res.AddToken(nu)
	}
	for ; ai < len(toks); ai++ {
		res.AddToken(toks[ai])
	}
	return res, nil
}

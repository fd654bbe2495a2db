package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a character diff from one string to another, or
// nil when the strings are equal or share too little for a character
// diff to be useful.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert, diffpatch.DiffDelete:
			diffSize += len(diff.Text)
		}
	}
	if diffSize == 0 {
		return nil
	}
	if diffSize > max(len(from), len(to)) {
		return nil
	}
	return diffs
}

// PatchString applies a character diff to from.
func PatchString(from string, diffs []diffpatch.Diff) (string, error) {
	b := &strings.Builder{}
	rest := from
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual, diffpatch.DiffDelete:
			if !strings.HasPrefix(rest, diff.Text) {
				return "", conflictf("cannot patch string at %q, expected %q", rest, diff.Text)
			}
			rest = rest[len(diff.Text):]
			if diff.Type == diffpatch.DiffEqual {
				b.WriteString(diff.Text)
			}
		case diffpatch.DiffInsert:
			b.WriteString(diff.Text)
		}
	}
	if rest != "" {
		return "", conflictf("cannot patch string, %q left over", rest)
	}
	return b.String(), nil
}

func reverseText(diffs []diffpatch.Diff) []diffpatch.Diff {
	if diffs == nil {
		return nil
	}
	res := make([]diffpatch.Diff, len(diffs))
	for i, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			d.Type = diffpatch.DiffDelete
		case diffpatch.DiffDelete:
			d.Type = diffpatch.DiffInsert
		}
		res[i] = d
	}
	return res
}

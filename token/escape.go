package token

import "strings"

// NeedsEscape reports whether v contains any reserved character.
func NeedsEscape(v string) bool {
	for i := 0; i < len(v); i++ {
		if isReserved(v[i]) {
			return true
		}
	}
	return false
}

// Escape returns v with every reserved character preceded by
// [EscapeChar] and every actual return replaced by [EscapeChar]
// [EscapedReturn]. When v has nothing to escape it is returned as is.
//
// Escape is not idempotent: escaping an escaped value escapes it again.
func Escape(v string) string {
	n := len(v)
	var b *strings.Builder
	for i := 0; i < n; i++ {
		c := v[i]
		if !isReserved(c) {
			if b != nil {
				b.WriteByte(c)
			}
			continue
		}
		if b == nil {
			// only allocate once something needs escaping
			b = &strings.Builder{}
			b.Grow(n + 2)
			b.WriteString(v[:i])
		}
		b.WriteByte(EscapeChar)
		if c == ActualReturn {
			b.WriteByte(EscapedReturn)
			continue
		}
		b.WriteByte(c)
	}
	if b == nil {
		return v
	}
	return b.String()
}

// Unescape reverses [Escape].
func Unescape(v string) (string, error) {
	i := strings.IndexByte(v, EscapeChar)
	if i == -1 {
		return v, nil
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	b.WriteString(v[:i])
	n := len(v)
	for i < n {
		c := v[i]
		if c != EscapeChar {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 == n {
			return "", ErrBadEscape
		}
		b.WriteByte(unescapeChar(v[i+1]))
		i += 2
	}
	return b.String(), nil
}

func unescapeChar(c byte) byte {
	if c == EscapedReturn {
		return ActualReturn
	}
	return c
}

// SplitUnescaped splits v around the first occurrence of sep which is
// not preceded by [EscapeChar]. Neither side is unescaped. If sep does not
// occur unescaped, found is false and before is v.
func SplitUnescaped(v string, sep byte) (before, after string, found bool) {
	n := len(v)
	for i := 0; i < n; i++ {
		switch v[i] {
		case EscapeChar:
			i++
		case sep:
			return v[:i], v[i+1:], true
		}
	}
	return v, "", false
}

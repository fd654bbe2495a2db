package token

import (
	"errors"
	"testing"
)

type tsTest struct {
	in, out string
}

func TestEscape(t *testing.T) {
	var tss = []tsTest{
		{in: "", out: ""},
		{in: "plain", out: "plain"},
		{in: "hi:there", out: `hi\:there`},
		{in: "~", out: `\~`},
		{in: "a=b", out: `a\=b`},
		{in: `say "x"`, out: `say \"x\"`},
		{in: `back\slash`, out: `back\\slash`},
		{in: "two\nlines", out: `two\nlines`},
		{in: "\n", out: `\n`},
		{in: ":~=\\\"\n", out: `\:\~\=\\\"\n`},
		{in: "über:straße", out: `über\:straße`},
	}
	for _, ts := range tss {
		got := Escape(ts.in)
		if got != ts.out {
			t.Errorf("Escape(%q): got %q want %q", ts.in, got, ts.out)
		}
	}
}

func TestEscapeUnchangedSharesString(t *testing.T) {
	in := "nothing to see here"
	if got := Escape(in); got != in {
		t.Errorf("got %q want %q", got, in)
	}
	if NeedsEscape(in) {
		t.Errorf("%q should not need escaping", in)
	}
	if !NeedsEscape("a:b") {
		t.Errorf("a:b should need escaping")
	}
}

func TestEscapeNotIdempotent(t *testing.T) {
	once := Escape("a:b")
	twice := Escape(once)
	if twice != `a\\\:b` {
		t.Errorf("got %q", twice)
	}
	v, err := Unescape(twice)
	if err != nil {
		t.Fatal(err)
	}
	if v != once {
		t.Errorf("got %q want %q", v, once)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	vals := []string{
		"",
		"x",
		"hi:there",
		"::::",
		"~",
		"~~",
		`\`,
		`\\n`,
		"\\n\n",
		`"quoted"`,
		"k=v=w",
		"line1\nline2\n",
		"mixed :~=\\\"\n all",
		"日本語:テキスト",
	}
	for _, v := range vals {
		esc := Escape(v)
		for i := 0; i < len(esc); i++ {
			if esc[i] == ActualReturn {
				t.Errorf("Escape(%q) contains a return: %q", v, esc)
			}
		}
		got, err := Unescape(esc)
		if err != nil {
			t.Errorf("Unescape(%q): %v", esc, err)
			continue
		}
		if got != v {
			t.Errorf("round trip: got %q want %q", got, v)
		}
	}
}

func TestUnescapeBad(t *testing.T) {
	_, err := Unescape(`abc\`)
	if !errors.Is(err, ErrBadEscape) {
		t.Errorf("expected ErrBadEscape, got %v", err)
	}
}

func TestSplitUnescaped(t *testing.T) {
	type splitTest struct {
		in            string
		before, after string
		found         bool
	}
	tests := []splitTest{
		{in: "a=b", before: "a", after: "b", found: true},
		{in: "a=b=c", before: "a", after: "b=c", found: true},
		{in: `a\=b=c`, before: `a\=b`, after: "c", found: true},
		{in: `a\\=b`, before: `a\\`, after: "b", found: true},
		{in: "=x", before: "", after: "x", found: true},
		{in: "x=", before: "x", after: "", found: true},
		{in: "none", before: "none", after: "", found: false},
		{in: `esc\=only`, before: `esc\=only`, after: "", found: false},
	}
	for _, tt := range tests {
		b, a, f := SplitUnescaped(tt.in, NameValueSep)
		if b != tt.before || a != tt.after || f != tt.found {
			t.Errorf("SplitUnescaped(%q): got (%q, %q, %v) want (%q, %q, %v)",
				tt.in, b, a, f, tt.before, tt.after, tt.found)
		}
	}
}

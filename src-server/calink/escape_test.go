package calink

import (
	"strings"
	"testing"
)

func TestEscapeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"title", "title"},
		{"hello world", "hello%20world"},
		{"drinks & food", "drinks%20%26%20food"},
		{"a=b?c", "a%3Db%3Fc"},
		{"100%", "100%25"},
	}
	for _, c := range cases {
		if got := escapeURL(c.in); got != c.want {
			t.Errorf("escapeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{`a\b`, `a\\b`},
		{"line one\nline two", `line one\nline two`},
		{"line one\r\nline two", `line one\nline two`},
		{"all, of; it\\\n", `all\, of\; it\\\n`},
	}
	for _, c := range cases {
		if got := escapeText(c.in); got != c.want {
			t.Errorf("escapeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldLineShortUnchanged(t *testing.T) {
	line := strings.Repeat("a", 75)
	if got := foldLine(line); got != line {
		t.Errorf("75-octet line must not fold, got %q", got)
	}
}

func TestFoldLineSingleFold(t *testing.T) {
	line := strings.Repeat("a", 80)
	want := strings.Repeat("a", 75) + "\r\n " + strings.Repeat("a", 5)
	if got := foldLine(line); got != want {
		t.Errorf("foldLine = %q, want %q", got, want)
	}
}

func TestFoldLineRepeatedFold(t *testing.T) {
	line := strings.Repeat("a", 160)
	want := strings.Repeat("a", 75) + "\r\n " +
		strings.Repeat("a", 75) + "\r\n " +
		strings.Repeat("a", 10)
	if got := foldLine(line); got != want {
		t.Errorf("foldLine = %q, want %q", got, want)
	}
}

func TestFoldLineInvalidUTF8(t *testing.T) {
	// nothing but continuation bytes: there is no rune start to back off to,
	// the fold must still happen on the octet boundary instead of panicking
	line := strings.Repeat("\x80", 80)
	want := strings.Repeat("\x80", 75) + "\r\n " + strings.Repeat("\x80", 5)
	if got := foldLine(line); got != want {
		t.Errorf("foldLine = %q, want %q", got, want)
	}
}

func TestFoldLineKeepsRunesIntact(t *testing.T) {
	// the é straddles the 75-octet boundary, the fold must back off to octet 74
	line := strings.Repeat("a", 74) + "é"
	want := strings.Repeat("a", 74) + "\r\n " + "é"
	if got := foldLine(line); got != want {
		t.Errorf("foldLine = %q, want %q", got, want)
	}
}

package calink

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// content lines must not exceed this many octets (RFC 5545 §3.1)
const maxLineLen = 75

// Percent-encode a query parameter value. The deep-link providers expect
// `%20` for spaces, not the `+` form QueryEscape produces.
func escapeURL(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var textEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\r\n", "\\n",
	"\n", "\\n",
	";", "\\;",
	",", "\\,",
)

// Escape an ICS TEXT value: backslash, semicolon and comma get a leading
// backslash, embedded newlines become the literal two characters `\n`.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// Fold a content line longer than 75 octets: CRLF plus a single leading
// space at every fold point. Splits back off to the nearest rune start so
// multi-byte characters survive.
func foldLine(line string) string {
	if len(line) <= maxLineLen {
		return line
	}

	var sb strings.Builder
	first := true
	for len(line) > maxLineLen {
		cut := maxLineLen
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		if cut == 0 {
			// no rune start in sight, the input is not valid UTF-8; cut on
			// the octet boundary instead of refusing to make progress
			cut = maxLineLen
		}
		if !first {
			sb.WriteString(" ")
		}
		sb.WriteString(line[:cut])
		sb.WriteString("\r\n")
		line = line[cut:]
		first = false
	}
	sb.WriteString(" ")
	sb.WriteString(line)
	return sb.String()
}

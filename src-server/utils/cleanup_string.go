package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize a natural-language fragment into a presentable event title:
// trim surrounding whitespace, title-case the words, drop a trailing period.
func CleanupString(s string) string {
	caser := cases.Title(language.English)
	return strings.TrimSuffix(caser.String(strings.TrimSpace(s)), ".")
}

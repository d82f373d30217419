// Package textnorm canonicalizes extracted document text so field matchers see a
// stable form regardless of whether it came from a text layer or from OCR.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t\f\v]+`)
	reBlankLines      = regexp.MustCompile(`\n{3,}`)
)

// zeroWidth strips zero-width space, non-joiner, joiner and the byte-order mark.
var zeroWidth = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// Normalize returns raw with line endings, invisible characters and whitespace runs
// canonicalized. The steps run in a fixed order; later ones rely on earlier ones.
//
// The result never contains three consecutive newlines, NBSP or zero-width
// characters, or more than one consecutive horizontal space. Normalize is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = zeroWidth.Replace(s)
	// Compose accents once the joiners are gone so "e"+U+0302 matches "ê".
	s = norm.NFC.String(s)
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// NormalizeSpaces collapses every whitespace run, newlines included, to one space.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

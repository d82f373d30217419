package fields

import (
	"regexp"
	"strings"

	"resume-extractor/internal/textnorm"
)

// Name guesses the candidate name from the header region: the text before the
// first contact marker or contact value, minus state suffixes, capped at
// MaxNameWords words. It finds nothing when fewer than MinNameWords remain.
//
// The heuristic assumes the resume leads with the name; a banner or title above
// it will be returned instead.
func Name(loc *Locale, text string) (string, bool) {
	head := textnorm.Truncate(text, loc.HeaderLength)
	head = head[:contactCut(loc, head)]
	head = loc.RegionSuffix.ReplaceAllString(head, " ")

	words := strings.Fields(textnorm.NormalizeSpaces(head))
	if len(words) < loc.MinNameWords {
		return "", false
	}
	if len(words) > loc.MaxNameWords {
		words = words[:loc.MaxNameWords]
	}
	return strings.Join(words, " "), true
}

// contactCut returns the offset where the contact block of head begins.
func contactCut(loc *Locale, head string) int {
	cut := len(head)
	for _, re := range []*regexp.Regexp{loc.ContactMarkers, reEmail, loc.Phone, reURL} {
		if re == nil {
			continue
		}
		if m := re.FindStringIndex(head); m != nil && m[0] < cut {
			cut = m[0]
		}
	}
	return cut
}

package fields

import "golang.org/x/text/cases"

// Seniority returns the label of the highest-priority tier mentioned anywhere in
// text. Priority is by tier, not by position: "júnior ... sênior" is Senior.
func Seniority(loc *Locale, text string) (string, bool) {
	lower := cases.Lower(loc.Language).String(text)
	for _, tier := range loc.Seniority {
		if tier.Pattern.MatchString(lower) {
			return tier.Label, true
		}
	}
	return "", false
}

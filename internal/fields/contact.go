package fields

import "regexp"

var (
	reEmail    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reLinkedIn = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/\S+`)
	reGitHub   = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/\S+`)
	reURL      = regexp.MustCompile(`(?i)\bhttps?://|\bwww\.`)
)

// Email returns the first e-mail address in text.
func Email(text string) (string, bool) {
	return first(reEmail, text)
}

// LinkedIn returns the first linkedin.com URL in text.
func LinkedIn(text string) (string, bool) {
	return first(reLinkedIn, text)
}

// GitHub returns the first github.com URL in text.
func GitHub(text string) (string, bool) {
	return first(reGitHub, text)
}

func first(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindString(text)
	return m, m != ""
}

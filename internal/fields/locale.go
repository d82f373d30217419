// Package fields holds the field extractors that turn normalized resume text into
// candidate attributes. Every extractor is a pure function; locale-specific
// vocabulary and patterns live in an immutable Locale table.
package fields

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Seniority labels emitted by the default locale.
const (
	SeniorityJunior = "Junior"
	SeniorityMid    = "Mid-level"
	SenioritySenior = "Senior"
)

// SeniorityTier maps a pattern over lower-cased text to a label.
type SeniorityTier struct {
	Label   string
	Pattern *regexp.Regexp
}

// Skill is a vocabulary keyword with its display form.
type Skill struct {
	Keyword string
	Display string
	pattern *regexp.Regexp
}

// NewSkill compiles a whole-word, case-insensitive matcher for keyword.
// An empty display falls back to the keyword title-cased.
func NewSkill(keyword, display string) Skill {
	return Skill{
		Keyword: keyword,
		Display: display,
		pattern: wholeWord(keyword),
	}
}

func wholeWord(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// Locale is the table of locale-specific inputs used by the extractors.
// A Locale must not be modified after it is shared between goroutines.
type Locale struct {
	Language language.Tag

	// HeaderLength is the number of leading characters searched for the name.
	HeaderLength int
	MinNameWords int
	MaxNameWords int

	// ContactMarkers matches words that start the contact block of the header.
	ContactMarkers *regexp.Regexp
	// RegionSuffix matches a state abbreviation appended to a city (" - PR").
	RegionSuffix *regexp.Regexp

	Phone       *regexp.Regexp
	CountryCode string

	// Seniority tiers in priority order; the first matching tier wins.
	Seniority []SeniorityTier
	// Skills in output order.
	Skills []Skill
}

// BrazilianPortuguese returns the default locale: Brazilian phone numbers,
// Portuguese seniority terms and a software-development skill vocabulary.
func BrazilianPortuguese() *Locale {
	return &Locale{
		Language:     language.BrazilianPortuguese,
		HeaderLength: 260,
		MinNameWords: 2,
		MaxNameWords: 4,
		ContactMarkers: regexp.MustCompile(
			`(?i)\b(?:tel\.?|telefone|e-?mail|email|linkedin|github|portf[oó]lio)\b`),
		RegionSuffix: regexp.MustCompile(`\s*-\s*[A-Z]{2}\b`),
		// e.g. "+55 (43) 9 9636 - 9387", "(11) 98888-7777", "4199990000"
		Phone: regexp.MustCompile(
			`\b(?:\+?55\s*)?(?:\(?\d{2}\)?\s*)?(?:9\s*)?\d{4,5}\s*[-\s.]*\s*\d{4}\b`),
		CountryCode: "55",
		Seniority: []SeniorityTier{
			{Label: SenioritySenior, Pattern: regexp.MustCompile(`\b(?:s[eê]nior|sr\.?)\b`)},
			{Label: SeniorityMid, Pattern: regexp.MustCompile(`\b(?:pleno|pl\.?)\b`)},
			{Label: SeniorityJunior, Pattern: regexp.MustCompile(`\b(?:j[uú]nior|jr\.?|estagi[aá]rio|est[aá]gio)\b`)},
		},
		Skills: []Skill{
			NewSkill("flutter", ""),
			NewSkill("dart", ""),
			NewSkill("react", ""),
			NewSkill("python", ""),
			NewSkill("sql", "SQL"),
			NewSkill("sqlite", "SQLite"),
			NewSkill("supabase", ""),
			NewSkill("git", ""),
			NewSkill("github", "GitHub"),
			NewSkill("typescript", "Typescript"),
			NewSkill("javascript", ""),
		},
	}
}

// WithSkills returns a copy of l using vocabulary instead of its own skills.
func (l *Locale) WithSkills(vocabulary ...Skill) *Locale {
	c := *l
	c.Skills = append([]Skill(nil), vocabulary...)
	return &c
}

func (l *Locale) displayName(s Skill) string {
	if s.Display != "" {
		return s.Display
	}
	// Casers keep state, so one is built per call.
	return cases.Title(l.Language).String(s.Keyword)
}

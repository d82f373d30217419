package fields

import (
	"strings"

	"resume-extractor/internal/textnorm"
)

// FindPhone returns the first phone-like match in text, unformatted.
func FindPhone(loc *Locale, text string) (string, bool) {
	return first(loc.Phone, text)
}

// FormatPhone renders a raw phone match as "(DD) D DDDD-DDDD" for 11 digits or
// "(DD) DDDD-DDDD" for 10. A leading country code is dropped when at least 12
// digits are present. Any other length returns raw with its spaces collapsed.
func FormatPhone(loc *Locale, raw string) string {
	digits := onlyDigits(raw)
	if loc.CountryCode != "" && len(digits) >= 12 && strings.HasPrefix(digits, loc.CountryCode) {
		digits = digits[len(loc.CountryCode):]
	}

	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:3] + " " + digits[3:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return textnorm.NormalizeSpaces(raw)
	}
}

// Phone finds and formats the first phone number in text.
func Phone(loc *Locale, text string) (string, bool) {
	raw, ok := FindPhone(loc, text)
	if !ok {
		return "", false
	}
	return FormatPhone(loc, raw), true
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

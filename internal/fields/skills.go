package fields

// Skills lists the vocabulary skills mentioned in raw as whole words, in
// vocabulary order and without duplicates. The result is never nil.
func Skills(loc *Locale, raw string) []string {
	found := make([]string, 0, len(loc.Skills))
	seen := make(map[string]struct{}, len(loc.Skills))

	for _, s := range loc.Skills {
		re := s.pattern
		if re == nil {
			re = wholeWord(s.Keyword)
		}
		if !re.MatchString(raw) {
			continue
		}
		name := loc.displayName(s)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		found = append(found, name)
	}
	return found
}

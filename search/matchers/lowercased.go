package matchers

import "strings"

// LowercasedSubstring matches lines containing s when both are lowercased.
// The lowercased line is only a comparison key and is discarded after Match.
func LowercasedSubstring(s string) Matcher {
	return &lowercased{
		s: strings.ToLower(s),
	}
}

type lowercased struct {
	s string
}

func (m *lowercased) Match(line string) bool {
	return strings.Contains(strings.ToLower(line), m.s)
}

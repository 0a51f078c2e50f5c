package matchers

type Matcher interface {
	Match(line string) bool
}

func New(caseSensitive bool, query string) Matcher {
	if caseSensitive {
		return Substring(query)
	}

	return LowercasedSubstring(query)
}

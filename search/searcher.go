// Package search finds the lines of a text body that contain a query.
//
// Every returned line is a substring of the text passed in, so results share
// memory with the caller's text rather than copying it. Strings are immutable,
// so neither side can change the other; results keep the text reachable for as
// long as they are held.
package search

import (
	"github.com/pivotal-cf/linegrep/scanners"
	"github.com/pivotal-cf/linegrep/scanners/textscanner"
	"github.com/pivotal-cf/linegrep/search/matchers"
)

// Search returns the lines of text that contain query exactly, in order.
func Search(query, text string) []string {
	return contents(scan(matchers.Substring(query), text))
}

// SearchCaseInsensitive returns the lines of text that contain query once
// both are lowercased. The returned lines keep their original casing.
func SearchCaseInsensitive(query, text string) []string {
	return contents(scan(matchers.LowercasedSubstring(query), text))
}

func SearchWithPolicy(policy Policy, query, text string) []string {
	if policy == CaseSensitive {
		return Search(query, text)
	}

	return SearchCaseInsensitive(query, text)
}

// Matches selects the same lines as SearchWithPolicy but keeps the position
// of each line within text.
func Matches(policy Policy, query, text string) []scanners.Line {
	return scan(matchers.New(policy == CaseSensitive, query), text)
}

func scan(matcher matchers.Matcher, text string) []scanners.Line {
	var results []scanners.Line

	scanner := textscanner.New(text)
	for scanner.Scan() {
		line := scanner.Line()
		if matcher.Match(line.Content) {
			results = append(results, line)
		}
	}

	return results
}

func contents(lines []scanners.Line) []string {
	if len(lines) == 0 {
		return nil
	}

	results := make([]string, len(lines))
	for i := range lines {
		results[i] = lines[i].Content
	}

	return results
}

package textscanner

import (
	"strings"

	"github.com/pivotal-cf/linegrep/scanners"
)

// TextScanner walks the lines of an in-memory text body. Lines end at "\n";
// a "\r" directly before it is dropped too. A final terminator does not start
// another line.
type TextScanner struct {
	text       string
	offset     int
	line       string
	lineNumber int
}

func New(text string) *TextScanner {
	return &TextScanner{
		text: text,
	}
}

func (s *TextScanner) Scan() bool {
	if s.offset >= len(s.text) {
		return false
	}

	rest := s.text[s.offset:]
	end := strings.IndexByte(rest, '\n')
	if end == -1 {
		s.line = rest
		s.offset = len(s.text)
	} else {
		s.line = strings.TrimSuffix(rest[:end], "\r")
		s.offset += end + 1
	}

	s.lineNumber++
	return true
}

func (s *TextScanner) Line() scanners.Line {
	return scanners.Line{
		Number:  s.lineNumber,
		Content: s.line,
	}
}

func Lines(text string) []string {
	var lines []string

	scanner := New(text)
	for scanner.Scan() {
		lines = append(lines, scanner.Line().Content)
	}

	return lines
}

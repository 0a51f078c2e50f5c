package search

import (
	"fmt"
	"strings"
)

// Policy selects how a query is compared against each line. It is fixed for
// the whole of one search.
type Policy int

const (
	CaseInsensitive Policy = iota
	CaseSensitive
)

const DefaultPolicy = CaseInsensitive

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "insensitive", "case-insensitive":
		return CaseInsensitive, nil
	case "sensitive", "case-sensitive":
		return CaseSensitive, nil
	default:
		return DefaultPolicy, fmt.Errorf("unknown case policy %q (want sensitive or insensitive)", s)
	}
}

func (p Policy) String() string {
	switch p {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

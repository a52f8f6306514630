package content

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternSet is a compiled list of forbidden text patterns, matched
// case-insensitively. It is built once at startup and read-only afterwards;
// callers share a single instance by injection.
type PatternSet struct {
	patterns []*regexp.Regexp
}

// CompilePatterns builds a PatternSet from a comma-separated list of regular
// expressions. Empty entries are skipped; an invalid expression fails the
// whole set so a bad policy cannot silently load as a partial one.
func CompilePatterns(spec string) (*PatternSet, error) {
	var compiled []*regexp.Regexp
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + raw)
		if err != nil {
			return nil, fmt.Errorf("invalid forbidden pattern %q: %w", raw, err)
		}
		compiled = append(compiled, re)
	}
	return &PatternSet{patterns: compiled}, nil
}

// Matches reports whether any pattern in the set matches s.
func (p *PatternSet) Matches(s string) bool {
	for _, re := range p.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (p *PatternSet) Len() int {
	return len(p.patterns)
}

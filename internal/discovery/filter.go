// Package discovery narrows a registered sequence down to the checks a user
// asked for by name.
package discovery

import (
	"path/filepath"
	"strings"

	"quirks/internal/domain"
)

// Filter filters checks by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the checks whose name matches pattern, in registration
// order. Supports patterns like "testDefer*" or "*Slice*".
func (f *Filter) FilterByName(seq domain.TestSequence, pattern string) domain.TestSequence {
	if pattern == "" {
		return seq
	}
	return seq.Filter(func(tc domain.TestCase) bool {
		return f.Matches(tc.Name, pattern)
	})
}

// Matches reports whether name matches pattern using wildcard matching
func (f *Filter) Matches(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Patterns like "*Slice*" that filepath.Match rejected: every non-empty
	// part has to appear somewhere in the name
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// No wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

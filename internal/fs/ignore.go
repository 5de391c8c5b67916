package fs

import (
	"fmt"

	"github.com/gobwas/glob"
)

// IgnoreRules filters listing entries by name using shell-style globs.
// A nil *IgnoreRules matches nothing.
type IgnoreRules struct {
	patterns []string
	globs    []glob.Glob
}

// NewIgnoreRules compiles patterns such as "*.swp" or ".DS_Store".
func NewIgnoreRules(patterns []string) (*IgnoreRules, error) {
	rules := &IgnoreRules{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		rules.patterns = append(rules.patterns, p)
		rules.globs = append(rules.globs, g)
	}
	return rules, nil
}

// Match reports whether name is ignored.
func (r *IgnoreRules) Match(name string) bool {
	if r == nil {
		return false
	}
	for _, g := range r.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled source patterns.
func (r *IgnoreRules) Patterns() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.patterns...)
}

// Filter returns entries whose names are not ignored.
func (r *IgnoreRules) Filter(entries []Entry) []Entry {
	if r == nil || len(r.globs) == 0 {
		return entries
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r.Match(e.Name) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

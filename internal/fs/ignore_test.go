package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreRulesMatch(t *testing.T) {
	rules, err := NewIgnoreRules([]string{"*.swp", ".DS_Store", ""})
	require.NoError(t, err)

	assert.True(t, rules.Match("notes.txt.swp"))
	assert.True(t, rules.Match(".DS_Store"))
	assert.False(t, rules.Match("notes.txt"))
	assert.Equal(t, []string{"*.swp", ".DS_Store"}, rules.Patterns())
}

func TestIgnoreRulesInvalidPattern(t *testing.T) {
	_, err := NewIgnoreRules([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestNilIgnoreRulesKeepEverything(t *testing.T) {
	var rules *IgnoreRules
	entries := []Entry{{Name: "a"}, {Name: "b"}}
	assert.False(t, rules.Match("a"))
	assert.Equal(t, entries, rules.Filter(entries))
}

func TestIgnoreRulesFilter(t *testing.T) {
	rules, err := NewIgnoreRules([]string{"*.tmp"})
	require.NoError(t, err)

	got := rules.Filter([]Entry{{Name: "a.tmp"}, {Name: "b.go"}, {Name: "c.tmp"}})
	require.Len(t, got, 1)
	assert.Equal(t, "b.go", got[0].Name)
}

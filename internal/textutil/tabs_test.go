package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "a   b", ExpandTabs("a\tb", 4))
	assert.Equal(t, "    x", ExpandTabs("\tx", 4))
	assert.Equal(t, "no tabs", ExpandTabs("no tabs", 4))
	assert.Equal(t, "a\tb", ExpandTabs("a\tb", 0))
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("日本"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestTruncateLeftKeepsTail(t *testing.T) {
	assert.Equal(t, "/a/b", TruncateLeft("/a/b", 10))
	got := TruncateLeft("/home/user/projects", 9)
	assert.Equal(t, "…projects", got)
	assert.Equal(t, 9, DisplayWidth(got))
}

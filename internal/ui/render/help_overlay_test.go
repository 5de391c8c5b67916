package render

import (
	"slices"
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

func TestBuildHelpOverlayLinesListsAllSections(t *testing.T) {
	lines := buildHelpOverlayLines(statepkg.View{ShowHidden: true})

	for _, title := range []string{"Navigation", "Actions", "Text input", "Exit"} {
		if !slices.Contains(lines, title) {
			t.Fatalf("expected section %q in %v", title, lines)
		}
	}
}

func TestBuildHelpOverlayHiddenToggleDescription(t *testing.T) {
	shown := strings.Join(buildHelpOverlayLines(statepkg.View{ShowHidden: true}), "\n")
	if !strings.Contains(shown, "Hide hidden files") {
		t.Fatalf("expected hide hint when hidden files are shown:\n%s", shown)
	}

	hidden := strings.Join(buildHelpOverlayLines(statepkg.View{ShowHidden: false}), "\n")
	if !strings.Contains(hidden, "Show hidden files") {
		t.Fatalf("expected show hint when hidden files are filtered:\n%s", hidden)
	}
}

func TestFormatHelpOverlayEntryAlignsDescriptions(t *testing.T) {
	a := formatHelpOverlayEntry(helpOverlayEntry{keys: "n", desc: "New"})
	b := formatHelpOverlayEntry(helpOverlayEntry{keys: "↑/↓", desc: "Move"})

	if strings.Index(a, "New") != 2+16 {
		t.Fatalf("unexpected alignment %q", a)
	}
	if !strings.HasSuffix(b, "Move") {
		t.Fatalf("unexpected entry %q", b)
	}
}

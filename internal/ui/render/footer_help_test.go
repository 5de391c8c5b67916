package render

import (
	"slices"
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

func TestBuildFooterHelpSegments_Browsing(t *testing.T) {
	got := buildFooterHelpSegments(statepkg.View{ShowHidden: true})
	want := []string{
		"↑/↓/↵/←: navigate",
		"n: new folder",
		"r: refresh",
		".: toggle visible",
		"?: help",
		"q: quit",
	}

	if !slices.Equal(got, want) {
		t.Fatalf("browsing help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpSegments_HiddenFilesOff(t *testing.T) {
	got := buildFooterHelpSegments(statepkg.View{})
	if !slices.Contains(got, ".: toggle hidden") {
		t.Fatalf("expected hidden toggle hint, got %v", got)
	}
}

func TestBuildFooterHelpSegments_TextEntry(t *testing.T) {
	got := buildFooterHelpSegments(statepkg.View{Mode: statepkg.ModeTextEntry})
	want := []string{"type: name", "↵: confirm", "Esc: cancel"}

	if !slices.Equal(got, want) {
		t.Fatalf("text entry help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpText_PadsAndJoins(t *testing.T) {
	text := buildFooterHelpText(statepkg.View{Mode: statepkg.ModeTextEntry})
	if !strings.HasPrefix(text, " type: name  ") || !strings.HasSuffix(text, "Esc: cancel ") {
		t.Fatalf("unexpected footer text %q", text)
	}
	if got := buildFooterHelpText(statepkg.View{HelpVisible: true}); got != "" {
		t.Fatalf("help overlay has its own footer, got %q", got)
	}
}

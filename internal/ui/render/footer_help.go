package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(view statepkg.View) string {
	parts := buildFooterHelpSegments(view)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(view statepkg.View) []string {
	if view.HelpVisible {
		return nil
	}
	if view.Mode == statepkg.ModeTextEntry {
		return []string{
			"type: name",
			"↵: confirm",
			"Esc: cancel",
		}
	}

	hiddenStatus := "visible"
	if !view.ShowHidden {
		hiddenStatus = "hidden"
	}
	return []string{
		"↑/↓/↵/←: navigate",
		"n: new folder",
		"r: refresh",
		fmt.Sprintf(".: toggle %s", hiddenStatus),
		"?: help",
		"q: quit",
	}
}

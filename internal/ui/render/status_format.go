package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

// formatStatusLine summarises the listing and any transient message.
func formatStatusLine(view statepkg.View) string {
	position := "0/0"
	if view.Selected >= 0 {
		position = fmt.Sprintf("%d/%d", view.Selected+1, len(view.Entries))
	} else if len(view.Entries) > 0 {
		position = fmt.Sprintf("-/%d", len(view.Entries))
	}

	text := " " + position
	switch {
	case view.PanelIsError:
		text += " · error"
	case view.Status != "":
		text += " · " + textutil.SanitizeTerminalText(view.Status)
	}
	if !view.ShowHidden {
		text += " · hidden files off"
	}
	return text
}

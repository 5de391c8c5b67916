package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(view statepkg.View) []string {
	hiddenDesc := "Hide hidden files"
	if !view.ShowHidden {
		hiddenDesc = "Show hidden files"
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ or k/j", desc: "Move selection (wraps around)"},
				{keys: "↵, → or l", desc: "Enter directory / preview file"},
				{keys: "←, h or ⌫", desc: "Go to parent directory"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: "n", desc: "New folder in current directory"},
				{keys: ".", desc: hiddenDesc},
				{keys: "r or F5", desc: "Refresh directory"},
			},
		},
		{
			title: "Text input",
			entries: []helpOverlayEntry{
				{keys: "↵", desc: "Confirm"},
				{keys: "Esc or Ctrl+C", desc: "Cancel"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q or Ctrl+C", desc: "Quit"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	pad := 16 - textutil.DisplayWidth(key)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("  %s%s%s", key, strings.Repeat(" ", pad), desc)
}

func (r *Renderer) drawHelpOverlay(view statepkg.View, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	maxRow := h - 1
	for _, line := range buildHelpOverlayLines(view) {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "? toggle · Esc/q close"
	if h > 0 {
		r.drawTextLine(0, h-1, w, r.truncateTextToWidth(footer, w), headerStyle)
	}
}

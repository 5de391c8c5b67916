package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		width := r.runeWidthCache[ru]
		if width == 0 && ru != 0 {
			actualWidth := runewidth.RuneWidth(ru)
			if actualWidth < 0 {
				actualWidth = 0
			}
			r.runeWidthCache[ru] = actualWidth + 1
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide[ru]; ok {
		return cached
	}
	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	r.runeWidthWide[ru] = width
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	return textutil.Truncate(text, maxWidth)
}

// drawTextLine draws text from startX and returns the column after the last
// cell written. Zero-width runes ride along as combining characters.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.cachedRuneWidth(mainc)
		if x-startX+max(w, 1) > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += max(w, 1)
	}

	return x
}

func (r *Renderer) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// displayLines splits text into lines ready for the terminal: tabs expanded,
// control characters neutralised.
func displayLines(text string) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = textutil.SanitizeTerminalText(textutil.ExpandTabs(line, textutil.DefaultTabWidth))
	}
	return lines
}

// wrapText breaks text into chunks no wider than width, for error messages.
func (r *Renderer) wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range displayLines(text) {
		for r.measureTextWidth(line) > width {
			cut, used := 0, 0
			for idx, ru := range line {
				w := r.cachedRuneWidth(ru)
				if used+w > width {
					cut = idx
					break
				}
				used += w
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(line)
			}
			out = append(out, line[:cut])
			line = line[cut:]
		}
		out = append(out, line)
	}
	return out
}

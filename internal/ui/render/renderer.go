package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

const (
	appTitle        = "fbrowse"
	highlightSymbol = ">> "
	emptyPanelHint  = "Select a file and press Enter to preview it"
	emptyDirHint    = "(empty)"
)

// Options tunes preview rendering.
type Options struct {
	Highlight      bool
	HighlightStyle string
}

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	highlighter    *Highlighter
	runeWidthCache [128]int // ASCII cache (0-127), stored as width+1
	runeWidthWide  map[rune]int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, opts Options) *Renderer {
	return &Renderer{
		screen:        screen,
		theme:         GetColorTheme(),
		highlighter:   NewHighlighter(opts.Highlight, opts.HighlightStyle),
		runeWidthWide: make(map[rune]int),
	}
}

// Render draws the entire UI from view.
func (r *Renderer) Render(view statepkg.View) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if view.HelpVisible {
		r.drawHelpOverlay(view, w, h)
		r.screen.Show()
		return
	}

	layout := computeLayout(w, h)
	r.drawHeader(view, w)
	r.drawListing(view, layout)
	if layout.panelWidth > 0 {
		sepStyle := tcell.StyleDefault.Foreground(r.theme.MutedFg)
		for y := layout.bodyTop; y < layout.bodyTop+layout.bodyHeight; y++ {
			r.screen.SetContent(layout.listWidth, y, tcell.RuneVLine, nil, sepStyle)
		}
		r.drawMainPanel(view, layout)
	}
	r.drawStatusLine(view, layout, w)
	r.drawFooter(view, layout, w)

	if view.Mode == statepkg.ModeTextEntry {
		r.drawPrompt(view, w, h)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with title and the current path
func (r *Renderer) drawHeader(view statepkg.View, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, appTitle, headerStyle.Bold(true))
	if endX < w {
		r.screen.SetContent(endX, 0, ' ', nil, headerStyle)
		endX++
	}

	if endX < w {
		path := textutil.SanitizeTerminalText(view.Path)
		if path == "" {
			path = "/"
		}
		path = textutil.TruncateLeft(path, w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, path, headerStyle)
	}

	r.fillRow(endX, w, 0, headerStyle)
}

func (r *Renderer) drawListing(view statepkg.View, layout layoutMetrics) {
	width := layout.listWidth
	if width <= 0 || layout.bodyHeight <= 0 {
		return
	}

	if len(view.Entries) == 0 {
		style := tcell.StyleDefault.Foreground(r.theme.MutedFg)
		r.drawTextLine(len(highlightSymbol), layout.bodyTop, width-len(highlightSymbol), emptyDirHint, style)
		return
	}

	offset := listScrollOffset(view.Selected, len(view.Entries), layout.bodyHeight)
	for row := 0; row < layout.bodyHeight; row++ {
		idx := offset + row
		if idx >= len(view.Entries) {
			break
		}
		y := layout.bodyTop + row
		entry := view.Entries[idx]

		style := r.entryStyle(entry)
		prefix := "   "
		if idx == view.Selected {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
			prefix = highlightSymbol
		}

		name := textutil.SanitizeTerminalText(entry.Name)
		if entry.IsDir {
			name += "/"
		}
		if entry.IsSymlink {
			name += " @"
		}
		text := prefix + r.truncateTextToWidth(name, width-len(prefix))
		endX := r.drawTextLine(0, y, width, text, style)
		if idx == view.Selected {
			r.fillRow(endX, width, y, style)
		}
	}
}

func (r *Renderer) entryStyle(entry statepkg.EntryView) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch {
	case entry.IsSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		style = style.Foreground(r.theme.DirectoryFg)
	}
	if entry.IsHidden {
		style = style.Foreground(r.theme.HiddenFg)
	}
	return style
}

func (r *Renderer) drawMainPanel(view statepkg.View, layout layoutMetrics) {
	x, width := layout.panelStart+1, layout.panelWidth-1
	if width <= 0 || layout.bodyHeight <= 0 {
		return
	}
	top := layout.bodyTop
	bottom := layout.bodyTop + layout.bodyHeight

	if view.PanelTitle == "" && view.Panel == "" {
		style := tcell.StyleDefault.Foreground(r.theme.MutedFg)
		r.drawTextLine(x, top, width, r.truncateTextToWidth(emptyPanelHint, width), style)
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(r.theme.PreviewFg).Bold(true).Underline(true)
	if view.PanelIsError {
		titleStyle = tcell.StyleDefault.Foreground(r.theme.ErrorFg).Bold(true)
	}
	title := textutil.SanitizeTerminalText(view.PanelTitle)
	r.drawTextLine(x, top, width, r.truncateTextToWidth(title, width), titleStyle)

	y := top + 2
	if view.PanelIsError {
		style := tcell.StyleDefault.Foreground(r.theme.ErrorFg)
		for _, line := range r.wrapText(view.Panel, width) {
			if y >= bottom {
				return
			}
			r.drawTextLine(x, y, width, line, style)
			y++
		}
		return
	}

	base := tcell.StyleDefault.Foreground(r.theme.PreviewFg)
	for _, line := range r.highlighter.Lines(view.Language, view.Panel, base) {
		if y >= bottom {
			return
		}
		r.drawStyledLine(x, y, width, line)
		y++
	}
}

func (r *Renderer) drawStyledLine(x, y, width int, line styledLine) {
	end := x + width
	for _, seg := range line {
		if x >= end {
			return
		}
		x = r.drawTextLine(x, y, end-x, seg.text, seg.style)
	}
}

func (r *Renderer) drawStatusLine(view statepkg.View, layout layoutMetrics, w int) {
	if layout.statusRow < layout.bodyTop {
		return
	}
	y := layout.statusRow
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg)
	if view.PanelIsError {
		style = tcell.StyleDefault.Foreground(r.theme.ErrorFg)
	}

	text := formatStatusLine(view)
	endX := r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style)
	r.fillRow(endX, w, y, tcell.StyleDefault)
}

func (r *Renderer) drawFooter(view statepkg.View, layout layoutMetrics, w int) {
	if layout.footerRow < layout.bodyTop {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Dim(true)
	text := r.truncateTextToWidth(buildFooterHelpText(view), w)
	endX := r.drawTextLine(0, layout.footerRow, w, text, style)
	r.fillRow(endX, w, layout.footerRow, style)
}

// drawPrompt renders the text-entry popup centred over the screen and parks
// the terminal cursor after the typed text.
func (r *Renderer) drawPrompt(view statepkg.View, w, h int) {
	boxWidth := min(60, w-2)
	if boxWidth < 8 || h < 3 {
		return
	}
	boxX := (w - boxWidth) / 2
	boxY := (h - 3) / 2

	border := tcell.StyleDefault.Background(r.theme.PopupBg).Foreground(r.theme.BorderFg)
	body := tcell.StyleDefault.Background(r.theme.PopupBg).Foreground(r.theme.PopupFg)

	for x := boxX; x < boxX+boxWidth; x++ {
		r.screen.SetContent(x, boxY, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, boxY+2, tcell.RuneHLine, nil, border)
	}
	r.screen.SetContent(boxX, boxY, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(boxX+boxWidth-1, boxY, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(boxX, boxY+2, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(boxX+boxWidth-1, boxY+2, tcell.RuneLRCorner, nil, border)
	r.screen.SetContent(boxX, boxY+1, tcell.RuneVLine, nil, border)
	r.screen.SetContent(boxX+boxWidth-1, boxY+1, tcell.RuneVLine, nil, border)

	inner := boxWidth - 4
	title := " " + textutil.TruncateLeft(textutil.SanitizeTerminalText(view.Prompt), inner-2) + " "
	r.drawTextLine(boxX+2, boxY, inner, title, border.Bold(true))

	r.fillRow(boxX+1, boxX+boxWidth-1, boxY+1, body)
	input := textutil.TruncateLeft(textutil.SanitizeTerminalText(view.Input), inner-1)
	cursorX := r.drawTextLine(boxX+2, boxY+1, inner, input, body)
	r.screen.ShowCursor(cursorX, boxY+1)
}

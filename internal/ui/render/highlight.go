package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	textutil "github.com/kk-code-lab/fbrowse/internal/textutil"
)

const DefaultHighlightStyle = "monokai"

var getStyle = styles.Get

type segment struct {
	text  string
	style tcell.Style
}

type styledLine []segment

// Highlighter turns preview text into styled lines. The last result is kept
// so redraws of an unchanged preview do not re-tokenise it.
type Highlighter struct {
	enabled bool
	style   *chroma.Style

	cachedLanguage string
	cachedContent  string
	cachedBase     tcell.Style
	cachedLines    []styledLine
}

// NewHighlighter resolves styleName through chroma's style registry, falling
// back to chroma's default style for unknown names.
func NewHighlighter(enabled bool, styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style := getStyle(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{enabled: enabled, style: style}
}

// Lines returns content split into styled, tab-expanded, sanitised lines.
// language is a chroma lexer name; unknown languages render plain.
func (h *Highlighter) Lines(language, content string, base tcell.Style) []styledLine {
	if h.cachedLines != nil && h.cachedLanguage == language && h.cachedBase == base && h.cachedContent == content {
		return h.cachedLines
	}

	lines := h.tokenise(language, content, base)
	if lines == nil {
		lines = plainLines(content, base)
	}

	h.cachedLanguage = language
	h.cachedContent = content
	h.cachedBase = base
	h.cachedLines = lines
	return lines
}

func (h *Highlighter) tokenise(language, content string, base tcell.Style) []styledLine {
	if h == nil || !h.enabled || language == "" || content == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, content)
	if err != nil {
		return nil
	}

	var (
		lines   []styledLine
		current styledLine
		column  int
	)
	for _, token := range iterator.Tokens() {
		style := h.tokenStyle(token.Type, base)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = nil
				column = 0
			}
			part = strings.TrimSuffix(part, "\r")
			if part == "" {
				continue
			}
			var text string
			text, column = expandSegment(part, column)
			current = append(current, segment{text: text, style: style})
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func (h *Highlighter) tokenStyle(tokenType chroma.TokenType, base tcell.Style) tcell.Style {
	entry := h.style.Get(tokenType)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(chromaColor(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func plainLines(content string, base tcell.Style) []styledLine {
	text := displayLines(content)
	lines := make([]styledLine, len(text))
	for i, line := range text {
		if line == "" {
			continue
		}
		lines[i] = styledLine{{text: line, style: base}}
	}
	return lines
}

// expandSegment expands tabs relative to the running column of the line and
// neutralises control characters.
func expandSegment(text string, column int) (string, int) {
	if strings.ContainsRune(text, '\t') {
		var b strings.Builder
		for _, ru := range text {
			if ru == '\t' {
				spaces := textutil.DefaultTabWidth - column%textutil.DefaultTabWidth
				b.WriteString(strings.Repeat(" ", spaces))
				column += spaces
				continue
			}
			b.WriteRune(ru)
			column += max(textutil.DisplayWidth(string(ru)), 1)
		}
		return textutil.SanitizeTerminalText(b.String()), column
	}
	text = textutil.SanitizeTerminalText(text)
	return text, column + textutil.DisplayWidth(text)
}

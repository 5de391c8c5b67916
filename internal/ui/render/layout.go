package render

const (
	minListWidth   = 16
	maxListWidth   = 48
	listWidthRatio = 0.3
	headerRows     = 1
	footerRows     = 2 // status line + key hints
)

type layoutMetrics struct {
	listWidth  int
	panelStart int
	panelWidth int
	bodyTop    int
	bodyHeight int
	statusRow  int
	footerRow  int
}

// computeLayout splits the screen into header, listing, separator, main panel
// and the two footer rows. Tiny terminals get the listing only.
func computeLayout(w, h int) layoutMetrics {
	m := layoutMetrics{
		bodyTop:   headerRows,
		statusRow: h - 2,
		footerRow: h - 1,
	}
	m.bodyHeight = h - headerRows - footerRows
	if m.bodyHeight < 0 {
		m.bodyHeight = 0
	}

	listWidth := int(float64(w)*listWidthRatio + 0.5)
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	if listWidth >= w-1 {
		m.listWidth = w
		return m
	}

	m.listWidth = listWidth
	m.panelStart = listWidth + 1
	m.panelWidth = w - m.panelStart
	return m
}

// listScrollOffset returns the first visible row so that selected stays on
// screen.
func listScrollOffset(selected, total, height int) int {
	if height <= 0 || total <= height || selected < height {
		return 0
	}
	offset := selected - height + 1
	if offset > total-height {
		offset = total - height
	}
	return offset
}

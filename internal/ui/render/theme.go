package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	PreviewFg   tcell.Color
	MutedFg     tcell.Color
	ErrorFg     tcell.Color
	StatusFg    tcell.Color
	PopupBg     tcell.Color
	PopupFg     tcell.Color
	BorderFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		PreviewFg:   tcell.ColorDefault,
		MutedFg:     tcell.Color244,
		ErrorFg:     tcell.ColorRed,
		StatusFg:    tcell.ColorGreen,
		PopupBg:     tcell.Color236,
		PopupFg:     tcell.ColorWhite,
		BorderFg:    tcell.Color33,
	}
}

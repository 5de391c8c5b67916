package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the application to stop.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ih.state != nil && ih.state.Mode == statepkg.ModeTextEntry {
		ih.processTextEntryKey(ev)
		return true
	}

	helpVisible := ih.state != nil && ih.state.HelpVisible
	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.ToggleHelpAction{}
		case tcell.KeyRune:
			switch ev.Rune() {
			case '?', 'q', 'Q':
				ih.actionChan <- statepkg.ToggleHelpAction{}
			}
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- statepkg.OpenAction{}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.GoUpAction{}
	case tcell.KeyF5:
		ih.actionChan <- statepkg.RefreshAction{}
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case 'k':
			ih.actionChan <- statepkg.NavigateUpAction{}
		case 'j':
			ih.actionChan <- statepkg.NavigateDownAction{}
		case 'l':
			ih.actionChan <- statepkg.OpenAction{}
		case 'h':
			ih.actionChan <- statepkg.GoUpAction{}
		case 'n', 'N':
			ih.actionChan <- statepkg.NewFolderAction{}
		case 'r', 'R':
			ih.actionChan <- statepkg.RefreshAction{}
		case '.':
			ih.actionChan <- statepkg.ToggleHiddenAction{}
		case '?':
			ih.actionChan <- statepkg.ToggleHelpAction{}
		}
	}
	return true
}

// processTextEntryKey feeds the input buffer. Every printable rune is text,
// including the letters that are commands while browsing.
func (ih *InputHandler) processTextEntryKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.TextSubmitAction{}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- statepkg.TextCancelAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.TextBackspaceAction{}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return
		}
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
			r = unicode.ToUpper(r)
		}
		if unicode.IsPrint(r) {
			ih.actionChan <- statepkg.TextInputAction{Char: r}
		}
	}
}

package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== BROWSING ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type OpenAction struct{} // preview a file or enter a directory
type GoUpAction struct{}
type NewFolderAction struct{}
type RefreshAction struct{}
type ToggleHiddenAction struct{}
type ToggleHelpAction struct{}
type QuitAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl+Z).
type SuspendAction struct{}

// ===== TEXT ENTRY ACTIONS =====

type TextInputAction struct {
	Char rune
}
type TextBackspaceAction struct{}
type TextSubmitAction struct{}
type TextCancelAction struct{}

// ===== LOOP ACTIONS =====

// TickAction fires when the poll timeout elapses without input.
type TickAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// DirectoryChangedAction reports that the contents of Path changed on disk.
type DirectoryChangedAction struct {
	Path string
}

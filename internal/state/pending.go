package state

import "fmt"

// PendingKind enumerates the actions that wait for text input.
type PendingKind int

const (
	PendingCreateFolder PendingKind = iota + 1
)

// PendingAction is a single-shot command captured when text entry starts.
// Its parameters are snapshotted at that moment, so navigating before the
// text is submitted does not change what it operates on.
type PendingAction struct {
	Kind PendingKind
	Dir  string
}

// NewCreateFolderAction captures dir as the parent of the folder to create.
func NewCreateFolderAction(dir string) *PendingAction {
	return &PendingAction{Kind: PendingCreateFolder, Dir: dir}
}

// Prompt is the title shown above the text input.
func (p *PendingAction) Prompt() string {
	if p == nil {
		return ""
	}
	switch p.Kind {
	case PendingCreateFolder:
		return fmt.Sprintf("New folder in %s", p.Dir)
	default:
		return "Input"
	}
}

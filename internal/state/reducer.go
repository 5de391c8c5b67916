package state

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// StateReducer applies actions to AppState. Filesystem failures never escape
// Reduce; they land in AppState.LastError. The returned error is reserved for
// actions the reducer does not know.
type StateReducer struct {
	provider fsutil.Provider
	log      logrus.FieldLogger
}

// NewStateReducer creates a reducer that performs filesystem work through
// provider. A nil logger discards log output.
func NewStateReducer(provider fsutil.Provider, log logrus.FieldLogger) *StateReducer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &StateReducer{provider: provider, log: log}
}

// Reduce applies one action to state and returns it.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== ALWAYS =====

	case TickAction:
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case DirectoryChangedAction:
		if state.Mode != ModeBrowsing || filepath.Clean(a.Path) != state.CurrentPath() {
			return state, nil
		}
		r.log.WithField("path", a.Path).Debug("directory changed on disk")
		if err := state.Session.Refresh(); err != nil {
			r.fail(state, "refresh", err)
		}
		return state, nil
	}

	if state.Mode == ModeTextEntry {
		return r.reduceTextEntry(state, action)
	}
	return r.reduceBrowsing(state, action)
}

func (r *StateReducer) reduceBrowsing(state *AppState, action Action) (*AppState, error) {
	if state.HelpVisible {
		switch action.(type) {
		case ToggleHelpAction:
			state.HelpVisible = false
		case QuitAction:
			state.Quit = true
		}
		return state, nil
	}

	switch action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		state.Session.Entries().Advance()
		return state, nil

	case NavigateUpAction:
		state.Session.Entries().Retreat()
		return state, nil

	case OpenAction:
		r.open(state)
		return state, nil

	case GoUpAction:
		r.ascend(state)
		return state, nil

	case RefreshAction:
		if err := state.Session.Refresh(); err != nil {
			r.fail(state, "refresh", err)
			return state, nil
		}
		state.LastError = nil
		return state, nil

	// ===== VIEW =====

	case ToggleHiddenAction:
		show := !state.Session.ShowHidden()
		state.Session.SetShowHidden(show)
		if show {
			state.Status = "showing hidden files"
		} else {
			state.Status = "hiding hidden files"
		}
		return state, nil

	case ToggleHelpAction:
		state.HelpVisible = true
		return state, nil

	// ===== COMMANDS =====

	case NewFolderAction:
		state.enterTextEntry(NewCreateFolderAction(state.CurrentPath()))
		state.Status = ""
		return state, nil

	case QuitAction:
		state.Quit = true
		return state, nil

	case SuspendAction:
		// the application owns the terminal; nothing to record here
		return state, nil

	case TextInputAction, TextBackspaceAction, TextSubmitAction, TextCancelAction:
		return state, nil
	}

	return state, fmt.Errorf("unknown action %T", action)
}

func (r *StateReducer) reduceTextEntry(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {
	case TextInputAction:
		state.Input += string(a.Char)

	case TextBackspaceAction:
		if state.Input == "" {
			return state, nil
		}
		runes := []rune(state.Input)
		state.Input = string(runes[:len(runes)-1])

	case TextSubmitAction:
		pending, input := state.Pending, state.Input
		state.leaveTextEntry()
		r.runPending(state, pending, input)

	case TextCancelAction:
		state.leaveTextEntry()

	case NavigateUpAction, NavigateDownAction, OpenAction, GoUpAction, NewFolderAction,
		RefreshAction, ToggleHiddenAction, ToggleHelpAction, QuitAction, SuspendAction:
		// browsing commands have no meaning while typing

	default:
		return state, fmt.Errorf("unknown action %T", action)
	}
	return state, nil
}

func (r *StateReducer) open(state *AppState) {
	entry, ok := state.Session.SelectedEntry()
	if !ok {
		return
	}

	if entry.IsDir {
		from := state.CurrentPath()
		if err := state.Session.Descend(entry.DiskName()); err != nil {
			r.fail(state, "descend", err)
			return
		}
		r.log.WithFields(logrus.Fields{"from": from, "to": state.CurrentPath()}).Debug("descend")
		state.LastError = nil
		return
	}

	if !entry.IsRegular() {
		r.fail(state, "preview", fsutil.ReadError("cannot open", entry.FullPath, fsutil.ErrNotRegular))
		return
	}

	preview, err := LoadPreview(r.provider, entry, state.PreviewMaxBytes)
	if err != nil {
		r.fail(state, "preview", err)
		return
	}
	state.Preview = preview
	state.LastError = nil
}

func (r *StateReducer) ascend(state *AppState) {
	from := state.CurrentPath()
	moved, err := state.Session.Ascend()
	if err != nil {
		r.fail(state, "ascend", err)
		return
	}
	if !moved {
		return
	}
	r.log.WithFields(logrus.Fields{"from": from, "to": state.CurrentPath()}).Debug("ascend")
	state.LastError = nil
}

func (r *StateReducer) runPending(state *AppState, pending *PendingAction, input string) {
	if pending == nil {
		return
	}
	switch pending.Kind {
	case PendingCreateFolder:
		r.createFolder(state, pending.Dir, input)
	}
}

func (r *StateReducer) createFolder(state *AppState, dir, name string) {
	target := filepath.Join(dir, name)
	if err := validateFolderName(name); err != nil {
		r.fail(state, "create folder", fsutil.CreateError(target, err))
		return
	}
	if err := r.provider.CreateDirectory(target); err != nil {
		r.fail(state, "create folder", err)
		return
	}

	r.log.WithField("path", target).Info("folder created")
	state.LastError = nil
	state.Status = fmt.Sprintf("created folder %s", name)

	if state.CurrentPath() != dir {
		return
	}
	if err := state.Session.Refresh(); err != nil {
		r.fail(state, "refresh", err)
		return
	}
	state.Session.SelectPath(target)
}

func validateFolderName(name string) error {
	switch {
	case strings.TrimSpace(name) == "", name == ".", name == "..":
		return fsutil.ErrInvalidName
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fsutil.ErrInvalidName
	}
	return nil
}

func (r *StateReducer) fail(state *AppState, op string, err error) {
	r.log.WithFields(logrus.Fields{
		"op":   op,
		"path": state.CurrentPath(),
		"kind": fsutil.KindOf(err).String(),
	}).WithError(err).Warn("filesystem operation failed")
	state.LastError = err
}

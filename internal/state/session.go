package state

import (
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// SessionOptions controls which listing entries are visible.
type SessionOptions struct {
	ShowHidden bool
	Ignore     *fsutil.IgnoreRules
}

// DirectorySession owns the current directory and its listing. Transitions
// read the new listing first and only then replace path and entries, so a
// failed read never leaves a half-updated session.
type DirectorySession struct {
	provider   fsutil.Provider
	path       string
	listing    []FileEntry // full listing after ignore rules
	entries    *SelectableList[FileEntry]
	showHidden bool
	ignore     *fsutil.IgnoreRules
}

// NewDirectorySession anchors a session at startPath. An error here means
// there is nothing to browse at all.
func NewDirectorySession(provider fsutil.Provider, startPath string, opts SessionOptions) (*DirectorySession, error) {
	if provider == nil {
		return nil, fmt.Errorf("directory session needs a filesystem provider")
	}
	if startPath == "" {
		startPath = "."
	}
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", startPath, err)
	}

	s := &DirectorySession{
		provider:   provider,
		entries:    NewSelectableList[FileEntry](nil),
		showHidden: opts.ShowHidden,
		ignore:     opts.Ignore,
	}

	listing, err := s.read(abs)
	if err != nil {
		return nil, err
	}
	s.apply(abs, listing, "")
	s.entries.Select(0)
	return s, nil
}

func (s *DirectorySession) CurrentPath() string {
	return s.path
}

// Entries exposes the selectable listing for cursor movement.
func (s *DirectorySession) Entries() *SelectableList[FileEntry] {
	return s.entries
}

func (s *DirectorySession) SelectedEntry() (FileEntry, bool) {
	return s.entries.SelectedItem()
}

func (s *DirectorySession) ShowHidden() bool {
	return s.showHidden
}

// Descend enters the child directory called name. On failure the session
// stays where it is and re-lists it; if even that fails it settles on the
// nearest listable ancestor. The read error is returned either way.
func (s *DirectorySession) Descend(name string) error {
	child := filepath.Join(s.path, name)
	listing, err := s.read(child)
	if err != nil {
		s.reanchor()
		return err
	}
	s.apply(child, listing, "")
	s.entries.Select(0)
	return nil
}

// Ascend moves to the parent directory and selects the directory just left.
// It reports false without error at the filesystem root. A failed read leaves
// the session untouched.
func (s *DirectorySession) Ascend() (bool, error) {
	parent := filepath.Dir(s.path)
	if parent == s.path {
		return false, nil
	}
	listing, err := s.read(parent)
	if err != nil {
		return false, err
	}

	before := s.path
	s.apply(parent, listing, before)
	if !s.SelectPath(before) {
		s.entries.Select(0)
	}
	return true, nil
}

// Refresh re-lists the current directory, keeping the selection on the same
// path when it still exists and on the same row otherwise.
func (s *DirectorySession) Refresh() error {
	listing, err := s.read(s.path)
	if err != nil {
		s.reanchor()
		return err
	}
	s.replaceKeepingSelection(s.path, listing)
	return nil
}

// SetShowHidden toggles dot-file visibility without touching the disk.
func (s *DirectorySession) SetShowHidden(show bool) {
	if s.showHidden == show {
		return
	}
	s.showHidden = show
	s.replaceKeepingSelection(s.path, s.listing)
}

// SelectPath moves the cursor onto the entry whose full path is path.
func (s *DirectorySession) SelectPath(path string) bool {
	idx := s.entries.IndexFunc(func(e FileEntry) bool {
		return e.FullPath == path
	})
	if idx < 0 {
		return false
	}
	return s.entries.Select(idx)
}

func (s *DirectorySession) read(path string) ([]FileEntry, error) {
	listing, err := s.provider.ListDirectory(path)
	if err != nil {
		return nil, err
	}
	return s.ignore.Filter(listing), nil
}

// apply installs a listing for path. keep names an entry that stays visible
// even when hidden files are filtered, so the directory we came from can be
// highlighted after ascending out of a dot-directory.
func (s *DirectorySession) apply(path string, listing []FileEntry, keep string) {
	s.path = path
	s.listing = listing
	s.entries.ReplaceItems(s.visible(listing, keep))
}

func (s *DirectorySession) visible(listing []FileEntry, keep string) []FileEntry {
	if s.showHidden {
		return listing
	}
	out := make([]FileEntry, 0, len(listing))
	for _, e := range listing {
		if e.IsHidden() && e.FullPath != keep {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *DirectorySession) replaceKeepingSelection(path string, listing []FileEntry) {
	prevIdx, hadSelection := s.entries.Selected()
	prevPath := ""
	if entry, ok := s.entries.SelectedItem(); ok {
		prevPath = entry.FullPath
	}

	s.apply(path, listing, "")
	if prevPath != "" && s.SelectPath(prevPath) {
		return
	}
	if !hadSelection {
		prevIdx = 0
	}
	s.entries.Select(min(prevIdx, s.entries.Len()-1))
}

// reanchor re-anchors the session after a failed read: the current directory
// if it still lists, otherwise the closest ancestor that does. When nothing
// lists the stale state is kept.
func (s *DirectorySession) reanchor() {
	if listing, err := s.read(s.path); err == nil {
		s.replaceKeepingSelection(s.path, listing)
		return
	}

	for dir := filepath.Dir(s.path); ; dir = filepath.Dir(dir) {
		if listing, err := s.read(dir); err == nil {
			s.apply(dir, listing, "")
			s.entries.Select(0)
			return
		}
		if filepath.Dir(dir) == dir {
			return
		}
	}
}
